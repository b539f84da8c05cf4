package controllers

import (
	"errors"
	"net/http"

	"github.com/ErjonAhmetaj/FitCoachAI/services"
	"github.com/ErjonAhmetaj/FitCoachAI/utils"

	"github.com/gin-gonic/gin"
)

type CheckinController struct {
	Svc *services.CheckinService
}

func NewCheckinController(svc *services.CheckinService) *CheckinController {
	return &CheckinController{Svc: svc}
}

func (h *CheckinController) CreateCheckIn(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.CheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkin, err := h.Svc.Create(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save check-in"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Check-in saved successfully", "checkin": checkin})
}

func (h *CheckinController) ListCheckIns(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	checkins, err := h.Svc.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch check-ins"})
		return
	}

	c.JSON(http.StatusOK, checkins)
}

// GetProgress returns chart-ready series in chronological order plus the
// weight-goal percentage.
func (h *CheckinController) GetProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	checkins, err := h.Svc.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch check-ins"})
		return
	}

	latest := utils.LatestWeight(checkins)

	// repository order is newest first; charts want oldest first
	for i, j := 0, len(checkins)-1; i < j; i, j = i+1, j-1 {
		checkins[i], checkins[j] = checkins[j], checkins[i]
	}

	var goal *float64
	if user, err := services.FindUserByID(userID); err == nil {
		goal = user.WeightGoal
	}

	c.JSON(http.StatusOK, gin.H{
		"series":       utils.ProjectCheckins(checkins),
		"goalProgress": utils.GoalProgress(latest, goal),
	})
}
