package controllers

import (
	"errors"
	"net/http"

	"github.com/ErjonAhmetaj/FitCoachAI/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	AI       *services.AIService
	Checkins *services.CheckinService
}

func NewAIController(ai *services.AIService, checkins *services.CheckinService) *AIController {
	return &AIController{AI: ai, Checkins: checkins}
}

func (h *AIController) GetAnalysis(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	checkins, err := h.Checkins.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch check-ins"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": h.AI.Analyze(checkins)})
}

func (h *AIController) AskQuestion(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Question string `json:"question" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkins, err := h.Checkins.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch check-ins"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": h.AI.AnswerQuestion(input.Question, checkins)})
}

// RecommendWorkout takes a current-state snapshot in the request body rather
// than reading history; the client sends today's (possibly unsaved) check-in.
func (h *AIController) RecommendWorkout(c *gin.Context) {
	if _, ok := userIDFromCtx(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.CheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendation": h.AI.RecommendWorkout(input.Snapshot())})
}
