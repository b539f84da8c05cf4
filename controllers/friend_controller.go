package controllers

import (
	"errors"
	"net/http"

	"github.com/ErjonAhmetaj/FitCoachAI/services"

	"github.com/gin-gonic/gin"
)

// friendFeedLimit caps the cross-friend activity feed.
const friendFeedLimit = 30

type FriendController struct {
	Friends  *services.FriendService
	Checkins *services.CheckinService
}

func NewFriendController(friends *services.FriendService, checkins *services.CheckinService) *FriendController {
	return &FriendController{Friends: friends, Checkins: checkins}
}

func (h *FriendController) SearchUsers(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	results, err := h.Friends.Search(userID, c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search users"})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *FriendController) AddFriend(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		FriendID uint `json:"friendId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Friends.AddFriend(userID, input.FriendID); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfFriend),
			errors.Is(err, services.ErrAlreadyFriends),
			errors.Is(err, services.ErrFriendNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add friend"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend added"})
}

func (h *FriendController) ListFriends(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	friends, err := h.Friends.ListFriends(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list friends"})
		return
	}
	c.JSON(http.StatusOK, friends)
}

// FriendCheckIns returns the most recent check-ins across all friends.
func (h *FriendController) FriendCheckIns(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ids, err := h.Friends.FriendIDs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list friends"})
		return
	}

	checkins, err := h.Checkins.ListByUsers(ids, friendFeedLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch check-ins"})
		return
	}
	c.JSON(http.StatusOK, checkins)
}
