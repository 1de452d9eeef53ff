package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sunilkumarmehta2002/swipemyhood/apperrors"
	"github.com/Sunilkumarmehta2002/swipemyhood/catalog"
	"github.com/Sunilkumarmehta2002/swipemyhood/middleware"
	"github.com/Sunilkumarmehta2002/swipemyhood/services"
)

type SwipeController struct {
	swipes *services.SwipeService
}

func NewSwipeController(swipes *services.SwipeService) *SwipeController {
	return &SwipeController{swipes: swipes}
}

// Deck returns the caller's current card and deck position.
func (sc *SwipeController) Deck(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, sc.swipes.Deck(userID))
}

type decideRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// Decide records a like/pass for the current card. A failed persist leaves
// the cursor where it was so the same gesture can be retried.
func (sc *SwipeController) Decide(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := sc.swipes.Decide(c.Request.Context(), userID, req.Direction)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Reset starts a fresh swipe session from the top of the deck.
func (sc *SwipeController) Reset(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, sc.swipes.Reset(userID))
}

// Services lists the purchasable service options shown on each card.
func (sc *SwipeController) Services(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.Services()})
}

// Matches lists the caller's matches, newest first.
func (sc *SwipeController) Matches(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	matches, err := sc.swipes.Matches(c.Request.Context(), userID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
