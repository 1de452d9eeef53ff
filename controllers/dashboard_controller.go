package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/Sunilkumarmehta2002/swipemyhood/apperrors"
	"github.com/Sunilkumarmehta2002/swipemyhood/middleware"
	"github.com/Sunilkumarmehta2002/swipemyhood/repository"
	"github.com/Sunilkumarmehta2002/swipemyhood/services"
)

type DashboardController struct {
	stats *services.StatsService
	users *repository.UserRepository
}

func NewDashboardController(stats *services.StatsService, users *repository.UserRepository) *DashboardController {
	return &DashboardController{stats: stats, users: users}
}

// Stats returns the caller's swipe/match aggregates.
func (dc *DashboardController) Stats(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	stats, err := dc.stats.User(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to load user stats", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

var preferenceKeys = map[string]bool{
	"safety": true, "affordability": true, "nightlife": true, "greenSpaces": true,
	"publicTransport": true, "dining": true, "shopping": true, "community": true,
}

type onboardingRequest struct {
	Preferences map[string]int `json:"preferences" binding:"required"`
}

// CompleteOnboarding stores the preference sliders and marks onboarding done.
func (dc *DashboardController) CompleteOnboarding(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	var req onboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	for key, value := range req.Preferences {
		if !preferenceKeys[key] || value < 1 || value > 10 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preference " + key})
			return
		}
	}

	fields := bson.M{
		"preferences":          req.Preferences,
		"onboarding_completed": true,
		"updated_at":           time.Now().UTC(),
	}
	if err := dc.users.UpdateFields(c.Request.Context(), userID, fields); err != nil {
		zap.L().Error("failed to save preferences", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preferences saved! Ready to start swiping!"})
}

// ResetPreferences clears the stored preferences and reopens onboarding.
func (dc *DashboardController) ResetPreferences(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	ctx := c.Request.Context()
	if err := dc.users.UnsetFields(ctx, userID, "preferences"); err != nil {
		zap.L().Error("failed to reset preferences", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset preferences"})
		return
	}
	if err := dc.users.UpdateFields(ctx, userID, bson.M{
		"onboarding_completed": false,
		"updated_at":           time.Now().UTC(),
	}); err != nil {
		zap.L().Error("failed to reopen onboarding", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preferences reset"})
}
