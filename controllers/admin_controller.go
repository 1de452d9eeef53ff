package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Sunilkumarmehta2002/swipemyhood/apperrors"
	"github.com/Sunilkumarmehta2002/swipemyhood/cache"
	"github.com/Sunilkumarmehta2002/swipemyhood/middleware"
	"github.com/Sunilkumarmehta2002/swipemyhood/models"
	"github.com/Sunilkumarmehta2002/swipemyhood/repository"
	"github.com/Sunilkumarmehta2002/swipemyhood/services"
)

// AdminController is thin pass-through CRUD over the admin collections.
type AdminController struct {
	users         *repository.UserRepository
	messages      *repository.MessageRepository
	neighborhoods *repository.NeighborhoodRepository
	settings      *repository.SettingsRepository
	stats         *services.StatsService
	cache         *cache.Cache
}

func NewAdminController(
	users *repository.UserRepository,
	messages *repository.MessageRepository,
	neighborhoods *repository.NeighborhoodRepository,
	settings *repository.SettingsRepository,
	stats *services.StatsService,
	c *cache.Cache,
) *AdminController {
	return &AdminController{
		users:         users,
		messages:      messages,
		neighborhoods: neighborhoods,
		settings:      settings,
		stats:         stats,
		cache:         c,
	}
}

func (ac *AdminController) Stats(c *gin.Context) {
	stats, err := ac.stats.Platform(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to load platform stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// --- Users ---

func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.users.FindAll(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type setAdminRequest struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

// SetAdmin grants or revokes the admin role. Changing another admin's role
// requires super-admin.
func (ac *AdminController) SetAdmin(c *gin.Context) {
	var req setAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ctx := c.Request.Context()
	target, err := ac.users.FindByID(ctx, c.Param("id"))
	if err != nil {
		apperrors.Respond(c, apperrors.ErrNotFound)
		return
	}
	if target.IsAdmin && !middleware.IsSuperAdmin(c) {
		apperrors.Respond(c, apperrors.ErrForbidden)
		return
	}
	if target.SuperAdmin {
		apperrors.Respond(c, apperrors.ErrForbidden)
		return
	}

	if err := ac.users.UpdateFields(ctx, target.ID, bson.M{"is_admin": *req.IsAdmin}); err != nil {
		zap.L().Error("failed to update admin role", zap.String("user_id", target.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}

// DeleteUser removes the account and any contact messages it submitted.
func (ac *AdminController) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()

	target, err := ac.users.FindByID(ctx, c.Param("id"))
	if err != nil {
		apperrors.Respond(c, apperrors.ErrNotFound)
		return
	}
	if target.IsAdmin && !middleware.IsSuperAdmin(c) {
		apperrors.Respond(c, apperrors.ErrForbidden)
		return
	}

	if err := ac.users.Delete(ctx, target.ID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			apperrors.Respond(c, apperrors.ErrNotFound)
			return
		}
		zap.L().Error("failed to delete user", zap.String("user_id", target.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	if err := ac.messages.DeleteByEmail(ctx, target.Email); err != nil {
		zap.L().Warn("failed to delete user messages", zap.String("email", target.Email), zap.Error(err))
	}
	ac.cache.Invalidate(ctx, "stats:platform")

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// --- Contact messages ---

func (ac *AdminController) ListMessages(c *gin.Context) {
	messages, err := ac.messages.FindAll(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type messageStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read replied archived"`
}

func (ac *AdminController) UpdateMessageStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	var req messageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := ac.messages.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		zap.L().Error("failed to update message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "message updated"})
}

func (ac *AdminController) DeleteMessage(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	if err := ac.messages.Delete(c.Request.Context(), id); err != nil {
		zap.L().Error("failed to delete message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}

// --- Neighborhoods (store-backed collection, not the swipe deck) ---

func (ac *AdminController) ListNeighborhoods(c *gin.Context) {
	neighborhoods, err := ac.neighborhoods.FindAll(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list neighborhoods", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list neighborhoods"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"neighborhoods": neighborhoods})
}

func (ac *AdminController) UpsertNeighborhood(c *gin.Context) {
	var n models.Neighborhood
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if id := c.Param("id"); id != "" {
		n.ID = id
	}
	if n.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	ctx := c.Request.Context()
	if err := ac.neighborhoods.Upsert(ctx, &n); err != nil {
		zap.L().Error("failed to save neighborhood", zap.String("id", n.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save neighborhood"})
		return
	}
	ac.cache.Invalidate(ctx, neighborhoodsCacheKey)

	c.JSON(http.StatusOK, gin.H{"neighborhood": n})
}

func (ac *AdminController) DeleteNeighborhood(c *gin.Context) {
	ctx := c.Request.Context()
	if err := ac.neighborhoods.Delete(ctx, c.Param("id")); err != nil {
		zap.L().Error("failed to delete neighborhood", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete neighborhood"})
		return
	}
	ac.cache.Invalidate(ctx, neighborhoodsCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "neighborhood deleted"})
}

// --- Platform config (API keys) ---

func (ac *AdminController) ListConfig(c *gin.Context) {
	entries, err := ac.settings.ListConfig(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list config"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": entries})
}

type configValueRequest struct {
	Value string `json:"value" binding:"required"`
}

func (ac *AdminController) SetConfig(c *gin.Context) {
	var req configValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	entry := &models.ConfigEntry{Key: c.Param("key"), Value: req.Value}
	if err := ac.settings.SetConfig(c.Request.Context(), entry); err != nil {
		zap.L().Error("failed to save config", zap.String("key", entry.Key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save config"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "config saved"})
}

// --- Algorithm settings ---

func (ac *AdminController) ListAlgorithmSettings(c *gin.Context) {
	settings, err := ac.settings.ListAlgorithmSettings(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list algorithm settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list algorithm settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type algorithmValueRequest struct {
	Value *float64 `json:"value" binding:"required"`
}

func (ac *AdminController) SetAlgorithmSetting(c *gin.Context) {
	var req algorithmValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	setting := &models.AlgorithmSetting{Key: c.Param("key"), Value: *req.Value}
	if err := ac.settings.SetAlgorithmSetting(c.Request.Context(), setting); err != nil {
		zap.L().Error("failed to save algorithm setting", zap.String("key", setting.Key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save setting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "setting saved"})
}
