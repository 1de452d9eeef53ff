package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sunilkumarmehta2002/swipemyhood/cache"
	"github.com/Sunilkumarmehta2002/swipemyhood/models"
	"github.com/Sunilkumarmehta2002/swipemyhood/repository"
)

const neighborhoodsCacheKey = "neighborhoods:all"

// NeighborhoodController serves the store-backed neighborhoods collection.
// The swipe deck deliberately does not read from here; admin edits never
// change what users swipe through.
type NeighborhoodController struct {
	neighborhoods *repository.NeighborhoodRepository
	cache         *cache.Cache
}

func NewNeighborhoodController(neighborhoods *repository.NeighborhoodRepository, c *cache.Cache) *NeighborhoodController {
	return &NeighborhoodController{neighborhoods: neighborhoods, cache: c}
}

func (nc *NeighborhoodController) List(c *gin.Context) {
	ctx := c.Request.Context()

	var neighborhoods []models.Neighborhood
	if !nc.cache.GetJSON(ctx, neighborhoodsCacheKey, &neighborhoods) {
		var err error
		neighborhoods, err = nc.neighborhoods.FindAll(ctx)
		if err != nil {
			zap.L().Error("failed to list neighborhoods", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list neighborhoods"})
			return
		}
		nc.cache.SetJSON(ctx, neighborhoodsCacheKey, neighborhoods)
	}

	c.JSON(http.StatusOK, gin.H{"neighborhoods": neighborhoods})
}
