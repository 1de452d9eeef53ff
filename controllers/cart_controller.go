package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sunilkumarmehta2002/swipemyhood/apperrors"
	"github.com/Sunilkumarmehta2002/swipemyhood/catalog"
	"github.com/Sunilkumarmehta2002/swipemyhood/middleware"
	"github.com/Sunilkumarmehta2002/swipemyhood/models"
	"github.com/Sunilkumarmehta2002/swipemyhood/services"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

func cartResponse(snapshot services.CartSnapshot, note string) gin.H {
	resp := gin.H{"cart": snapshot}
	if note != "" {
		resp["message"] = note
	}
	return resp
}

// GetCart returns the current cart snapshot for the user.
func (cc *CartController) GetCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	snapshot := cc.carts.Snapshot(c.Request.Context(), userID)
	c.JSON(http.StatusOK, cartResponse(snapshot, ""))
}

type addItemRequest struct {
	NeighborhoodID string `json:"neighborhood_id" binding:"required"`
	ServiceID      string `json:"service_id" binding:"required"`
}

// AddItem composes a line item from the catalog card and service option, so
// prices are never taken from the client.
func (cc *CartController) AddItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	card, ok := findCard(req.NeighborhoodID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "neighborhood not found"})
		return
	}
	service, ok := catalog.ServiceByID(req.ServiceID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	item := models.CartItem{
		ID:          fmt.Sprintf("%s-%s", card.ID, service.ID),
		Name:        fmt.Sprintf("%s - %s", service.Name, card.Name),
		City:        card.City,
		Image:       card.Image,
		Price:       service.Price,
		Type:        service.Type,
		Description: service.Description,
	}

	snapshot, note := cc.carts.AddItem(c.Request.Context(), userID, item)
	c.JSON(http.StatusOK, cartResponse(snapshot, note))
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	snapshot, note := cc.carts.RemoveItem(c.Request.Context(), userID, c.Param("id"))
	c.JSON(http.StatusOK, cartResponse(snapshot, note))
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (cc *CartController) UpdateQuantity(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	snapshot := cc.carts.UpdateQuantity(c.Request.Context(), userID, c.Param("id"), *req.Quantity)
	c.JSON(http.StatusOK, cartResponse(snapshot, ""))
}

type saveForLaterRequest struct {
	NeighborhoodID string `json:"neighborhood_id" binding:"required"`
}

func (cc *CartController) SaveForLater(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	var req saveForLaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	card, ok := findCard(req.NeighborhoodID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "neighborhood not found"})
		return
	}

	saved := models.SavedItem{
		ID:          card.ID,
		Name:        card.Name,
		City:        card.City,
		Image:       card.Image,
		Description: card.Description,
	}

	snapshot, note := cc.carts.SaveForLater(c.Request.Context(), userID, saved)
	c.JSON(http.StatusOK, cartResponse(snapshot, note))
}

func (cc *CartController) RemoveSaved(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	snapshot, note := cc.carts.RemoveSaved(c.Request.Context(), userID, c.Param("id"))
	c.JSON(http.StatusOK, cartResponse(snapshot, note))
}

func (cc *CartController) ClearCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	snapshot, note := cc.carts.ClearCart(c.Request.Context(), userID)
	c.JSON(http.StatusOK, cartResponse(snapshot, note))
}

func findCard(id string) (models.Neighborhood, bool) {
	for _, card := range catalog.Neighborhoods() {
		if card.ID == id {
			return card, true
		}
	}
	return models.Neighborhood{}, false
}
