package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sunilkumarmehta2002/swipemyhood/apperrors"
	"github.com/Sunilkumarmehta2002/swipemyhood/middleware"
	"github.com/Sunilkumarmehta2002/swipemyhood/models"
	"github.com/Sunilkumarmehta2002/swipemyhood/services"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// Submit runs a checkout attempt with the posted billing/payment form.
func (cc *CheckoutController) Submit(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	var form models.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := cc.checkout.Submit(c.Request.Context(), userID, form)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":   order,
		"message": "Order placed successfully!",
	})
}

// Status reports the caller's checkout flow state.
func (cc *CheckoutController) Status(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	status, lastOrder := cc.checkout.Status(userID)
	resp := gin.H{"status": status}
	if lastOrder != "" {
		resp["last_order_number"] = lastOrder
	}
	c.JSON(http.StatusOK, resp)
}

// Orders lists the caller's order history.
func (cc *CheckoutController) Orders(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	orders, err := cc.checkout.Orders(c.Request.Context(), userID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
