package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sunilkumarmehta2002/swipemyhood/models"
	"github.com/Sunilkumarmehta2002/swipemyhood/repository"
)

type ContactController struct {
	messages *repository.MessageRepository
}

func NewContactController(messages *repository.MessageRepository) *ContactController {
	return &ContactController{messages: messages}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (cc *ContactController) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := &models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.MessageStatusNew,
		Timestamp: time.Now().UTC(),
	}
	if err := cc.messages.Create(c.Request.Context(), msg); err != nil {
		zap.L().Error("failed to store contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully! We'll get back to you soon."})
}
