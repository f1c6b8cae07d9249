package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshadsshinde/hospital-management-system/internal/models"
)

type messageRequest struct {
	FirstName string `json:"firstName" binding:"required,min=3"`
	LastName  string `json:"lastName" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=10"`
	Message   string `json:"message" binding:"required,min=10"`
}

// SendMessage handles POST /api/v1/message/send. Public endpoint; repeated
// submissions are accepted without restriction.
func (h *Handler) SendMessage(c *gin.Context) {
	var req messageRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	msg := &models.Message{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}
	if err := h.Messages.Create(c.Request.Context(), msg); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message Sent!",
	})
}

// GetAllMessages handles GET /api/v1/message/getall.
func (h *Handler) GetAllMessages(c *gin.Context) {
	messages, err := h.Messages.All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}
