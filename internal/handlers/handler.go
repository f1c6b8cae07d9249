package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Harshadsshinde/hospital-management-system/internal/storage"
	"github.com/Harshadsshinde/hospital-management-system/internal/store"
	"github.com/Harshadsshinde/hospital-management-system/internal/token"
)

// Handler carries the stores and services every route method needs.
type Handler struct {
	Users        store.UserStore
	Appointments store.AppointmentStore
	Messages     store.MessageStore
	Tokens       *token.Service
	Avatars      storage.Uploader
	Log          *slog.Logger
}

func NewHandler(users store.UserStore, appointments store.AppointmentStore, messages store.MessageStore, tokens *token.Service, avatars storage.Uploader, log *slog.Logger) *Handler {
	return &Handler{
		Users:        users,
		Appointments: appointments,
		Messages:     messages,
		Tokens:       tokens,
		Avatars:      avatars,
		Log:          log,
	}
}

// fail hands a typed failure to the centralized error translator.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
