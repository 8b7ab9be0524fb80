package api

import (
	"context"
	"net/http"

	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
	"github.com/JemAndrew/JemAndrewWebsite/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContactHandler serves the public contact endpoint and the admin
// message endpoints
type ContactHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(services *service.Services, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		services: services,
		log:      log.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ContactResponse{
			Success: false,
			Message: "Invalid request format.",
		})
		return
	}

	resp, err := h.services.Contact.Submit(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMessages handles GET /v1/admin/messages
func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.services.Contact.ListMessages(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list contact messages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(messages),
		"messages": messages,
	})
}

// MarkRead handles POST /v1/admin/messages/:id/read
func (h *ContactHandler) MarkRead(c *gin.Context) {
	h.setFlag(c, h.services.Contact.MarkRead)
}

// MarkReplied handles POST /v1/admin/messages/:id/replied
func (h *ContactHandler) MarkReplied(c *gin.Context) {
	h.setFlag(c, h.services.Contact.MarkReplied)
}

func (h *ContactHandler) setFlag(c *gin.Context, update func(ctx context.Context, id string) (bool, error)) {
	id := c.Param("id")
	found, err := update(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("Failed to update message flag")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update message"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
