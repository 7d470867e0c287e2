package handler

import (
	"net/http"
	"strconv"

	"social-media/internal/domain/message"
	"social-media/internal/services"
	"social-media/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Create handles POST /messages.
func (h *MessageHandler) Create(c *gin.Context) {
	var req httpdto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	stored, err := h.service.Create(c.Request.Context(), req.ToMessage())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// List handles GET /messages.
func (h *MessageHandler) List(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(items))
}

// GetByID handles GET /messages/{id}. A missing message is 200 with no body.
func (h *MessageHandler) GetByID(c *gin.Context) {
	messageID, err := parseID(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid message id")
		return
	}

	msg, found, err := h.service.GetByID(c.Request.Context(), messageID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !found {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// Delete handles DELETE /messages/{id}. Body is 1 when a row went away and
// empty otherwise.
func (h *MessageHandler) Delete(c *gin.Context) {
	messageID, err := parseID(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid message id")
		return
	}

	affected, err := h.service.DeleteByID(c.Request.Context(), messageID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if affected == 0 {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, affected)
}

// UpdateText handles PATCH /messages/{id}.
func (h *MessageHandler) UpdateText(c *gin.Context) {
	messageID, err := parseID(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid message id")
		return
	}

	var req httpdto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	affected, err := h.service.UpdateText(c.Request.Context(), messageID, req.MessageText)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, affected)
}

// ListByAccount handles GET /accounts/{id}/messages.
func (h *MessageHandler) ListByAccount(c *gin.Context) {
	accountID, err := parseID(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid account id")
		return
	}

	items, err := h.service.ListByOwner(c.Request.Context(), accountID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(items))
}

func parseID(value string) (int, error) {
	return strconv.Atoi(value)
}

func nonNil(items []message.Message) []message.Message {
	if items == nil {
		return []message.Message{}
	}
	return items
}
