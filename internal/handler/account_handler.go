// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"social-media/internal/services"
	"social-media/internal/transport/httpdto"
	"social-media/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles registration and login.
type AccountHandler struct {
	service *services.AccountService
	tokens  *services.TokenService
}

// NewAccountHandler creates an account handler. tokens may be nil, in which
// case login answers without an Authorization header.
func NewAccountHandler(service *services.AccountService, tokens *services.TokenService) *AccountHandler {
	return &AccountHandler{service: service, tokens: tokens}
}

// Register handles POST /register.
func (h *AccountHandler) Register(c *gin.Context) {
	var req httpdto.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	stored, err := h.service.Register(c.Request.Context(), req.ToAccount())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stored)
}

// Login handles POST /login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req httpdto.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	found, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Request = c.Request.WithContext(logger.WithAccountID(c.Request.Context(), found.ID))

	if h.tokens != nil {
		token, _, err := h.tokens.Issue(found)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.Header("Authorization", "Bearer "+token)
	}

	c.JSON(http.StatusOK, found)
}
