package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anandpatel/cafewala/internal/server/http/dto"
	"github.com/anandpatel/cafewala/internal/server/http/middleware"
)

// AuthHandler processes admin login.
type AuthHandler struct {
	facade AuthFacade
	expose bool
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, expose bool) *AuthHandler {
	return &AuthHandler{facade: facade, expose: expose}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	token, err := h.facade.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		writeError(c, err, h.expose)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token})
}
