package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/server/http/dto"
	"github.com/anandpatel/cafewala/internal/server/http/middleware"
)

// CurrentAdminID extracts authenticated admin identifier from context.
func CurrentAdminID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.AdminIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// queryInt reads an integer query parameter, returning def when absent or
// malformed.
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// writeError maps a domain error onto an HTTP response. Internal error detail
// is exposed only when expose is true.
func writeError(c *gin.Context, err error, expose bool) {
	if ve, ok := domainErrors.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: ve.Message, Details: []string{ve.Error()}})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status"})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	case errors.Is(err, domainErrors.ErrAlreadyExists), errors.Is(err, domainErrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "conflict"})
	default:
		resp := dto.ErrorResponse{Error: "internal server error"}
		if expose {
			resp.Details = []string{err.Error()}
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
}
