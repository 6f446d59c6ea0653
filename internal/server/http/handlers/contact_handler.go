package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/server/http/dto"
	"github.com/anandpatel/cafewala/internal/usecase"
)

// ContactHandler manages contact form endpoints.
type ContactHandler struct {
	facade ContactFacade
	expose bool
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(facade ContactFacade, expose bool) *ContactHandler {
	return &ContactHandler{facade: facade, expose: expose}
}

// Create handles POST /api/contact.
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	message, err := h.facade.SubmitContact(c.Request.Context(), usecase.ContactDraft{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		writeError(c, err, h.expose)
		return
	}

	c.JSON(http.StatusCreated, toContactResponse(*message))
}

// List handles GET /api/contact.
func (h *ContactHandler) List(c *gin.Context) {
	page, err := h.facade.ListContacts(c.Request.Context(), queryInt(c, "page", 0), queryInt(c, "limit", 0))
	if err != nil {
		writeError(c, err, h.expose)
		return
	}

	response := dto.ContactListResponse{
		Data: make([]dto.ContactResponse, 0, len(page.Messages)),
		Pagination: dto.Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}
	for _, message := range page.Messages {
		response.Data = append(response.Data, toContactResponse(message))
	}

	c.JSON(http.StatusOK, response)
}

// MarkRead handles PATCH /api/contact/:id/read.
func (h *ContactHandler) MarkRead(c *gin.Context) {
	if err := h.facade.MarkContactRead(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, h.expose)
		return
	}
	c.Status(http.StatusNoContent)
}

func toContactResponse(message model.ContactMessage) dto.ContactResponse {
	return dto.ContactResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Message,
		Read:      message.Read,
		CreatedAt: message.CreatedAt,
	}
}
