package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/server/http/dto"
	"github.com/anandpatel/cafewala/internal/usecase"
)

// MenuHandler manages catalog endpoints.
type MenuHandler struct {
	facade MenuFacade
	expose bool
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade, expose bool) *MenuHandler {
	return &MenuHandler{facade: facade, expose: expose}
}

// List handles GET /api/menu.
func (h *MenuHandler) List(c *gin.Context) {
	params := usecase.ListMenuParams{
		Category:      c.Query("category"),
		AvailableOnly: c.Query("available") == "true",
		Search:        c.Query("search"),
	}

	items, err := h.facade.MenuList(c.Request.Context(), params)
	if err != nil {
		writeError(c, err, h.expose)
		return
	}

	response := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/menu/:id.
func (h *MenuHandler) Get(c *gin.Context) {
	item, err := h.facade.MenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, h.expose)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// Create handles POST /api/menu.
func (h *MenuHandler) Create(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	item, err := h.facade.CreateMenuItem(c.Request.Context(), toMenuItemDraft(req))
	if err != nil {
		writeError(c, err, h.expose)
		return
	}
	c.JSON(http.StatusCreated, toMenuItemResponse(*item))
}

// Update handles PUT /api/menu/:id.
func (h *MenuHandler) Update(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	item, err := h.facade.UpdateMenuItem(c.Request.Context(), c.Param("id"), toMenuItemDraft(req))
	if err != nil {
		writeError(c, err, h.expose)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// SetAvailability handles PATCH /api/menu/:id/availability.
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailable == nil {
		badRequest(c, "isAvailable is required")
		return
	}

	if err := h.facade.SetMenuAvailability(c.Request.Context(), c.Param("id"), *req.IsAvailable); err != nil {
		writeError(c, err, h.expose)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/menu/:id.
func (h *MenuHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, h.expose)
		return
	}
	c.Status(http.StatusNoContent)
}

func toMenuItemDraft(req dto.MenuItemRequest) usecase.MenuItemDraft {
	return usecase.MenuItemDraft{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		IsAvailable: req.IsAvailable,
	}
}

func toMenuItemResponse(item model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    string(item.Category),
		Image:       item.Image,
		IsAvailable: item.IsAvailable,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
