package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/server/http/dto"
	"github.com/anandpatel/cafewala/internal/usecase"
)

// ReservationHandler manages booking endpoints.
type ReservationHandler struct {
	facade ReservationFacade
	expose bool
}

// NewReservationHandler constructs ReservationHandler.
func NewReservationHandler(facade ReservationFacade, expose bool) *ReservationHandler {
	return &ReservationHandler{facade: facade, expose: expose}
}

// Create handles POST /api/reservations.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	reservation, err := h.facade.CreateReservation(c.Request.Context(), usecase.ReservationDraft{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		writeError(c, err, h.expose)
		return
	}

	c.JSON(http.StatusCreated, toReservationResponse(*reservation))
}

// Get handles GET /api/reservations/:id.
func (h *ReservationHandler) Get(c *gin.Context) {
	reservation, err := h.facade.Reservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, h.expose)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(*reservation))
}

// List handles GET /api/reservations.
func (h *ReservationHandler) List(c *gin.Context) {
	params := usecase.ListReservationsParams{
		Page:   queryInt(c, "page", 0),
		Limit:  queryInt(c, "limit", 0),
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}

	page, err := h.facade.ListReservations(c.Request.Context(), params)
	if err != nil {
		writeError(c, err, h.expose)
		return
	}

	response := dto.ReservationListResponse{
		Data: make([]dto.ReservationResponse, 0, len(page.Reservations)),
		Pagination: dto.Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}
	for _, reservation := range page.Reservations {
		response.Data = append(response.Data, toReservationResponse(reservation))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /api/reservations/:id/status.
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	reservation, err := h.facade.UpdateReservationStatus(
		c.Request.Context(),
		c.Param("id"),
		model.ReservationStatus(req.Status),
		req.TableNumber,
	)
	if err != nil {
		writeError(c, err, h.expose)
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(*reservation))
}

// Delete handles DELETE /api/reservations/:id.
func (h *ReservationHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteReservation(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, h.expose)
		return
	}
	c.Status(http.StatusNoContent)
}

func toReservationResponse(reservation model.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:              reservation.ID,
		Name:            reservation.Name,
		Email:           reservation.Email,
		Phone:           reservation.Phone,
		Date:            reservation.Date.Format("2006-01-02"),
		Time:            reservation.Time,
		Guests:          reservation.Guests,
		Status:          string(reservation.Status),
		TableNumber:     reservation.TableNumber,
		SpecialRequests: reservation.SpecialRequests,
		CreatedAt:       reservation.CreatedAt,
		UpdatedAt:       reservation.UpdatedAt,
	}
}
