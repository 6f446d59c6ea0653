package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/server/http/dto"
	"github.com/anandpatel/cafewala/internal/usecase"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
	expose bool
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, expose bool) *OrderHandler {
	return &OrderHandler{facade: facade, expose: expose}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	draft := usecase.OrderDraft{
		SpecialInstructions: req.SpecialInstructions,
	}
	if req.Customer != nil {
		draft.Customer = &model.CustomerInfo{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		}
	}
	if req.DeliveryAddress != nil {
		draft.DeliveryAddress = &model.DeliveryAddress{
			Street:   req.DeliveryAddress.Street,
			Area:     req.DeliveryAddress.Area,
			City:     req.DeliveryAddress.City,
			Pincode:  req.DeliveryAddress.Pincode,
			Landmark: req.DeliveryAddress.Landmark,
		}
	}
	for _, item := range req.Items {
		draft.Items = append(draft.Items, usecase.OrderItemRequest{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), draft)
	if err != nil {
		writeError(c, err, h.expose)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		OrderNumber:           order.OrderNumber,
		Total:                 order.Total,
		EstimatedDeliveryTime: order.EstimatedDeliveryTime,
		Status:                string(order.Status),
	})
}

// Track handles GET /api/orders/:orderNumber.
func (h *OrderHandler) Track(c *gin.Context) {
	order, err := h.facade.TrackOrder(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		writeError(c, err, h.expose)
		return
	}

	c.JSON(http.StatusOK, dto.TrackOrderResponse{
		OrderNumber:           order.OrderNumber,
		Status:                string(order.Status),
		Items:                 toOrderItemResponses(order.Items),
		Subtotal:              order.Subtotal,
		DeliveryFee:           order.DeliveryFee,
		Total:                 order.Total,
		PaymentMethod:         order.PaymentMethod,
		DeliveryAddress:       toAddressPayload(order.DeliveryAddress),
		EstimatedDeliveryTime: order.EstimatedDeliveryTime,
		ActualDeliveryTime:    order.ActualDeliveryTime,
		CreatedAt:             order.CreatedAt,
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	params := usecase.ListOrdersParams{
		Page:   queryInt(c, "page", 0),
		Limit:  queryInt(c, "limit", 0),
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}

	page, err := h.facade.ListOrders(c.Request.Context(), params)
	if err != nil {
		writeError(c, err, h.expose)
		return
	}

	response := dto.OrderListResponse{
		Data: make([]dto.OrderResponse, 0, len(page.Orders)),
		Pagination: dto.Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}
	for _, order := range page.Orders {
		response.Data = append(response.Data, toOrderResponse(order))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /api/orders/:orderNumber/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("orderNumber"), model.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err, h.expose)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		OrderNumber: order.OrderNumber,
		Customer: dto.CustomerPayload{
			Name:  order.Customer.Name,
			Email: order.Customer.Email,
			Phone: order.Customer.Phone,
		},
		DeliveryAddress:       toAddressPayload(order.DeliveryAddress),
		Items:                 toOrderItemResponses(order.Items),
		Subtotal:              order.Subtotal,
		DeliveryFee:           order.DeliveryFee,
		Total:                 order.Total,
		PaymentMethod:         order.PaymentMethod,
		Status:                string(order.Status),
		SpecialInstructions:   order.SpecialInstructions,
		EstimatedDeliveryTime: order.EstimatedDeliveryTime,
		ActualDeliveryTime:    order.ActualDeliveryTime,
		CreatedAt:             order.CreatedAt,
		UpdatedAt:             order.UpdatedAt,
	}
}

func toAddressPayload(address model.DeliveryAddress) dto.AddressPayload {
	return dto.AddressPayload{
		Street:   address.Street,
		Area:     address.Area,
		City:     address.City,
		Pincode:  address.Pincode,
		Landmark: address.Landmark,
	}
}

func toOrderItemResponses(items []model.OrderLineItem) []dto.OrderItemResponse {
	response := make([]dto.OrderItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, dto.OrderItemResponse{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Image:      item.Image,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal(),
		})
	}
	return response
}
