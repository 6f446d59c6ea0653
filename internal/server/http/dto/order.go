package dto

import "time"

// CustomerPayload is customer contact info as submitted by the client.
type CustomerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AddressPayload is a delivery address as submitted by the client.
type AddressPayload struct {
	Street   string `json:"street"`
	Area     string `json:"area"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark"`
}

// OrderItemPayload is one requested line item. Name and price may be sent by
// clients but are ignored; the catalog is authoritative.
type OrderItemPayload struct {
	MenuItemID string  `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	Name       string  `json:"name,omitempty"`
	Price      float64 `json:"price,omitempty"`
}

// CreateOrderRequest is the order creation payload. Pointer fields
// distinguish absent objects from empty ones.
type CreateOrderRequest struct {
	Customer            *CustomerPayload   `json:"customer"`
	DeliveryAddress     *AddressPayload    `json:"deliveryAddress"`
	Items               []OrderItemPayload `json:"items"`
	SpecialInstructions string             `json:"specialInstructions"`
}

// CreateOrderResponse returns the fields a customer needs after checkout.
type CreateOrderResponse struct {
	OrderNumber           string    `json:"orderNumber"`
	Total                 float64   `json:"total"`
	EstimatedDeliveryTime time.Time `json:"estimatedDeliveryTime"`
	Status                string    `json:"status"`
}

// OrderItemResponse is a line item in order views.
type OrderItemResponse struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image,omitempty"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"lineTotal"`
}

// TrackOrderResponse is the customer-facing order projection.
type TrackOrderResponse struct {
	OrderNumber           string              `json:"orderNumber"`
	Status                string              `json:"status"`
	Items                 []OrderItemResponse `json:"items"`
	Subtotal              float64             `json:"subtotal"`
	DeliveryFee           float64             `json:"deliveryFee"`
	Total                 float64             `json:"total"`
	PaymentMethod         string              `json:"paymentMethod"`
	DeliveryAddress       AddressPayload      `json:"deliveryAddress"`
	EstimatedDeliveryTime time.Time           `json:"estimatedDeliveryTime"`
	ActualDeliveryTime    *time.Time          `json:"actualDeliveryTime,omitempty"`
	CreatedAt             time.Time           `json:"createdAt"`
}

// OrderResponse is the full admin order view.
type OrderResponse struct {
	OrderNumber           string              `json:"orderNumber"`
	Customer              CustomerPayload     `json:"customer"`
	DeliveryAddress       AddressPayload      `json:"deliveryAddress"`
	Items                 []OrderItemResponse `json:"items"`
	Subtotal              float64             `json:"subtotal"`
	DeliveryFee           float64             `json:"deliveryFee"`
	Total                 float64             `json:"total"`
	PaymentMethod         string              `json:"paymentMethod"`
	Status                string              `json:"status"`
	SpecialInstructions   string              `json:"specialInstructions,omitempty"`
	EstimatedDeliveryTime time.Time           `json:"estimatedDeliveryTime"`
	ActualDeliveryTime    *time.Time          `json:"actualDeliveryTime,omitempty"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}

// UpdateOrderStatusRequest carries a target status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderListResponse is a paginated admin listing.
type OrderListResponse struct {
	Data       []OrderResponse `json:"data"`
	Pagination Pagination      `json:"pagination"`
}
