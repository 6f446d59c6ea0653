package model

import "time"

// OrderStatus describes delivery lifecycle.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out-for-delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether value belongs to the status enumeration.
func ValidOrderStatus(value OrderStatus) bool {
	switch value {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentMethodCOD is the only accepted payment method.
const PaymentMethodCOD = "cod"

// CustomerInfo holds contact details of the person placing an order.
type CustomerInfo struct {
	Name  string
	Email string
	Phone string
}

// DeliveryAddress is where an order should be delivered.
type DeliveryAddress struct {
	Street   string
	Area     string
	City     string
	Pincode  string
	Landmark string
}

// OrderLineItem is a catalog item snapshot embedded in an order.
// Name, Price and Image are copied from the menu at creation time.
type OrderLineItem struct {
	MenuItemID string
	Name       string
	Price      float64
	Image      string
	Quantity   int
}

// LineTotal returns price multiplied by quantity.
func (i OrderLineItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is a placed purchase request with computed totals.
type Order struct {
	ID                    int64
	OrderNumber           string
	Customer              CustomerInfo
	DeliveryAddress       DeliveryAddress
	Items                 []OrderLineItem
	Subtotal              float64
	DeliveryFee           float64
	Total                 float64
	PaymentMethod         string
	Status                OrderStatus
	SpecialInstructions   string
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
