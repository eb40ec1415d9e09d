package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderPlaced         OrderStatus = "PLACED"
	OrderConfirmed      OrderStatus = "CONFIRMED"
	OrderPreparing      OrderStatus = "PREPARING"
	OrderReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderPlaced, OrderConfirmed, OrderPreparing, OrderReadyForPickup,
		OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

type Order struct {
	ID uint `gorm:"primarykey" json:"id"`

	CustomerID uint `gorm:"not null;index" json:"customerId"`
	Customer   User `json:"-"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Status OrderStatus `gorm:"not null;default:PLACED" json:"status"`

	Subtotal    Money `gorm:"not null" json:"subtotal"`
	DeliveryFee Money `gorm:"not null" json:"deliveryFee"`
	Tax         Money `gorm:"not null" json:"tax"`
	Discount    Money `gorm:"not null;default:0" json:"discount"`
	TotalAmount Money `gorm:"not null" json:"totalAmount"`

	DeliveryAddress     string `gorm:"not null" json:"deliveryAddress"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`

	DeliveryPartnerID *uint `json:"deliveryPartnerId,omitempty"`

	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time `json:"actualDeliveryTime,omitempty"`

	OrderItems []OrderItem `json:"orderItems"`

	OrderedAt time.Time `gorm:"autoCreateTime;not null" json:"orderedAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

// CalculateTotalAmount enforces total = subtotal + fee + tax - discount.
func (o *Order) CalculateTotalAmount() {
	o.TotalAmount = o.Subtotal + o.DeliveryFee + o.Tax - o.Discount
}

func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderPlaced || o.Status == OrderConfirmed
}
