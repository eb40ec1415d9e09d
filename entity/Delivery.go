package entity

import (
	"time"
)

type DeliveryStatus string

const (
	DeliveryAssigned  DeliveryStatus = "ASSIGNED"
	DeliveryPickedUp  DeliveryStatus = "PICKED_UP"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
)

type Delivery struct {
	ID uint `gorm:"primarykey" json:"id"`

	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	DeliveryPartnerID uint `gorm:"not null;index" json:"deliveryPartnerId"`
	DeliveryPartner   User `gorm:"foreignKey:DeliveryPartnerID" json:"-"`

	Status DeliveryStatus `gorm:"not null;default:ASSIGNED" json:"status"`

	AssignedAt  time.Time  `gorm:"autoCreateTime;not null" json:"assignedAt"`
	PickedUpAt  *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}
