package services

import (
	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
)

// Caller is the authenticated principal driving an operation. Services take
// it explicitly instead of reading ambient request state.
type Caller struct {
	UserID uint
	Role   string
}

func (c Caller) IsAdmin() bool {
	return c.Role == entity.RoleAdmin
}

func (c Caller) IsCustomerOf(o *entity.Order) bool {
	return c.UserID == o.CustomerID
}

func (c Caller) IsAssignedPartnerOf(d *entity.Delivery) bool {
	return c.Role == entity.RoleDeliveryPartner && c.UserID == d.DeliveryPartnerID
}
