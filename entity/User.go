package entity

import (
	"gorm.io/gorm"
)

// Roles carried in the JWT and checked by route groups and services.
const (
	RoleAdmin           = "ADMIN"
	RoleCustomer        = "CUSTOMER"
	RoleRestaurantOwner = "RESTAURANT_OWNER"
	RoleDeliveryPartner = "DELIVERY_PARTNER"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `gorm:"not null;default:CUSTOMER" json:"role"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`

	// preload only when a detail endpoint needs them
	Orders  []Order  `gorm:"foreignKey:CustomerID" json:"-"`
	Reviews []Review `gorm:"foreignKey:CustomerID" json:"-"`
}

func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleRestaurantOwner, RoleDeliveryPartner:
		return true
	}
	return false
}
