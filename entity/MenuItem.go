package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       Money  `gorm:"not null" json:"price"`
	Category    string `json:"category"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	IsAvailable bool `gorm:"not null;default:true" json:"isAvailable"`
	IsActive    bool `gorm:"not null;default:true" json:"isActive"`

	// how many placed orders contained this item (one per order line, not per quantity)
	OrderCount int `gorm:"not null;default:0" json:"orderCount"`

	OrderItems []OrderItem `json:"-"`
}
