package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Address     string `gorm:"not null" json:"address"`
	CuisineType string `json:"cuisineType"`

	OwnerID uint `gorm:"not null;index" json:"ownerId"`
	Owner   User `json:"-"`

	// aggregate over reviews, recomputed on every submitReview
	Rating       float64 `gorm:"not null;default:0" json:"rating"`
	TotalReviews int     `gorm:"not null;default:0" json:"totalReviews"`

	AverageDeliveryTime int  `gorm:"not null;default:30" json:"averageDeliveryTime"` // minutes
	IsActive            bool `gorm:"not null;default:true" json:"isActive"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
	Reviews   []Review   `json:"-"`
}
