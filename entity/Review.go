package entity

import (
	"time"
)

type Review struct {
	ID uint `gorm:"primarykey" json:"id"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CustomerID uint `gorm:"not null" json:"customerId"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"`

	// unique index makes "at most one review per order" a database invariant
	OrderID uint  `gorm:"not null;uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`

	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `json:"comment,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}
