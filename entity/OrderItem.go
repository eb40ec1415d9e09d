package entity

// OrderItem snapshots the menu item's name and price at placement time.
// Rows are written once with their order and never updated.
type OrderItem struct {
	ID uint `gorm:"primarykey" json:"id"`

	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	ItemName  string `gorm:"not null" json:"itemName"`
	ItemPrice Money  `gorm:"not null" json:"itemPrice"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	Subtotal  Money  `gorm:"not null" json:"subtotal"`

	SpecialInstructions string `json:"specialInstructions,omitempty"`
}
