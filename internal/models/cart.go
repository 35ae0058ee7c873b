package models

import (
	"time"
)

// CartLine is one item pending purchase for a user. A user holds at most
// one line per item; adding the same item again bumps the quantity.
type CartLine struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	ItemID    uint      `json:"item_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	Item      Item      `json:"item" gorm:"foreignKey:ItemID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartLine) TableName() string {
	return "cart"
}
