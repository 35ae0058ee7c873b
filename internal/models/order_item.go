package models

import (
	"time"
)

// OrderItem is an order line. Price is the item price at the time the
// order was placed; it is never recomputed from the catalog.
type OrderItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;uniqueIndex:idx_order_item"`
	ItemID    uint      `json:"item_id" gorm:"not null;uniqueIndex:idx_order_item"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time `json:"created_at"`
}
