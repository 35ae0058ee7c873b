package models

import (
	"time"
)

type Item struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"type:numeric(10,2);not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	Category    string    `json:"category" gorm:"index"`
	ImageName   string    `json:"image_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	CategoryMen         = "Men"
	CategoryWomen       = "Women"
	CategoryAccessories = "Accessories"
)

// ValidCategory reports whether c is one of the fixed catalog categories.
// Matching is case-sensitive.
func ValidCategory(c string) bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryAccessories:
		return true
	}
	return false
}
