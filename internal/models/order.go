package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	CustomerName    string         `json:"customer_name" gorm:"not null"`
	CustomerPhone   string         `json:"customer_phone"`
	CustomerAddress string         `json:"customer_address"`
	Status          OrderStatus    `json:"status" gorm:"type:varchar(20);default:'pending'"`
	TotalAmount     float64        `json:"total_amount" gorm:"type:numeric(10,2);not null"`
	OrderDate       time.Time      `json:"order_date" gorm:"not null"`
	CustomerID      uint           `json:"customer_id" gorm:"not null;index"`
	Items           []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)
