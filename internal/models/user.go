package models

import (
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email" gorm:"unique;not null;index"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"type:varchar(20);default:'consumer'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRole is a closed enumeration; role checks compare against these
// constants, never free-form strings.
type UserRole string

const (
	RoleConsumer UserRole = "consumer"
	RoleAdmin    UserRole = "admin"
)
