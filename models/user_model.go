package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username    string       `json:"username" gorm:"unique"`
	Password    string       `json:"password"`
	Name        string       `json:"name"`
	Email       string       `json:"email" gorm:"unique"`
	Role        string       `json:"role"`
	Roles       []Role       `gorm:"many2many:user_roles;"`
	Permissions []Permission `gorm:"many2many:user_permissions;"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

// Role Model
type Role struct {
	gorm.Model
	Name        string
	Description string
	Permissions []Permission `gorm:"many2many:role_permissions;"`
}

// Permission Model
type Permission struct {
	gorm.Model
	Name        string
	Description string
}

type UserSession struct {
	gorm.Model
	UserID         uint64    `json:"user_id"`
	SessionID      string    `json:"session_id" gorm:"index"`
	DeviceID       string    `json:"device_id"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	IsActive       bool      `json:"is_active"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type LoginLog struct {
	ID            uint   `gorm:"primaryKey"`
	SessionID     string `gorm:"index"`
	UserID        *uint64
	Username      string
	LoginAt       *time.Time
	LogoutAt      *time.Time
	IPAddress     string
	UserAgent     string
	LoginStatus   string // SUCCESS / FAILED
	FailureReason *string
	CreatedAt     time.Time
}
