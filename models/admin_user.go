package models

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

type AdminUser struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"type:varchar(100);unique;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	// RestaurantID membatasi scope admin ke satu restoran.
	// nil berarti superadmin (semua restoran).
	RestaurantID *uint     `gorm:"index" json:"restaurant_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
