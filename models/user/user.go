package user

import (
	"time"
)

// User holds the login identity together with the registration profile.
// Profile fields (full name, email, city, country) are written once at
// registration and never updated afterwards.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid         string `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	FullName     string `gorm:"type:varchar(255);not null" json:"full_name"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	City         string `gorm:"type:varchar(255)" json:"city"`
	Country      string `gorm:"type:varchar(255)" json:"country"`
	Role         string `gorm:"type:varchar(50);not null;default:customer" json:"role"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
