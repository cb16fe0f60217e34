package booking

import (
	"pooja-booking/models/user"
	"time"
)

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// Booking represents one requested pooja session.
// Date and Time are stored verbatim as supplied by the HTML date/time
// inputs; no cross-field validation is applied to them.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	PoojaType    string `gorm:"type:varchar(255);not null" json:"pooja_type"`
	Date         string `gorm:"type:varchar(50);not null" json:"date"`
	Time         string `gorm:"type:varchar(50);not null" json:"time"`
	Requirements string `gorm:"type:text" json:"requirements"`

	Status          BookingStatus `gorm:"type:varchar(50);not null" json:"status"`
	RejectionReason *string       `gorm:"type:text" json:"rejection_reason,omitempty"`
	MeetingLink     *string       `gorm:"type:varchar(2048)" json:"meeting_link,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
