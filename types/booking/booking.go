package booking

import (
	"fmt"
	"strings"

	"pooja-booking/constants"
)

// BookingCreateRequest represents the request payload for booking a pooja.
// Date and Time come from HTML date/time inputs and are kept verbatim.
type BookingCreateRequest struct {
	PoojaType    string `json:"pooja_type" validate:"required,min=1,max=255"`
	Date         string `json:"date" validate:"required,min=1,max=50"`
	Time         string `json:"time" validate:"required,min=1,max=50"`
	Requirements string `json:"requirements" validate:"omitempty"`
}

// RejectRequest carries the mandatory rejection reason
type RejectRequest struct {
	Reason string `json:"reason"`
}

// MeetingLinkRequest carries the meeting URL attached after approval.
// No URL format check, the link is stored verbatim.
type MeetingLinkRequest struct {
	MeetingLink string `json:"meeting_link"`
}

func (b BookingCreateRequest) Validate() error {
	if b.PoojaType == "" {
		return fmt.Errorf("pooja type is required")
	}
	if !constants.IsValidPoojaType(b.PoojaType) {
		return fmt.Errorf("unknown pooja type: %s", b.PoojaType)
	}
	if b.Date == "" {
		return fmt.Errorf("date is required")
	}
	if b.Time == "" {
		return fmt.Errorf("time is required")
	}
	return nil
}

func (r RejectRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return fmt.Errorf("rejection reason is required")
	}
	return nil
}

func (r MeetingLinkRequest) Validate() error {
	if strings.TrimSpace(r.MeetingLink) == "" {
		return fmt.Errorf("meeting link is required")
	}
	return nil
}
