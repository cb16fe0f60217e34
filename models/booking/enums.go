package booking

// Helper methods for BookingStatus
func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected:
		return true
	default:
		return false
	}
}

// IsDecided returns true once an admin has approved or rejected the booking
func (bs BookingStatus) IsDecided() bool {
	return bs == BookingStatusApproved || bs == BookingStatusRejected
}

// CanBeDecided returns true if the booking still accepts an approve/reject action
func (bs BookingStatus) CanBeDecided() bool {
	return bs == BookingStatusPending
}

// CanAttachMeetingLink returns true if a meeting link may be set
func (bs BookingStatus) CanAttachMeetingLink() bool {
	return bs == BookingStatusApproved
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusApproved,
		BookingStatusRejected,
	}
}
