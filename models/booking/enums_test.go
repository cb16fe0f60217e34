package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusIsValid(t *testing.T) {
	assert.True(t, BookingStatusPending.IsValid())
	assert.True(t, BookingStatusApproved.IsValid())
	assert.True(t, BookingStatusRejected.IsValid())
	assert.False(t, BookingStatus("completed").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBookingStatusDecisionHelpers(t *testing.T) {
	assert.True(t, BookingStatusPending.CanBeDecided())
	assert.False(t, BookingStatusApproved.CanBeDecided())
	assert.False(t, BookingStatusRejected.CanBeDecided())

	assert.False(t, BookingStatusPending.IsDecided())
	assert.True(t, BookingStatusApproved.IsDecided())
	assert.True(t, BookingStatusRejected.IsDecided())
}

func TestBookingStatusCanAttachMeetingLink(t *testing.T) {
	assert.True(t, BookingStatusApproved.CanAttachMeetingLink())
	assert.False(t, BookingStatusPending.CanAttachMeetingLink())
	assert.False(t, BookingStatusRejected.CanAttachMeetingLink())
}

func TestGetAllBookingStatuses(t *testing.T) {
	statuses := GetAllBookingStatuses()
	assert.Len(t, statuses, 3)
	for _, s := range statuses {
		assert.True(t, s.IsValid())
	}
}
