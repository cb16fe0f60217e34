package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingCreateRequestValidate(t *testing.T) {
	valid := BookingCreateRequest{
		PoojaType: "Ganesh Pooja",
		Date:      "2025-03-01",
		Time:      "10:00",
	}
	assert.NoError(t, valid.Validate())

	missingType := valid
	missingType.PoojaType = ""
	assert.Error(t, missingType.Validate())

	unknownType := valid
	unknownType.PoojaType = "Unknown Ritual"
	assert.Error(t, unknownType.Validate())

	missingDate := valid
	missingDate.Date = ""
	assert.Error(t, missingDate.Validate())

	missingTime := valid
	missingTime.Time = ""
	assert.Error(t, missingTime.Validate())
}

func TestBookingCreateRequestValidateAllPoojaTypes(t *testing.T) {
	for _, name := range []string{
		"Satyanarayan Katha",
		"Griha Pravesh",
		"Ganesh Pooja",
		"Laxmi Pooja",
		"Navgraha Shanti",
		"Vastu Shanti",
	} {
		req := BookingCreateRequest{PoojaType: name, Date: "2025-01-01", Time: "09:00"}
		assert.NoError(t, req.Validate(), name)
	}
}

func TestRejectRequestValidate(t *testing.T) {
	assert.Error(t, RejectRequest{}.Validate())
	assert.Error(t, RejectRequest{Reason: "   "}.Validate())
	assert.NoError(t, RejectRequest{Reason: "priest unavailable"}.Validate())
}

func TestMeetingLinkRequestValidate(t *testing.T) {
	assert.Error(t, MeetingLinkRequest{}.Validate())
	assert.Error(t, MeetingLinkRequest{MeetingLink: " "}.Validate())
	assert.NoError(t, MeetingLinkRequest{MeetingLink: "https://meet.example/abc"}.Validate())
}
