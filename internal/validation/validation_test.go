package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/volunteercentral/volunteer-backend/internal/dto"
)

func validProfileRequest() dto.ProfileRequest {
	return dto.ProfileRequest{
		FullName: "Jane Doe",
		Address1: "123 Main St",
		City:     "Houston",
		State:    "TX",
		ZipCode:  "77001",
	}
}

func TestProfileRequest_StateCode(t *testing.T) {
	req := validProfileRequest()
	require.NoError(t, Struct(req))

	req.State = "ZZ"
	require.Error(t, Struct(req))

	req.State = "tx" // codes are uppercase only
	require.Error(t, Struct(req))
}

func TestProfileRequest_ZipLength(t *testing.T) {
	req := validProfileRequest()

	req.ZipCode = "1234"
	require.Error(t, Struct(req))

	req.ZipCode = "770011234"
	require.NoError(t, Struct(req))
}

func TestRegisterRequest(t *testing.T) {
	require.NoError(t, Struct(dto.RegisterRequest{Email: "jane@example.com", Password: "sunny-day-42"}))
	require.Error(t, Struct(dto.RegisterRequest{Email: "not-an-email", Password: "sunny-day-42"}))
	require.Error(t, Struct(dto.RegisterRequest{Email: "jane@example.com", Password: "short"}))
}

func TestAvailabilityRequest_DateFormat(t *testing.T) {
	require.NoError(t, Struct(dto.AvailabilityRequest{Dates: []string{"2026-04-18"}}))
	require.Error(t, Struct(dto.AvailabilityRequest{Dates: []string{"04/18/2026"}}))
	require.Error(t, Struct(dto.AvailabilityRequest{Dates: []string{}}))
}

func TestEventRequest(t *testing.T) {
	req := dto.EventRequest{
		Name:        "Beach Cleanup",
		Description: "Pick up litter",
		Location:    "Galveston, TX",
		Urgency:     "High",
		Date:        "2026-04-18",
		Status:      "Pending",
	}
	require.NoError(t, Struct(req))

	req.Urgency = "Urgent"
	require.Error(t, Struct(req))

	req.Urgency = "High"
	req.Date = "06/01/2026"
	require.Error(t, Struct(req))
}
