package reports

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventsCSV(t *testing.T) {
	rows := []EventRow{
		{
			Name:        "Beach Cleanup",
			Description: "Pick up litter",
			Location:    "Galveston, TX",
			Urgency:     "High",
			Date:        "2026-04-18",
			Status:      "Pending",
			Skills:      []string{"First Aid", "Driving"},
			Volunteers:  []string{"Jane Doe", "John Roe"},
		},
	}

	out, err := EventsCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, eventHeader, records[0])
	require.Equal(t, "Beach Cleanup", records[1][0])
	require.Equal(t, "First Aid, Driving", records[1][6])
	require.Equal(t, "Jane Doe, John Roe", records[1][7])

	// multi-value cells contain commas, so they come back quoted on the wire
	require.Contains(t, string(out), `"First Aid, Driving"`)
}

func TestEventsCSV_Empty(t *testing.T) {
	out, err := EventsCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, eventHeader, records[0])
}

func TestVolunteerHistoryCSV(t *testing.T) {
	rows := []VolunteerRow{
		{FullName: "Jane Doe", EventName: "Beach Cleanup", Status: "Confirmed", EventDate: "2026-04-18"},
		{FullName: "John Roe", EventName: "Food Drive", Status: "No Show", EventDate: "2026-05-02"},
	}

	out, err := VolunteerHistoryCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, volunteerHeader, records[0])
	require.Equal(t, []string{"Jane Doe", "Beach Cleanup", "Confirmed", "2026-04-18"}, records[1])
	require.Equal(t, []string{"John Roe", "Food Drive", "No Show", "2026-05-02"}, records[2])
}
