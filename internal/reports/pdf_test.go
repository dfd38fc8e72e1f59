package reports

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventsPDF(t *testing.T) {
	rows := []EventRow{
		{Name: "Beach Cleanup", Urgency: "High", Date: "2026-04-18", Status: "Pending"},
	}

	out, err := EventsPDF(rows)
	require.NoError(t, err)
	require.True(t, len(out) > 0)
	require.Equal(t, "%PDF", string(out[:4]))
}

func TestVolunteerHistoryPDF_Paginates(t *testing.T) {
	small, err := VolunteerHistoryPDF([]VolunteerRow{
		{FullName: "Jane Doe", EventName: "Beach Cleanup", Status: "Pending", EventDate: "2026-04-18"},
	})
	require.NoError(t, err)

	// enough rows to force a second page past the bottom margin
	rows := make([]VolunteerRow, 100)
	for i := range rows {
		rows[i] = VolunteerRow{FullName: "Jane Doe", EventName: "Beach Cleanup", Status: "Pending", EventDate: "2026-04-18"}
	}
	large, err := VolunteerHistoryPDF(rows)
	require.NoError(t, err)

	require.Equal(t, "%PDF", string(large[:4]))
	require.Greater(t, len(large), len(small))
}
