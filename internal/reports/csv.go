package reports

import (
	"bytes"
	"encoding/csv"
)

// EventsCSV renders the event report: one row per event with comma-joined
// skill names and comma-joined volunteer full names.
func EventsCSV(rows []EventRow) ([]byte, error) {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, eventHeader)
	for _, r := range rows {
		records = append(records, r.record())
	}
	return writeCSV(records)
}

// VolunteerHistoryCSV renders one row per history record.
func VolunteerHistoryCSV(rows []VolunteerRow) ([]byte, error) {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, volunteerHeader)
	for _, r := range rows {
		records = append(records, r.record())
	}
	return writeCSV(records)
}

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
