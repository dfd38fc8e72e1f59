package reports

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// bottomMargin is the y position (mm, A4 portrait) past which a new page
// starts and the cursor resets below the repeated header.
const bottomMargin = 270.0

// EventsPDF renders the event report as a paginated PDF.
func EventsPDF(rows []EventRow) ([]byte, error) {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = r.record()
	}
	return renderPDF("Event Report", eventHeader, records)
}

// VolunteerHistoryPDF renders the volunteer history report as a paginated PDF.
func VolunteerHistoryPDF(rows []VolunteerRow) ([]byte, error) {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = r.record()
	}
	return renderPDF("Volunteer History Report", volunteerHeader, records)
}

func renderPDF(title string, header []string, records [][]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	writeHeader(pdf, header)

	pdf.SetFont("Arial", "", 9)
	for _, record := range records {
		if pdf.GetY() > bottomMargin {
			pdf.AddPage()
			writeHeader(pdf, header)
			pdf.SetFont("Arial", "", 9)
		}
		pdf.CellFormat(0, 6, strings.Join(record, " | "), "", 1, "", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *gofpdf.Fpdf, header []string) {
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 7, strings.Join(header, " | "), "B", 1, "", false, 0, "")
}
