package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/adeyemi-o/hotel-management/internal/service"
)

// WriteReportCSV streams a custom report as CSV sections: summary, daily
// trend, then the room-type and source breakdowns.
func WriteReportCSV(w io.Writer, report *service.CustomReport) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"from", "to", "revenue"},
		{
			report.From.Format("2006-01-02"),
			report.To.AddDate(0, 0, -1).Format("2006-01-02"),
			fmt.Sprintf("%.2f", report.Revenue),
		},
		{},
		{"day", "bookings"},
	}
	for _, d := range report.BookingsTrend {
		rows = append(rows, []string{d.Day.Format("2006-01-02"), strconv.FormatInt(d.Count, 10)})
	}

	rows = append(rows, []string{}, []string{"room_type", "bookings", "revenue"})
	for _, g := range report.RoomTypes {
		rows = append(rows, []string{g.Key, strconv.FormatInt(g.Count, 10), fmt.Sprintf("%.2f", g.Revenue)})
	}

	rows = append(rows, []string{}, []string{"source", "bookings", "revenue"})
	for _, g := range report.Sources {
		rows = append(rows, []string{g.Key, strconv.FormatInt(g.Count, 10), fmt.Sprintf("%.2f", g.Revenue)})
	}

	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ReportPDF renders the same report as a printable summary.
func ReportPDF(report *service.CustomReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "BOOKINGS REPORT")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		report.From.Format("02 Jan 2006"),
		report.To.AddDate(0, 0, -1).Format("02 Jan 2006")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Revenue (paid bookings): %.2f", report.Revenue))
	pdf.Ln(12)

	sectionTitle(pdf, "BOOKINGS BY STATUS")
	for _, sc := range report.StatusCounts {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", sc.Status, sc.Count))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	sectionTitle(pdf, "ROOM TYPES")
	for _, g := range report.RoomTypes {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d bookings, %.2f revenue", g.Key, g.Count, g.Revenue))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	sectionTitle(pdf, "BOOKING SOURCES")
	for _, g := range report.Sources {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d bookings, %.2f revenue", g.Key, g.Count, g.Revenue))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	sectionTitle(pdf, "DAILY TREND")
	for _, d := range report.BookingsTrend {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", d.Day.Format("2006-01-02"), d.Count))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 9, title, "", 1, "L", true, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)
}
