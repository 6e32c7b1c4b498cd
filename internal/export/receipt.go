package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/adeyemi-o/hotel-management/internal/service"
)

// BookingReceiptPDF renders a one-page booking receipt with a QR code of the
// booking number for front-desk verification.
func BookingReceiptPDF(ev service.BookingEvent) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "BOOKING RECEIPT")
	pdf.Ln(18)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 55, "F")

	pdf.SetXY(20, yStart+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "RESERVATION")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Booking No: %s", ev.BookingNumber))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Guest: %s", ev.CustomerName))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Room: %s (%s)", ev.RoomNumber, ev.RoomType))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Check-in: %s", ev.CheckInDate.Format("02 Jan 2006")))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Check-out: %s", ev.CheckOutDate.Format("02 Jan 2006")))

	qrBytes, err := qrcode.Encode(ev.BookingNumber, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions("qr", 145, yStart+5, 45, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(yStart + 63)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Present this QR code at the front desk on arrival.")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 9, fmt.Sprintf("Total: %.2f", ev.TotalAmount))

	pdf.Line(15, 285, 195, 285)
	pdf.SetY(288)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 8, "Thank you for staying with us.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
