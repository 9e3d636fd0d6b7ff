package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"soultravel/currency"
)

// ConfirmationData carries everything the booking-confirmation document
// needs. PriceZAR is the package price in the base currency; CurrencyCode
// selects the display currency.
type ConfirmationData struct {
	BookingID    string
	TravelerName string
	Destination  string
	StartDate    string
	EndDate      string
	Adults       int
	Children     int
	Infants      int
	PackageTitle string
	PackageItems []string
	Duration     string
	PriceZAR     float64
	CurrencyCode string
}

// ConfirmationPDF renders a booking confirmation and returns raw bytes
// (no filesystem needed).
func ConfirmationPDF(data ConfirmationData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(10, 20, 30)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Soul Travel", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(94, 234, 212)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Booking Confirmation", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(10, 20, 30)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Traveler Info ─────────────────────────────────────────
	sectionHeader("Traveler Information")
	name := data.TravelerName
	if name == "" {
		name = "Guest Traveler"
	}
	row("Name", name)
	row("Booking Reference", data.BookingID)
	row("Issued", time.Now().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	row("Destination", data.Destination)
	row("Start", fmtDateReadable(data.StartDate))
	row("End", fmtDateReadable(data.EndDate))
	party := fmt.Sprintf("%d adult(s)", data.Adults)
	if data.Children > 0 {
		party += fmt.Sprintf(", %d child(ren)", data.Children)
	}
	if data.Infants > 0 {
		party += fmt.Sprintf(", %d infant(s)", data.Infants)
	}
	row("Travelers", party)
	pdf.Ln(4)

	// ── Selected Package ──────────────────────────────────────
	sectionHeader("Selected Package")
	row("Package", data.PackageTitle)
	row("Duration", data.Duration)
	if len(data.PackageItems) > 0 {
		row("Includes", strings.Join(data.PackageItems, ", "))
	}
	pdf.Ln(4)

	// ── Cost Summary ──────────────────────────────────────────
	sectionHeader("Cost Summary")
	pdf.SetFillColor(94, 234, 212)
	pdf.SetTextColor(10, 20, 30)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, currency.FormatPrice(data.PriceZAR, data.CurrencyCode), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Soul Travel · Keep this reference for check-in · Prices shown in your selected currency",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
