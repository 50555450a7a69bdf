// Package ticketdoc renders a pending ticket as a downloadable single-page
// PDF with an embedded check-in QR code.
package ticketdoc

import (
	"bytes"
	"fmt"
	"strconv"

	"festgate/internal/tickets"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// Outcome tags what the generator managed to produce. A ticket without a
// scannable code still beats no ticket, so a QR failure degrades instead of
// aborting, but callers get to know it happened.
type Outcome string

const (
	OutcomeComplete       Outcome = "COMPLETE"
	OutcomeMissingBarcode Outcome = "MISSING_BARCODE"
)

// Document is the generated ticket artifact.
type Document struct {
	Outcome  Outcome
	PDF      []byte
	Filename string
}

// HasBarcode reports whether the check-in QR made it into the document.
func (d *Document) HasBarcode() bool {
	return d.Outcome == OutcomeComplete
}

const (
	pageMargin = 36.0 // pt
	qrSide     = 160.0
	qrPixels   = 320 // rendered at 2x for print sharpness
)

// Generate composes the ticket PDF for a confirmed pending ticket.
func Generate(ticket *tickets.PendingTicket) (*Document, error) {
	outcome := OutcomeComplete

	qrPNG, err := qrcode.Encode(ticket.CheckinPayload(), qrcode.Medium, qrPixels)
	if err != nil {
		qrPNG = nil
		outcome = OutcomeMissingBarcode
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin

	// Header: event name and date
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(contentW, 26, ticket.EventName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(85, 85, 85)
	pdf.CellFormat(contentW, 16, ticket.EventDate, "", 1, "L", false, 0, "")

	// Separator
	pdf.Ln(10)
	pdf.SetDrawColor(238, 238, 238)
	y := pdf.GetY()
	pdf.Line(pageMargin, y, pageW-pageMargin, y)
	pdf.Ln(14)

	pdf.SetTextColor(0, 0, 0)

	txnTail := ticket.TxnTail
	if txnTail == "" {
		txnTail = "N/A"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Team Name", ticket.TeamName},
		{"Team Size", strconv.Itoa(ticket.TeamSize)},
		{"Lead Name", ticket.Lead.Name},
		{"College", ticket.Lead.College},
		{"Contact", ticket.Lead.Contact},
		{"Email", ticket.Lead.Email},
		{"Ticket ID", ticket.TicketID},
		{"Txn last digits", txnTail},
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(110, 18, row.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(contentW-110, 18, row.value, "", 1, "L", false, 0, "")
	}

	// Check-in QR, centered, with caption
	if qrPNG != nil {
		pdf.Ln(16)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("checkin-qr", opts, bytes.NewReader(qrPNG))
		x := (pageW - qrSide) / 2
		pdf.ImageOptions("checkin-qr", x, pdf.GetY(), qrSide, qrSide, false, opts, 0, "")
		pdf.SetY(pdf.GetY() + qrSide + 8)

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(119, 119, 119)
		pdf.CellFormat(contentW, 12, "Show this QR at entry", "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("assemble ticket pdf: %w", err)
	}

	return &Document{
		Outcome:  outcome,
		PDF:      buf.Bytes(),
		Filename: "ticket_" + ticket.TicketID + ".pdf",
	}, nil
}
