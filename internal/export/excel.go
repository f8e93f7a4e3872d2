// Package export renders admin spreadsheets. Files are streamed, never
// written to disk; the handler sets the attachment headers.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/errs"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
)

const bookingsSheet = "Bookings"

// WriteBookingsXLSX writes the bookings workbook to w, one row per booking
// with the joined listing context an operator needs when reconciling
// payments by hand.
func WriteBookingsXLSX(w io.Writer, bookings []*queries.BookingView) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(bookingsSheet)
	if err != nil {
		return errs.Wrap(err, "failed to create bookings sheet")
	}
	f.SetActiveSheet(index)

	headers := []string{
		"Booking ID", "Listing", "Category", "Guests", "Check-in", "Check-out",
		"Total (KES)", "Payment Status", "Payment Plan", "Payment Ref", "Created",
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return errs.Wrap(err, "failed to create header style")
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(bookingsSheet, cell, header)
		f.SetCellStyle(bookingsSheet, cell, cell, headerStyle)
	}

	for i, b := range bookings {
		row := i + 2
		checkOut := ""
		if b.CheckOutDate != nil {
			checkOut = b.CheckOutDate.Format("2006-01-02")
		}
		paymentRef := ""
		if b.PaymentRef != nil {
			paymentRef = *b.PaymentRef
		}

		f.SetCellValue(bookingsSheet, fmt.Sprintf("A%d", row), b.ID.String())
		f.SetCellValue(bookingsSheet, fmt.Sprintf("B%d", row), b.ListingTitle)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("C%d", row), b.ListingCategory)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("D%d", row), b.Guests)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("E%d", row), b.CheckInDate.Format("2006-01-02"))
		f.SetCellValue(bookingsSheet, fmt.Sprintf("F%d", row), checkOut)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("G%d", row), float64(b.TotalCents)/100)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("H%d", row), b.PaymentStatus)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("I%d", row), b.PaymentPlan)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("J%d", row), paymentRef)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("K%d", row), b.CreatedAt.Format("2006-01-02 15:04"))
	}

	f.SetColWidth(bookingsSheet, "A", "A", 38)
	f.SetColWidth(bookingsSheet, "B", "B", 32)
	f.SetColWidth(bookingsSheet, "C", "K", 16)

	f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return errs.Wrap(err, "failed to write bookings workbook")
	}
	return nil
}
