package order

import (
	"bytes"
	"fmt"

	"dapuribu-be/internal/currency"
	"dapuribu-be/internal/whatsapp"

	"github.com/phpdave11/gofpdf"
)

// RenderInvoice builds an A4 PDF of one order for the admin archive.
func RenderInvoice(o Order, items []OrderItem) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Dapur Ibu - Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order #%d", o.ID))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Order date: %s", whatsapp.FormatDate(o.OrderDate)))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Event date: %s", whatsapp.FormatDate(o.EventDate)))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Customer: %s (%s)", o.CustomerName, o.CustomerPhone))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Address: %s", o.CustomerAddress))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s / %s", o.Status, o.PaymentStatus))
	pdf.Ln(10)

	// Item table.
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Unit price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, it := range items {
		pdf.CellFormat(90, 8, it.MenuName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, currency.FormatIDR(it.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, currency.FormatIDR(it.Subtotal), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, currency.FormatIDR(o.TotalAmount), "1", 1, "R", false, 0, "")

	if o.Notes != nil && *o.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, "Notes: "+*o.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
