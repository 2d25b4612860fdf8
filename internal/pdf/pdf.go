// Package pdf renders submitted invoices to PDF bytes for email attachment
// and download. Amounts arrive preformatted; no arithmetic happens here.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

type LineItem struct {
	Description string
	Quantity    int
	UnitPrice   string
	LineTotal   string
}

type InvoiceData struct {
	Number         string
	Date           string
	SchoolName     string
	SchoolCode     string
	DeliveryWindow string
	Items          []LineItem
	Subtotal       string
	Tax            string
	Shipping       string
	Total          string
}

// InvoicePDF renders an A4 portrait invoice.
func InvoicePDF(data InvoiceData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Invoice "+data.Number)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 6, "Date: "+data.Date)
	pdf.Ln(6)
	pdf.Cell(40, 6, fmt.Sprintf("School: %s (%s)", data.SchoolName, data.SchoolCode))
	pdf.Ln(6)
	pdf.Cell(40, 6, "Delivery window: "+data.DeliveryWindow)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 7, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Unit Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Total", "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, it := range data.Items {
		pdf.CellFormat(90, 7, it.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, it.UnitPrice, "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, it.LineTotal, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	totals := [][2]string{
		{"Subtotal", data.Subtotal},
		{"Tax", data.Tax},
		{"Shipping", data.Shipping},
		{"Total", data.Total},
	}
	for i, row := range totals {
		if i == len(totals)-1 {
			pdf.SetFont("Arial", "B", 11)
		}
		pdf.CellFormat(145, 6, row[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, row[1], "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Renderer adapts InvoicePDF to the submission workflow's rendering port.
type Renderer struct{}

func (Renderer) InvoicePDF(data InvoiceData) ([]byte, error) { return InvoicePDF(data) }
