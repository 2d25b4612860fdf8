package pdf

import (
	"bytes"
	"testing"
)

func TestInvoicePDF(t *testing.T) {
	data := InvoiceData{
		Number:         "28Q082x122225",
		Date:           "12/22/25",
		SchoolName:     "P.S. 082 - The Hammond School",
		SchoolCode:     "28Q082",
		DeliveryWindow: "School Hours",
		Items: []LineItem{
			{Description: "Poland Spring Water (48 ct/8 oz)", Quantity: 8, UnitPrice: "$20.00", LineTotal: "$160.00"},
		},
		Subtotal: "$160.00",
		Tax:      "$14.20",
		Shipping: "$1.60",
		Total:    "$175.80",
	}
	out, err := InvoicePDF(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:min(8, len(out))])
	}
	if len(out) < 500 {
		t.Fatalf("suspiciously small PDF: %d bytes", len(out))
	}
}

func TestInvoicePDFEmptyItems(t *testing.T) {
	out, err := InvoicePDF(InvoiceData{Number: "28Q082x122225", Date: "12/22/25"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}
