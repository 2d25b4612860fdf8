package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/schooldesk/ordering/internal/mail"
	"github.com/schooldesk/ordering/internal/models"
	"github.com/schooldesk/ordering/internal/money"
	"github.com/schooldesk/ordering/internal/pdf"
)

// SubmissionService turns a non-empty cart into a persisted invoice, emails
// the employee a PDF confirmation, and clears the cart. The order matters:
// the invoice is saved before dispatch, and a failed dispatch keeps both the
// invoice and the cart so the employee can retry. Retrying the same quote
// reuses the stored invoice instead of writing a duplicate.
type SubmissionService struct {
	employees EmployeeStore
	quotes    *QuoteService
	carts     CartStore
	invoices  InvoiceStore
	outbox    mail.Outbox
	renderer  Renderer
	log       *zap.Logger
}

func NewSubmissionService(employees EmployeeStore, quotes *QuoteService, carts CartStore, invoices InvoiceStore, outbox mail.Outbox, renderer Renderer, log *zap.Logger) *SubmissionService {
	return &SubmissionService{
		employees: employees,
		quotes:    quotes,
		carts:     carts,
		invoices:  invoices,
		outbox:    outbox,
		renderer:  renderer,
		log:       log,
	}
}

func (s *SubmissionService) Submit(ctx context.Context, employeeID uint) (*models.Invoice, error) {
	emp, err := s.employees.ByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	quote, err := s.quotes.Build(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if len(quote.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	inv := invoiceFromQuote(employeeID, quote)
	created, err := s.invoices.FindOrCreate(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("persist invoice: %w", err)
	}
	if !created {
		s.log.Info("resubmitting stored invoice",
			zap.String("number", inv.Number),
			zap.Uint("employee_id", employeeID))
	}

	doc, err := s.renderer.InvoicePDF(InvoicePDFData(inv, quote.Date))
	if err != nil {
		s.log.Warn("invoice pdf render failed", zap.String("number", inv.Number), zap.Error(err))
		return inv, fmt.Errorf("%w: render pdf: %w", ErrDispatch, err)
	}
	msg := mail.Message{
		To:      emp.Email,
		Subject: "Invoice " + inv.Number,
		Body:    invoiceEmailBody(inv),
		Attachment: &mail.Attachment{
			Filename:    "invoice.pdf",
			ContentType: "application/pdf",
			Data:        doc,
		},
	}
	if err := s.outbox.Send(ctx, msg); err != nil {
		s.log.Warn("invoice email dispatch failed", zap.String("number", inv.Number), zap.Error(err))
		return inv, fmt.Errorf("%w: %w", ErrDispatch, err)
	}
	if err := s.invoices.MarkEmailed(ctx, inv.ID, time.Now()); err != nil {
		s.log.Warn("could not record dispatch time", zap.Uint("invoice_id", inv.ID), zap.Error(err))
	}
	if err := s.carts.Clear(ctx, employeeID); err != nil {
		return inv, fmt.Errorf("clear cart: %w", err)
	}
	return inv, nil
}

func invoiceFromQuote(employeeID uint, q *Quote) *models.Invoice {
	inv := &models.Invoice{
		Number:         q.Number,
		EmployeeID:     employeeID,
		SchoolName:     q.SchoolName,
		SchoolCode:     q.SchoolCode,
		DeliveryWindow: q.DeliveryWindow,
		Subtotal:       q.Subtotal,
		Tax:            q.Tax,
		Shipping:       q.Shipping,
		Total:          q.Total,
	}
	for _, line := range q.Lines {
		inv.Items = append(inv.Items, models.InvoiceItem{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
		})
	}
	return inv
}

// InvoicePDFData flattens a stored invoice into the renderer's input. The
// download endpoint reuses it with the invoice's creation date.
func InvoicePDFData(inv *models.Invoice, date time.Time) pdf.InvoiceData {
	data := pdf.InvoiceData{
		Number:         inv.Number,
		Date:           date.Format("01/02/06"),
		SchoolName:     inv.SchoolName,
		SchoolCode:     inv.SchoolCode,
		DeliveryWindow: inv.DeliveryWindow,
		Subtotal:       money.Format(inv.Subtotal),
		Tax:            money.Format(inv.Tax),
		Shipping:       money.Format(inv.Shipping),
		Total:          money.Format(inv.Total),
	}
	for _, it := range inv.Items {
		data.Items = append(data.Items, pdf.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   money.Format(it.UnitPrice),
			LineTotal:   money.Format(it.LineTotal),
		})
	}
	return data
}

func invoiceEmailBody(inv *models.Invoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quote %s\n\n", inv.Number)
	fmt.Fprintf(&b, "School: %s (%s)\n", inv.SchoolName, inv.SchoolCode)
	fmt.Fprintf(&b, "Delivery window: %s\n\n", inv.DeliveryWindow)
	for _, it := range inv.Items {
		fmt.Fprintf(&b, "%d x %s @ %s = %s\n",
			it.Quantity, it.Description, money.Format(it.UnitPrice), money.Format(it.LineTotal))
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\n", money.Format(inv.Subtotal))
	fmt.Fprintf(&b, "Tax: %s\n", money.Format(inv.Tax))
	fmt.Fprintf(&b, "Shipping: %s\n", money.Format(inv.Shipping))
	fmt.Fprintf(&b, "Total: %s\n", money.Format(inv.Total))
	return b.String()
}
