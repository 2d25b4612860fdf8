package handlers

import (
	"errors"
	"net/http"

	"github.com/schooldesk/ordering/internal/auth"
	"github.com/schooldesk/ordering/internal/httpx"
	"github.com/schooldesk/ordering/internal/services"
)

type QuoteHandler struct {
	Quotes      *services.QuoteService
	Submissions *services.SubmissionService
}

func NewQuoteHandler(quotes *services.QuoteService, submissions *services.SubmissionService) *QuoteHandler {
	return &QuoteHandler{Quotes: quotes, Submissions: submissions}
}

// Show recomputes the quote from the live cart. Nothing is stored.
func (h *QuoteHandler) Show(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := auth.EmployeeIDFromContext(r.Context())
	quote, err := h.Quotes.Build(r.Context(), employeeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	type line struct {
		Description string `json:"description"`
		Quantity    int    `json:"quantity"`
		UnitPrice   string `json:"unit_price"`
		LineTotal   string `json:"line_total"`
	}
	lines := make([]line, 0, len(quote.Lines))
	for _, l := range quote.Lines {
		lines = append(lines, line{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice.StringFixed(2),
			LineTotal:   l.LineTotal.StringFixed(2),
		})
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"number":          quote.Number,
		"date":            quote.Date.Format("01/02/06"),
		"school_name":     quote.SchoolName,
		"school_code":     quote.SchoolCode,
		"delivery_window": quote.DeliveryWindow,
		"lines":           lines,
		"subtotal":        quote.Subtotal.StringFixed(2),
		"tax":             quote.Tax.StringFixed(2),
		"shipping":        quote.Shipping.StringFixed(2),
		"total":           quote.Total.StringFixed(2),
	})
}

// Submit turns the cart into an invoice. When the invoice is stored but the
// confirmation email fails, the response names the invoice so the client can
// retry the submission without fear of a duplicate.
func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := auth.EmployeeIDFromContext(r.Context())
	inv, err := h.Submissions.Submit(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, services.ErrDispatch) && inv != nil {
			httpx.JSONError(w, http.StatusBadGateway, "dispatch_failed", map[string]string{
				"number": inv.Number,
			})
			return
		}
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"invoice_id": inv.ID,
		"number":     inv.Number,
		"total":      inv.Total.StringFixed(2),
		"message":    "Quote " + inv.Number + " submitted. A confirmation email is on its way.",
	})
}
