package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/schooldesk/ordering/internal/auth"
	"github.com/schooldesk/ordering/internal/httpx"
	"github.com/schooldesk/ordering/internal/services"
)

type InvoiceHandler struct {
	Invoices services.InvoiceStore
	Renderer services.Renderer
}

func NewInvoiceHandler(invoices services.InvoiceStore, renderer services.Renderer) *InvoiceHandler {
	return &InvoiceHandler{Invoices: invoices, Renderer: renderer}
}

// List returns the signed-in employee's invoices, newest first.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := auth.EmployeeIDFromContext(r.Context())
	invoices, err := h.Invoices.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	type row struct {
		ID      uint   `json:"id"`
		Number  string `json:"number"`
		Date    string `json:"date"`
		Total   string `json:"total"`
		Emailed bool   `json:"emailed"`
	}
	items := make([]row, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, row{
			ID:      inv.ID,
			Number:  inv.Number,
			Date:    inv.CreatedAt.Format("01/02/06"),
			Total:   inv.Total.StringFixed(2),
			Emailed: inv.EmailedAt != nil,
		})
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

// PDF streams the rendered invoice as a download. Invoices belong to their
// employee; anyone else's id comes back 404.
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := auth.EmployeeIDFromContext(r.Context())

	id, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	inv, err := h.Invoices.ByID(r.Context(), employeeID, uint(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	doc, err := h.Renderer.InvoicePDF(services.InvoicePDFData(inv, inv.CreatedAt))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "render_failed", nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "invoice-"+inv.Number+".pdf"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		_ = err
	}
}
