package handlers

import (
	"net/http"

	"github.com/schooldesk/ordering/internal/httpx"
	"github.com/schooldesk/ordering/internal/services"
)

type CatalogHandler struct {
	Products services.Catalog
}

func NewCatalogHandler(products services.Catalog) *CatalogHandler {
	return &CatalogHandler{Products: products}
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	type row struct {
		Description string `json:"description"`
		UnitPrice   string `json:"unit_price"`
	}
	items := make([]row, 0, len(products))
	for _, p := range products {
		items = append(items, row{Description: p.Description, UnitPrice: p.UnitPrice.StringFixed(2)})
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items})
}
