package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/schooldesk/ordering/internal/auth"
	"github.com/schooldesk/ordering/internal/httpx"
	"github.com/schooldesk/ordering/internal/models"
	"github.com/schooldesk/ordering/internal/money"
	"github.com/schooldesk/ordering/internal/services"
)

type CartHandler struct {
	Carts *services.CartService
}

func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{Carts: carts}
}

type cartLine struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

func cartPayload(items []models.CartItem) map[string]any {
	lines := make([]cartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, cartLine{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			LineTotal:   money.Line(it.UnitPrice, it.Quantity).StringFixed(2),
		})
	}
	return map[string]any{"items": lines}
}

func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := auth.EmployeeIDFromContext(r.Context())
	items, err := h.Carts.Items(r.Context(), employeeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, cartPayload(items))
}

// Add puts {description, quantity} into the cart and echoes the cart back.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := auth.EmployeeIDFromContext(r.Context())

	var in struct {
		Description string `json:"description"`
		Quantity    int    `json:"quantity"`
	}
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
			return
		}
		in.Description = r.Form.Get("description")
		if v := r.Form.Get("quantity"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				httpx.JSONError(w, http.StatusBadRequest, "invalid_quantity", nil)
				return
			}
			in.Quantity = n
		}
	}

	if err := h.Carts.AddItem(r.Context(), employeeID, strings.TrimSpace(in.Description), in.Quantity); err != nil {
		writeServiceError(w, err)
		return
	}
	items, err := h.Carts.Items(r.Context(), employeeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, cartPayload(items))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := auth.EmployeeIDFromContext(r.Context())
	if err := h.Carts.Clear(r.Context(), employeeID); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, cartPayload(nil))
}
