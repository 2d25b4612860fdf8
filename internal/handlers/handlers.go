// Package handlers exposes the ordering workflow over JSON HTTP. Each
// handler decodes the request, calls one service, and maps its errors onto
// stable JSON codes; no business rules live here.
package handlers

import (
	"errors"
	"net/http"

	"github.com/schooldesk/ordering/internal/httpx"
	"github.com/schooldesk/ordering/internal/services"
)

func writeServiceError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", verr.Violations)
	case errors.Is(err, services.ErrEmailTaken):
		httpx.JSONError(w, http.StatusConflict, "email_taken", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
	case errors.Is(err, services.ErrUnknownProduct):
		httpx.JSONError(w, http.StatusBadRequest, "unknown_product", nil)
	case errors.Is(err, services.ErrInvalidQuantity):
		httpx.JSONError(w, http.StatusBadRequest, "invalid_quantity", nil)
	case errors.Is(err, services.ErrEmptyCart):
		httpx.JSONError(w, http.StatusBadRequest, "empty_cart", nil)
	case errors.Is(err, services.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	case errors.Is(err, services.ErrDispatch):
		httpx.JSONError(w, http.StatusBadGateway, "dispatch_failed", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
