package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/schooldesk/ordering/internal/auth"
	"github.com/schooldesk/ordering/internal/httpx"
)

// Password handles POST /account/password for the signed-in employee.
func (h *AuthHandler) Password(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := auth.EmployeeIDFromContext(r.Context())

	var in struct {
		Current string `json:"current"`
		New     string `json:"new"`
		Confirm string `json:"confirm"`
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
		in.Current = r.Form.Get("current")
		in.New = r.Form.Get("new")
		in.Confirm = r.Form.Get("confirm")
	}

	if err := h.Accounts.ChangePassword(r.Context(), employeeID, in.Current, in.New, in.Confirm); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "password_changed"})
}
