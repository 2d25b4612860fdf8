package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/schooldesk/ordering/internal/auth"
	"github.com/schooldesk/ordering/internal/httpx"
	"github.com/schooldesk/ordering/internal/services"
)

type AuthHandler struct {
	Accounts *services.AccountService
	Sessions auth.SessionStore
}

func NewAuthHandler(accounts *services.AccountService, sessions auth.SessionStore) *AuthHandler {
	return &AuthHandler{Accounts: accounts, Sessions: sessions}
}

// Signup creates an employee account and signs it in right away.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var in services.SignupInput
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
		in = services.SignupInput{
			Email:          r.Form.Get("email"),
			Password:       r.Form.Get("password"),
			FirstName:      r.Form.Get("first_name"),
			LastName:       r.Form.Get("last_name"),
			Title:          r.Form.Get("title"),
			School:         r.Form.Get("school"),
			Phone:          r.Form.Get("phone"),
			DeliveryWindow: r.Form.Get("delivery_window"),
		}
	}

	emp, err := h.Accounts.SignUp(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := h.startSession(w, r, emp.ID); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "session_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"id": emp.ID, "email": emp.Email})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
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
		in.Email = r.Form.Get("email")
		in.Password = r.Form.Get("password")
	}

	emp, err := h.Accounts.SignIn(r.Context(), in.Email, in.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := h.startSession(w, r, emp.ID); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "session_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"id":         emp.ID,
		"email":      emp.Email,
		"first_name": emp.FirstName,
		"last_name":  emp.LastName,
	})
}

// Logout ends the server-side session; the cookie is cleared either way.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := auth.ParseSession(r); ok {
		if err := h.Sessions.End(r.Context(), token); err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "logout_failed", nil)
			return
		}
	}
	auth.ClearSession(w)
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, employeeID uint) error {
	token := auth.NewToken()
	if err := h.Sessions.Start(r.Context(), token, employeeID, auth.SessionTTL); err != nil {
		return err
	}
	auth.CreateSession(w, token)
	return nil
}
