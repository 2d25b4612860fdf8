// Package server wires stores, services, and handlers into one http.Handler.
package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/schooldesk/ordering/internal/auth"
	"github.com/schooldesk/ordering/internal/handlers"
	"github.com/schooldesk/ordering/internal/httpx"
	"github.com/schooldesk/ordering/internal/mail"
	"github.com/schooldesk/ordering/internal/pdf"
	"github.com/schooldesk/ordering/internal/services"
	"github.com/schooldesk/ordering/internal/store"
)

// Deps carries everything the router needs. main wires production values;
// tests substitute fixed clocks, memory sessions, and memory outboxes.
type Deps struct {
	DB        *gorm.DB
	Log       *zap.Logger
	Sessions  auth.SessionStore
	Outbox    mail.Outbox
	Clock     services.Clock
	Rates     services.RateProvider
	OrgDomain string
}

// New constructs the root http.Handler with all routes and middleware.
func New(d Deps) http.Handler {
	mux := http.NewServeMux()

	// Session middleware resolves tokens through the configured store.
	auth.SetSessionLookup(d.Sessions.Lookup)

	employees := store.NewEmployees(d.DB)
	schools := store.NewSchools(d.DB)
	products := store.NewProducts(d.DB)
	carts := store.NewCarts(d.DB)
	invoices := store.NewInvoices(d.DB)

	accounts := services.NewAccountService(employees, schools, d.OrgDomain)
	cartSvc := services.NewCartService(products, carts)
	quotes := services.NewQuoteService(employees, schools, carts, d.Clock, d.Rates)
	renderer := pdf.Renderer{}
	submissions := services.NewSubmissionService(employees, quotes, carts, invoices, d.Outbox, renderer, d.Log)

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		// Lightweight DB check; details stay out of the body.
		if err := d.DB.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	ah := handlers.NewAuthHandler(accounts, d.Sessions)
	mux.Handle("/signup", post(ah.Signup))
	mux.Handle("/login", post(ah.Login))
	mux.Handle("/logout", protect(post(ah.Logout)))
	mux.Handle("/account/password", protect(post(ah.Password)))

	ch := handlers.NewCatalogHandler(products)
	mux.Handle("/catalog", get(ch.List))

	cartHandler := handlers.NewCartHandler(cartSvc)
	mux.Handle("/cart", protect(get(cartHandler.List)))
	mux.Handle("/cart/add", protect(post(cartHandler.Add)))
	mux.Handle("/cart/clear", protect(post(cartHandler.Clear)))

	qh := handlers.NewQuoteHandler(quotes, submissions)
	mux.Handle("/quote", protect(get(qh.Show)))
	mux.Handle("/quote/submit", protect(post(qh.Submit)))

	ih := handlers.NewInvoiceHandler(invoices, renderer)
	mux.Handle("/invoices", protect(get(ih.List)))
	mux.Handle("/invoices/pdf", protect(get(ih.PDF)))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"service": "school ordering api"})
	})

	return withRecover(withLogging(d.Log, mux))
}

func get(h http.HandlerFunc) http.Handler  { return method(http.MethodGet, h) }
func post(h http.HandlerFunc) http.Handler { return method(http.MethodPost, h) }

func method(want string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != want {
			w.Header().Set("Allow", want)
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		h(w, r)
	})
}

func protect(next http.Handler) http.Handler {
	return auth.Middleware(auth.RequireAuth(next))
}

func withLogging(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Duration("took", time.Since(start)))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
