// Package http is the thin transport layer in front of the services: route
// registration, request decoding and the error-to-status mapping.
package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Auth      *AuthHandler
	Books     *BookHandler
	Borrowers *BorrowerHandler
	Loans     *LoanHandler
	Reports   *ReportHandler
}

// NewRouter wires all routes. Mutating endpoints require a librarian token;
// report endpoints are read-only and left open.
func NewRouter(h Handlers, auth *Authenticator) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, RequestLogger)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)

	// Books
	r.HandleFunc("/books", h.Books.List).Methods(http.MethodGet)
	r.HandleFunc("/books", auth.Require(h.Books.Create)).Methods(http.MethodPost)
	r.HandleFunc("/books/{id:[0-9]+}", h.Books.Get).Methods(http.MethodGet)
	r.HandleFunc("/books/{id:[0-9]+}", auth.Require(h.Books.Update)).Methods(http.MethodPatch)
	r.HandleFunc("/books/{id:[0-9]+}", auth.Require(h.Books.Delete)).Methods(http.MethodDelete)

	// Borrowers
	r.HandleFunc("/borrowers", h.Borrowers.List).Methods(http.MethodGet)
	r.HandleFunc("/borrowers", auth.Require(h.Borrowers.Create)).Methods(http.MethodPost)
	r.HandleFunc("/borrowers/{id:[0-9]+}", h.Borrowers.Get).Methods(http.MethodGet)
	r.HandleFunc("/borrowers/{id:[0-9]+}", auth.Require(h.Borrowers.Update)).Methods(http.MethodPatch)
	r.HandleFunc("/borrowers/{id:[0-9]+}", auth.Require(h.Borrowers.Delete)).Methods(http.MethodDelete)

	// Borrowings
	r.HandleFunc("/borrowings", auth.Require(h.Loans.Checkout)).Methods(http.MethodPost)
	r.HandleFunc("/borrowings/{id:[0-9]+}/return", auth.Require(h.Loans.Return)).Methods(http.MethodPatch)
	r.HandleFunc("/borrowings/borrower/{borrowerId:[0-9]+}", h.Loans.ListForBorrower).Methods(http.MethodGet)
	r.HandleFunc("/borrowings/overdue", h.Loans.ListOverdue).Methods(http.MethodGet)

	// Reports
	r.HandleFunc("/reports/analytics", h.Reports.GetAnalytics).Methods(http.MethodGet)
	r.HandleFunc("/reports/analytics/export", h.Reports.ExportAnalytics).Methods(http.MethodGet)
	r.HandleFunc("/reports/overdue-last-month", h.Reports.ExportOverdueLastMonth).Methods(http.MethodGet)
	r.HandleFunc("/reports/last-month", h.Reports.ExportLastMonthLoans).Methods(http.MethodGet)

	return r
}
