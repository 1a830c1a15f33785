package http

import (
	"net/http"
	"strconv"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/service"

	"github.com/gorilla/mux"
)

type LoanHandler struct {
	loans service.LoanService
}

func NewLoanHandler(loans service.LoanService) *LoanHandler {
	return &LoanHandler{loans: loans}
}

type checkoutRequest struct {
	BookID     int32 `json:"book_id"`
	BorrowerID int32 `json:"borrower_id"`
}

func (h *LoanHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.BookID == 0 || req.BorrowerID == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "book_id and borrower_id are required"})
		return
	}

	loan, err := h.loans.Checkout(r.Context(), req.BookID, req.BorrowerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, loan)
}

type returnRequest struct {
	ReturnDate string `json:"return_date"`
}

func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid loan id"})
		return
	}

	var req returnRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
	}

	loan, err := h.loans.Return(r.Context(), id, req.ReturnDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) ListForBorrower(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := pathID(r, "borrowerId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid borrower id"})
		return
	}

	loans, err := h.loans.ListActiveForBorrower(r.Context(), borrowerID)
	if err != nil {
		writeError(w, err)
		return
	}
	if loans == nil {
		loans = []domain.Loan{}
	}
	writeJSON(w, http.StatusOK, loans)
}

func (h *LoanHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loans.ListOverdue(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if loans == nil {
		loans = []domain.Loan{}
	}
	writeJSON(w, http.StatusOK, loans)
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return int32(id), nil
}
