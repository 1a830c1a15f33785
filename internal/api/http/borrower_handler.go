package http

import (
	"net/http"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/service"
)

type BorrowerHandler struct {
	borrowers service.BorrowerService
}

func NewBorrowerHandler(borrowers service.BorrowerService) *BorrowerHandler {
	return &BorrowerHandler{borrowers: borrowers}
}

func (h *BorrowerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var b domain.Borrower
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if b.Name == "" || b.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name and email are required"})
		return
	}

	if err := h.borrowers.Create(r.Context(), &b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *BorrowerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid borrower id"})
		return
	}
	b, err := h.borrowers.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BorrowerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid borrower id"})
		return
	}
	var b domain.Borrower
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	b.ID = id
	if err := h.borrowers.Update(r.Context(), &b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BorrowerHandler) List(w http.ResponseWriter, r *http.Request) {
	borrowers, err := h.borrowers.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if borrowers == nil {
		borrowers = []domain.Borrower{}
	}
	writeJSON(w, http.StatusOK, borrowers)
}

func (h *BorrowerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid borrower id"})
		return
	}
	if err := h.borrowers.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
