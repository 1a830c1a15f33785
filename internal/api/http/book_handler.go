package http

import (
	"net/http"
	"strconv"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository"
	"github.com/AbdelrahmanBayoumi/library-api/internal/service"
)

type BookHandler struct {
	books service.BookService
}

func NewBookHandler(books service.BookService) *BookHandler {
	return &BookHandler{books: books}
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var book domain.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if book.Title == "" || book.ISBN == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "title and isbn are required"})
		return
	}
	if book.AvailableQuantity < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "available_quantity must not be negative"})
		return
	}

	if err := h.books.Create(r.Context(), &book); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid book id"})
		return
	}
	book, err := h.books.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid book id"})
		return
	}
	var book domain.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	book.ID = id
	if err := h.books.Update(r.Context(), &book); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid book id"})
		return
	}
	if err := h.books.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type bookListResponse struct {
	Books []domain.Book `json:"books"`
	Total int32         `json:"total"`
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.BookFilter{
		Title:     q.Get("title"),
		Author:    q.Get("author"),
		ISBN:      q.Get("isbn"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	if page, err := strconv.ParseInt(q.Get("page"), 10, 32); err == nil {
		filter.Page = int32(page)
	}
	if size, err := strconv.ParseInt(q.Get("page_size"), 10, 32); err == nil {
		filter.PageSize = int32(size)
	}

	books, total, err := h.books.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if books == nil {
		books = []domain.Book{}
	}
	writeJSON(w, http.StatusOK, bookListResponse{Books: books, Total: total})
}
