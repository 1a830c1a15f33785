package repository

import (
	"context"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
)

// BookFilter narrows and pages book listings.
type BookFilter struct {
	Title     string
	Author    string
	ISBN      string
	Page      int32
	PageSize  int32
	SortBy    string // "title", "author" or "isbn"
	SortOrder string // "ASC" or "DESC"
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter BookFilter) ([]domain.Book, int32, error)

	// DecrementAvailable atomically reduces available_quantity by one and
	// returns the updated book. The quantity guard is part of the UPDATE so
	// two concurrent checkouts can never both consume the last copy. Fails
	// with domain.ErrBookUnavailable when the count is zero.
	DecrementAvailable(ctx context.Context, id int32) (*domain.Book, error)
	IncrementAvailable(ctx context.Context, id int32) (*domain.Book, error)
}

type BorrowerRepository interface {
	Create(ctx context.Context, borrower *domain.Borrower) error
	GetByID(ctx context.Context, id int32) (*domain.Borrower, error)
	Update(ctx context.Context, borrower *domain.Borrower) error
	List(ctx context.Context) ([]domain.Borrower, error)

	// SoftDelete stamps deleted_at; the row survives for loan history.
	SoftDelete(ctx context.Context, id int32) error
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id int32) (*domain.Loan, error)

	// MarkReturned sets return_date on an open loan. The caller is expected
	// to have verified the loan is not already returned.
	MarkReturned(ctx context.Context, id int32, returnDate string) error

	ListActiveByBorrower(ctx context.Context, borrowerID int32) ([]domain.Loan, error)
	ListOverdue(ctx context.Context, today string) ([]domain.Loan, error)

	// FindInPeriod returns loans whose borrow_date falls in [start, end],
	// hydrated with book and borrower. An empty period yields an empty
	// slice, never an error.
	FindInPeriod(ctx context.Context, start, end string) ([]domain.Loan, error)

	// FindOverdueInPeriod returns unreturned loans whose due_date falls in
	// [start, end], hydrated with book and borrower.
	FindOverdueInPeriod(ctx context.Context, start, end string) ([]domain.Loan, error)
}
