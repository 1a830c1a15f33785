package service

import (
	"context"
	"time"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/logger"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository"
)

type loanService struct {
	loanRepo     repository.LoanRepository
	bookRepo     repository.BookRepository
	borrowerRepo repository.BorrowerRepository

	loanPeriodDays  int
	restockOnReturn bool

	now func() time.Time
}

func NewLoanService(
	loanRepo repository.LoanRepository,
	bookRepo repository.BookRepository,
	borrowerRepo repository.BorrowerRepository,
	loanPeriodDays int,
	restockOnReturn bool,
) LoanService {
	return &loanService{
		loanRepo:        loanRepo,
		bookRepo:        bookRepo,
		borrowerRepo:    borrowerRepo,
		loanPeriodDays:  loanPeriodDays,
		restockOnReturn: restockOnReturn,
		now:             time.Now,
	}
}

// Checkout creates a loan after atomically consuming one available copy.
// The inventory decrement happens in a single conditional update, so a
// concurrent checkout of the last copy fails with ErrBookUnavailable
// instead of driving the count negative.
func (s *loanService) Checkout(ctx context.Context, bookID, borrowerID int32) (*domain.Loan, error) {
	borrower, err := s.borrowerRepo.GetByID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}

	book, err := s.bookRepo.DecrementAvailable(ctx, bookID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	loan := &domain.Loan{
		BookID:     bookID,
		BorrowerID: borrowerID,
		BorrowDate: today.Format(domain.DateLayout),
		DueDate:    today.AddDate(0, 0, s.loanPeriodDays).Format(domain.DateLayout),
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	loan.Book = book
	loan.Borrower = borrower
	logger.Info("loan created", "loan_id", loan.ID, "book_id", bookID, "borrower_id", borrowerID, "due_date", loan.DueDate)
	return loan, nil
}

// Return closes a loan. Returning an already-returned loan fails with
// ErrAlreadyReturned: return_date is immutable once set.
func (s *loanService) Return(ctx context.Context, loanID int32, returnDate string) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.ReturnDate != nil {
		return nil, domain.ErrAlreadyReturned
	}

	if returnDate == "" {
		returnDate = s.now().Format(domain.DateLayout)
	}
	if err := s.loanRepo.MarkReturned(ctx, loanID, returnDate); err != nil {
		return nil, err
	}
	loan.ReturnDate = &returnDate

	// Whether a return puts the copy back on the shelf is configurable; the
	// system this replaces never restocked.
	if s.restockOnReturn {
		if book, err := s.bookRepo.IncrementAvailable(ctx, loan.BookID); err != nil {
			logger.Error("failed to restock returned book", "book_id", loan.BookID, "error", err)
		} else {
			loan.Book = book
		}
	}

	logger.Info("loan returned", "loan_id", loanID, "return_date", returnDate)
	return loan, nil
}

func (s *loanService) ListActiveForBorrower(ctx context.Context, borrowerID int32) ([]domain.Loan, error) {
	return s.loanRepo.ListActiveByBorrower(ctx, borrowerID)
}

func (s *loanService) ListOverdue(ctx context.Context) ([]domain.Loan, error) {
	return s.loanRepo.ListOverdue(ctx, s.now().Format(domain.DateLayout))
}
