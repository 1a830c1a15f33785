package service

import (
	"context"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	var book *domain.Book
	if args.Get(0) != nil {
		book = args.Get(0).(*domain.Book)
	}
	return book, args.Error(1)
}

func (m *MockBookRepository) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepository) List(ctx context.Context, filter repository.BookFilter) ([]domain.Book, int32, error) {
	args := m.Called(ctx, filter)
	var books []domain.Book
	if args.Get(0) != nil {
		books = args.Get(0).([]domain.Book)
	}
	return books, args.Get(1).(int32), args.Error(2)
}

func (m *MockBookRepository) DecrementAvailable(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	var book *domain.Book
	if args.Get(0) != nil {
		book = args.Get(0).(*domain.Book)
	}
	return book, args.Error(1)
}

func (m *MockBookRepository) IncrementAvailable(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	var book *domain.Book
	if args.Get(0) != nil {
		book = args.Get(0).(*domain.Book)
	}
	return book, args.Error(1)
}

type MockBorrowerRepository struct {
	mock.Mock
}

func (m *MockBorrowerRepository) Create(ctx context.Context, borrower *domain.Borrower) error {
	args := m.Called(ctx, borrower)
	return args.Error(0)
}

func (m *MockBorrowerRepository) GetByID(ctx context.Context, id int32) (*domain.Borrower, error) {
	args := m.Called(ctx, id)
	var borrower *domain.Borrower
	if args.Get(0) != nil {
		borrower = args.Get(0).(*domain.Borrower)
	}
	return borrower, args.Error(1)
}

func (m *MockBorrowerRepository) Update(ctx context.Context, borrower *domain.Borrower) error {
	args := m.Called(ctx, borrower)
	return args.Error(0)
}

func (m *MockBorrowerRepository) List(ctx context.Context) ([]domain.Borrower, error) {
	args := m.Called(ctx)
	var borrowers []domain.Borrower
	if args.Get(0) != nil {
		borrowers = args.Get(0).([]domain.Borrower)
	}
	return borrowers, args.Error(1)
}

func (m *MockBorrowerRepository) SoftDelete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	var loan *domain.Loan
	if args.Get(0) != nil {
		loan = args.Get(0).(*domain.Loan)
	}
	return loan, args.Error(1)
}

func (m *MockLoanRepository) MarkReturned(ctx context.Context, id int32, returnDate string) error {
	args := m.Called(ctx, id, returnDate)
	return args.Error(0)
}

func (m *MockLoanRepository) ListActiveByBorrower(ctx context.Context, borrowerID int32) ([]domain.Loan, error) {
	args := m.Called(ctx, borrowerID)
	var loans []domain.Loan
	if args.Get(0) != nil {
		loans = args.Get(0).([]domain.Loan)
	}
	return loans, args.Error(1)
}

func (m *MockLoanRepository) ListOverdue(ctx context.Context, today string) ([]domain.Loan, error) {
	args := m.Called(ctx, today)
	var loans []domain.Loan
	if args.Get(0) != nil {
		loans = args.Get(0).([]domain.Loan)
	}
	return loans, args.Error(1)
}

func (m *MockLoanRepository) FindInPeriod(ctx context.Context, start, end string) ([]domain.Loan, error) {
	args := m.Called(ctx, start, end)
	var loans []domain.Loan
	if args.Get(0) != nil {
		loans = args.Get(0).([]domain.Loan)
	}
	return loans, args.Error(1)
}

func (m *MockLoanRepository) FindOverdueInPeriod(ctx context.Context, start, end string) ([]domain.Loan, error) {
	args := m.Called(ctx, start, end)
	var loans []domain.Loan
	if args.Get(0) != nil {
		loans = args.Get(0).([]domain.Loan)
	}
	return loans, args.Error(1)
}
