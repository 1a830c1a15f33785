package service

import (
	"context"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/report"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository"
)

type BookService interface {
	Create(ctx context.Context, book *domain.Book) error
	Get(ctx context.Context, id int32) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter repository.BookFilter) ([]domain.Book, int32, error)
}

type BorrowerService interface {
	Create(ctx context.Context, borrower *domain.Borrower) error
	Get(ctx context.Context, id int32) (*domain.Borrower, error)
	Update(ctx context.Context, borrower *domain.Borrower) error
	List(ctx context.Context) ([]domain.Borrower, error)
	Delete(ctx context.Context, id int32) error
}

type LoanService interface {
	Checkout(ctx context.Context, bookID, borrowerID int32) (*domain.Loan, error)
	Return(ctx context.Context, loanID int32, returnDate string) (*domain.Loan, error)
	ListActiveForBorrower(ctx context.Context, borrowerID int32) ([]domain.Loan, error)
	ListOverdue(ctx context.Context) ([]domain.Loan, error)
}

// Export is a fully buffered report artifact plus the transport hints the
// caller needs to serve it as a download.
type Export struct {
	Data        []byte
	ContentType string
	Filename    string
}

type ReportService interface {
	GetAnalytics(ctx context.Context, start, end string) (*domain.AnalyticsReport, error)
	ExportAnalytics(ctx context.Context, start, end string, format report.Format) (*Export, error)
	ExportOverdueLastMonth(ctx context.Context, format report.Format) (*Export, error)
	ExportLastMonthLoans(ctx context.Context, format report.Format) (*Export, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, email, name, bookTitle, dueDate string) error
}
