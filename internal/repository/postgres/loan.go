package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	query := `INSERT INTO loans (book_id, borrower_id, borrow_date, due_date)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, l.BookID, l.BorrowerID, l.BorrowDate, l.DueDate).Scan(&l.ID)
	return mapError(err)
}

func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	loans, err := r.queryHydrated(ctx, hydratedLoans().Where(goqu.I("l.id").Eq(id)))
	if err != nil {
		return nil, err
	}
	if len(loans) == 0 {
		return nil, domain.ErrNotFound
	}
	return &loans[0], nil
}

func (r *loanRepository) MarkReturned(ctx context.Context, id int32, returnDate string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE loans SET return_date = $1 WHERE id = $2`, returnDate, id)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *loanRepository) ListActiveByBorrower(ctx context.Context, borrowerID int32) ([]domain.Loan, error) {
	return r.queryHydrated(ctx, hydratedLoans().
		Where(
			goqu.I("l.borrower_id").Eq(borrowerID),
			goqu.I("l.return_date").IsNull(),
		))
}

func (r *loanRepository) ListOverdue(ctx context.Context, today string) ([]domain.Loan, error) {
	return r.queryHydrated(ctx, hydratedLoans().
		Where(
			goqu.I("l.return_date").IsNull(),
			goqu.I("l.due_date").Lt(today),
		))
}

func (r *loanRepository) FindInPeriod(ctx context.Context, start, end string) ([]domain.Loan, error) {
	return r.queryHydrated(ctx, hydratedLoans().
		Where(goqu.I("l.borrow_date").Between(goqu.Range(start, end))))
}

func (r *loanRepository) FindOverdueInPeriod(ctx context.Context, start, end string) ([]domain.Loan, error) {
	return r.queryHydrated(ctx, hydratedLoans().
		Where(
			goqu.I("l.return_date").IsNull(),
			goqu.I("l.due_date").Between(goqu.Range(start, end)),
		))
}

// hydratedLoans is the base select joining each loan with its book and
// borrower. The borrower join ignores the soft-delete flag on purpose:
// historical loans must keep resolving their borrower.
func hydratedLoans() *goqu.SelectDataset {
	return goqu.Dialect("postgres").
		From(goqu.T("loans").As("l")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("l.book_id").Eq(goqu.I("b.id")))).
		Join(goqu.T("borrowers").As("w"), goqu.On(goqu.I("l.borrower_id").Eq(goqu.I("w.id")))).
		Select(
			goqu.I("l.id"), goqu.I("l.book_id"), goqu.I("l.borrower_id"),
			goqu.I("l.borrow_date"), goqu.I("l.due_date"), goqu.I("l.return_date"),
			goqu.I("b.title"), goqu.I("b.author"), goqu.I("b.isbn"),
			goqu.I("b.available_quantity"), goqu.I("b.shelf_location"),
			goqu.I("w.name"), goqu.I("w.email"), goqu.I("w.registered_date"),
		).
		Order(goqu.I("l.id").Asc())
}

func (r *loanRepository) queryHydrated(ctx context.Context, ds *goqu.SelectDataset) ([]domain.Loan, error) {
	querySQL, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, querySQL, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		l, err := scanHydratedLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, *l)
	}
	return loans, rows.Err()
}

func scanHydratedLoan(rows *sql.Rows) (*domain.Loan, error) {
	l := &domain.Loan{Book: &domain.Book{}, Borrower: &domain.Borrower{}}
	var borrowDate, dueDate, registeredDate time.Time
	var returnDate sql.NullTime

	err := rows.Scan(
		&l.ID, &l.BookID, &l.BorrowerID,
		&borrowDate, &dueDate, &returnDate,
		&l.Book.Title, &l.Book.Author, &l.Book.ISBN,
		&l.Book.AvailableQuantity, &l.Book.ShelfLocation,
		&l.Borrower.Name, &l.Borrower.Email, &registeredDate,
	)
	if err != nil {
		return nil, err
	}

	l.Book.ID = l.BookID
	l.Borrower.ID = l.BorrowerID
	l.BorrowDate = borrowDate.Format(domain.DateLayout)
	l.DueDate = dueDate.Format(domain.DateLayout)
	if returnDate.Valid {
		formatted := returnDate.Time.Format(domain.DateLayout)
		l.ReturnDate = &formatted
	}
	l.Borrower.RegisteredDate = registeredDate.Format(domain.DateLayout)
	return l, nil
}
