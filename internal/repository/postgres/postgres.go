package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BookRepository
	repository.BorrowerRepository
	repository.LoanRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		BookRepository:     NewBookRepository(db),
		BorrowerRepository: NewBorrowerRepository(db),
		LoanRepository:     NewLoanRepository(db),
	}
}

// Postgres error codes surfaced as domain.ErrConflict.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// mapError translates driver-level failures into the domain error taxonomy.
// Unique and foreign-key violations become ErrConflict, missing rows become
// ErrNotFound; everything else passes through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation, pqForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrConflict, pqErr.Detail)
		}
	}
	return err
}
