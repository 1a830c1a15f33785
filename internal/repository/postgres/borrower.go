package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository"
)

type borrowerRepository struct {
	db *sql.DB
}

func NewBorrowerRepository(db *sql.DB) repository.BorrowerRepository {
	return &borrowerRepository{db: db}
}

func (r *borrowerRepository) Create(ctx context.Context, b *domain.Borrower) error {
	if b.RegisteredDate == "" {
		b.RegisteredDate = time.Now().Format(domain.DateLayout)
	}
	query := `INSERT INTO borrowers (name, email, registered_date) VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, b.Name, b.Email, b.RegisteredDate).Scan(&b.ID)
	return mapError(err)
}

func (r *borrowerRepository) GetByID(ctx context.Context, id int32) (*domain.Borrower, error) {
	b := &domain.Borrower{}
	var registered time.Time
	query := `SELECT id, name, email, registered_date FROM borrowers WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Name, &b.Email, &registered)
	if err != nil {
		return nil, mapError(err)
	}
	b.RegisteredDate = registered.Format(domain.DateLayout)
	return b, nil
}

func (r *borrowerRepository) Update(ctx context.Context, b *domain.Borrower) error {
	query := `UPDATE borrowers SET name=$1, email=$2 WHERE id=$3 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, b.Name, b.Email, b.ID)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *borrowerRepository) List(ctx context.Context) ([]domain.Borrower, error) {
	query := `SELECT id, name, email, registered_date FROM borrowers WHERE deleted_at IS NULL ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var borrowers []domain.Borrower
	for rows.Next() {
		var b domain.Borrower
		var registered time.Time
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &registered); err != nil {
			return nil, err
		}
		b.RegisteredDate = registered.Format(domain.DateLayout)
		borrowers = append(borrowers, b)
	}
	return borrowers, rows.Err()
}

func (r *borrowerRepository) SoftDelete(ctx context.Context, id int32) error {
	query := `UPDATE borrowers SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
