package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

const bookColumns = "id, title, author, isbn, available_quantity, shelf_location"

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (title, author, isbn, available_quantity, shelf_location)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, b.Title, b.Author, b.ISBN, b.AvailableQuantity, b.ShelfLocation).Scan(&b.ID)
	return mapError(err)
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.AvailableQuantity, &b.ShelfLocation)
	if err != nil {
		return nil, mapError(err)
	}
	return b, nil
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	query := `UPDATE books SET title=$1, author=$2, isbn=$3, shelf_location=$4, updated_on=NOW() WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, b.Title, b.Author, b.ISBN, b.ShelfLocation, b.ID)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int32) error {
	// Referenced loans make this fail with a foreign-key violation, which
	// mapError turns into ErrConflict.
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context, filter repository.BookFilter) ([]domain.Book, int32, error) {
	ds := goqu.Dialect("postgres").
		From("books").
		Select("id", "title", "author", "isbn", "available_quantity", "shelf_location")

	if filter.Title != "" {
		ds = ds.Where(goqu.C("title").ILike("%" + filter.Title + "%"))
	}
	if filter.Author != "" {
		ds = ds.Where(goqu.C("author").ILike("%" + filter.Author + "%"))
	}
	if filter.ISBN != "" {
		ds = ds.Where(goqu.C("isbn").Eq(filter.ISBN))
	}

	countSQL, countArgs, err := ds.ClearSelect().Select(goqu.COUNT("*")).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, err
	}
	var total int32
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	sortBy := filter.SortBy
	switch sortBy {
	case "title", "author", "isbn":
	default:
		sortBy = "title"
	}
	order := goqu.C(sortBy).Asc()
	if strings.EqualFold(filter.SortOrder, "DESC") {
		order = goqu.C(sortBy).Desc()
	}
	ds = ds.Order(order)

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		ds = ds.Limit(uint(filter.PageSize)).Offset(uint((page - 1) * filter.PageSize))
	}

	querySQL, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.db.QueryContext(ctx, querySQL, args...)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.AvailableQuantity, &b.ShelfLocation); err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	return books, total, rows.Err()
}

func (r *bookRepository) DecrementAvailable(ctx context.Context, id int32) (*domain.Book, error) {
	// The quantity guard lives in the WHERE clause so the read and the write
	// are one atomic statement. Zero matched rows means either the book is
	// gone or the last copy is already out; a follow-up read tells which.
	b := &domain.Book{}
	query := `UPDATE books SET available_quantity = available_quantity - 1, updated_on = NOW()
	          WHERE id = $1 AND available_quantity > 0
	          RETURNING ` + bookColumns
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.AvailableQuantity, &b.ShelfLocation)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, mapError(err)
	}
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrBookUnavailable
}

func (r *bookRepository) IncrementAvailable(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	query := `UPDATE books SET available_quantity = available_quantity + 1, updated_on = NOW()
	          WHERE id = $1
	          RETURNING ` + bookColumns
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.AvailableQuantity, &b.ShelfLocation)
	if err != nil {
		return nil, mapError(err)
	}
	return b, nil
}
