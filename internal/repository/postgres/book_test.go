package postgres

import (
	"context"
	"testing"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookRows(b *domain.Book) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "author", "isbn", "available_quantity", "shelf_location"}).
		AddRow(b.ID, b.Title, b.Author, b.ISBN, b.AvailableQuantity, b.ShelfLocation)
}

func TestBookRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)
	book := &domain.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", AvailableQuantity: 3, ShelfLocation: "A1"}

	mock.ExpectQuery("INSERT INTO books").
		WithArgs("Dune", "Frank Herbert", "9780441013593", int32(3), "A1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err = repo.Create(context.Background(), book)
	require.NoError(t, err)
	assert.Equal(t, int32(1), book.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Create_DuplicateISBN(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	mock.ExpectQuery("INSERT INTO books").
		WillReturnError(&pq.Error{Code: "23505", Detail: "Key (isbn)=(9780441013593) already exists."})

	err = repo.Create(context.Background(), &domain.Book{Title: "Dune", ISBN: "9780441013593"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBookRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	mock.ExpectQuery("SELECT id, title, author, isbn, available_quantity, shelf_location FROM books").
		WithArgs(int32(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookRepository_DecrementAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	mock.ExpectQuery("UPDATE books SET available_quantity = available_quantity - 1").
		WithArgs(int32(1)).
		WillReturnRows(bookRows(&domain.Book{ID: 1, Title: "Dune", AvailableQuantity: 2}))

	book, err := repo.DecrementAvailable(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int32(2), book.AvailableQuantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_DecrementAvailable_NoCopies(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	// The guarded update matches nothing, the follow-up read finds the book.
	mock.ExpectQuery("UPDATE books SET available_quantity = available_quantity - 1").
		WithArgs(int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT id, title, author, isbn, available_quantity, shelf_location FROM books").
		WithArgs(int32(1)).
		WillReturnRows(bookRows(&domain.Book{ID: 1, Title: "Dune", AvailableQuantity: 0}))

	_, err = repo.DecrementAvailable(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrBookUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_DecrementAvailable_MissingBook(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	mock.ExpectQuery("UPDATE books SET available_quantity = available_quantity - 1").
		WithArgs(int32(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT id, title, author, isbn, available_quantity, shelf_location FROM books").
		WithArgs(int32(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.DecrementAvailable(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookRepository_IncrementAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	mock.ExpectQuery(`UPDATE books SET available_quantity = available_quantity \+ 1`).
		WithArgs(int32(1)).
		WillReturnRows(bookRows(&domain.Book{ID: 1, Title: "Dune", AvailableQuantity: 3}))

	book, err := repo.IncrementAvailable(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int32(3), book.AvailableQuantity)
}

func TestBookRepository_Delete_Referenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	mock.ExpectExec("DELETE FROM books").
		WithArgs(int32(1)).
		WillReturnError(&pq.Error{Code: "23503", Detail: "Key (id)=(1) is still referenced from table \"loans\"."})

	err = repo.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBookRepository_List_Filtered(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "books"`).
		WithArgs("%dune%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM "books" .+ ORDER BY "title" ASC`).
		WithArgs("%dune%").
		WillReturnRows(bookRows(&domain.Book{ID: 1, Title: "Dune", Author: "Frank Herbert", AvailableQuantity: 2}))

	books, total, err := repo.List(context.Background(), repository.BookFilter{Title: "dune"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), total)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
