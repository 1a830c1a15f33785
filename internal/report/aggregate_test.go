package report

import (
	"testing"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func loan(id int32, title, borrower, borrowDate, dueDate string, returnDate *string) domain.Loan {
	return domain.Loan{
		ID:         id,
		BorrowDate: borrowDate,
		DueDate:    dueDate,
		ReturnDate: returnDate,
		Book:       &domain.Book{Title: title},
		Borrower:   &domain.Borrower{Name: borrower},
	}
}

func TestAggregate_Totals(t *testing.T) {
	records := []domain.Loan{
		loan(1, "Dune", "Alice", "2025-07-01", "2025-07-15", strPtr("2025-07-10")),
		loan(2, "Dune", "Bob", "2025-07-02", "2025-07-16", nil),
		loan(3, "Neuromancer", "Alice", "2025-07-31", "2025-08-14", nil),
		// Returned after the period end: borrowed in period, not counted as returned.
		loan(4, "Dune", "Carol", "2025-07-05", "2025-07-19", strPtr("2025-08-02")),
	}

	rep := Aggregate(records, "2025-07-31", "2025-08-20")

	assert.Equal(t, 4, rep.TotalBorrowed)
	assert.Equal(t, 1, rep.TotalReturned)
	// Loans 2 and 3 are unreturned with due dates before 2025-08-20.
	assert.Equal(t, 2, rep.TotalOverdue)
}

func TestAggregate_ReturnedOnPeriodEndCounts(t *testing.T) {
	records := []domain.Loan{
		loan(1, "Dune", "Alice", "2025-07-01", "2025-07-15", strPtr("2025-07-31")),
	}
	rep := Aggregate(records, "2025-07-31", "2025-08-01")
	assert.Equal(t, 1, rep.TotalReturned)
}

func TestAggregate_DueTodayIsNotOverdue(t *testing.T) {
	records := []domain.Loan{
		loan(1, "Dune", "Alice", "2025-08-06", "2025-08-20", nil),
	}
	rep := Aggregate(records, "2025-08-31", "2025-08-20")
	assert.Equal(t, 0, rep.TotalOverdue)

	rep = Aggregate(records, "2025-08-31", "2025-08-21")
	assert.Equal(t, 1, rep.TotalOverdue)
}

func TestAggregate_OverdueScenario(t *testing.T) {
	// Loan created 2025-07-31 with a 14-day period, reported on 2025-08-20.
	records := []domain.Loan{
		loan(1, "Dune", "Alice", "2025-07-31", "2025-08-14", nil),
	}
	rep := Aggregate(records, "2025-07-31", "2025-08-20")
	assert.Equal(t, 1, rep.TotalOverdue)
}

func TestAggregate_Daily(t *testing.T) {
	records := []domain.Loan{
		loan(1, "A", "x", "2025-07-01", "2025-07-15", nil),
		loan(2, "B", "y", "2025-07-01", "2025-07-15", nil),
		loan(3, "C", "z", "2025-07-03", "2025-07-17", nil),
	}
	rep := Aggregate(records, "2025-07-31", "2025-07-31")
	assert.ElementsMatch(t, []domain.DailyCount{
		{Date: "2025-07-01", Count: 2},
		{Date: "2025-07-03", Count: 1},
	}, rep.Daily)
}

func TestAggregate_TopBooksTieBreak(t *testing.T) {
	records := []domain.Loan{
		loan(1, "A", "x", "2025-07-01", "2025-07-15", nil),
		loan(2, "A", "y", "2025-07-02", "2025-07-16", nil),
		loan(3, "B", "z", "2025-07-03", "2025-07-17", nil),
	}
	rep := Aggregate(records, "2025-07-31", "2025-07-31")
	assert.Equal(t, []domain.BookCount{
		{Title: "A", Count: 2},
		{Title: "B", Count: 1},
	}, rep.TopBooks)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	records := []domain.Loan{
		loan(1, "A", "x", "2025-07-01", "2025-07-15", nil),
		loan(2, "A", "y", "2025-07-02", "2025-07-16", strPtr("2025-07-20")),
		loan(3, "B", "z", "2025-07-03", "2025-07-17", nil),
	}
	reversed := []domain.Loan{records[2], records[1], records[0]}

	a := Aggregate(records, "2025-07-31", "2025-08-20")
	b := Aggregate(reversed, "2025-07-31", "2025-08-20")

	assert.Equal(t, a.TotalBorrowed, b.TotalBorrowed)
	assert.Equal(t, a.TotalReturned, b.TotalReturned)
	assert.Equal(t, a.TotalOverdue, b.TotalOverdue)
	assert.ElementsMatch(t, a.Daily, b.Daily)
	assert.ElementsMatch(t, a.TopBooks, b.TopBooks)
	assert.ElementsMatch(t, a.TopBorrowers, b.TopBorrowers)
}

func TestAggregate_TopTruncatedToTen(t *testing.T) {
	var records []domain.Loan
	titles := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for i, title := range titles {
		records = append(records, loan(int32(i+1), title, "x", "2025-07-01", "2025-07-15", nil))
	}
	rep := Aggregate(records, "2025-07-31", "2025-07-31")
	assert.Len(t, rep.TopBooks, 10)
}

func TestAggregate_Empty(t *testing.T) {
	rep := Aggregate(nil, "2025-07-31", "2025-08-20")
	assert.Equal(t, 0, rep.TotalBorrowed)
	assert.Equal(t, 0, rep.TotalReturned)
	assert.Equal(t, 0, rep.TotalOverdue)
	assert.Empty(t, rep.Daily)
	assert.Empty(t, rep.TopBooks)
	assert.Empty(t, rep.TopBorrowers)
}

func TestToRows(t *testing.T) {
	records := []domain.Loan{
		loan(7, "Dune", "Alice", "2025-07-01", "2025-07-15", strPtr("2025-07-10")),
		loan(8, "Neuromancer", "Bob", "2025-07-02", "2025-07-16", nil),
	}
	rows := ToRows(records)
	assert.Equal(t, []domain.LoanRow{
		{ID: 7, BookTitle: "Dune", BorrowerName: "Alice", BorrowDate: "2025-07-01", DueDate: "2025-07-15", ReturnDate: "2025-07-10"},
		{ID: 8, BookTitle: "Neuromancer", BorrowerName: "Bob", BorrowDate: "2025-07-02", DueDate: "2025-07-16", ReturnDate: ""},
	}, rows)
}
