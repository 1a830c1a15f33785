// Package report computes analytics over loan records and renders them into
// exportable tabular formats. Everything here is a pure function of its
// inputs; storage access belongs to the callers.
package report

import (
	"sort"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
)

const topLimit = 10

// Aggregate summarizes a set of hydrated loan records. end is the inclusive
// end of the reporting period and bounds totalReturned; totalOverdue is
// computed against today (the wall-clock date) so the report always reflects
// current overdue status regardless of the period queried.
func Aggregate(records []domain.Loan, end, today string) *domain.AnalyticsReport {
	rep := &domain.AnalyticsReport{
		TotalBorrowed: len(records),
		Daily:         []domain.DailyCount{},
		TopBooks:      []domain.BookCount{},
		TopBorrowers:  []domain.BorrowerCount{},
	}

	for i := range records {
		r := &records[i]
		if r.ReturnDate != nil && *r.ReturnDate <= end {
			rep.TotalReturned++
		}
		if r.IsOverdueOn(today) {
			rep.TotalOverdue++
		}
	}

	for _, e := range countBy(records, func(l *domain.Loan) string { return l.BorrowDate }) {
		rep.Daily = append(rep.Daily, domain.DailyCount{Date: e.key, Count: e.count})
	}
	for _, e := range top(countBy(records, bookTitle), topLimit) {
		rep.TopBooks = append(rep.TopBooks, domain.BookCount{Title: e.key, Count: e.count})
	}
	for _, e := range top(countBy(records, borrowerName), topLimit) {
		rep.TopBorrowers = append(rep.TopBorrowers, domain.BorrowerCount{Name: e.key, Count: e.count})
	}
	return rep
}

func bookTitle(l *domain.Loan) string {
	if l.Book == nil {
		return ""
	}
	return l.Book.Title
}

func borrowerName(l *domain.Loan) string {
	if l.Borrower == nil {
		return ""
	}
	return l.Borrower.Name
}

type keyCount struct {
	key   string
	count int
}

// countBy groups records by key, preserving first-encountered key order.
func countBy(records []domain.Loan, key func(*domain.Loan) string) []keyCount {
	index := make(map[string]int, len(records))
	var entries []keyCount
	for i := range records {
		k := key(&records[i])
		if pos, ok := index[k]; ok {
			entries[pos].count++
			continue
		}
		index[k] = len(entries)
		entries = append(entries, keyCount{key: k, count: 1})
	}
	return entries
}

// top sorts descending by count and truncates. The sort is stable so ties
// keep their first-encountered order.
func top(entries []keyCount, n int) []keyCount {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// ToRows flattens hydrated loans into the export projection.
func ToRows(records []domain.Loan) []domain.LoanRow {
	rows := make([]domain.LoanRow, 0, len(records))
	for i := range records {
		r := &records[i]
		row := domain.LoanRow{
			ID:           r.ID,
			BookTitle:    bookTitle(r),
			BorrowerName: borrowerName(r),
			BorrowDate:   r.BorrowDate,
			DueDate:      r.DueDate,
		}
		if r.ReturnDate != nil {
			row.ReturnDate = *r.ReturnDate
		}
		rows = append(rows, row)
	}
	return rows
}
