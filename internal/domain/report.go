package domain

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type BookCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

type BorrowerCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AnalyticsReport summarizes a set of loan records for a reporting period.
type AnalyticsReport struct {
	TotalBorrowed int             `json:"total_borrowed"`
	TotalReturned int             `json:"total_returned"`
	TotalOverdue  int             `json:"total_overdue"`
	Daily         []DailyCount    `json:"daily"`
	TopBooks      []BookCount     `json:"top_books"`
	TopBorrowers  []BorrowerCount `json:"top_borrowers"`
}

// LoanRow is the flat projection of a hydrated loan used for tabular exports.
type LoanRow struct {
	ID           int32
	BookTitle    string
	BorrowerName string
	BorrowDate   string
	DueDate      string
	ReturnDate   string
}
