package domain

// DateLayout is the calendar-date format used for all loan dates. Dates are
// kept as plain YYYY-MM-DD strings so that comparisons are lexicographic and
// free of time-of-day or timezone effects.
const DateLayout = "2006-01-02"

type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "ACTIVE"
	LoanStatusOverdue  LoanStatus = "OVERDUE"
	LoanStatusReturned LoanStatus = "RETURNED"
)

// Loan is a single borrowing record. Status is never stored; it is always
// derived from return_date and due_date against the current date.
type Loan struct {
	ID         int32     `json:"id"`
	BookID     int32     `json:"book_id"`
	BorrowerID int32     `json:"borrower_id"`
	BorrowDate string    `json:"borrow_date"`
	DueDate    string    `json:"due_date"`
	ReturnDate *string   `json:"return_date,omitempty"`
	Book       *Book     `json:"book,omitempty"`
	Borrower   *Borrower `json:"borrower,omitempty"`
}

// StatusOn derives the loan status for the given calendar date.
func (l *Loan) StatusOn(today string) LoanStatus {
	if l.ReturnDate != nil {
		return LoanStatusReturned
	}
	if l.DueDate < today {
		return LoanStatusOverdue
	}
	return LoanStatusActive
}

// IsOverdueOn reports whether the loan is overdue on the given date. A loan
// due exactly today is not overdue; it becomes overdue the day after.
func (l *Loan) IsOverdueOn(today string) bool {
	return l.ReturnDate == nil && l.DueDate < today
}
