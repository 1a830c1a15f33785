package domain

import "time"

// Borrower is soft-deleted: DeletedAt marks the record inactive while its id
// stays valid as a foreign key for historical loans.
type Borrower struct {
	ID             int32      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	RegisteredDate string     `json:"registered_date"`
	DeletedAt      *time.Time `json:"-"`
}
