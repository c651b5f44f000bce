package repository

import (
	"time"

	"library-management-system/internal/model"
)

// CreateLoanOptions holds parameters for inserting a new loan row.
type CreateLoanOptions struct {
	BookID     int64
	MemberID   int64
	BorrowedAt time.Time
	DueAt      time.Time
}

// GetOneLoanOptions holds filter parameters for fetching a single loan.
type GetOneLoanOptions struct {
	ID int64

	// ForUpdate locks the row for the duration of the surrounding transaction
	// so a racing return cannot slip between the read and the update.
	ForUpdate bool
}

// MarkReturnedOptions holds parameters for the borrowed -> returned transition.
type MarkReturnedOptions struct {
	ID         int64
	ReturnedAt time.Time
}

// ListLoansOptions holds filter and pagination parameters for the loan history.
// Now anchors the overdue filter so SQL and the derived flag agree.
type ListLoansOptions struct {
	Status      model.LoanStatus
	BookID      int64
	MemberID    int64
	OverdueOnly bool
	Now         time.Time
	Limit       int
	Offset      int
}

// GetStatsOptions anchors the overdue count at a single instant.
type GetStatsOptions struct {
	Now time.Time
}

// LoanRow is a loan joined with denormalized display fields.
type LoanRow struct {
	model.Loan
	BookTitle  string `db:"book_title"`
	MemberName string `db:"member_name"`
}

// Stats carries aggregate loan counts plus catalog and membership sizes for
// the dashboard.
type Stats struct {
	Total    int `db:"total"`
	Borrowed int `db:"borrowed"`
	Overdue  int `db:"overdue"`
	Returned int `db:"returned"`
	Books    int `db:"books"`
	Members  int `db:"members"`
}
