package model

import "time"

// LoanStatus is the loan lifecycle state. The only transition is
// borrowed -> returned, performed at most once.
type LoanStatus string

const (
	LoanStatusBorrowed LoanStatus = "borrowed"
	LoanStatusReturned LoanStatus = "returned"
)

// Loan is one borrow-to-return lifecycle for a single book copy. Records are
// append-only: created on borrow, mutated exactly once on return, never
// deleted.
type Loan struct {
	ID         int64      `db:"id"`
	BookID     int64      `db:"book_id"`
	MemberID   int64      `db:"member_id"`
	BorrowedAt time.Time  `db:"borrowed_at"`
	DueAt      time.Time  `db:"due_at"`
	ReturnedAt *time.Time `db:"returned_at"`
	Status     LoanStatus `db:"status"`
}

// OverdueAt reports whether the loan is overdue at the given instant. Overdue
// is derived, never stored: a returned loan is never overdue regardless of
// dates.
func (l Loan) OverdueAt(now time.Time) bool {
	return l.Status == LoanStatusBorrowed && now.After(l.DueAt)
}
