package loan

import (
	"time"

	"library-management-system/internal/model"
)

// --- UseCase Inputs ---

type BorrowInput struct {
	BookID   int64
	MemberID int64
}

type ReturnInput struct {
	LoanID int64
}

// ListLoansInput filters the loan history. Zero values mean "no filter".
type ListLoansInput struct {
	Status      model.LoanStatus
	BookID      int64
	MemberID    int64
	OverdueOnly bool
	Limit       int
	Offset      int
}

// --- UseCase Outputs ---

type BorrowOutput struct {
	Loan model.Loan
}

type ReturnOutput struct {
	Loan model.Loan
}

// LoanDetail is a loan joined with display names and the derived overdue flag.
type LoanDetail struct {
	Loan       model.Loan
	BookTitle  string
	MemberName string
	Overdue    bool
}

type ListLoansOutput struct {
	Loans  []LoanDetail
	Total  int
	Limit  int
	Offset int
}

// StatsOutput carries the aggregate counts for the dashboard.
type StatsOutput struct {
	TotalLoans    int `json:"total_loans"`
	BorrowedLoans int `json:"borrowed_loans"`
	OverdueLoans  int `json:"overdue_loans"`
	ReturnedLoans int `json:"returned_loans"`
	TotalBooks    int `json:"total_books"`
	TotalMembers  int `json:"total_members"`
}

// Config holds lifecycle policy for the loan usecase.
type Config struct {
	// Period is how long a member may keep a copy; due_at = borrowed_at + Period.
	Period time.Duration
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}
