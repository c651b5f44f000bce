package repository

import (
	"context"

	"library-management-system/internal/model"
)

// Repository is the loan record store: append-mostly storage of loan rows.
// Business preconditions are enforced by the usecase before any write lands
// here; writes participate in the usecase's transaction via the context.
type Repository interface {
	// CreateLoan inserts a new row in status 'borrowed' and returns it with
	// the assigned ID.
	CreateLoan(ctx context.Context, opt CreateLoanOptions) (model.Loan, error)
	// GetOneLoan fetches a loan by ID. Zero-value Loan (ID == 0) when missing.
	GetOneLoan(ctx context.Context, opt GetOneLoanOptions) (model.Loan, error)
	// MarkReturned performs the single allowed transition borrowed -> returned.
	// The UPDATE is guarded on status so a row can never be returned twice.
	MarkReturned(ctx context.Context, opt MarkReturnedOptions) (model.Loan, error)
	// ListLoans returns loan history joined with book and member display
	// fields, newest borrow first, plus the unpaginated total.
	ListLoans(ctx context.Context, opt ListLoansOptions) ([]LoanRow, int, error)
	// GetStats returns aggregate loan counts.
	GetStats(ctx context.Context, opt GetStatsOptions) (Stats, error)
}
