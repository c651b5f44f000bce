package loan

import "context"

// UseCase is the loan lifecycle manager: the only entry point for
// state-changing loan operations, plus the read-only reporting surface.
// Borrow and Return each run as one atomic unit of work across the loan table
// and the book availability counter.
type UseCase interface {
	Borrow(ctx context.Context, input BorrowInput) (BorrowOutput, error)
	Return(ctx context.Context, input ReturnInput) (ReturnOutput, error)
	List(ctx context.Context, input ListLoansInput) (ListLoansOutput, error)
	Stats(ctx context.Context) (StatsOutput, error)
}
