package book

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")

	// ErrNoCopiesAvailable: the ledger refused a decrement because no copy is
	// left. A normal business outcome, not a failure.
	ErrNoCopiesAvailable = errors.New("no copies available")

	// ErrCopiesExceedTotal: an increment would push available_copies past
	// total_copies. This signals corrupted bookkeeping and is surfaced as an
	// internal failure, never silently capped.
	ErrCopiesExceedTotal = errors.New("available copies would exceed total copies")

	// ErrInvalidCopies: a catalog edit would shrink total_copies below the
	// number of copies currently on loan.
	ErrInvalidCopies = errors.New("total copies cannot be less than copies on loan")
)
