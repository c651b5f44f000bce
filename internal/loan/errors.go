package loan

import "errors"

var (
	ErrInvalidBookID   = errors.New("book id is required")
	ErrInvalidMemberID = errors.New("member id is required")
	ErrInvalidLoanID   = errors.New("loan id is required")

	ErrLoanNotFound = errors.New("loan not found")

	// ErrAlreadyReturned rejects a duplicate return without touching state, so
	// the caller can show "already returned" instead of a generic failure.
	ErrAlreadyReturned = errors.New("loan already returned")
)
