package repository

import "library-management-system/internal/model"

// CreateBookOptions holds parameters for inserting a new Book. AvailableCopies
// always starts equal to TotalCopies.
type CreateBookOptions struct {
	Title       string
	Author      string
	ISBN        string
	Category    string
	Pages       int
	Description string
	TotalCopies int
}

// GetOneBookOptions holds filter parameters for fetching a single Book.
// All non-zero fields are applied as AND conditions.
type GetOneBookOptions struct {
	ID   int64
	ISBN string

	// ForUpdate locks the row for the duration of the surrounding transaction.
	// The loan lifecycle sets this so availability checks and the ledger
	// mutation form one serializable step.
	ForUpdate bool
}

// ListBooksOptions holds filter and pagination parameters for listing Books.
type ListBooksOptions struct {
	Search  string
	Status  model.BookStatus
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateBookOptions holds parameters for updating catalog fields of a Book.
// The usecase computes the new copy counters under a row lock so the
// [0, total] invariant survives the edit.
type UpdateBookOptions struct {
	ID              int64
	Title           string
	Author          string
	ISBN            string
	Category        string
	Pages           int
	Description     string
	TotalCopies     int
	AvailableCopies int
}
