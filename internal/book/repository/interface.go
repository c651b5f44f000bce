package repository

import (
	"context"

	"library-management-system/internal/model"
)

// Repository is the composed interface for the book domain data store.
type Repository interface {
	BookRepository
	LedgerRepository
}

// BookRepository defines catalog data access for the Book entity.
type BookRepository interface {
	CreateBook(ctx context.Context, opt CreateBookOptions) (model.Book, error)
	GetOneBook(ctx context.Context, opt GetOneBookOptions) (model.Book, error)
	ListBooks(ctx context.Context, opt ListBooksOptions) ([]model.Book, int, error)
	UpdateBook(ctx context.Context, opt UpdateBookOptions) (model.Book, error)
	SetBookStatus(ctx context.Context, id int64, status model.BookStatus) error
}

// LedgerRepository owns the available-copies counter. Both methods are guarded
// single-row UPDATEs and must be called inside the loan lifecycle transaction
// so the counter and the loan record commit or roll back together.
type LedgerRepository interface {
	// DecrementAvailable takes one copy. Returns book.ErrNoCopiesAvailable
	// when the counter is already zero (or the book is not active).
	DecrementAvailable(ctx context.Context, bookID int64) error
	// IncrementAvailable returns one copy. Returns book.ErrCopiesExceedTotal
	// when the counter is already at total_copies.
	IncrementAvailable(ctx context.Context, bookID int64) error
}
