package postgre

import (
	"context"

	"library-management-system/internal/book"
	repo "library-management-system/internal/book/repository"
	"library-management-system/pkg/postgres"
)

// DecrementAvailable takes one copy of the book. The guard in the WHERE clause
// makes read-check-write a single atomic statement: zero rows affected means
// no copy was available (or the book is not active) and nothing changed.
func (r *implRepository) DecrementAvailable(ctx context.Context, bookID int64) error {
	const query = `
		UPDATE books
		SET available_copies = available_copies - 1, updated_at = NOW()
		WHERE id = $1 AND status = 'active' AND available_copies > 0`

	res, err := postgres.ExtFrom(ctx, r.db).ExecContext(ctx, query, bookID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DecrementAvailable"), err)
		return repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DecrementAvailable"), err)
		return repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return book.ErrNoCopiesAvailable
	}
	return nil
}

// IncrementAvailable returns one copy of the book. The guard refuses to push
// the counter past total_copies: if that happens the loan table and the
// counter disagree, which is a data-integrity bug, not a user error.
func (r *implRepository) IncrementAvailable(ctx context.Context, bookID int64) error {
	const query = `
		UPDATE books
		SET available_copies = available_copies + 1, updated_at = NOW()
		WHERE id = $1 AND available_copies < total_copies`

	res, err := postgres.ExtFrom(ctx, r.db).ExecContext(ctx, query, bookID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementAvailable"), err)
		return repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("IncrementAvailable"), err)
		return repo.ErrFailedToUpdate
	}
	if affected == 0 {
		r.l.Errorf(ctx, "%s: book %d availability would exceed total copies", r.dsn("IncrementAvailable"), bookID)
		return book.ErrCopiesExceedTotal
	}
	return nil
}
