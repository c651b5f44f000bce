package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	repo "library-management-system/internal/book/repository"
	"library-management-system/internal/model"
	"library-management-system/pkg/postgres"
)

const bookColumns = `id, title, author, isbn, category, pages, description,
	total_copies, available_copies, status, created_at, updated_at`

// CreateBook inserts a new Book row with available_copies = total_copies.
func (r *implRepository) CreateBook(ctx context.Context, opt repo.CreateBookOptions) (model.Book, error) {
	query := fmt.Sprintf(`
		INSERT INTO books (title, author, isbn, category, pages, description,
			total_copies, available_copies, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7, 'active', NOW(), NOW())
		RETURNING %s`, bookColumns)

	var book model.Book
	err := sqlx.GetContext(ctx, postgres.ExtFrom(ctx, r.db), &book, query,
		opt.Title, opt.Author, opt.ISBN, opt.Category, opt.Pages, opt.Description, opt.TotalCopies,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBook"), err)
		return model.Book{}, repo.ErrFailedToInsert
	}
	return book, nil
}

// GetOneBook retrieves a single Book by the provided filters (AND condition).
// Returns zero-value Book (ID == 0) when not found. Callers decide whether
// that is an error.
func (r *implRepository) GetOneBook(ctx context.Context, opt repo.GetOneBookOptions) (model.Book, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM books WHERE %s LIMIT 1", bookColumns, mods)
	if opt.ForUpdate {
		query += " FOR UPDATE"
	}

	var book model.Book
	err := sqlx.GetContext(ctx, postgres.ExtFrom(ctx, r.db), &book, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Book{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBook"), err)
		return model.Book{}, repo.ErrFailedToGet
	}
	return book, nil
}

// ListBooks returns a paginated list of Books and the total count.
func (r *implRepository) ListBooks(ctx context.Context, opt repo.ListBooksOptions) ([]model.Book, int, error) {
	ext := postgres.ExtFrom(ctx, r.db)

	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM books WHERE %s", countMods)
	var total int
	if err := sqlx.GetContext(ctx, ext, &total, countQuery, countArgs...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListBooks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM books %s", bookColumns, mods)
	var books []model.Book
	if err := sqlx.SelectContext(ctx, ext, &books, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBooks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return books, total, nil
}

// UpdateBook updates a Book by ID and returns the updated entity.
func (r *implRepository) UpdateBook(ctx context.Context, opt repo.UpdateBookOptions) (model.Book, error) {
	query := fmt.Sprintf(`
		UPDATE books
		SET title = $1, author = $2, isbn = $3, category = $4, pages = $5,
			description = $6, total_copies = $7, available_copies = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING %s`, bookColumns)

	var book model.Book
	err := sqlx.GetContext(ctx, postgres.ExtFrom(ctx, r.db), &book, query,
		opt.Title, opt.Author, opt.ISBN, opt.Category, opt.Pages,
		opt.Description, opt.TotalCopies, opt.AvailableCopies, opt.ID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Book{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBook"), err)
		return model.Book{}, repo.ErrFailedToUpdate
	}
	return book, nil
}

// SetBookStatus flips the lifecycle flag (soft retire / reactivate).
func (r *implRepository) SetBookStatus(ctx context.Context, id int64, status model.BookStatus) error {
	const query = `UPDATE books SET status = $1, updated_at = NOW() WHERE id = $2`
	if _, err := postgres.ExtFrom(ctx, r.db).ExecContext(ctx, query, status, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetBookStatus"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
