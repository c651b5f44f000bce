package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	repo "library-management-system/internal/loan/repository"
	"library-management-system/internal/model"
	"library-management-system/pkg/postgres"
)

const loanColumns = `id, book_id, member_id, borrowed_at, due_at, returned_at, status`

// CreateLoan inserts a new loan row in status 'borrowed'. IDs come from a
// sequence: monotonic, never reused.
func (r *implRepository) CreateLoan(ctx context.Context, opt repo.CreateLoanOptions) (model.Loan, error) {
	query := fmt.Sprintf(`
		INSERT INTO loans (book_id, member_id, borrowed_at, due_at, status)
		VALUES ($1, $2, $3, $4, 'borrowed')
		RETURNING %s`, loanColumns)

	var loan model.Loan
	err := sqlx.GetContext(ctx, postgres.ExtFrom(ctx, r.db), &loan, query,
		opt.BookID, opt.MemberID, opt.BorrowedAt, opt.DueAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateLoan"), err)
		return model.Loan{}, repo.ErrFailedToInsert
	}
	return loan, nil
}

// GetOneLoan fetches a loan by ID. Returns zero-value Loan (ID == 0) when not
// found. Callers decide whether that is an error.
func (r *implRepository) GetOneLoan(ctx context.Context, opt repo.GetOneLoanOptions) (model.Loan, error) {
	query := fmt.Sprintf("SELECT %s FROM loans WHERE id = $1", loanColumns)
	if opt.ForUpdate {
		query += " FOR UPDATE"
	}

	var loan model.Loan
	err := sqlx.GetContext(ctx, postgres.ExtFrom(ctx, r.db), &loan, query, opt.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Loan{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneLoan"), err)
		return model.Loan{}, repo.ErrFailedToGet
	}
	return loan, nil
}

// MarkReturned applies the borrowed -> returned transition. The status guard
// in the WHERE clause makes the transition happen at most once even if two
// returns race past the usecase check.
func (r *implRepository) MarkReturned(ctx context.Context, opt repo.MarkReturnedOptions) (model.Loan, error) {
	query := fmt.Sprintf(`
		UPDATE loans
		SET returned_at = $1, status = 'returned'
		WHERE id = $2 AND status = 'borrowed'
		RETURNING %s`, loanColumns)

	var loan model.Loan
	err := sqlx.GetContext(ctx, postgres.ExtFrom(ctx, r.db), &loan, query, opt.ReturnedAt, opt.ID)
	if errors.Is(err, sql.ErrNoRows) {
		// The usecase loads the row under lock first, so landing here means
		// the guard and the read disagree.
		r.l.Errorf(ctx, "%s: loan %d not in status borrowed", r.dsn("MarkReturned"), opt.ID)
		return model.Loan{}, repo.ErrFailedToUpdate
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkReturned"), err)
		return model.Loan{}, repo.ErrFailedToUpdate
	}
	return loan, nil
}

// ListLoans returns the loan history joined with book titles and member names,
// newest borrow first, plus the unpaginated total.
func (r *implRepository) ListLoans(ctx context.Context, opt repo.ListLoansOptions) ([]repo.LoanRow, int, error) {
	ext := postgres.ExtFrom(ctx, r.db)

	countQuery, countArgs, err := buildCountQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build count: %v", r.dsn("ListLoans"), err)
		return nil, 0, repo.ErrFailedToList
	}
	var total int
	if err := sqlx.GetContext(ctx, ext, &total, countQuery, countArgs...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListLoans"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query, args, err := buildListQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build list: %v", r.dsn("ListLoans"), err)
		return nil, 0, repo.ErrFailedToList
	}
	var rows []repo.LoanRow
	if err := sqlx.SelectContext(ctx, ext, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLoans"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return rows, total, nil
}

// GetStats returns aggregate loan counts in a single scan.
func (r *implRepository) GetStats(ctx context.Context, opt repo.GetStatsOptions) (repo.Stats, error) {
	const query = `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'borrowed') AS borrowed,
			COUNT(*) FILTER (WHERE status = 'borrowed' AND due_at < $1) AS overdue,
			COUNT(*) FILTER (WHERE status = 'returned') AS returned,
			(SELECT COUNT(*) FROM books WHERE status = 'active') AS books,
			(SELECT COUNT(*) FROM members) AS members
		FROM loans`

	var stats repo.Stats
	if err := sqlx.GetContext(ctx, postgres.ExtFrom(ctx, r.db), &stats, query, opt.Now); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetStats"), err)
		return repo.Stats{}, repo.ErrFailedToGet
	}
	return stats, nil
}
