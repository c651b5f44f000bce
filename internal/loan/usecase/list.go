package usecase

import (
	"context"

	"library-management-system/internal/loan"
	loanRepo "library-management-system/internal/loan/repository"
)

// List is the read-only reporting surface: loan history joined with display
// names, newest borrow first. The overdue flag is derived here, at read time,
// and nowhere else.
func (uc *implUseCase) List(ctx context.Context, input loan.ListLoansInput) (loan.ListLoansOutput, error) {
	now := uc.now()

	rows, total, err := uc.loans.ListLoans(ctx, loanRepo.ListLoansOptions{
		Status:      input.Status,
		BookID:      input.BookID,
		MemberID:    input.MemberID,
		OverdueOnly: input.OverdueOnly,
		Now:         now,
		Limit:       input.Limit,
		Offset:      input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListLoans: %v", err)
		return loan.ListLoansOutput{}, err
	}

	details := make([]loan.LoanDetail, len(rows))
	for i, row := range rows {
		details[i] = loan.LoanDetail{
			Loan:       row.Loan,
			BookTitle:  row.BookTitle,
			MemberName: row.MemberName,
			Overdue:    row.Loan.OverdueAt(now),
		}
	}

	return loan.ListLoansOutput{
		Loans:  details,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Stats returns the aggregate counts for the dashboard.
func (uc *implUseCase) Stats(ctx context.Context) (loan.StatsOutput, error) {
	stats, err := uc.loans.GetStats(ctx, loanRepo.GetStatsOptions{Now: uc.now()})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats GetStats: %v", err)
		return loan.StatsOutput{}, err
	}

	return loan.StatsOutput{
		TotalLoans:    stats.Total,
		BorrowedLoans: stats.Borrowed,
		OverdueLoans:  stats.Overdue,
		ReturnedLoans: stats.Returned,
		TotalBooks:    stats.Books,
		TotalMembers:  stats.Members,
	}, nil
}
