package usecase

import (
	"context"

	"library-management-system/internal/loan"
	loanRepo "library-management-system/internal/loan/repository"
	"library-management-system/internal/model"
)

// Return closes a loan. The loan row is locked before the status check, so a
// duplicate return always gets loan.ErrAlreadyReturned and never a double
// increment. Marking returned and the counter increment commit or roll back
// together.
func (uc *implUseCase) Return(ctx context.Context, input loan.ReturnInput) (loan.ReturnOutput, error) {
	if input.LoanID <= 0 {
		return loan.ReturnOutput{}, loan.ErrInvalidLoanID
	}

	var returned model.Loan

	err := uc.tx.WithinTx(ctx, func(txCtx context.Context) error {
		record, err := uc.loans.GetOneLoan(txCtx, loanRepo.GetOneLoanOptions{ID: input.LoanID, ForUpdate: true})
		if err != nil {
			uc.l.Errorf(txCtx, "uc.Return GetOneLoan: %v", err)
			return err
		}
		if record.ID == 0 {
			return loan.ErrLoanNotFound
		}
		if record.Status == model.LoanStatusReturned {
			return loan.ErrAlreadyReturned
		}

		returned, err = uc.loans.MarkReturned(txCtx, loanRepo.MarkReturnedOptions{
			ID:         input.LoanID,
			ReturnedAt: uc.now(),
		})
		if err != nil {
			uc.l.Errorf(txCtx, "uc.Return MarkReturned: %v", err)
			return err
		}

		if err := uc.books.IncrementAvailable(txCtx, record.BookID); err != nil {
			uc.l.Errorf(txCtx, "uc.Return IncrementAvailable: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return loan.ReturnOutput{}, err
	}

	return loan.ReturnOutput{Loan: returned}, nil
}
