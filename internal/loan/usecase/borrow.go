package usecase

import (
	"context"

	"library-management-system/internal/book"
	bookRepo "library-management-system/internal/book/repository"
	"library-management-system/internal/loan"
	loanRepo "library-management-system/internal/loan/repository"
	"library-management-system/internal/member"
	memberRepo "library-management-system/internal/member/repository"
	"library-management-system/internal/model"
)

// Borrow lends one copy of a book to a member. The book row is locked for the
// whole unit of work, so when two borrows race over the last copy exactly one
// commits and the other sees book.ErrNoCopiesAvailable. The loan row and the
// counter decrement commit or roll back together.
func (uc *implUseCase) Borrow(ctx context.Context, input loan.BorrowInput) (loan.BorrowOutput, error) {
	if input.BookID <= 0 {
		return loan.BorrowOutput{}, loan.ErrInvalidBookID
	}
	if input.MemberID <= 0 {
		return loan.BorrowOutput{}, loan.ErrInvalidMemberID
	}

	var created model.Loan

	err := uc.tx.WithinTx(ctx, func(txCtx context.Context) error {
		b, err := uc.books.GetOneBook(txCtx, bookRepo.GetOneBookOptions{ID: input.BookID, ForUpdate: true})
		if err != nil {
			uc.l.Errorf(txCtx, "uc.Borrow GetOneBook: %v", err)
			return err
		}
		if b.ID == 0 || b.Status != model.BookStatusActive {
			return book.ErrBookNotFound
		}
		if b.AvailableCopies <= 0 {
			return book.ErrNoCopiesAvailable
		}

		m, err := uc.members.GetOneMember(txCtx, memberRepo.GetOneMemberOptions{ID: input.MemberID})
		if err != nil {
			uc.l.Errorf(txCtx, "uc.Borrow GetOneMember: %v", err)
			return err
		}
		if m.ID == 0 {
			return member.ErrMemberNotFound
		}

		now := uc.now()
		created, err = uc.loans.CreateLoan(txCtx, loanRepo.CreateLoanOptions{
			BookID:     input.BookID,
			MemberID:   input.MemberID,
			BorrowedAt: now,
			DueAt:      now.Add(uc.period),
		})
		if err != nil {
			uc.l.Errorf(txCtx, "uc.Borrow CreateLoan: %v", err)
			return err
		}

		if err := uc.books.DecrementAvailable(txCtx, input.BookID); err != nil {
			uc.l.Errorf(txCtx, "uc.Borrow DecrementAvailable: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return loan.BorrowOutput{}, err
	}

	return loan.BorrowOutput{Loan: created}, nil
}
