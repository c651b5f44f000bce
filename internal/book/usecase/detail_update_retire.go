package usecase

import (
	"context"

	"library-management-system/internal/book"
	repo "library-management-system/internal/book/repository"
	"library-management-system/internal/model"
)

// Detail retrieves a single Book by ID. Returns ErrBookNotFound when missing.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (book.DetailBookOutput, error) {
	found, err := uc.repo.GetOneBook(ctx, repo.GetOneBookOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneBook: %v", err)
		return book.DetailBookOutput{}, err
	}
	if found.ID == 0 {
		return book.DetailBookOutput{}, book.ErrBookNotFound
	}
	return book.DetailBookOutput{Book: found}, nil
}

// Update modifies catalog fields of an existing Book. Changing total_copies
// moves the same delta onto available_copies, so copies currently on loan stay
// accounted for; the edit runs under a row lock to keep the counters
// consistent with concurrent borrows.
func (uc *implUseCase) Update(ctx context.Context, input book.UpdateBookInput) (book.UpdateBookOutput, error) {
	var updated model.Book

	err := uc.tx.WithinTx(ctx, func(txCtx context.Context) error {
		existing, err := uc.repo.GetOneBook(txCtx, repo.GetOneBookOptions{ID: input.ID, ForUpdate: true})
		if err != nil {
			uc.l.Errorf(txCtx, "uc.Update GetOneBook: %v", err)
			return err
		}
		if existing.ID == 0 {
			return book.ErrBookNotFound
		}

		totalCopies := existing.TotalCopies
		availableCopies := existing.AvailableCopies
		if input.TotalCopies > 0 && input.TotalCopies != existing.TotalCopies {
			onLoan := existing.TotalCopies - existing.AvailableCopies
			if input.TotalCopies < onLoan {
				return book.ErrInvalidCopies
			}
			totalCopies = input.TotalCopies
			availableCopies = input.TotalCopies - onLoan
		}

		updated, err = uc.repo.UpdateBook(txCtx, repo.UpdateBookOptions{
			ID:              input.ID,
			Title:           uc.coalesce(input.Title, existing.Title),
			Author:          uc.coalesce(input.Author, existing.Author),
			ISBN:            uc.coalesce(input.ISBN, existing.ISBN),
			Category:        uc.coalesce(input.Category, existing.Category),
			Pages:           uc.coalesceInt(input.Pages, existing.Pages),
			Description:     uc.coalesce(input.Description, existing.Description),
			TotalCopies:     totalCopies,
			AvailableCopies: availableCopies,
		})
		if err != nil {
			uc.l.Errorf(txCtx, "uc.Update UpdateBook: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return book.UpdateBookOutput{}, err
	}

	return book.UpdateBookOutput{Book: updated}, nil
}

// Retire soft-deletes a Book: the record and its loan history stay, but the
// book disappears from the default catalog and refuses new borrows.
func (uc *implUseCase) Retire(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneBook(ctx, repo.GetOneBookOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Retire GetOneBook: %v", err)
		return err
	}
	if existing.ID == 0 {
		return book.ErrBookNotFound
	}
	if err := uc.repo.SetBookStatus(ctx, id, model.BookStatusRetired); err != nil {
		uc.l.Errorf(ctx, "uc.Retire SetBookStatus: %v", err)
		return err
	}
	return nil
}
