package usecase

import (
	"context"

	"library-management-system/internal/book"
	repo "library-management-system/internal/book/repository"
)

// Create adds a new book to the catalog. Every copy starts on the shelf:
// available_copies = total_copies.
func (uc *implUseCase) Create(ctx context.Context, input book.CreateBookInput) (book.CreateBookOutput, error) {
	created, err := uc.repo.CreateBook(ctx, repo.CreateBookOptions{
		Title:       input.Title,
		Author:      input.Author,
		ISBN:        input.ISBN,
		Category:    input.Category,
		Pages:       input.Pages,
		Description: input.Description,
		TotalCopies: input.TotalCopies,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateBook: %v", err)
		return book.CreateBookOutput{}, err
	}

	return book.CreateBookOutput{Book: created}, nil
}
