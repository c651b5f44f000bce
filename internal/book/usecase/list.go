package usecase

import (
	"context"

	"library-management-system/internal/book"
	repo "library-management-system/internal/book/repository"
	"library-management-system/internal/model"
)

// List returns a paginated catalog listing. Retired books are hidden unless
// explicitly requested.
func (uc *implUseCase) List(ctx context.Context, input book.ListBooksInput) (book.ListBooksOutput, error) {
	status := model.BookStatusActive
	if input.IncludeRetired {
		status = ""
	}

	books, total, err := uc.repo.ListBooks(ctx, repo.ListBooksOptions{
		Search: input.Search,
		Status: status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListBooks: %v", err)
		return book.ListBooksOutput{}, err
	}

	return book.ListBooksOutput{
		Books:  books,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
