package book

import "context"

// UseCase is the catalog entry point: book CRUD plus soft retire. Copy
// availability is read here but only ever mutated by the loan lifecycle.
type UseCase interface {
	Create(ctx context.Context, input CreateBookInput) (CreateBookOutput, error)
	List(ctx context.Context, input ListBooksInput) (ListBooksOutput, error)
	Detail(ctx context.Context, id int64) (DetailBookOutput, error)
	Update(ctx context.Context, input UpdateBookInput) (UpdateBookOutput, error)
	Retire(ctx context.Context, id int64) error
}
