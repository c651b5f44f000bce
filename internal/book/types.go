package book

import "library-management-system/internal/model"

// --- UseCase Inputs ---

type CreateBookInput struct {
	Title       string
	Author      string
	ISBN        string
	Category    string
	Pages       int
	Description string
	TotalCopies int
}

type ListBooksInput struct {
	Search         string
	IncludeRetired bool
	Limit          int
	Offset         int
}

type UpdateBookInput struct {
	ID          int64
	Title       string
	Author      string
	ISBN        string
	Category    string
	Pages       int
	Description string
	TotalCopies int // 0 keeps the current value
}

// --- UseCase Outputs ---

type CreateBookOutput struct {
	Book model.Book
}

type ListBooksOutput struct {
	Books  []model.Book
	Total  int
	Limit  int
	Offset int
}

type DetailBookOutput struct {
	Book model.Book
}

type UpdateBookOutput struct {
	Book model.Book
}
