package http

import (
	"time"

	"library-management-system/internal/book"
	"library-management-system/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"        binding:"required,min=1,max=255"`
	Author      string `json:"author"       binding:"required,min=1,max=255"`
	ISBN        string `json:"isbn"         binding:"max=32"`
	Category    string `json:"category"     binding:"max=100"`
	Pages       int    `json:"pages"        binding:"omitempty,min=1"`
	Description string `json:"description"  binding:"max=2000"`
	TotalCopies int    `json:"total_copies" binding:"required,min=1"`
}

func (r createReq) toInput() book.CreateBookInput {
	return book.CreateBookInput{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Category:    r.Category,
		Pages:       r.Pages,
		Description: r.Description,
		TotalCopies: r.TotalCopies,
	}
}

// ---

type listReq struct {
	Search         string `form:"search"`
	IncludeRetired bool   `form:"include_retired"`
	Limit          int    `form:"limit"`
	Offset         int    `form:"offset"`
}

func (r listReq) toInput() book.ListBooksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return book.ListBooksInput{
		Search:         r.Search,
		IncludeRetired: r.IncludeRetired,
		Limit:          limit,
		Offset:         offset,
	}
}

// ---

type updateReq struct {
	ID          int64  `json:"-"` // populated from URI param
	Title       string `json:"title"        binding:"omitempty,min=1,max=255"`
	Author      string `json:"author"       binding:"omitempty,min=1,max=255"`
	ISBN        string `json:"isbn"         binding:"omitempty,max=32"`
	Category    string `json:"category"     binding:"omitempty,max=100"`
	Pages       int    `json:"pages"        binding:"omitempty,min=1"`
	Description string `json:"description"  binding:"omitempty,max=2000"`
	TotalCopies int    `json:"total_copies" binding:"omitempty,min=1"`
}

func (r updateReq) toInput() book.UpdateBookInput {
	return book.UpdateBookInput{
		ID:          r.ID,
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Category:    r.Category,
		Pages:       r.Pages,
		Description: r.Description,
		TotalCopies: r.TotalCopies,
	}
}

// --- Response DTOs ---

type bookResp struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	Category        string    `json:"category"`
	Pages           int       `json:"pages"`
	Description     string    `json:"description"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newBookResp(b model.Book) bookResp {
	return bookResp{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Category:        b.Category,
		Pages:           b.Pages,
		Description:     b.Description,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

type createResp struct {
	Book bookResp `json:"book"`
}

func (h *handler) newCreateResp(out book.CreateBookOutput) createResp {
	return createResp{Book: newBookResp(out.Book)}
}

type listResp struct {
	Books  []bookResp `json:"books"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out book.ListBooksOutput) listResp {
	books := make([]bookResp, len(out.Books))
	for i, b := range out.Books {
		books[i] = newBookResp(b)
	}
	return listResp{
		Books:  books,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Book bookResp `json:"book"`
}

func (h *handler) newDetailResp(out book.DetailBookOutput) detailResp {
	return detailResp{Book: newBookResp(out.Book)}
}

type updateResp struct {
	Book bookResp `json:"book"`
}

func (h *handler) newUpdateResp(out book.UpdateBookOutput) updateResp {
	return updateResp{Book: newBookResp(out.Book)}
}
