package usecase_test

import (
	"context"
	"errors"
	"testing"

	"library-management-system/internal/book"
	repo "library-management-system/internal/book/repository"
	"library-management-system/internal/book/usecase"
	"library-management-system/internal/model"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockTxManager struct{}

func (m *mockTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockBookRepo struct {
	fail bool

	books map[int64]model.Book

	gotCreate *repo.CreateBookOptions
	gotUpdate *repo.UpdateBookOptions
	gotStatus *model.BookStatus
	gotList   *repo.ListBooksOptions
}

func (m *mockBookRepo) CreateBook(ctx context.Context, opt repo.CreateBookOptions) (model.Book, error) {
	if m.fail {
		return model.Book{}, errors.New("db error")
	}
	m.gotCreate = &opt
	return model.Book{
		ID:              1,
		Title:           opt.Title,
		Author:          opt.Author,
		TotalCopies:     opt.TotalCopies,
		AvailableCopies: opt.TotalCopies,
		Status:          model.BookStatusActive,
	}, nil
}

func (m *mockBookRepo) GetOneBook(ctx context.Context, opt repo.GetOneBookOptions) (model.Book, error) {
	if m.fail {
		return model.Book{}, errors.New("db error")
	}
	return m.books[opt.ID], nil
}

func (m *mockBookRepo) ListBooks(ctx context.Context, opt repo.ListBooksOptions) ([]model.Book, int, error) {
	m.gotList = &opt
	return nil, 0, nil
}

func (m *mockBookRepo) UpdateBook(ctx context.Context, opt repo.UpdateBookOptions) (model.Book, error) {
	m.gotUpdate = &opt
	return model.Book{
		ID:              opt.ID,
		Title:           opt.Title,
		Author:          opt.Author,
		TotalCopies:     opt.TotalCopies,
		AvailableCopies: opt.AvailableCopies,
		Status:          model.BookStatusActive,
	}, nil
}

func (m *mockBookRepo) SetBookStatus(ctx context.Context, id int64, status model.BookStatus) error {
	m.gotStatus = &status
	return nil
}

func (m *mockBookRepo) DecrementAvailable(ctx context.Context, bookID int64) error { return nil }
func (m *mockBookRepo) IncrementAvailable(ctx context.Context, bookID int64) error { return nil }

func newUC(r *mockBookRepo) book.UseCase {
	return usecase.New(r, &mockTxManager{}, &mockLogger{})
}

func TestCreate(t *testing.T) {
	t.Run("every copy starts available", func(t *testing.T) {
		r := &mockBookRepo{}
		uc := newUC(r)

		out, err := uc.Create(context.Background(), book.CreateBookInput{
			Title:       "The Go Programming Language",
			Author:      "Donovan & Kernighan",
			TotalCopies: 3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Book.AvailableCopies != 3 {
			t.Errorf("expected 3 available copies, got %d", out.Book.AvailableCopies)
		}
		if r.gotCreate.TotalCopies != 3 {
			t.Errorf("expected 3 total copies passed through, got %d", r.gotCreate.TotalCopies)
		}
	})

	t.Run("repo failure surfaces", func(t *testing.T) {
		uc := newUC(&mockBookRepo{fail: true})

		_, err := uc.Create(context.Background(), book.CreateBookInput{Title: "x", TotalCopies: 1})
		if err == nil {
			t.Errorf("expected error")
		}
	})
}

func TestList(t *testing.T) {
	t.Run("hides retired by default", func(t *testing.T) {
		r := &mockBookRepo{}
		uc := newUC(r)

		if _, err := uc.List(context.Background(), book.ListBooksInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.gotList.Status != model.BookStatusActive {
			t.Errorf("expected active-only filter, got %q", r.gotList.Status)
		}
	})

	t.Run("include retired clears the filter", func(t *testing.T) {
		r := &mockBookRepo{}
		uc := newUC(r)

		if _, err := uc.List(context.Background(), book.ListBooksInput{IncludeRetired: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.gotList.Status != "" {
			t.Errorf("expected no status filter, got %q", r.gotList.Status)
		}
	})
}

func TestDetail(t *testing.T) {
	r := &mockBookRepo{books: map[int64]model.Book{1: {ID: 1, Title: "SICP"}}}
	uc := newUC(r)

	out, err := uc.Detail(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Book.Title != "SICP" {
		t.Errorf("expected SICP, got %q", out.Book.Title)
	}

	if _, err := uc.Detail(context.Background(), 99); err != book.ErrBookNotFound {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	// 5 total, 2 on loan
	existing := model.Book{ID: 1, Title: "SICP", TotalCopies: 5, AvailableCopies: 3, Status: model.BookStatusActive}

	t.Run("growing total grows available by the same delta", func(t *testing.T) {
		r := &mockBookRepo{books: map[int64]model.Book{1: existing}}
		uc := newUC(r)

		out, err := uc.Update(context.Background(), book.UpdateBookInput{ID: 1, TotalCopies: 8})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Book.TotalCopies != 8 || out.Book.AvailableCopies != 6 {
			t.Errorf("expected 8/6 copies, got %d/%d", out.Book.TotalCopies, out.Book.AvailableCopies)
		}
	})

	t.Run("shrinking below copies on loan is refused", func(t *testing.T) {
		r := &mockBookRepo{books: map[int64]model.Book{1: existing}}
		uc := newUC(r)

		_, err := uc.Update(context.Background(), book.UpdateBookInput{ID: 1, TotalCopies: 1})
		if err != book.ErrInvalidCopies {
			t.Errorf("expected ErrInvalidCopies, got %v", err)
		}
		if r.gotUpdate != nil {
			t.Errorf("no update may land after a refused edit")
		}
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		r := &mockBookRepo{books: map[int64]model.Book{1: existing}}
		uc := newUC(r)

		out, err := uc.Update(context.Background(), book.UpdateBookInput{ID: 1, Author: "Abelson & Sussman"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Book.Title != "SICP" {
			t.Errorf("title must survive a partial update, got %q", out.Book.Title)
		}
		if out.Book.TotalCopies != 5 || out.Book.AvailableCopies != 3 {
			t.Errorf("copies must survive a partial update, got %d/%d", out.Book.TotalCopies, out.Book.AvailableCopies)
		}
	})

	t.Run("unknown book", func(t *testing.T) {
		r := &mockBookRepo{books: map[int64]model.Book{}}
		uc := newUC(r)

		_, err := uc.Update(context.Background(), book.UpdateBookInput{ID: 9})
		if err != book.ErrBookNotFound {
			t.Errorf("expected ErrBookNotFound, got %v", err)
		}
	})
}

func TestRetire(t *testing.T) {
	r := &mockBookRepo{books: map[int64]model.Book{1: {ID: 1, Status: model.BookStatusActive}}}
	uc := newUC(r)

	if err := uc.Retire(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.gotStatus == nil || *r.gotStatus != model.BookStatusRetired {
		t.Errorf("expected retired status to be written")
	}

	if err := uc.Retire(context.Background(), 99); err != book.ErrBookNotFound {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
}
