package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-management-system/internal/book"
	bookRepo "library-management-system/internal/book/repository"
	"library-management-system/internal/loan"
	loanRepo "library-management-system/internal/loan/repository"
	"library-management-system/internal/loan/usecase"
	"library-management-system/internal/member"
	memberRepo "library-management-system/internal/member/repository"
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

// fakeTxManager serializes units of work the way row locks do in Postgres:
// one transaction at a time, so a racing borrow observes the committed state
// of the previous one.
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

// fakeBookRepo keeps books in memory and enforces the same counter guards as
// the SQL ledger.
type fakeBookRepo struct {
	mu    sync.Mutex
	books map[int64]model.Book
}

func newFakeBookRepo(books ...model.Book) *fakeBookRepo {
	f := &fakeBookRepo{books: make(map[int64]model.Book)}
	for _, b := range books {
		f.books[b.ID] = b
	}
	return f
}

func (f *fakeBookRepo) CreateBook(ctx context.Context, opt bookRepo.CreateBookOptions) (model.Book, error) {
	return model.Book{}, nil
}

func (f *fakeBookRepo) GetOneBook(ctx context.Context, opt bookRepo.GetOneBookOptions) (model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.books[opt.ID], nil
}

func (f *fakeBookRepo) ListBooks(ctx context.Context, opt bookRepo.ListBooksOptions) ([]model.Book, int, error) {
	return nil, 0, nil
}

func (f *fakeBookRepo) UpdateBook(ctx context.Context, opt bookRepo.UpdateBookOptions) (model.Book, error) {
	return model.Book{}, nil
}

func (f *fakeBookRepo) SetBookStatus(ctx context.Context, id int64, status model.BookStatus) error {
	return nil
}

func (f *fakeBookRepo) DecrementAvailable(ctx context.Context, bookID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.books[bookID]
	if b.Status != model.BookStatusActive || b.AvailableCopies <= 0 {
		return book.ErrNoCopiesAvailable
	}
	b.AvailableCopies--
	f.books[bookID] = b
	return nil
}

func (f *fakeBookRepo) IncrementAvailable(ctx context.Context, bookID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.books[bookID]
	if b.AvailableCopies >= b.TotalCopies {
		return book.ErrCopiesExceedTotal
	}
	b.AvailableCopies++
	f.books[bookID] = b
	return nil
}

func (f *fakeBookRepo) available(bookID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.books[bookID].AvailableCopies
}

type fakeMemberRepo struct {
	members map[int64]model.Member
}

func newFakeMemberRepo(members ...model.Member) *fakeMemberRepo {
	f := &fakeMemberRepo{members: make(map[int64]model.Member)}
	for _, m := range members {
		f.members[m.ID] = m
	}
	return f
}

func (f *fakeMemberRepo) CreateMember(ctx context.Context, opt memberRepo.CreateMemberOptions) (model.Member, error) {
	return model.Member{}, nil
}

func (f *fakeMemberRepo) GetOneMember(ctx context.Context, opt memberRepo.GetOneMemberOptions) (model.Member, error) {
	return f.members[opt.ID], nil
}

func (f *fakeMemberRepo) ListMembers(ctx context.Context, opt memberRepo.ListMembersOptions) ([]model.Member, int, error) {
	return nil, 0, nil
}

func (f *fakeMemberRepo) UpdateMember(ctx context.Context, opt memberRepo.UpdateMemberOptions) (model.Member, error) {
	return model.Member{}, nil
}

func (f *fakeMemberRepo) DeleteMember(ctx context.Context, id int64) error {
	return nil
}

type fakeLoanRepo struct {
	mu     sync.Mutex
	nextID int64
	loans  map[int64]model.Loan

	rows  []loanRepo.LoanRow
	stats loanRepo.Stats
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{nextID: 1, loans: make(map[int64]model.Loan)}
}

func (f *fakeLoanRepo) CreateLoan(ctx context.Context, opt loanRepo.CreateLoanOptions) (model.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l := model.Loan{
		ID:         f.nextID,
		BookID:     opt.BookID,
		MemberID:   opt.MemberID,
		BorrowedAt: opt.BorrowedAt,
		DueAt:      opt.DueAt,
		Status:     model.LoanStatusBorrowed,
	}
	f.loans[l.ID] = l
	f.nextID++
	return l, nil
}

func (f *fakeLoanRepo) GetOneLoan(ctx context.Context, opt loanRepo.GetOneLoanOptions) (model.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loans[opt.ID], nil
}

func (f *fakeLoanRepo) MarkReturned(ctx context.Context, opt loanRepo.MarkReturnedOptions) (model.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l := f.loans[opt.ID]
	returnedAt := opt.ReturnedAt
	l.ReturnedAt = &returnedAt
	l.Status = model.LoanStatusReturned
	f.loans[opt.ID] = l
	return l, nil
}

func (f *fakeLoanRepo) ListLoans(ctx context.Context, opt loanRepo.ListLoansOptions) ([]loanRepo.LoanRow, int, error) {
	return f.rows, len(f.rows), nil
}

func (f *fakeLoanRepo) GetStats(ctx context.Context, opt loanRepo.GetStatsOptions) (loanRepo.Stats, error) {
	return f.stats, nil
}

// test helpers

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func activeBook(id int64, available, total int) model.Book {
	return model.Book{
		ID:              id,
		Title:           "The Go Programming Language",
		TotalCopies:     total,
		AvailableCopies: available,
		Status:          model.BookStatusActive,
	}
}

func newLoanUC(loans *fakeLoanRepo, books *fakeBookRepo, members *fakeMemberRepo) loan.UseCase {
	cfg := loan.Config{Now: func() time.Time { return fixedNow }}
	return usecase.New(cfg, loans, books, members, &fakeTxManager{}, &mockLogger{})
}

func TestBorrow(t *testing.T) {
	ctx := context.Background()

	t.Run("success opens a loan and takes a copy", func(t *testing.T) {
		books := newFakeBookRepo(activeBook(1, 2, 3))
		members := newFakeMemberRepo(model.Member{ID: 7, FullName: "Ada Lovelace"})
		loans := newFakeLoanRepo()
		uc := newLoanUC(loans, books, members)

		out, err := uc.Borrow(ctx, loan.BorrowInput{BookID: 1, MemberID: 7})
		require.NoError(t, err)

		assert.Equal(t, int64(1), out.Loan.ID)
		assert.Equal(t, int64(1), out.Loan.BookID)
		assert.Equal(t, int64(7), out.Loan.MemberID)
		assert.Equal(t, model.LoanStatusBorrowed, out.Loan.Status)
		assert.Equal(t, fixedNow, out.Loan.BorrowedAt)
		assert.Equal(t, fixedNow.Add(usecase.DefaultLoanPeriod), out.Loan.DueAt)
		assert.Nil(t, out.Loan.ReturnedAt)
		assert.Equal(t, 1, books.available(1))
	})

	t.Run("configured period drives the due date", func(t *testing.T) {
		books := newFakeBookRepo(activeBook(1, 1, 1))
		members := newFakeMemberRepo(model.Member{ID: 7})
		loans := newFakeLoanRepo()
		cfg := loan.Config{Period: 14 * 24 * time.Hour, Now: func() time.Time { return fixedNow }}
		uc := usecase.New(cfg, loans, books, members, &fakeTxManager{}, &mockLogger{})

		out, err := uc.Borrow(ctx, loan.BorrowInput{BookID: 1, MemberID: 7})
		require.NoError(t, err)
		assert.Equal(t, fixedNow.Add(14*24*time.Hour), out.Loan.DueAt)
	})

	t.Run("rejects missing ids", func(t *testing.T) {
		uc := newLoanUC(newFakeLoanRepo(), newFakeBookRepo(), newFakeMemberRepo())

		_, err := uc.Borrow(ctx, loan.BorrowInput{BookID: 0, MemberID: 7})
		assert.ErrorIs(t, err, loan.ErrInvalidBookID)

		_, err = uc.Borrow(ctx, loan.BorrowInput{BookID: 1, MemberID: 0})
		assert.ErrorIs(t, err, loan.ErrInvalidMemberID)
	})

	t.Run("unknown book", func(t *testing.T) {
		uc := newLoanUC(newFakeLoanRepo(), newFakeBookRepo(), newFakeMemberRepo(model.Member{ID: 7}))

		_, err := uc.Borrow(ctx, loan.BorrowInput{BookID: 99, MemberID: 7})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("retired book is not lendable", func(t *testing.T) {
		retired := activeBook(1, 2, 3)
		retired.Status = model.BookStatusRetired
		uc := newLoanUC(newFakeLoanRepo(), newFakeBookRepo(retired), newFakeMemberRepo(model.Member{ID: 7}))

		_, err := uc.Borrow(ctx, loan.BorrowInput{BookID: 1, MemberID: 7})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("no copies available", func(t *testing.T) {
		books := newFakeBookRepo(activeBook(1, 0, 3))
		loans := newFakeLoanRepo()
		uc := newLoanUC(loans, books, newFakeMemberRepo(model.Member{ID: 7}))

		_, err := uc.Borrow(ctx, loan.BorrowInput{BookID: 1, MemberID: 7})
		assert.ErrorIs(t, err, book.ErrNoCopiesAvailable)
		assert.Empty(t, loans.loans, "no loan row may exist for a refused borrow")
	})

	t.Run("unknown member", func(t *testing.T) {
		books := newFakeBookRepo(activeBook(1, 2, 3))
		uc := newLoanUC(newFakeLoanRepo(), books, newFakeMemberRepo())

		_, err := uc.Borrow(ctx, loan.BorrowInput{BookID: 1, MemberID: 42})
		assert.ErrorIs(t, err, member.ErrMemberNotFound)
		assert.Equal(t, 2, books.available(1), "availability untouched on refusal")
	})
}

func TestReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("success closes the loan and gives the copy back", func(t *testing.T) {
		books := newFakeBookRepo(activeBook(1, 2, 3))
		members := newFakeMemberRepo(model.Member{ID: 7})
		loans := newFakeLoanRepo()
		uc := newLoanUC(loans, books, members)

		borrowed, err := uc.Borrow(ctx, loan.BorrowInput{BookID: 1, MemberID: 7})
		require.NoError(t, err)
		require.Equal(t, 1, books.available(1))

		out, err := uc.Return(ctx, loan.ReturnInput{LoanID: borrowed.Loan.ID})
		require.NoError(t, err)

		assert.Equal(t, model.LoanStatusReturned, out.Loan.Status)
		require.NotNil(t, out.Loan.ReturnedAt)
		assert.Equal(t, fixedNow, *out.Loan.ReturnedAt)
		assert.Equal(t, 2, books.available(1), "round trip restores availability")
	})

	t.Run("rejects missing id", func(t *testing.T) {
		uc := newLoanUC(newFakeLoanRepo(), newFakeBookRepo(), newFakeMemberRepo())

		_, err := uc.Return(ctx, loan.ReturnInput{LoanID: 0})
		assert.ErrorIs(t, err, loan.ErrInvalidLoanID)
	})

	t.Run("unknown loan", func(t *testing.T) {
		uc := newLoanUC(newFakeLoanRepo(), newFakeBookRepo(), newFakeMemberRepo())

		_, err := uc.Return(ctx, loan.ReturnInput{LoanID: 99})
		assert.ErrorIs(t, err, loan.ErrLoanNotFound)
	})

	t.Run("double return is refused without a second increment", func(t *testing.T) {
		books := newFakeBookRepo(activeBook(1, 1, 1))
		loans := newFakeLoanRepo()
		uc := newLoanUC(loans, books, newFakeMemberRepo(model.Member{ID: 7}))

		borrowed, err := uc.Borrow(ctx, loan.BorrowInput{BookID: 1, MemberID: 7})
		require.NoError(t, err)

		_, err = uc.Return(ctx, loan.ReturnInput{LoanID: borrowed.Loan.ID})
		require.NoError(t, err)

		_, err = uc.Return(ctx, loan.ReturnInput{LoanID: borrowed.Loan.ID})
		assert.ErrorIs(t, err, loan.ErrAlreadyReturned)
		assert.Equal(t, 1, books.available(1), "counter must not exceed total copies")
	})
}

func TestConcurrentBorrowLastCopy(t *testing.T) {
	ctx := context.Background()
	books := newFakeBookRepo(activeBook(1, 1, 1))
	loans := newFakeLoanRepo()
	uc := newLoanUC(loans, books, newFakeMemberRepo(
		model.Member{ID: 1}, model.Member{ID: 2}, model.Member{ID: 3}, model.Member{ID: 4},
	))

	const racers = 4
	errs := make(chan error, racers)
	var wg sync.WaitGroup
	for i := 1; i <= racers; i++ {
		wg.Add(1)
		go func(memberID int64) {
			defer wg.Done()
			_, err := uc.Borrow(ctx, loan.BorrowInput{BookID: 1, MemberID: memberID})
			errs <- err
		}(int64(i))
	}
	wg.Wait()
	close(errs)

	var succeeded, refused int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case err == book.ErrNoCopiesAvailable:
			refused++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one racer gets the last copy")
	assert.Equal(t, racers-1, refused)
	assert.Equal(t, 0, books.available(1))
	assert.Len(t, loans.loans, 1)
}

func TestList(t *testing.T) {
	ctx := context.Background()

	overdueLoan := model.Loan{
		ID: 1, BookID: 1, MemberID: 7,
		BorrowedAt: fixedNow.Add(-10 * 24 * time.Hour),
		DueAt:      fixedNow.Add(-3 * 24 * time.Hour),
		Status:     model.LoanStatusBorrowed,
	}
	onTimeLoan := model.Loan{
		ID: 2, BookID: 2, MemberID: 7,
		BorrowedAt: fixedNow.Add(-24 * time.Hour),
		DueAt:      fixedNow.Add(6 * 24 * time.Hour),
		Status:     model.LoanStatusBorrowed,
	}
	lateButReturned := model.Loan{
		ID: 3, BookID: 3, MemberID: 7,
		BorrowedAt: fixedNow.Add(-20 * 24 * time.Hour),
		DueAt:      fixedNow.Add(-13 * 24 * time.Hour),
		Status:     model.LoanStatusReturned,
	}

	loans := newFakeLoanRepo()
	loans.rows = []loanRepo.LoanRow{
		{Loan: overdueLoan, BookTitle: "SICP", MemberName: "Ada"},
		{Loan: onTimeLoan, BookTitle: "TAOCP", MemberName: "Ada"},
		{Loan: lateButReturned, BookTitle: "K&R", MemberName: "Ada"},
	}
	uc := newLoanUC(loans, newFakeBookRepo(), newFakeMemberRepo())

	out, err := uc.List(ctx, loan.ListLoansInput{Limit: 20})
	require.NoError(t, err)
	require.Len(t, out.Loans, 3)

	assert.True(t, out.Loans[0].Overdue, "past due and still borrowed")
	assert.False(t, out.Loans[1].Overdue, "not yet due")
	assert.False(t, out.Loans[2].Overdue, "a returned loan is never overdue")
	assert.Equal(t, "SICP", out.Loans[0].BookTitle)
	assert.Equal(t, "Ada", out.Loans[0].MemberName)
	assert.Equal(t, 3, out.Total)
}

func TestStats(t *testing.T) {
	loans := newFakeLoanRepo()
	loans.stats = loanRepo.Stats{Total: 10, Borrowed: 4, Overdue: 1, Returned: 6, Books: 25, Members: 12}
	uc := newLoanUC(loans, newFakeBookRepo(), newFakeMemberRepo())

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, loan.StatsOutput{
		TotalLoans:    10,
		BorrowedLoans: 4,
		OverdueLoans:  1,
		ReturnedLoans: 6,
		TotalBooks:    25,
		TotalMembers:  12,
	}, out)
}
