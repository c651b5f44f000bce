package postgre

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"

	repo "library-management-system/internal/loan/repository"
	"library-management-system/internal/model"
)

var dialect = goqu.Dialect("postgres")

// baseLoanQuery is the loan history join shared by listing and counting.
func baseLoanQuery(opt repo.ListLoansOptions) *goqu.SelectDataset {
	ds := dialect.
		From(goqu.T("loans").As("t")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("t.book_id").Eq(goqu.I("b.id")))).
		Join(goqu.T("members").As("m"), goqu.On(goqu.I("t.member_id").Eq(goqu.I("m.id"))))

	var conditions []exp.Expression
	if opt.Status != "" {
		conditions = append(conditions, goqu.I("t.status").Eq(string(opt.Status)))
	}
	if opt.BookID != 0 {
		conditions = append(conditions, goqu.I("t.book_id").Eq(opt.BookID))
	}
	if opt.MemberID != 0 {
		conditions = append(conditions, goqu.I("t.member_id").Eq(opt.MemberID))
	}
	if opt.OverdueOnly {
		// Must match model.Loan.OverdueAt: still borrowed and past due.
		conditions = append(conditions,
			goqu.I("t.status").Eq(string(model.LoanStatusBorrowed)),
			goqu.I("t.due_at").Lt(opt.Now),
		)
	}
	if len(conditions) > 0 {
		ds = ds.Where(conditions...)
	}
	return ds
}

// buildListQuery renders the paginated loan history query.
func buildListQuery(opt repo.ListLoansOptions) (string, []any, error) {
	ds := baseLoanQuery(opt).
		Select(
			goqu.I("t.id").As("id"),
			goqu.I("t.book_id").As("book_id"),
			goqu.I("t.member_id").As("member_id"),
			goqu.I("t.borrowed_at").As("borrowed_at"),
			goqu.I("t.due_at").As("due_at"),
			goqu.I("t.returned_at").As("returned_at"),
			goqu.I("t.status").As("status"),
			goqu.I("b.title").As("book_title"),
			goqu.I("m.full_name").As("member_name"),
		).
		Order(goqu.I("t.borrowed_at").Desc(), goqu.I("t.id").Desc())

	if opt.Limit > 0 {
		ds = ds.Limit(uint(opt.Limit))
	}
	if opt.Offset > 0 {
		ds = ds.Offset(uint(opt.Offset))
	}

	return ds.Prepared(true).ToSQL()
}

// buildCountQuery renders the unpaginated total for the same filters.
func buildCountQuery(opt repo.ListLoansOptions) (string, []any, error) {
	return baseLoanQuery(opt).Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
}
