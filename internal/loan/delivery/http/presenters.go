package http

import (
	"time"

	"library-management-system/internal/loan"
	"library-management-system/internal/model"
)

// --- Request DTOs ---

type borrowReq struct {
	BookID   int64 `json:"book_id"   binding:"required,min=1"`
	MemberID int64 `json:"member_id" binding:"required,min=1"`
}

func (r borrowReq) toInput() loan.BorrowInput {
	return loan.BorrowInput{
		BookID:   r.BookID,
		MemberID: r.MemberID,
	}
}

type returnReq struct {
	LoanID int64 `json:"loan_id" binding:"required,min=1"`
}

func (r returnReq) toInput() loan.ReturnInput {
	return loan.ReturnInput{LoanID: r.LoanID}
}

type listReq struct {
	Status   string `form:"status"    binding:"omitempty,oneof=borrowed returned"`
	BookID   int64  `form:"book_id"   binding:"omitempty,min=1"`
	MemberID int64  `form:"member_id" binding:"omitempty,min=1"`
	Overdue  bool   `form:"overdue"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() loan.ListLoansInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return loan.ListLoansInput{
		Status:      model.LoanStatus(r.Status),
		BookID:      r.BookID,
		MemberID:    r.MemberID,
		OverdueOnly: r.Overdue,
		Limit:       limit,
		Offset:      offset,
	}
}

// --- Response DTOs ---

type loanResp struct {
	ID         int64      `json:"id"`
	BookID     int64      `json:"book_id"`
	MemberID   int64      `json:"member_id"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueAt      time.Time  `json:"due_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Status     string     `json:"status"`
}

func newLoanResp(l model.Loan) loanResp {
	return loanResp{
		ID:         l.ID,
		BookID:     l.BookID,
		MemberID:   l.MemberID,
		BorrowedAt: l.BorrowedAt,
		DueAt:      l.DueAt,
		ReturnedAt: l.ReturnedAt,
		Status:     string(l.Status),
	}
}

type borrowResp struct {
	Loan loanResp `json:"loan"`
}

func (h *handler) newBorrowResp(out loan.BorrowOutput) borrowResp {
	return borrowResp{Loan: newLoanResp(out.Loan)}
}

type returnResp struct {
	Loan loanResp `json:"loan"`
}

func (h *handler) newReturnResp(out loan.ReturnOutput) returnResp {
	return returnResp{Loan: newLoanResp(out.Loan)}
}

type loanDetailResp struct {
	loanResp
	BookTitle  string `json:"book_title"`
	MemberName string `json:"member_name"`
	Overdue    bool   `json:"overdue"`
}

type listResp struct {
	Loans  []loanDetailResp `json:"loans"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

func (h *handler) newListResp(out loan.ListLoansOutput) listResp {
	loans := make([]loanDetailResp, len(out.Loans))
	for i, d := range out.Loans {
		loans[i] = loanDetailResp{
			loanResp:   newLoanResp(d.Loan),
			BookTitle:  d.BookTitle,
			MemberName: d.MemberName,
			Overdue:    d.Overdue,
		}
	}
	return listResp{
		Loans:  loans,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
