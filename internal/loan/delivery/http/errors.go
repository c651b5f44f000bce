package http

import (
	"net/http"

	"library-management-system/internal/book"
	"library-management-system/internal/loan"
	"library-management-system/internal/member"
	pkgErrors "library-management-system/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors. Every
// expected business outcome gets a distinct message so the client can tell
// "no copies available" apart from "already returned". Anything unmapped,
// including a ledger invariant violation, surfaces as an internal error.
func (h *handler) mapError(err error) error {
	switch err {
	case loan.ErrInvalidBookID, loan.ErrInvalidMemberID, loan.ErrInvalidLoanID:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case book.ErrBookNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "book not found")
	case member.ErrMemberNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "member not found")
	case loan.ErrLoanNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "loan not found")
	case book.ErrNoCopiesAvailable:
		return pkgErrors.NewHTTPError(http.StatusConflict, "no copies available")
	case loan.ErrAlreadyReturned:
		return pkgErrors.NewHTTPError(http.StatusConflict, "book already returned")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
