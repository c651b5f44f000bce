package http

import (
	"net/http"

	"library-management-system/internal/book"
	pkgErrors "library-management-system/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case book.ErrBookNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "book not found")
	case book.ErrInvalidCopies:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "total copies cannot be less than copies on loan")
	case pkgErrors.ErrBadRequest:
		return err
	default:
		return pkgErrors.ErrInternalServerError
	}
}
