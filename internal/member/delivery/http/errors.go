package http

import (
	"net/http"

	"library-management-system/internal/member"
	pkgErrors "library-management-system/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case member.ErrMemberNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "member not found")
	case pkgErrors.ErrBadRequest:
		return err
	default:
		return pkgErrors.ErrInternalServerError
	}
}
