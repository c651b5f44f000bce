package http

import (
	"library-management-system/internal/book"
	"library-management-system/pkg/log"
)

type handler struct {
	l  log.Logger
	uc book.UseCase
}

// New creates a new HTTP handler for the book domain.
func New(l log.Logger, uc book.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
