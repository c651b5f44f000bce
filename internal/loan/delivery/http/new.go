package http

import (
	"library-management-system/internal/loan"
	"library-management-system/pkg/log"
)

type handler struct {
	l  log.Logger
	uc loan.UseCase
}

// New creates a new HTTP handler for the loan domain.
func New(l log.Logger, uc loan.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
