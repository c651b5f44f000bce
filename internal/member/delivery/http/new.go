package http

import (
	"library-management-system/internal/member"
	"library-management-system/pkg/log"
)

type handler struct {
	l  log.Logger
	uc member.UseCase
}

// New creates a new HTTP handler for the member domain.
func New(l log.Logger, uc member.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
