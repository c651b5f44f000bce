package usecase

import (
	"library-management-system/internal/member/repository"
	"library-management-system/pkg/log"
)

// implUseCase is the private implementation of member.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new member UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

// coalesce returns the first non-empty string for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
