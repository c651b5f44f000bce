package usecase

import (
	"library-management-system/internal/book/repository"
	"library-management-system/pkg/log"
	"library-management-system/pkg/postgres"
)

// implUseCase is the private implementation of book.UseCase.
type implUseCase struct {
	repo repository.Repository
	tx   postgres.TxManager
	l    log.Logger
}

// New creates a new book UseCase implementation.
func New(repo repository.Repository, tx postgres.TxManager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		tx:   tx,
		l:    l,
	}
}
