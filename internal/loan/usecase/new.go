package usecase

import (
	"time"

	bookRepo "library-management-system/internal/book/repository"
	"library-management-system/internal/loan"
	loanRepo "library-management-system/internal/loan/repository"
	memberRepo "library-management-system/internal/member/repository"
	"library-management-system/pkg/log"
	"library-management-system/pkg/postgres"
)

// DefaultLoanPeriod applies when configuration supplies none.
const DefaultLoanPeriod = 7 * 24 * time.Hour

// implUseCase is the private implementation of loan.UseCase. It is the only
// component that touches the loan store and the availability ledger together,
// always inside one transaction from the TxManager.
type implUseCase struct {
	loans   loanRepo.Repository
	books   bookRepo.Repository
	members memberRepo.Repository
	tx      postgres.TxManager
	l       log.Logger

	period time.Duration
	now    func() time.Time
}

// New creates a new loan UseCase implementation.
func New(cfg loan.Config, loans loanRepo.Repository, books bookRepo.Repository, members memberRepo.Repository, tx postgres.TxManager, l log.Logger) *implUseCase {
	period := cfg.Period
	if period <= 0 {
		period = DefaultLoanPeriod
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		loans:   loans,
		books:   books,
		members: members,
		tx:      tx,
		l:       l,
		period:  period,
		now:     now,
	}
}
