package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookRepo "library-management-system/internal/book/repository/postgre"
	"library-management-system/internal/loan"
	loanHTTP "library-management-system/internal/loan/delivery/http"
	loanRepo "library-management-system/internal/loan/repository/postgre"
	loanUC "library-management-system/internal/loan/usecase"
	memberRepo "library-management-system/internal/member/repository/postgre"
	"library-management-system/internal/middleware"
	"library-management-system/pkg/postgres"
)

// setupLoanDomain initializes the loan domain and registers its routes. The
// loan use case coordinates the loan store and the book availability ledger,
// so it gets repositories from both domains plus the transaction manager.
func (srv HTTPServer) setupLoanDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	loans := loanRepo.New(srv.postgresDB, srv.l)
	books := bookRepo.New(srv.postgresDB, srv.l)
	members := memberRepo.New(srv.postgresDB, srv.l)
	tx := postgres.NewTxManager(srv.postgresDB)

	uc := loanUC.New(loan.Config{Period: srv.loanPeriod}, loans, books, members, tx, srv.l)

	h := loanHTTP.New(srv.l, uc)

	loanHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Loan domain registered")
	return nil
}
