package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookHTTP "library-management-system/internal/book/delivery/http"
	bookRepo "library-management-system/internal/book/repository/postgre"
	bookUC "library-management-system/internal/book/usecase"
	"library-management-system/internal/middleware"
	"library-management-system/pkg/postgres"
)

// setupBookDomain initializes the book domain and registers its routes.
//
// Pattern followed by every domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, tx, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupBookDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := bookRepo.New(srv.postgresDB, srv.l)
	tx := postgres.NewTxManager(srv.postgresDB)

	uc := bookUC.New(repo, tx, srv.l)

	h := bookHTTP.New(srv.l, uc)

	bookHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Book domain registered")
	return nil
}
