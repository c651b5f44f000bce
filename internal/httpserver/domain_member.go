package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	memberHTTP "library-management-system/internal/member/delivery/http"
	memberRepo "library-management-system/internal/member/repository/postgre"
	memberUC "library-management-system/internal/member/usecase"
	"library-management-system/internal/middleware"
)

// setupMemberDomain initializes the member domain and registers its routes.
func (srv HTTPServer) setupMemberDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := memberRepo.New(srv.postgresDB, srv.l)

	uc := memberUC.New(repo, srv.l)

	h := memberHTTP.New(srv.l, uc)

	memberHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Member domain registered")
	return nil
}
