package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-management-system/internal/model"
	pkgErrors "library-management-system/pkg/errors"
	"library-management-system/pkg/response"
)

// Identity resolves the caller from the trusted proxy headers and stores the
// scope in the request context. Requests without an identity proceed as the
// member role so read endpoints stay open behind the gateway.
func (m Middleware) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			ActorID: c.GetHeader("X-Actor-ID"),
			Role:    c.GetHeader("X-Actor-Role"),
		}
		if sc.Role == "" {
			sc.Role = model.RoleMember
		}

		ctx := model.SetScopeToContext(c.Request.Context(), sc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireLibrarian rejects callers whose role cannot manage loans or the
// catalog. It must run after Identity.
func (m Middleware) RequireLibrarian() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := model.GetScopeFromContext(c.Request.Context())
		if !ok || !sc.CanManageLoans() {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusForbidden, "insufficient role"))
			c.Abort()
			return
		}

		c.Next()
	}
}
