package http

import (
	"github.com/gin-gonic/gin"

	"library-management-system/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Membership
// records are administrative data: every route requires librarian or admin.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	members := rg.Group("/members")
	{
		members.POST("", mw.Identity(), mw.RequireLibrarian(), h.Create)
		members.GET("", mw.Identity(), mw.RequireLibrarian(), h.List)
		members.GET("/:id", mw.Identity(), mw.RequireLibrarian(), h.Detail)
		members.PUT("/:id", mw.Identity(), mw.RequireLibrarian(), h.Update)
		members.DELETE("/:id", mw.Identity(), mw.RequireLibrarian(), h.Delete)
	}
}
