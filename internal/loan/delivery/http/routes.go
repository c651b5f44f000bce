package http

import (
	"github.com/gin-gonic/gin"

	"library-management-system/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Borrow and
// Return are administrative flows: only librarians and admins may call them.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	loans := rg.Group("/loans")
	{
		loans.POST("/borrow", mw.Identity(), mw.RequireLibrarian(), h.Borrow)
		loans.POST("/return", mw.Identity(), mw.RequireLibrarian(), h.Return)
		loans.GET("", mw.Identity(), h.List)
		loans.GET("/stats", mw.Identity(), h.Stats)
	}
}
