package http

import (
	"github.com/gin-gonic/gin"

	"library-management-system/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Reads are open
// to any authenticated actor; catalog mutations require librarian or admin.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	books := rg.Group("/books")
	{
		books.GET("", mw.Identity(), h.List)
		books.GET("/:id", mw.Identity(), h.Detail)
		books.POST("", mw.Identity(), mw.RequireLibrarian(), h.Create)
		books.PUT("/:id", mw.Identity(), mw.RequireLibrarian(), h.Update)
		books.DELETE("/:id", mw.Identity(), mw.RequireLibrarian(), h.Retire)
	}
}
