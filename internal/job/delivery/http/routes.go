package http

import (
	"github.com/gin-gonic/gin"

	"proxy-jobs-export/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Builds are rate
// limited per client since each one walks the whole space upstream.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	exports := rg.Group("/exports")
	{
		exports.POST("", mw.RateLimit(), h.Build)
		exports.GET("/:id", h.Detail)
		exports.GET("/:id/xlsx", h.DownloadXLSX)
		exports.GET("/:id/csv", h.DownloadCSV)
		exports.POST("/:id/publish", mw.RateLimit(), h.Publish)
	}
}
