package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	jobHTTP "proxy-jobs-export/internal/job/delivery/http"
)

// registerJobDomain registers /api/v1/exports.
//
// The handler is wired in main:
//  1. Source:      src := clickup.New(client, l)
//  2. UseCase:     uc := usecase.New(l, src, dateMath, cfg)
//  3. HTTP Handler: h := jobHTTP.New(l, uc, publisher, cfg)
func (srv HTTPServer) registerJobDomain(ctx context.Context, api *gin.RouterGroup) {
	jobHTTP.RegisterRoutes(api, srv.jobHandler, srv.middleware)
	srv.l.Infof(ctx, "Job export routes registered at /api/v1/exports")
}
