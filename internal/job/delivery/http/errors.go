package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"proxy-jobs-export/internal/job"
	"proxy-jobs-export/internal/job/repository/clickup"
	"proxy-jobs-export/pkg/response"
)

var (
	errExportNotFound     = errors.New("export not found or expired")
	errPublishUnavailable = errors.New("google sheets publishing is not configured")
)

// mapError translates domain and upstream errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	var apiErr *clickup.APIError
	switch {
	case errors.Is(err, job.ErrWorkspaceNotFound),
		errors.Is(err, job.ErrSpaceNotFound),
		errors.Is(err, errExportNotFound):
		response.NotFound(c, err)
	case errors.Is(err, errPublishUnavailable):
		response.Error(c, err, nil)
	case errors.As(err, &apiErr):
		response.BadGateway(c, apiErr)
	default:
		response.InternalError(c, err)
	}
}
