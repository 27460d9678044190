package http

import (
	"github.com/gin-gonic/gin"
)

// processBuildReq binds the optional build request body.
func (h *handler) processBuildReq(c *gin.Context) (buildReq, error) {
	var req buildReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processEntry resolves the cached export named by the :id path param.
func (h *handler) processEntry(c *gin.Context) (exportEntry, error) {
	entry, ok := h.cache.Get(c.Param("id"))
	if !ok {
		return exportEntry{}, errExportNotFound
	}
	return entry, nil
}
