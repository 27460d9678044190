package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"proxy-jobs-export/internal/export"
	"proxy-jobs-export/pkg/gsheets"
	"proxy-jobs-export/pkg/log"
	"proxy-jobs-export/pkg/response"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCSV  = "text/csv; charset=utf-8"
)

// Build godoc
// @Summary     Build an export
// @Description Scans the workspace and space, builds the job rows and keeps them for preview and download.
// @Tags        Exports
// @Accept      json
// @Produce     json
// @Param       body body buildReq false "Workspace and space override"
// @Success     201  {object} exportResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Workspace or space not found"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "ClickUp error"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/exports [POST]
func (h *handler) Build(c *gin.Context) {
	id := uuid.NewString()
	ctx := log.WithExportID(c.Request.Context(), id)

	req, err := h.processBuildReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Build(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Build: %v", err)
		h.mapError(c, err)
		return
	}

	entry := exportEntry{ID: id, CreatedAt: h.now(), Output: output}
	h.cache.Add(id, entry)
	h.l.Infof(ctx, "export built: %d rows", len(output.Records))

	response.Created(c, h.newExportResp(entry))
}

// Detail godoc
// @Summary     Get an export
// @Description Returns the row count and a preview of the first rows of a built export.
// @Tags        Exports
// @Produce     json
// @Param       id path string true "Export ID"
// @Success     200 {object} exportResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/exports/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	entry, err := h.processEntry(c)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, h.newExportResp(entry))
}

// DownloadXLSX godoc
// @Summary     Download an export as XLSX
// @Tags        Exports
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       id path string true "Export ID"
// @Success     200 {file} file
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/exports/{id}/xlsx [GET]
func (h *handler) DownloadXLSX(c *gin.Context) {
	ctx := c.Request.Context()

	entry, err := h.processEntry(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	data, err := export.XLSX(entry.Output.Records, h.cfg.Export)
	if err != nil {
		h.l.Errorf(ctx, "export.XLSX: %v", err)
		response.InternalError(c, err)
		return
	}

	h.attachment(c, "xlsx")
	c.Data(http.StatusOK, mimeXLSX, data)
}

// DownloadCSV godoc
// @Summary     Download an export as CSV
// @Tags        Exports
// @Produce     text/csv
// @Param       id path string true "Export ID"
// @Success     200 {file} file
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/exports/{id}/csv [GET]
func (h *handler) DownloadCSV(c *gin.Context) {
	ctx := c.Request.Context()

	entry, err := h.processEntry(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, entry.Output.Records, h.cfg.Export); err != nil {
		h.l.Errorf(ctx, "export.WriteCSV: %v", err)
		response.InternalError(c, err)
		return
	}

	h.attachment(c, "csv")
	c.Data(http.StatusOK, mimeCSV, buf.Bytes())
}

// Publish godoc
// @Summary     Publish an export to Google Sheets
// @Description Replaces the configured sheet tab with the export rows.
// @Tags        Exports
// @Produce     json
// @Param       id path string true "Export ID"
// @Success     200 {object} publishResp
// @Failure     400 {object} response.Resp "Publishing not configured"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/exports/{id}/publish [POST]
func (h *handler) Publish(c *gin.Context) {
	if h.publisher == nil || h.cfg.SpreadsheetID == "" {
		h.mapError(c, errPublishUnavailable)
		return
	}

	entry, err := h.processEntry(c)
	if err != nil {
		h.mapError(c, err)
		return
	}
	ctx := log.WithExportID(c.Request.Context(), entry.ID)

	res, err := h.publisher.Publish(ctx, gsheets.PublishRequest{
		SpreadsheetID: h.cfg.SpreadsheetID,
		SheetName:     h.cfg.SheetName,
		Rows:          export.Table(entry.Output.Records, h.cfg.Export),
	})
	if err != nil {
		h.l.Errorf(ctx, "publisher.Publish: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newPublishResp(res))
}

func (h *handler) attachment(c *gin.Context, ext string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, h.cfg.FileName, ext))
}
