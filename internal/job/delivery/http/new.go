package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"proxy-jobs-export/internal/export"
	"proxy-jobs-export/internal/job"
	"proxy-jobs-export/pkg/gsheets"
	"proxy-jobs-export/pkg/log"
)

// Handler is the public interface for the job export HTTP delivery layer.
type Handler interface {
	Build(c *gin.Context)
	Detail(c *gin.Context)
	DownloadXLSX(c *gin.Context)
	DownloadCSV(c *gin.Context)
	Publish(c *gin.Context)
}

// Publisher writes a table to a spreadsheet tab.
type Publisher interface {
	Publish(ctx context.Context, req gsheets.PublishRequest) (*gsheets.PublishResult, error)
}

// Config holds the delivery settings.
type Config struct {
	Export        export.Options
	FileName      string // without extension
	PreviewRows   int
	CacheSize     int
	CacheTTL      time.Duration
	SpreadsheetID string
	SheetName     string
}

type handler struct {
	l         log.Logger
	uc        job.UseCase
	publisher Publisher
	cache     *expirable.LRU[string, exportEntry]
	cfg       Config
	now       func() time.Time
}

// New creates a new HTTP handler for the job domain. publisher may be nil.
func New(l log.Logger, uc job.UseCase, publisher Publisher, cfg Config) Handler {
	if cfg.FileName == "" {
		cfg.FileName = export.DefaultFileName
	}
	if cfg.SheetName == "" {
		cfg.SheetName = export.SheetJobs
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 32
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}

	return &handler{
		l:         l,
		uc:        uc,
		publisher: publisher,
		cache:     expirable.NewLRU[string, exportEntry](cfg.CacheSize, nil, cfg.CacheTTL),
		cfg:       cfg,
		now:       time.Now,
	}
}

// exportEntry is one built export kept for preview and download.
type exportEntry struct {
	ID        string
	CreatedAt time.Time
	Output    job.BuildOutput
}
