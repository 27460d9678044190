package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"proxy-jobs-export/config"
	"proxy-jobs-export/internal/export"
	"proxy-jobs-export/internal/job"
	"proxy-jobs-export/internal/job/repository/clickup"
	"proxy-jobs-export/internal/job/usecase"
	"proxy-jobs-export/internal/model"
	"proxy-jobs-export/pkg/datemath"
	"proxy-jobs-export/pkg/gsheets"
	"proxy-jobs-export/pkg/log"
)

const (
	formatXLSX = "xlsx"
	formatCSV  = "csv"
	formatAll  = "all"
)

type runOptions struct {
	format    string
	outDir    string
	workspace string
	space     string
	publish   bool
	preview   bool
}

func runCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build the job rows once and write the export files",
		Long: `Scan every folder of the configured ClickUp space, build one row per job
number and write the export.

Examples:
  export run --format xlsx --out ./out
  export run --format all --space "ACTIVE Proxy Efforts" --publish`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatXLSX, "output format (xlsx, csv or all)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&opts.workspace, "workspace", "", "workspace name (defaults to config)")
	cmd.Flags().StringVar(&opts.space, "space", "", "space name (defaults to config)")
	cmd.Flags().BoolVar(&opts.publish, "publish", false, "also publish the rows to Google Sheets")
	cmd.Flags().BoolVar(&opts.preview, "preview", true, "print the first rows")

	return cmd
}

func runExport(parent context.Context, opts runOptions) error {
	if opts.format != formatXLSX && opts.format != formatCSV && opts.format != formatAll {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	uc, err := newJobUseCase(cfg, logger)
	if err != nil {
		return err
	}

	out, err := uc.Build(ctx, job.BuildInput{WorkspaceName: opts.workspace, SpaceName: opts.space})
	if err != nil {
		return err
	}

	exportOpt := export.Options{IncludeAdjournment: cfg.Export.IncludeAdjournment}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var written []string
	if opts.format == formatXLSX || opts.format == formatAll {
		path := filepath.Join(opts.outDir, cfg.Export.FileName+".xlsx")
		if err := writeFile(path, func(f *os.File) error { return export.WriteXLSX(f, out.Records, exportOpt) }); err != nil {
			return err
		}
		written = append(written, path)
	}
	if opts.format == formatCSV || opts.format == formatAll {
		path := filepath.Join(opts.outDir, cfg.Export.FileName+".csv")
		if err := writeFile(path, func(f *os.File) error { return export.WriteCSV(f, out.Records, exportOpt) }); err != nil {
			return err
		}
		written = append(written, path)
	}

	fmt.Printf("Built %d rows from %q -> %q\n", len(out.Records), out.Workspace.Name, out.Space.Name)
	for _, path := range written {
		fmt.Printf("Wrote %s\n", path)
	}

	if opts.publish {
		if err := publish(ctx, cfg, out.Records, exportOpt); err != nil {
			return err
		}
	}

	if opts.preview {
		printPreview(out.Records, exportOpt, cfg.Export.PreviewRows)
	}
	return nil
}

func newJobUseCase(cfg *config.Config, logger log.Logger) (job.UseCase, error) {
	dateMathParser, err := datemath.NewParser(cfg.Extract.Timezone)
	if err != nil {
		return nil, err
	}

	client, err := clickup.NewClient(cfg.ClickUp.Token, logger)
	if err != nil {
		return nil, err
	}
	client.
		WithBaseURL(cfg.ClickUp.BaseURL).
		WithTimeout(cfg.ClickUp.Timeout).
		WithPageSize(cfg.ClickUp.PageSize).
		WithRateLimit(cfg.ClickUp.RequestsPerMinute).
		WithBackoff(cfg.ClickUp.BackoffBase, cfg.ClickUp.BackoffMax)

	return usecase.New(logger, clickup.New(client, logger), dateMathParser, usecase.Config{
		WorkspaceName: cfg.ClickUp.WorkspaceName,
		SpaceName:     cfg.ClickUp.SpaceName,
		StrictLabels:  cfg.Extract.StrictLabels,
		SkipNames:     cfg.Extract.SkipNames,
	}), nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func publish(ctx context.Context, cfg *config.Config, records []model.JobRecord, opt export.Options) error {
	if cfg.GoogleSheets.CredentialsPath == "" || cfg.GoogleSheets.SpreadsheetID == "" {
		return fmt.Errorf("--publish needs google_sheets.credentials_path and google_sheets.spreadsheet_id")
	}

	client, err := gsheets.NewClientFromCredentialsFile(ctx, cfg.GoogleSheets.CredentialsPath)
	if err != nil {
		return err
	}

	res, err := client.Publish(ctx, gsheets.PublishRequest{
		SpreadsheetID: cfg.GoogleSheets.SpreadsheetID,
		SheetName:     cfg.GoogleSheets.SheetName,
		Rows:          export.Table(records, opt),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Published %d rows to %s\n", res.UpdatedRows, res.UpdatedRange)
	return nil
}

func printPreview(records []model.JobRecord, opt export.Options, limit int) {
	if limit <= 0 || limit > len(records) {
		limit = len(records)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	table := export.Table(records[:limit], opt)
	for _, row := range table {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
}
