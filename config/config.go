package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Proxy jobs export specifics
	ClickUp      ClickUpConfig
	Extract      ExtractConfig
	Export       ExportConfig
	GoogleSheets GoogleSheetsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port               int
	Mode               string
	BuildRateLimitPerM int      // builds per minute per client, 0 disables
	TrustedProxies     []string // peers allowed to set X-Forwarded-For
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ClickUpConfig struct {
	Token             string
	BaseURL           string
	WorkspaceName     string
	SpaceName         string
	PageSize          int
	RequestsPerMinute int
	BackoffBase       time.Duration
	BackoffMax        time.Duration
	Timeout           time.Duration
}

type ExtractConfig struct {
	Timezone     string
	StrictLabels bool
	SkipNames    []string
}

type ExportConfig struct {
	FileName           string // without extension
	PreviewRows        int
	IncludeAdjournment bool
	CacheTTL           time.Duration
	CacheSize          int
}

type GoogleSheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	SheetName       string
}

// ErrMissingToken is returned when no ClickUp token is configured.
var ErrMissingToken = errors.New("clickup token is required (set CLICKUP_TOKEN or clickup.token)")

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.Reset()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.BuildRateLimitPerM = viper.GetInt("http_server.build_rate_limit_per_min")
	cfg.HTTPServer.TrustedProxies = getList("http_server.trusted_proxies")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// ClickUp
	cfg.ClickUp.Token = viper.GetString("clickup.token")
	cfg.ClickUp.BaseURL = viper.GetString("clickup.base_url")
	cfg.ClickUp.WorkspaceName = viper.GetString("clickup.workspace_name")
	cfg.ClickUp.SpaceName = viper.GetString("clickup.space_name")
	if ws := viper.GetString("clickup_workspace"); ws != "" {
		cfg.ClickUp.WorkspaceName = ws
	}
	if space := viper.GetString("clickup_space"); space != "" {
		cfg.ClickUp.SpaceName = space
	}
	cfg.ClickUp.PageSize = viper.GetInt("clickup.page_size")
	cfg.ClickUp.RequestsPerMinute = viper.GetInt("clickup.requests_per_minute")
	cfg.ClickUp.BackoffBase = viper.GetDuration("clickup.backoff_base")
	cfg.ClickUp.BackoffMax = viper.GetDuration("clickup.backoff_max")
	cfg.ClickUp.Timeout = viper.GetDuration("clickup.timeout")

	// Extraction
	cfg.Extract.Timezone = viper.GetString("extract.timezone")
	if tz := viper.GetString("timezone"); tz != "" {
		cfg.Extract.Timezone = tz
	}
	cfg.Extract.StrictLabels = viper.GetBool("extract.strict_labels")
	cfg.Extract.SkipNames = getList("extract.skip_names")

	// Export
	cfg.Export.FileName = viper.GetString("export.file_name")
	cfg.Export.PreviewRows = viper.GetInt("export.preview_rows")
	cfg.Export.IncludeAdjournment = viper.GetBool("export.include_adjournment")
	cfg.Export.CacheTTL = viper.GetDuration("export.cache_ttl")
	cfg.Export.CacheSize = viper.GetInt("export.cache_size")

	// Google Sheets (optional)
	cfg.GoogleSheets.CredentialsPath = viper.GetString("google_sheets.credentials_path")
	if creds := viper.GetString("google_sheets_credentials"); creds != "" {
		cfg.GoogleSheets.CredentialsPath = creds
	}
	cfg.GoogleSheets.SpreadsheetID = viper.GetString("google_sheets.spreadsheet_id")
	cfg.GoogleSheets.SheetName = viper.GetString("google_sheets.sheet_name")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.build_rate_limit_per_min", 6)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("clickup.base_url", "https://api.clickup.com/api/v2")
	viper.SetDefault("clickup.workspace_name", "Fund Solution Workspace")
	viper.SetDefault("clickup.space_name", "ACTIVE Proxy Efforts")
	viper.SetDefault("clickup.page_size", 100)
	viper.SetDefault("clickup.requests_per_minute", 90)
	viper.SetDefault("clickup.backoff_base", "1s")
	viper.SetDefault("clickup.backoff_max", "10s")
	viper.SetDefault("clickup.timeout", "60s")

	viper.SetDefault("extract.timezone", "America/New_York")
	viper.SetDefault("extract.strict_labels", false)
	viper.SetDefault("extract.skip_names", []string{"PROJECT LIST TEMPLATE"})

	viper.SetDefault("export.file_name", "ACTIVE_Proxy_Jobs")
	viper.SetDefault("export.preview_rows", 50)
	viper.SetDefault("export.include_adjournment", false)
	viper.SetDefault("export.cache_ttl", "1h")
	viper.SetDefault("export.cache_size", 32)

	viper.SetDefault("google_sheets.sheet_name", "Jobs")
}

// getList reads a list that may come from YAML or from a comma-separated env var.
func getList(key string) []string {
	raw, ok := viper.Get(key).(string)
	if !ok {
		return viper.GetStringSlice(key)
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// validate rejects configurations that cannot start a build.
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.ClickUp.Token) == "" {
		return ErrMissingToken
	}
	if _, err := time.LoadLocation(cfg.Extract.Timezone); err != nil {
		return fmt.Errorf("invalid extract.timezone %q: %w", cfg.Extract.Timezone, err)
	}
	if cfg.ClickUp.PageSize <= 0 {
		return fmt.Errorf("clickup.page_size must be positive, got %d", cfg.ClickUp.PageSize)
	}
	if cfg.ClickUp.BackoffBase <= 0 || cfg.ClickUp.BackoffMax < cfg.ClickUp.BackoffBase {
		return fmt.Errorf("invalid clickup backoff %s..%s", cfg.ClickUp.BackoffBase, cfg.ClickUp.BackoffMax)
	}
	return nil
}
