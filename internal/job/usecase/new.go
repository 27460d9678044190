package usecase

import (
	"strings"
	"time"

	"proxy-jobs-export/internal/extract"
	"proxy-jobs-export/internal/job"
	"proxy-jobs-export/internal/job/repository"
	"proxy-jobs-export/pkg/datemath"
	pkgLog "proxy-jobs-export/pkg/log"
)

// Config holds the build defaults.
type Config struct {
	WorkspaceName string
	SpaceName     string
	StrictLabels  bool
	SkipNames     []string         // job names dropped from the output, compared uppercased
	Clock         func() time.Time // defaults to time.Now
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Source
	dateMath *datemath.Parser
	matcher  *extract.Matcher
	selector *extract.Selector
	defaults job.BuildInput
	skip     map[string]bool
	now      func() time.Time
}

// New creates a new job UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Source,
	dateMath *datemath.Parser,
	cfg Config,
) job.UseCase {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}

	skip := make(map[string]bool, len(cfg.SkipNames))
	for _, name := range cfg.SkipNames {
		if n := strings.ToUpper(strings.TrimSpace(name)); n != "" {
			skip[n] = true
		}
	}

	isDate := func(s string) bool {
		_, ok := dateMath.ParseText(s, now())
		return ok
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		matcher:  extract.NewMatcher(cfg.StrictLabels, isDate),
		selector: extract.NewSelector(dateMath),
		defaults: job.BuildInput{
			WorkspaceName: cfg.WorkspaceName,
			SpaceName:     cfg.SpaceName,
		},
		skip: skip,
		now:  now,
	}
}
