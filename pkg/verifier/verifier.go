package verifier

import (
	"context"
	"fmt"
	"path"
	"time"

	"branchaudit/internal/models"
	"branchaudit/pkg/branches"
	"branchaudit/pkg/config"
	"branchaudit/pkg/logger"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Result is the full outcome of one verification run
type Result struct {
	Scan        *Scan
	Unique      []models.MatchedEntry
	Checks      []CheckResult
	StartedAt   time.Time
	CompletedAt time.Time
}

// Success is the conjunction of every check
func (r *Result) Success() bool {
	for _, c := range r.Checks {
		if c.Failed() {
			return false
		}
	}
	return true
}

// Err combines all failing checks, or returns nil on success
func (r *Result) Err() error {
	var err error
	for _, c := range r.Checks {
		if c.Failed() {
			err = multierr.Append(err, &CheckError{Check: c.Name, Message: c.Message})
		}
	}
	return err
}

// Counts returns the number of checks per status
func (r *Result) Counts() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, c := range r.Checks {
		counts[c.Status]++
	}
	return counts
}

// Verifier checks the vendor cleanup of one region's listing files
type Verifier struct {
	cfg   *config.VerifierConfig
	files []string
}

// New creates a verifier over the default Colorado file set
func New(cfg *config.VerifierConfig) *Verifier {
	if cfg == nil {
		cfg = config.NewVerifierConfig()
	}
	return &Verifier{cfg: cfg, files: branches.DefaultFiles}
}

// BaseDir is the directory the listing files are resolved against
func (v *Verifier) BaseDir() string {
	return v.cfg.BaseDir()
}

// Run locates, loads, filters and deduplicates the listings, then evaluates
// every check. Environment problems and malformed JSON are returned as errors
// before any check runs; check failures are reported in the Result.
func (v *Verifier) Run(ctx context.Context) (*Result, error) {
	log := logger.FromContext(ctx)
	result := &Result{StartedAt: time.Now()}

	sources, err := branches.Locate(v.BaseDir(), path.Clean(v.cfg.Region), v.files)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoInputFiles, v.BaseDir())
	}
	log.Info("located listing files",
		zap.String("base_dir", v.BaseDir()),
		logger.CountField("files", len(sources)),
		logger.CountField("expected", len(v.files)))

	scan, err := ScanSources(ctx, sources)
	if err != nil {
		return nil, err
	}
	result.Scan = scan
	result.Unique = Deduplicate(scan.Entries)
	result.Checks = RunChecks(scan.Entries, result.Unique)
	result.CompletedAt = time.Now()

	for _, c := range result.Checks {
		switch c.Status {
		case StatusFail:
			log.Warn("check failed", zap.String("check", c.Name), zap.String("message", c.Message))
		case StatusWarn:
			log.Warn("check warning", zap.String("check", c.Name), zap.String("message", c.Message))
		default:
			log.Debug("check evaluated", zap.String("check", c.Name), zap.String("status", string(c.Status)))
		}
	}

	log.Info("verification finished",
		logger.CountField("total_branches", scan.TotalBranches),
		logger.CountField("matches", len(scan.Entries)),
		logger.CountField("unique_locations", len(result.Unique)),
		zap.Bool("success", result.Success()),
		zap.Duration("duration", result.CompletedAt.Sub(result.StartedAt)))

	return result, nil
}
