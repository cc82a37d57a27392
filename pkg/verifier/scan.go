package verifier

import (
	"context"

	"branchaudit/internal/models"
	"branchaudit/pkg/branches"
	"branchaudit/pkg/logger"

	"go.uber.org/zap"
)

// FileSummary is the per-file outcome of the filter step
type FileSummary struct {
	Source        string
	TotalBranches int
	Matches       []models.MatchedEntry
}

// Scan aggregates matches across all located files
type Scan struct {
	// Files lists only files that contained at least one match
	Files         []FileSummary
	Entries       []models.MatchedEntry
	TotalBranches int
	FilesRead     int
}

// ScanSources loads each source in order and aggregates its matches.
// A malformed file aborts the scan.
func ScanSources(ctx context.Context, sources []branches.Source) (*Scan, error) {
	scan := &Scan{}
	for _, src := range sources {
		fileCtx := logger.WithFile(ctx, src.Display)
		log := logger.FromContext(fileCtx)

		file, err := branches.Load(src.Path)
		if err != nil {
			log.Error("failed to load listing file", zap.Error(err))
			return nil, err
		}

		scan.FilesRead++
		scan.TotalBranches += len(file.Branches)

		matched := Filter(src.Display, file.Branches)
		log.Debug("scanned listing file",
			logger.CountField("branches", len(file.Branches)),
			logger.CountField("matches", len(matched)))

		if len(matched) == 0 {
			continue
		}
		scan.Files = append(scan.Files, FileSummary{
			Source:        src.Display,
			TotalBranches: len(file.Branches),
			Matches:       matched,
		})
		scan.Entries = append(scan.Entries, matched...)
	}
	return scan, nil
}
