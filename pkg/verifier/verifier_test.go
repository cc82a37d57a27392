package verifier

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"branchaudit/pkg/branches"
	"branchaudit/pkg/config"

	"go.uber.org/multierr"
)

const (
	denverMetro = `{
  "branches": [
    {"name": "KVA Supply Co", "chain": "WESCO", "city": "Denver", "address1": "11198 E 45th Ave",
     "phone": "303-555-0100", "last_verified": "2025-01-10", "operatingName": "KVA Supply Co"},
    {"name": "CED Denver", "chain": "CED", "city": "Denver", "address1": "3000 Walnut St"}
  ]
}`
	denverElectrical = `{
  "branches": [
    {"name": "KVA Supply Co", "chain": "WESCO", "city": "Denver", "address1": "11198 E 45th Ave",
     "phone": "303-555-0100", "operatingName": "KVA Supply Co"}
  ]
}`
	puebloSouth = `{
  "branches": [
    {"name": "WESCO", "chain": "WESCO", "city": "Pueblo", "address1": "115 S Main St", "phone": "719-555-0100"},
    {"name": "Border States", "chain": "Border States", "city": "Pueblo", "address1": "200 W 1st St"}
  ]
}`
)

// newDataset lays out files under <root>/us/co and returns a verifier over it
func newDataset(t *testing.T, files map[string]string) *Verifier {
	t.Helper()
	root := t.TempDir()
	base := filepath.Join(root, "us", "co")
	if err := os.MkdirAll(base, 0755); err != nil {
		t.Fatalf("Failed to create base dir: %v", err)
	}
	for rel, content := range files {
		path := filepath.Join(base, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
	return New(&config.VerifierConfig{DataRoot: root, Region: "us/co"})
}

func TestRunCanonicalDatasetSucceeds(t *testing.T) {
	v := newDataset(t, map[string]string{
		"denver-metro.json":            denverMetro,
		"electrical/denver-metro.json": denverElectrical,
		"electrical/pueblo-south.json": puebloSouth,
	})

	result, err := v.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !result.Success() {
		t.Fatalf("Expected success, got failures: %v", result.Err())
	}
	if result.Err() != nil {
		t.Errorf("Expected nil Err on success, got %v", result.Err())
	}
	if result.Scan.TotalBranches != 5 {
		t.Errorf("Expected 5 branches scanned, got %d", result.Scan.TotalBranches)
	}
	if len(result.Scan.Entries) != 3 {
		t.Errorf("Expected 3 matched entries, got %d", len(result.Scan.Entries))
	}
	if len(result.Unique) != 2 {
		t.Errorf("Expected 2 unique locations, got %d", len(result.Unique))
	}
	if len(result.Scan.Files) != 3 {
		t.Fatalf("Expected 3 files with matches, got %d", len(result.Scan.Files))
	}
	if got := result.Scan.Files[1].Source; got != "us/co/electrical/denver-metro.json" {
		t.Errorf("Expected files in fixed list order, got %s", got)
	}
}

func TestRunInconsistentDuplicateFails(t *testing.T) {
	v := newDataset(t, map[string]string{
		"denver-metro.json": denverMetro,
		"electrical/denver-metro.json": `{"branches":[
			{"name":"Other Co","chain":"WESCO","city":"Denver","address1":"11198 E 45th Ave"}]}`,
		"electrical/pueblo-south.json": puebloSouth,
	})

	result, err := v.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Success() {
		t.Fatal("Expected failure for inconsistent Denver entries")
	}

	errs := multierr.Errors(result.Err())
	if len(errs) != 1 {
		t.Fatalf("Expected exactly one failing check, got %v", errs)
	}
	var checkErr *CheckError
	if !errors.As(errs[0], &checkErr) || checkErr.Check != "denver-consistency" {
		t.Errorf("Expected denver-consistency failure, got %v", errs[0])
	}
	if !errors.Is(result.Err(), ErrCheckFailed) {
		t.Error("Expected combined error to match ErrCheckFailed")
	}
}

func TestRunReportsEveryFailure(t *testing.T) {
	v := newDataset(t, map[string]string{
		"electrical/front-range-north.json": `{"branches":[
			{"name":"WESCO","chain":"WESCO","city":"Fort Collins","address1":"133 Commerce Dr"},
			{"name":"WESCO","chain":"WESCO","city":"Denver","address1":"6883 E 47th Ave Dr"},
			{"name":"WESCO","chain":"WESCO","city":"Aurora","address1":"756 S Jason St"}]}`,
	})

	result, err := v.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// unique count, Denver presence, Pueblo, and the three removed addresses
	if got := len(multierr.Errors(result.Err())); got != 6 {
		t.Errorf("Expected 6 failing checks, got %d: %v", got, result.Err())
	}
	if got := result.Counts()[StatusSkip]; got != 1 {
		t.Errorf("Expected the consistency check to be skipped, got %d skips", got)
	}
}

func TestRunNoInputFiles(t *testing.T) {
	v := newDataset(t, nil)

	result, err := v.Run(context.Background())
	if !errors.Is(err, ErrNoInputFiles) {
		t.Fatalf("Expected ErrNoInputFiles, got %v", err)
	}
	if result != nil {
		t.Error("Expected no result on environment error")
	}
}

func TestRunMissingBaseDir(t *testing.T) {
	v := New(&config.VerifierConfig{DataRoot: filepath.Join(t.TempDir(), "absent"), Region: "us/co"})

	_, err := v.Run(context.Background())
	if !errors.Is(err, branches.ErrBaseDirNotFound) {
		t.Fatalf("Expected ErrBaseDirNotFound, got %v", err)
	}
}

func TestRunMalformedJSONAborts(t *testing.T) {
	v := newDataset(t, map[string]string{
		"denver-metro.json":            denverMetro,
		"electrical/pueblo-south.json": `{"branches": [ {"name": "WESCO",`,
	})

	_, err := v.Run(context.Background())
	var parseErr *branches.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected *branches.ParseError, got %v", err)
	}
	if filepath.Base(parseErr.Path) != "pueblo-south.json" {
		t.Errorf("Expected parse error for pueblo-south.json, got %s", parseErr.Path)
	}
}

func TestRunCountsFilesWithoutMatches(t *testing.T) {
	v := newDataset(t, map[string]string{
		"denver-metro.json": denverMetro,
		"electrical/boulder-broomfield-longmont.json": `{"branches":[
			{"name":"CED Boulder","chain":"CED","city":"Boulder","address1":"1 Pearl St"}]}`,
		"electrical/colorado-springs-metro.json": `{}`,
	})

	result, err := v.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Scan.FilesRead != 3 {
		t.Errorf("Expected 3 files read, got %d", result.Scan.FilesRead)
	}
	if len(result.Scan.Files) != 1 {
		t.Errorf("Expected only files with matches listed, got %d", len(result.Scan.Files))
	}
	if result.Scan.TotalBranches != 3 {
		t.Errorf("Expected 3 branches scanned, got %d", result.Scan.TotalBranches)
	}
}
