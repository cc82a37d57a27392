package branches

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"branchaudit/internal/models"
)

// DefaultFiles are the Colorado listing files, relative to the region directory.
// The metro file and the electrical trade files overlap by design.
var DefaultFiles = []string{
	"denver-metro.json",
	"electrical/denver-metro.json",
	"electrical/front-range-north.json",
	"electrical/pueblo-south.json",
	"electrical/colorado-springs-metro.json",
	"electrical/boulder-broomfield-longmont.json",
}

// Source is a listing file that exists on disk
type Source struct {
	// Path is usable with os.Open
	Path string
	// Display is Path relative to the data root, forward-slashed
	Display string
}

// Locate resolves files under baseDir in order, skipping any that are absent.
// displayPrefix is prepended to each relative path for reporting.
func Locate(baseDir, displayPrefix string, files []string) ([]Source, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBaseDirNotFound, baseDir)
		}
		return nil, fmt.Errorf("stat %s: %w", baseDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrBaseDirNotFound, baseDir)
	}

	sources := make([]Source, 0, len(files))
	for _, rel := range files {
		path := filepath.Join(baseDir, filepath.FromSlash(rel))
		fi, err := os.Stat(path)
		if err != nil || fi.IsDir() {
			continue
		}
		display := rel
		if displayPrefix != "" {
			display = displayPrefix + "/" + rel
		}
		sources = append(sources, Source{Path: path, Display: display})
	}
	return sources, nil
}

// Load decodes a single listing file. The whole file must be one JSON
// document; trailing content is a parse error.
func Load(path string) (*models.BranchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read listing %s: %w", path, err)
	}

	file := &models.BranchFile{}
	if err := json.Unmarshal(data, file); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return file, nil
}
