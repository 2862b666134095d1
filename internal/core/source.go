package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// SelectionPolicy decides which data file counts as the latest.
type SelectionPolicy string

const (
	// SelectByName sorts file names descending and takes the first. It only
	// finds the newest file when names sort chronologically, e.g.
	// "2025-01-31.xlsx".
	SelectByName SelectionPolicy = "name"

	// SelectByModTime takes the most recently modified file. Ties are broken
	// by name, descending.
	SelectByModTime SelectionPolicy = "mtime"
)

// DefaultExtension is the spreadsheet extension scanned for by default.
const DefaultExtension = ".xlsx"

// ParseSelectionPolicy converts a config value to a SelectionPolicy.
func ParseSelectionPolicy(s string) (SelectionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SelectByName):
		return SelectByName, nil
	case string(SelectByModTime):
		return SelectByModTime, nil
	default:
		return "", fmt.Errorf("unknown selection policy %q (want name or mtime)", s)
	}
}

// DataFile identifies the workbook a session was loaded from.
type DataFile struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	ModTime time.Time `json:"modTime"`
}

// DateLabel returns the file name up to its first dot. Stock files are
// named after the day they describe, so this doubles as the stock date.
func (f DataFile) DateLabel() string {
	if i := strings.Index(f.Name, "."); i >= 0 {
		return f.Name[:i]
	}
	return f.Name
}

// LatestFile scans dir (non-recursively) for regular files ending in ext,
// compared case-insensitively, and returns the latest one under policy.
// Office lock files ("~$...") are ignored.
//
// Returns an error matching ErrNoDataFileFound when nothing matches.
func LatestFile(dir, ext string, policy SelectionPolicy) (DataFile, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	ext = strings.ToLower(ext)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return DataFile{}, &LoadError{Kind: ErrNoDataFileFound, Path: dir, Err: err}
	}

	var files []DataFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, "~$") {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(name), ext) {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, DataFile{
			Name:    name,
			Path:    filepath.Join(dir, name),
			ModTime: info.ModTime(),
		})
	}

	if len(files) == 0 {
		return DataFile{}, &LoadError{Kind: ErrNoDataFileFound, Path: dir}
	}

	switch policy {
	case SelectByModTime:
		sort.Slice(files, func(i, j int) bool {
			if !files[i].ModTime.Equal(files[j].ModTime) {
				return files[i].ModTime.After(files[j].ModTime)
			}
			return files[i].Name > files[j].Name
		})
	default:
		sort.Slice(files, func(i, j int) bool {
			return files[i].Name > files[j].Name
		})
	}

	return files[0], nil
}
