package core

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Session is everything loaded for one working session. It is created once
// by Load and never modified; a reload creates a new Session.
type Session struct {
	ID       uuid.UUID      `json:"id"`
	File     DataFile       `json:"file"`
	Sheet    string         `json:"sheet"`
	LoadedAt time.Time      `json:"loadedAt"`
	Table    InventoryTable `json:"-"`
	Options  Options        `json:"-"`
}

// LoadConfig controls where Load looks for stock workbooks.
type LoadConfig struct {
	Dir       string          // Directory scanned for workbooks
	Extension string          // File extension, default ".xlsx"
	Policy    SelectionPolicy // How the latest file is chosen
}

// Load runs the session pipeline: pick the latest workbook, parse it,
// validate its header row, and normalize its rows.
//
// Errors match ErrNoDataFileFound, ErrParse or ErrSchemaMismatch via
// errors.Is. A *SchemaMismatchError is reachable via errors.As.
func Load(ctx context.Context, cfg LoadConfig) (*Session, error) {
	start := time.Now()

	file, err := LatestFile(cfg.Dir, cfg.Extension, cfg.Policy)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "loading stock data", "file", file.Name, "policy", string(cfg.Policy))

	sheet, err := ReadWorkbook(file.Path)
	if err != nil {
		return nil, err
	}

	idx, err := ValidateHeaders(sheet.Header, PipeFieldSpecs)
	if err != nil {
		var mismatch *SchemaMismatchError
		if errors.As(err, &mismatch) {
			slog.WarnContext(ctx, "stock workbook schema mismatch",
				"file", file.Name,
				"missing", mismatch.Missing,
			)
		}
		return nil, &LoadError{Kind: ErrSchemaMismatch, Path: file.Path, Err: err}
	}

	table := Normalize(sheet.Rows, idx)

	s := &Session{
		ID:       uuid.New(),
		File:     file,
		Sheet:    sheet.Name,
		LoadedAt: time.Now(),
		Table:    table,
		Options:  BuildOptions(table),
	}

	slog.InfoContext(ctx, "stock data loaded",
		"session_id", s.ID.String(),
		"file", file.Name,
		"sheet", sheet.Name,
		"records", table.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return s, nil
}
