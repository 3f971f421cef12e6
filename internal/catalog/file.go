package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"log/slog"

	"witcherquiz/core/logger"
	"witcherquiz/internal/quiz"
)

// LoadFile reads the catalog from a questions.json file. A missing file
// yields an empty catalog, not an error: the bot starts and reports
// unavailability until questions are supplied. Malformed content is a
// startup error.
func LoadFile(path string) (*quiz.Catalog, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn(context.Background(), "catalog", "load.missing",
			slog.String("status", "skip"),
			slog.String("path", path),
		)
		return quiz.NewCatalog(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cat, err := build(records)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	logger.Info(context.Background(), "catalog", "load",
		slog.String("status", "ok"),
		slog.String("source", SourceFile),
		slog.String("path", path),
		slog.Int("questions", cat.Len()),
		slog.Duration("duration", logger.Took(start)),
	)
	return cat, nil
}
