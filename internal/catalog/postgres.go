package catalog

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"witcherquiz/core/logger"
	"witcherquiz/internal/quiz"
)

const selectQuestions = `
SELECT question, options, correct_answer, difficulty, explanation
FROM questions
ORDER BY id`

type questionRow struct {
	Question      string         `db:"question"`
	Options       pq.StringArray `db:"options"`
	CorrectAnswer string         `db:"correct_answer"`
	Difficulty    *int           `db:"difficulty"`
	Explanation   string         `db:"explanation"`
}

// LoadPostgres reads the catalog from the questions table once. The
// connection is only needed during startup; the caller may close it
// right after this returns.
func LoadPostgres(ctx context.Context, db *sqlx.DB) (*quiz.Catalog, error) {
	start := time.Now()

	var rows []questionRow
	if err := db.SelectContext(ctx, &rows, selectQuestions); err != nil {
		return nil, fmt.Errorf("select questions: %w", err)
	}

	records := make([]record, 0, len(rows))
	for _, r := range rows {
		records = append(records, record{
			Question:      r.Question,
			Options:       []string(r.Options),
			CorrectAnswer: r.CorrectAnswer,
			Difficulty:    r.Difficulty,
			Explanation:   r.Explanation,
		})
	}

	cat, err := build(records)
	if err != nil {
		return nil, fmt.Errorf("load questions table: %w", err)
	}

	logger.Info(ctx, "catalog", "load",
		slog.String("status", "ok"),
		slog.String("source", SourcePostgres),
		slog.Int("questions", cat.Len()),
		slog.Duration("duration", logger.Took(start)),
	)
	return cat, nil
}
