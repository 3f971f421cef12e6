// Package catalog loads the question catalog at startup. Two sources are
// supported: a questions.json file in the original wire format, and a
// Postgres table for deployments that keep question sets in a database.
// Whichever source is used, the catalog is immutable afterwards and the
// process never reads it again.
package catalog

import (
	"fmt"

	"witcherquiz/internal/quiz"
)

// Source names accepted by the quiz.catalog_source config key.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// record is one question in the external format. The JSON field names
// are a compatibility contract with existing question sets and must not
// change: question, options, correct_answer, difficulty, explanation.
type record struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Difficulty    *int     `json:"difficulty"`
	Explanation   string   `json:"explanation"`
}

// build validates every record and assigns stable load-order IDs.
// A corrupt record fails the whole load: bad catalogs are rejected at
// startup, never surfaced mid-session.
func build(records []record) (*quiz.Catalog, error) {
	questions := make([]quiz.Question, 0, len(records))
	for i, r := range records {
		q, err := r.toQuestion(i + 1)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions = append(questions, q)
	}
	return quiz.NewCatalog(questions), nil
}

func (r record) toQuestion(id int) (quiz.Question, error) {
	if r.Question == "" {
		return quiz.Question{}, fmt.Errorf("empty question text")
	}
	if len(r.Options) < 2 {
		return quiz.Question{}, fmt.Errorf("%d options, need at least 2", len(r.Options))
	}
	found := false
	for _, opt := range r.Options {
		if opt == r.CorrectAnswer {
			found = true
			break
		}
	}
	if !found {
		return quiz.Question{}, fmt.Errorf("correct_answer %q is not one of the options", r.CorrectAnswer)
	}

	tier := quiz.DefaultTier
	if r.Difficulty != nil {
		tier = *r.Difficulty
	}
	if tier < quiz.MinTier || tier > quiz.MaxTier {
		return quiz.Question{}, fmt.Errorf("difficulty %d outside %d..%d", tier, quiz.MinTier, quiz.MaxTier)
	}

	return quiz.Question{
		ID:            id,
		Text:          r.Question,
		Options:       r.Options,
		CorrectAnswer: r.CorrectAnswer,
		Explanation:   r.Explanation,
		Tier:          tier,
	}, nil
}
