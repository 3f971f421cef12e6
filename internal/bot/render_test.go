package bot

import (
	"strings"
	"testing"

	"witcherquiz/internal/quiz"
)

func TestRenderQuestion(t *testing.T) {
	text := renderQuestion(quiz.QuestionPresented{
		Text:     "Who is the White Wolf?",
		Options:  []string{"Geralt", "Vesemir"},
		Tier:     4,
		Position: 3,
		Total:    10,
	})
	for _, want := range []string{"Question 3 of 10", "difficulty 4/5", "Who is the White Wolf?"} {
		if !strings.Contains(text, want) {
			t.Errorf("question text %q misses %q", text, want)
		}
	}
}

func TestRenderVerdict(t *testing.T) {
	tests := []struct {
		name      string
		result    quiz.AnswerResult
		completed bool
		want      []string
		wantNot   []string
	}{
		{
			"correct mid-quiz",
			quiz.AnswerResult{Correct: true, CorrectAnswer: "Geralt", Score: 3},
			false,
			[]string{"✅", "Score: 3", "/quiz"},
			[]string{"Geralt"},
		},
		{
			"wrong with explanation",
			quiz.AnswerResult{Correct: false, CorrectAnswer: "Geralt", Explanation: "He has white hair.", Score: 0},
			false,
			[]string{"❌", "Geralt", "He has white hair.", "Score: 0"},
			nil,
		},
		{
			"final answer omits next-question hint",
			quiz.AnswerResult{Correct: true, CorrectAnswer: "Geralt", Score: 10},
			true,
			[]string{"Score: 10"},
			[]string{"/quiz"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := renderVerdict(tt.result, tt.completed)
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("verdict %q misses %q", text, want)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(text, not) {
					t.Errorf("verdict %q should not contain %q", text, not)
				}
			}
		})
	}
}

func TestRenderNoQuestions(t *testing.T) {
	all := renderNoQuestions(quiz.NoQuestionsAvailable{Scope: quiz.ScopeAll})
	if strings.Contains(all, "difficulty") {
		t.Errorf("catalog-empty text should not mention a tier: %q", all)
	}
	tier := renderNoQuestions(quiz.NoQuestionsAvailable{Scope: quiz.ScopeTier, Tier: 5})
	if !strings.Contains(tier, "difficulty 5") {
		t.Errorf("tier-empty text misses the tier: %q", tier)
	}
}

func TestRenderScore(t *testing.T) {
	never := renderScore(quiz.ScoreReport{Played: false})
	if !strings.Contains(never, "not played") {
		t.Errorf("never-played text = %q", never)
	}
	tiered := renderScore(quiz.ScoreReport{Score: 7, Selector: quiz.Selector(2), Played: true})
	for _, want := range []string{"7", "2/5"} {
		if !strings.Contains(tiered, want) {
			t.Errorf("score text %q misses %q", tiered, want)
		}
	}
	all := renderScore(quiz.ScoreReport{Score: 4, Selector: quiz.AllTiers, Played: true})
	if !strings.Contains(all, "all tiers") {
		t.Errorf("all-tier score text = %q", all)
	}
}

func TestQuestionMarkup(t *testing.T) {
	options := []string{"Vizima", "Novigrad", "Oxenfurt"}
	markup := questionMarkup(options)

	// One row per option plus the cancel row.
	if len(markup.InlineKeyboard) != len(options)+1 {
		t.Fatalf("%d rows, want %d", len(markup.InlineKeyboard), len(options)+1)
	}
	for i, opt := range options {
		row := markup.InlineKeyboard[i]
		if len(row) != 1 {
			t.Fatalf("row %d has %d buttons, want 1", i, len(row))
		}
		btn := row[0]
		if btn.Text != opt || btn.Data != opt || btn.Unique != cbAnswer {
			t.Errorf("row %d button = %+v, want option text as payload", i, btn)
		}
	}
	cancel := markup.InlineKeyboard[len(options)][0]
	if cancel.Unique != cbCancel {
		t.Errorf("cancel button unique = %q, want %q", cancel.Unique, cbCancel)
	}
}

func TestDifficultyMarkup(t *testing.T) {
	markup := difficultyMarkup()
	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("%d rows, want tiers row plus all-tiers row", len(markup.InlineKeyboard))
	}
	tiers := markup.InlineKeyboard[0]
	if len(tiers) != quiz.MaxTier {
		t.Fatalf("%d tier buttons, want %d", len(tiers), quiz.MaxTier)
	}
	for i, btn := range tiers {
		want := string(rune('1' + i))
		if btn.Data != want || btn.Unique != cbDifficulty {
			t.Errorf("tier button %d = %+v, want payload %q", i, btn, want)
		}
	}
	all := markup.InlineKeyboard[1][0]
	if all.Data != "0" || all.Unique != cbDifficulty {
		t.Errorf("all-tiers button = %+v, want payload \"0\"", all)
	}
}

func TestRenderCatalogStats(t *testing.T) {
	cat := quiz.NewCatalog([]quiz.Question{
		{ID: 1, Text: "a", Options: []string{"x", "y"}, CorrectAnswer: "x", Tier: 1},
		{ID: 2, Text: "b", Options: []string{"x", "y"}, CorrectAnswer: "x", Tier: 1},
		{ID: 3, Text: "c", Options: []string{"x", "y"}, CorrectAnswer: "x", Tier: 4},
	})
	text := renderCatalogStats(cat)
	for _, want := range []string{"3 questions", "tier 1: 2", "tier 4: 1", "tier 3: 0"} {
		if !strings.Contains(text, want) {
			t.Errorf("stats %q misses %q", text, want)
		}
	}
}
