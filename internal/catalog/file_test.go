package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"witcherquiz/internal/quiz"
)

func writeQuestions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write questions file: %v", err)
	}
	return path
}

func TestLoadFileFormat(t *testing.T) {
	path := writeQuestions(t, `[
		{
			"question": "Who trained Geralt?",
			"options": ["Vesemir", "Eskel", "Lambert"],
			"correct_answer": "Vesemir",
			"difficulty": 1,
			"explanation": "Vesemir is the oldest witcher of Kaer Morhen."
		},
		{
			"question": "What school does Geralt belong to?",
			"options": ["Wolf", "Cat"],
			"correct_answer": "Wolf"
		}
	]`)

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("loaded %d questions, want 2", cat.Len())
	}

	tier1 := cat.ByTier(1)
	if len(tier1) != 1 || tier1[0].Text != "Who trained Geralt?" {
		t.Fatalf("tier 1 = %+v, want the Vesemir question", tier1)
	}
	if tier1[0].Explanation == "" {
		t.Fatal("explanation was dropped")
	}

	// Absent difficulty defaults to tier 3.
	tier3 := cat.ByTier(quiz.DefaultTier)
	if len(tier3) != 1 || tier3[0].CorrectAnswer != "Wolf" {
		t.Fatalf("tier 3 = %+v, want the default-difficulty question", tier3)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cat, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	if !cat.Empty() {
		t.Fatalf("catalog from missing file has %d questions, want 0", cat.Len())
	}
}

func TestLoadFileRejectsCorruptRecords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"answer not in options",
			`[{"question": "q", "options": ["a", "b"], "correct_answer": "c"}]`,
			"not one of the options",
		},
		{
			"single option",
			`[{"question": "q", "options": ["a"], "correct_answer": "a"}]`,
			"need at least 2",
		},
		{
			"empty question",
			`[{"question": "", "options": ["a", "b"], "correct_answer": "a"}]`,
			"empty question",
		},
		{
			"difficulty out of range",
			`[{"question": "q", "options": ["a", "b"], "correct_answer": "a", "difficulty": 6}]`,
			"outside 1..5",
		},
		{
			"not json",
			`question: yaml?`,
			"parse",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeQuestions(t, tt.content))
			if err == nil {
				t.Fatal("expected a load error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFileAssignsStableIDs(t *testing.T) {
	path := writeQuestions(t, `[
		{"question": "first", "options": ["a", "b"], "correct_answer": "a"},
		{"question": "second", "options": ["a", "b"], "correct_answer": "b"},
		{"question": "third", "options": ["a", "b"], "correct_answer": "a", "difficulty": 1}
	]`)
	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	seen := make(map[int]string)
	for tier := quiz.MinTier; tier <= quiz.MaxTier; tier++ {
		for _, q := range cat.ByTier(tier) {
			if prev, dup := seen[q.ID]; dup {
				t.Fatalf("id %d assigned to both %q and %q", q.ID, prev, q.Text)
			}
			seen[q.ID] = q.Text
		}
	}
	if len(seen) != 3 {
		t.Fatalf("%d distinct ids, want 3", len(seen))
	}
	if seen[2] != "second" {
		t.Fatalf("id 2 = %q, want load order preserved", seen[2])
	}
}
