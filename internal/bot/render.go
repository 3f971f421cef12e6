package bot

import (
	"fmt"
	"sort"
	"strings"

	"witcherquiz/core/telegram/keyboard"
	"witcherquiz/internal/quiz"

	tele "gopkg.in/telebot.v4"
)

// Callback keys. The answer payload is the option text itself, a
// compatibility contract with the historical callback format.
const (
	cbAnswer     = "quiz_answer"
	cbDifficulty = "quiz_difficulty"
	cbCancel     = "quiz_cancel"
)

const startText = `👋 Welcome to the Witcher quiz!

I will ask you 10 questions about the world of the Witcher.
Answer by tapping one of the option buttons.`

const helpText = `🗡 Commands:
/quiz — start a quiz or get the next question
/difficulty — pick a difficulty (1-5 or all)
/score — show your current score
/cancel — dismiss the current question
/help — this message

A quiz is 10 questions drawn across difficulty tiers; pick a single
difficulty to practice just that tier. Your score resets when a new
quiz begins.`

func renderQuestion(q quiz.QuestionPresented) string {
	var b strings.Builder
	fmt.Fprintf(&b, "❓ Question %d of %d (difficulty %d/5)\n\n", q.Position, q.Total, q.Tier)
	b.WriteString(q.Text)
	return b.String()
}

func renderVerdict(r quiz.AnswerResult, completed bool) string {
	var b strings.Builder
	if r.Correct {
		b.WriteString("✅ Correct!")
	} else {
		fmt.Fprintf(&b, "❌ Wrong. The correct answer is: %s", r.CorrectAnswer)
	}
	if r.Explanation != "" {
		b.WriteString("\n\n💡 ")
		b.WriteString(r.Explanation)
	}
	fmt.Fprintf(&b, "\n\nScore: %d", r.Score)
	if !completed {
		b.WriteString("\nSend /quiz for the next question.")
	}
	return b.String()
}

func renderCompleted(d quiz.QuizCompleted) string {
	return fmt.Sprintf("🏁 Quiz finished! Your result: %d of %d.\nSend /quiz to play again.", d.FinalScore, d.Total)
}

func renderNoQuestions(n quiz.NoQuestionsAvailable) string {
	if n.Scope == quiz.ScopeTier {
		return fmt.Sprintf("😔 No questions for difficulty %d yet. Pick another one with /difficulty.", n.Tier)
	}
	return "😔 No questions are available yet. Please try again later."
}

func renderNoPending() string {
	return "There is no question waiting for an answer. Send /quiz to get one."
}

func renderDifficultySet(d quiz.DifficultySet) string {
	if d.Selector.IsAll() {
		return "🎲 Difficulty set: all tiers. Send /quiz to start."
	}
	return fmt.Sprintf("🎯 Difficulty set: %d/5. Send /quiz to start.", int(d.Selector))
}

func renderScore(r quiz.ScoreReport) string {
	if !r.Played {
		return "You have not played yet. Send /quiz to start!"
	}
	if r.Selector.IsAll() {
		return fmt.Sprintf("🏆 Current score: %d (difficulty: all tiers)", r.Score)
	}
	return fmt.Sprintf("🏆 Current score: %d (difficulty: %d/5)", r.Score, int(r.Selector))
}

func renderCancelled() string {
	return "🚫 Question dismissed. Send /quiz to continue."
}

func renderCatalogStats(c *quiz.Catalog) string {
	counts := c.TierCounts()
	tiers := make([]int, 0, len(counts))
	for tier := range counts {
		tiers = append(tiers, tier)
	}
	sort.Ints(tiers)

	var b strings.Builder
	fmt.Fprintf(&b, "📚 Catalog: %d questions\n", c.Len())
	for _, tier := range tiers {
		fmt.Fprintf(&b, "tier %d: %d\n", tier, counts[tier])
	}
	return strings.TrimRight(b.String(), "\n")
}

// questionMarkup puts each answer option on its own row and appends a
// cancel row. Option text doubles as the callback payload.
func questionMarkup(options []string) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(options))
	for _, opt := range options {
		buttons = append(buttons, keyboard.InlineBtn{Text: opt, Unique: cbAnswer, Data: opt})
	}
	markup := keyboard.InlineButtons(buttons)
	return keyboard.AppendCancelRow(markup, cbCancel)
}

// difficultyMarkup offers tiers 1..5 on one row and "all tiers" below.
func difficultyMarkup() *tele.ReplyMarkup {
	tiers := make([]keyboard.InlineBtn, 0, quiz.MaxTier)
	for tier := quiz.MinTier; tier <= quiz.MaxTier; tier++ {
		tiers = append(tiers, keyboard.InlineBtn{
			Text:   fmt.Sprintf("%d", tier),
			Unique: cbDifficulty,
			Data:   fmt.Sprintf("%d", tier),
		})
	}
	all := keyboard.InlineBtn{Text: "🎲 All tiers", Unique: cbDifficulty, Data: "0"}
	return keyboard.InlineButtonsRows(tiers, []keyboard.InlineBtn{all})
}
