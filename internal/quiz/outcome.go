package quiz

// Outcome is the closed set of results a controller operation can emit.
// Expected conditions (empty catalog, empty tier, stale answer) are
// outcome variants, not errors; the transport layer renders each variant.
type Outcome interface {
	isOutcome()
}

// QuestionPresented asks the user the next question of their plan.
// Position is 1-based; Total is the served plan length, which may be
// shorter than PlanSize when the catalog is scarce.
type QuestionPresented struct {
	Text     string
	Options  []string
	Tier     int
	Position int
	Total    int
}

// AnswerResult is the verdict for one submitted answer. Score is the
// session score after the verdict was applied.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer string
	Explanation   string
	Score         int
}

// QuizCompleted summarises a finished session. Total equals the length
// of the plan actually served.
type QuizCompleted struct {
	FinalScore int
	Total      int
}

// Scope distinguishes why no questions were available.
type Scope string

const (
	// ScopeAll means the whole catalog is empty.
	ScopeAll Scope = "all"
	// ScopeTier means the selected tier has no questions.
	ScopeTier Scope = "tier"
)

// NoQuestionsAvailable is emitted when a plan cannot be built. Tier is
// meaningful only when Scope is ScopeTier.
type NoQuestionsAvailable struct {
	Scope Scope
	Tier  int
}

// NoPendingQuestion is emitted when an answer arrives with no question
// outstanding (stale or duplicate callback, or a restart mid-session).
// The session score is left untouched; the user is asked to restart.
type NoPendingQuestion struct{}

// DifficultySet confirms a recorded selector change.
type DifficultySet struct {
	Selector Selector
}

// ScoreReport is the read-only answer to a score query. Played is false
// when the user has never interacted with the bot.
type ScoreReport struct {
	Score    int
	Selector Selector
	Played   bool
}

func (QuestionPresented) isOutcome()    {}
func (AnswerResult) isOutcome()         {}
func (QuizCompleted) isOutcome()        {}
func (NoQuestionsAvailable) isOutcome() {}
func (NoPendingQuestion) isOutcome()    {}
func (DifficultySet) isOutcome()        {}
func (ScoreReport) isOutcome()          {}
