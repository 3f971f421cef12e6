package quiz

import (
	"math/rand"
	"sync"
	"time"
)

// Controller is the session state machine. Each user is either idle (no
// pending question) or in progress (a question awaits an answer); every
// operation is total over possibly-absent sessions, treating an absent
// session as a fresh default.
type Controller struct {
	catalog *Catalog
	store   *Store

	// rand.Rand is not safe for concurrent use; plan builds for
	// different users may race on it without the mutex.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewController creates a controller over an immutable catalog.
func NewController(catalog *Catalog) *Controller {
	return NewControllerWithRand(catalog, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewControllerWithRand is NewController with an injected random source.
func NewControllerWithRand(catalog *Catalog, rng *rand.Rand) *Controller {
	return &Controller{
		catalog: catalog,
		store:   NewStore(),
		rng:     rng,
	}
}

// Catalog exposes the controller's catalog for read-only reporting.
func (c *Controller) Catalog() *Catalog { return c.catalog }

// SelectDifficulty records the selector on the session. It does not
// touch an in-progress plan and does not reset the score; the selector
// takes effect at the next plan build.
func (c *Controller) SelectDifficulty(userID int64, sel Selector) Outcome {
	if !sel.Valid() {
		sel = AllTiers
	}
	sess := c.store.Get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.Selector = sel
	return DifficultySet{Selector: sel}
}

// StartOrContinue serves the user's next question. A fresh plan is built
// when there is none, when the previous plan is exhausted, or when a
// question was already pending (restarting mid-question abandons the old
// plan). Building a fresh plan is the only point where the score resets
// to zero.
func (c *Controller) StartOrContinue(userID int64) Outcome {
	sess := c.store.Get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	needFresh := len(sess.Plan) == 0 || sess.Position >= len(sess.Plan) || sess.Pending != nil
	if needFresh {
		plan := c.buildPlan(sess.Selector)
		if len(plan) == 0 {
			sess.Pending = nil
			if c.catalog.Empty() || sess.Selector.IsAll() {
				return NoQuestionsAvailable{Scope: ScopeAll}
			}
			return NoQuestionsAvailable{Scope: ScopeTier, Tier: int(sess.Selector)}
		}
		sess.Score = 0
		sess.Plan = plan
		sess.Position = 0
	}

	q := sess.Plan[sess.Position]
	sess.Pending = &q
	return QuestionPresented{
		Text:     q.Text,
		Options:  q.Options,
		Tier:     q.Tier,
		Position: sess.Position + 1,
		Total:    len(sess.Plan),
	}
}

// SubmitAnswer evaluates one answer against the pending question.
// Matching is an exact string comparison with no normalization, for
// compatibility with existing callback payloads. The verdict outcome is
// always first; a completion summary follows when the plan is exhausted.
func (c *Controller) SubmitAnswer(userID int64, option string) []Outcome {
	sess := c.store.Get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Pending == nil {
		return []Outcome{NoPendingQuestion{}}
	}

	q := *sess.Pending
	correct := option == q.CorrectAnswer
	if correct {
		sess.Score++
	}
	result := AnswerResult{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Score:         sess.Score,
	}

	sess.Position++
	sess.Pending = nil

	out := []Outcome{result}
	if sess.Position >= len(sess.Plan) {
		out = append(out, QuizCompleted{FinalScore: sess.Score, Total: len(sess.Plan)})
		// Plan and position reset here; score and selector survive
		// until the next plan build.
		sess.Plan = nil
		sess.Position = 0
	}
	return out
}

// Cancel abandons any pending question. Score, plan, and selector are
// untouched, so a later StartOrContinue resumes the plan where it left off.
func (c *Controller) Cancel(userID int64) {
	sess, ok := c.store.Lookup(userID)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.Pending = nil
}

// Score reports the user's current score and selector, or Played=false
// when the user has never interacted with the bot.
func (c *Controller) Score(userID int64) ScoreReport {
	sess, ok := c.store.Lookup(userID)
	if !ok {
		return ScoreReport{Selector: AllTiers, Played: false}
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return ScoreReport{Score: sess.Score, Selector: sess.Selector, Played: true}
}

func (c *Controller) buildPlan(sel Selector) Plan {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	if sel.IsAll() {
		return BuildStratifiedPlan(c.catalog, c.rng)
	}
	return BuildSingleTierPlan(c.catalog, int(sel), c.rng)
}
