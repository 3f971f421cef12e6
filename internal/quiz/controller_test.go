package quiz

import (
	"math/rand"
	"testing"
)

func newTestController(perTier map[int]int) *Controller {
	return NewControllerWithRand(buildCatalog(perTier), rand.New(rand.NewSource(99)))
}

func mustQuestion(t *testing.T, out Outcome) QuestionPresented {
	t.Helper()
	q, ok := out.(QuestionPresented)
	if !ok {
		t.Fatalf("outcome = %T, want QuestionPresented", out)
	}
	return q
}

func answerCorrectly(t *testing.T, ctrl *Controller, userID int64) []Outcome {
	t.Helper()
	// Every buildCatalog question has correct answer "yes".
	mustQuestion(t, ctrl.StartOrContinue(userID))
	return ctrl.SubmitAnswer(userID, "yes")
}

func TestFullSessionAllTiers(t *testing.T) {
	// One question per tier: the stratified target of 10 cannot be met,
	// so the plan holds all 5 questions and the quiz ends after 5 answers.
	ctrl := newTestController(map[int]int{1: 1, 2: 1, 3: 1, 4: 1, 5: 1})
	const user = int64(100)

	for i := 1; i <= 5; i++ {
		q := mustQuestion(t, ctrl.StartOrContinue(user))
		if q.Position != i || q.Total != 5 {
			t.Fatalf("question %d: position %d of %d, want %d of 5", i, q.Position, q.Total, i)
		}
		out := ctrl.SubmitAnswer(user, "yes")
		res, ok := out[0].(AnswerResult)
		if !ok || !res.Correct {
			t.Fatalf("answer %d: outcome %v, want correct AnswerResult", i, out[0])
		}
		if res.Score != i {
			t.Fatalf("answer %d: score = %d, want %d", i, res.Score, i)
		}
		if i < 5 && len(out) != 1 {
			t.Fatalf("answer %d emitted %d outcomes, want 1", i, len(out))
		}
		if i == 5 {
			if len(out) != 2 {
				t.Fatalf("final answer emitted %d outcomes, want verdict plus summary", len(out))
			}
			done, ok := out[1].(QuizCompleted)
			if !ok {
				t.Fatalf("final outcome = %T, want QuizCompleted", out[1])
			}
			if done.FinalScore != 5 || done.Total != 5 {
				t.Fatalf("summary = %d/%d, want 5/5", done.FinalScore, done.Total)
			}
		}
	}

	// Back to idle: score survives completion until the next plan build.
	report := ctrl.Score(user)
	if !report.Played || report.Score != 5 {
		t.Fatalf("post-completion report = %+v, want played with score 5", report)
	}
}

func TestScoreResetsOnlyAtPlanBuild(t *testing.T) {
	ctrl := newTestController(map[int]int{1: 1, 2: 1})
	const user = int64(7)

	// Finish a 2-question session with both answers correct.
	for i := 0; i < 2; i++ {
		answerCorrectly(t, ctrl, user)
	}
	if got := ctrl.Score(user).Score; got != 2 {
		t.Fatalf("score after completion = %d, want 2", got)
	}

	// Starting the next quiz builds a plan and resets the score.
	mustQuestion(t, ctrl.StartOrContinue(user))
	if got := ctrl.Score(user).Score; got != 0 {
		t.Fatalf("score after new plan build = %d, want 0", got)
	}

	// Mid-plan wrong answers never reset the score.
	ctrl.SubmitAnswer(user, "wrong option")
	if got := ctrl.Score(user).Score; got != 0 {
		t.Fatalf("score after wrong answer = %d, want 0", got)
	}
}

func TestWrongAnswerVerdict(t *testing.T) {
	cat := NewCatalog([]Question{{
		ID:            1,
		Text:          "capital of Temeria?",
		Options:       []string{"Vizima", "Novigrad"},
		CorrectAnswer: "Vizima",
		Explanation:   "Novigrad is a free city.",
		Tier:          2,
	}})
	ctrl := NewControllerWithRand(cat, rand.New(rand.NewSource(1)))

	mustQuestion(t, ctrl.StartOrContinue(1))
	out := ctrl.SubmitAnswer(1, "Novigrad")
	res := out[0].(AnswerResult)
	if res.Correct {
		t.Fatal("wrong answer marked correct")
	}
	if res.CorrectAnswer != "Vizima" || res.Explanation != "Novigrad is a free city." {
		t.Fatalf("verdict = %+v, want correct answer and explanation", res)
	}
	if res.Score != 0 {
		t.Fatalf("score = %d, want 0", res.Score)
	}
}

func TestAnswerMatchingIsExact(t *testing.T) {
	cat := NewCatalog([]Question{{
		ID: 1, Text: "q", Options: []string{"Yes", "No"}, CorrectAnswer: "Yes", Tier: 3,
	}})
	ctrl := NewControllerWithRand(cat, rand.New(rand.NewSource(1)))

	tests := []string{"yes", " Yes", "Yes ", "YES"}
	for _, answer := range tests {
		mustQuestion(t, ctrl.StartOrContinue(1))
		res := ctrl.SubmitAnswer(1, answer)[0].(AnswerResult)
		if res.Correct {
			t.Errorf("answer %q matched %q, want exact comparison only", answer, "Yes")
		}
	}
}

func TestSubmitAnswerWithoutPending(t *testing.T) {
	ctrl := newTestController(map[int]int{3: 5})

	// Never-seen user.
	out := ctrl.SubmitAnswer(500, "yes")
	if _, ok := out[0].(NoPendingQuestion); !ok {
		t.Fatalf("outcome = %T, want NoPendingQuestion", out[0])
	}

	// Answer already consumed: the duplicate callback gets the same outcome.
	mustQuestion(t, ctrl.StartOrContinue(500))
	ctrl.SubmitAnswer(500, "yes")
	out = ctrl.SubmitAnswer(500, "yes")
	if _, ok := out[0].(NoPendingQuestion); !ok {
		t.Fatalf("duplicate answer outcome = %T, want NoPendingQuestion", out[0])
	}
	if got := ctrl.Score(500).Score; got != 1 {
		t.Fatalf("score after duplicate answer = %d, want 1", got)
	}
}

func TestEmptyTierSelected(t *testing.T) {
	ctrl := newTestController(map[int]int{1: 3, 2: 3})
	const user = int64(9)

	ctrl.SelectDifficulty(user, Selector(3))
	out := ctrl.StartOrContinue(user)
	na, ok := out.(NoQuestionsAvailable)
	if !ok {
		t.Fatalf("outcome = %T, want NoQuestionsAvailable", out)
	}
	if na.Scope != ScopeTier || na.Tier != 3 {
		t.Fatalf("outcome = %+v, want tier scope for tier 3", na)
	}

	// No plan was created; an answer now is a stale event.
	if _, ok := ctrl.SubmitAnswer(user, "yes")[0].(NoPendingQuestion); !ok {
		t.Fatal("expected NoPendingQuestion after refused start")
	}
}

func TestEmptyCatalog(t *testing.T) {
	ctrl := newTestController(map[int]int{})

	out := ctrl.StartOrContinue(1)
	na, ok := out.(NoQuestionsAvailable)
	if !ok || na.Scope != ScopeAll {
		t.Fatalf("outcome = %#v, want NoQuestionsAvailable scope all", out)
	}

	// A tier selection over an empty catalog still reports the whole
	// catalog as empty, not the tier.
	ctrl.SelectDifficulty(2, Selector(4))
	na = ctrl.StartOrContinue(2).(NoQuestionsAvailable)
	if na.Scope != ScopeAll {
		t.Fatalf("scope = %q, want %q", na.Scope, ScopeAll)
	}
}

func TestRestartWhilePendingAbandonsPlan(t *testing.T) {
	ctrl := newTestController(map[int]int{1: 4, 2: 4, 3: 4, 4: 4, 5: 4})
	const user = int64(12)

	first := mustQuestion(t, ctrl.StartOrContinue(user))
	second := mustQuestion(t, ctrl.StartOrContinue(user))
	if first.Total != PlanSize || second.Total != PlanSize {
		t.Fatalf("plan totals = %d and %d, want %d", first.Total, second.Total, PlanSize)
	}
	if second.Position != 1 {
		t.Fatalf("restarted plan position = %d, want 1", second.Position)
	}

	// The abandoned plan left no residue: answering walks the new plan.
	res := ctrl.SubmitAnswer(user, "yes")[0].(AnswerResult)
	if res.Score != 1 {
		t.Fatalf("score = %d, want 1", res.Score)
	}
}

func TestCancelPreservesPlanAndResumes(t *testing.T) {
	ctrl := newTestController(map[int]int{1: 2, 2: 2, 3: 2, 4: 2, 5: 2})
	const user = int64(21)

	mustQuestion(t, ctrl.StartOrContinue(user))
	ctrl.SubmitAnswer(user, "yes")

	q2 := mustQuestion(t, ctrl.StartOrContinue(user))
	ctrl.Cancel(user)

	// After cancel the session is idle but the plan survives: the next
	// start resumes at the same position with the same score.
	resumed := mustQuestion(t, ctrl.StartOrContinue(user))
	if resumed.Position != q2.Position {
		t.Fatalf("resumed position = %d, want %d", resumed.Position, q2.Position)
	}
	if got := ctrl.Score(user).Score; got != 1 {
		t.Fatalf("score after cancel = %d, want 1", got)
	}
}

func TestSelectDifficultyDoesNotTouchSession(t *testing.T) {
	ctrl := newTestController(map[int]int{2: 12})
	const user = int64(30)

	ctrl.SelectDifficulty(user, Selector(2))
	mustQuestion(t, ctrl.StartOrContinue(user))
	ctrl.SubmitAnswer(user, "yes")

	// Changing the selector mid-plan keeps plan, position, and score.
	ctrl.SelectDifficulty(user, Selector(5))
	report := ctrl.Score(user)
	if report.Score != 1 || report.Selector != Selector(5) {
		t.Fatalf("report = %+v, want score 1 selector 5", report)
	}
	q := mustQuestion(t, ctrl.StartOrContinue(user))
	if q.Tier != 2 {
		t.Fatalf("in-progress plan switched tier to %d, want 2", q.Tier)
	}
}

func TestScoreForUnknownUser(t *testing.T) {
	ctrl := newTestController(map[int]int{3: 3})
	report := ctrl.Score(404)
	if report.Played {
		t.Fatalf("report = %+v, want never-played", report)
	}
	if !report.Selector.IsAll() {
		t.Fatalf("default selector = %v, want all tiers", report.Selector)
	}
}

func TestShortPlanDenominator(t *testing.T) {
	ctrl := newTestController(map[int]int{4: 3})
	const user = int64(55)

	ctrl.SelectDifficulty(user, Selector(4))
	var done *QuizCompleted
	for i := 0; i < 3; i++ {
		out := answerCorrectly(t, ctrl, user)
		if last, ok := out[len(out)-1].(QuizCompleted); ok {
			done = &last
		}
	}
	if done == nil {
		t.Fatal("session never completed")
	}
	if done.Total != 3 || done.FinalScore != 3 {
		t.Fatalf("summary = %d/%d, want 3/3", done.FinalScore, done.Total)
	}
}
