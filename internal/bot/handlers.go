package bot

import (
	"fmt"

	"witcherquiz/core/logger"
	"witcherquiz/core/telegram/callbacks"
	tghelpers "witcherquiz/core/telegram/helpers"
	"witcherquiz/internal/quiz"

	"log/slog"

	tele "gopkg.in/telebot.v4"
)

func (a *App) handleStart(c tele.Context) error {
	if err := tghelpers.SendText(c, startText); err != nil {
		return err
	}
	return tghelpers.SendText(c, helpText)
}

func (a *App) handleHelp(c tele.Context) error {
	return tghelpers.SendText(c, helpText)
}

func (a *App) handleQuiz(c tele.Context) error {
	out := a.ctrl.StartOrContinue(c.Sender().ID)
	return a.sendOutcome(c, out)
}

func (a *App) handleDifficulty(c tele.Context) error {
	opts := &tele.SendOptions{ReplyMarkup: difficultyMarkup()}
	return tghelpers.SendText(c, "Pick a difficulty:", opts)
}

func (a *App) handleScore(c tele.Context) error {
	report := a.ctrl.Score(c.Sender().ID)
	return tghelpers.SendText(c, renderScore(report))
}

func (a *App) handleCancel(c tele.Context) error {
	a.ctrl.Cancel(c.Sender().ID)
	return tghelpers.SendText(c, renderCancelled())
}

func (a *App) handleCatalogStats(c tele.Context) error {
	return tghelpers.SendText(c, renderCatalogStats(a.ctrl.Catalog()))
}

func (a *App) handleUnknownText(c tele.Context) error {
	return tghelpers.SendText(c, "I only understand commands and answer buttons. Try /help.")
}

// handleAnswerCallback consumes an option button press. The question
// message is edited into the verdict so its buttons disappear; the
// completion summary, when present, follows as a separate message.
func (a *App) handleAnswerCallback(c tele.Context) error {
	option := callbacks.CallbackPayload(c)
	outcomes := a.ctrl.SubmitAnswer(c.Sender().ID, option)

	completed := false
	for _, out := range outcomes {
		if _, ok := out.(quiz.QuizCompleted); ok {
			completed = true
		}
	}

	ctx := tghelpers.BuildContext(c)
	for _, out := range outcomes {
		switch v := out.(type) {
		case quiz.AnswerResult:
			logger.Info(ctx, "quiz", "answer.submitted",
				slog.String("status", "ok"),
				slog.Bool("correct", v.Correct),
				slog.Int("score", v.Score),
			)
			if err := c.EditOrSend(renderVerdict(v, completed)); err != nil {
				return err
			}
		case quiz.QuizCompleted:
			logger.Info(ctx, "quiz", "quiz.completed",
				slog.String("status", "ok"),
				slog.Int("score", v.FinalScore),
				slog.Int("total", v.Total),
			)
			if err := tghelpers.SendText(c, renderCompleted(v)); err != nil {
				return err
			}
		case quiz.NoPendingQuestion:
			if err := c.EditOrSend(renderNoPending()); err != nil {
				return err
			}
		default:
			return fmt.Errorf("bot: unexpected answer outcome %T", out)
		}
	}
	return nil
}

func (a *App) handleDifficultyCallback(c tele.Context) error {
	value, err := callbacks.PayloadInt(c)
	if err != nil {
		return fmt.Errorf("bot: bad difficulty payload: %w", err)
	}

	out := a.ctrl.SelectDifficulty(c.Sender().ID, quiz.Selector(value))
	set, ok := out.(quiz.DifficultySet)
	if !ok {
		return fmt.Errorf("bot: unexpected difficulty outcome %T", out)
	}

	logger.Info(tghelpers.BuildContext(c), "quiz", "difficulty.selected",
		slog.String("status", "ok"),
		slog.String("selector", set.Selector.String()),
	)
	return c.EditOrSend(renderDifficultySet(set))
}

func (a *App) handleCancelCallback(c tele.Context) error {
	a.ctrl.Cancel(c.Sender().ID)
	return c.EditOrSend(renderCancelled())
}

// sendOutcome renders a StartOrContinue outcome.
func (a *App) sendOutcome(c tele.Context, out quiz.Outcome) error {
	ctx := tghelpers.BuildContext(c)
	switch v := out.(type) {
	case quiz.QuestionPresented:
		logger.Info(ctx, "quiz", "question.presented",
			slog.String("status", "ok"),
			slog.Int("tier", v.Tier),
			slog.Int("position", v.Position),
			slog.Int("total", v.Total),
		)
		opts := &tele.SendOptions{ReplyMarkup: questionMarkup(v.Options)}
		return tghelpers.SendText(c, renderQuestion(v), opts)
	case quiz.NoQuestionsAvailable:
		logger.Warn(ctx, "quiz", "questions.unavailable",
			slog.String("status", "skip"),
			slog.String("scope", string(v.Scope)),
			slog.Int("tier", v.Tier),
		)
		return tghelpers.SendText(c, renderNoQuestions(v))
	default:
		return fmt.Errorf("bot: unexpected outcome %T", out)
	}
}
