// Package bot is the Telegram transport adapter: it translates commands
// and callback presses into session controller events and renders the
// resulting outcomes back into messages.
package bot

import (
	coreconfig "witcherquiz/core/config"
	tg "witcherquiz/core/telegram"
	"witcherquiz/core/telegram/commands"
	"witcherquiz/core/telegram/router"
	"witcherquiz/internal/quiz"
)

// App wires the quiz controller to the Telegram runtime.
type App struct {
	cfg  *coreconfig.Config
	ctrl *quiz.Controller
}

// New creates the application over a loaded config and controller.
func New(cfg *coreconfig.Config, ctrl *quiz.Controller) *App {
	return &App{cfg: cfg, ctrl: ctrl}
}

// Registry declares every command and callback the bot serves.
func (a *App) Registry() *tg.Registry {
	reg := tg.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Start the bot",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.handleHelp,
		Description: "Rules and command list",
	})
	reg.RegisterCommand("/quiz", commands.Command{
		Handler:     a.handleQuiz,
		Description: "Start a quiz or get the next question",
	})
	reg.RegisterCommand("/difficulty", commands.Command{
		Handler:     a.handleDifficulty,
		Description: "Pick a difficulty",
	})
	reg.RegisterCommand("/score", commands.Command{
		Handler:     a.handleScore,
		Description: "Show your current score",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     a.handleCancel,
		Description: "Dismiss the current question",
	})
	reg.RegisterCommand("/catalog", commands.Command{
		Handler:     a.handleCatalogStats,
		Description: "Catalog statistics",
		AdminOnly:   true,
		Hidden:      true,
	})

	_ = reg.RegisterCallback(cbAnswer, a.handleAnswerCallback)
	_ = reg.RegisterCallback(cbDifficulty, a.handleDifficultyCallback)
	_ = reg.RegisterCallback(cbCancel, a.handleCancelCallback)

	reg.SetTextFallback(a.handleUnknownText)
	return reg
}

// RunOptions assembles middleware and routes for telegram.RunTelegram.
func (a *App) RunOptions(reg *tg.Registry) tg.RunOptions {
	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(reg, router.TextOptions{})...)

	return tg.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: tg.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
	}
}
