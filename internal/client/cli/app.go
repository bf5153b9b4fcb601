package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mkorolev/focusdeck/internal/client/api"
	"github.com/mkorolev/focusdeck/internal/client/config"
	"github.com/mkorolev/focusdeck/internal/client/models"
	"github.com/mkorolev/focusdeck/internal/client/services"
	"github.com/mkorolev/focusdeck/internal/client/session"
	"github.com/mkorolev/focusdeck/internal/logging"
)

// App wires the FocusDeck CLI together: config, API client, session store,
// per-collection services, and the interactive loop.
type App struct {
	config  *config.Config
	log     logging.Logger
	api     *api.HTTPClient
	session *session.Store

	auth *services.AuthService

	// Collection services are bound to the session token; they exist only
	// while a user is signed in.
	todos     *services.TodoService
	habits    *services.HabitService
	pomodoros *services.PomodoroService
	dashboard *services.DashboardService

	timer  *Countdown
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	apiClient := api.New(c.ServerBaseURL, api.WithHTTPClient(&http.Client{
		Timeout: c.RequestTimeout,
	}))

	sess := session.NewStore(apiClient, c.StateDir, logger)
	as := services.NewAuthService(apiClient, sess, logger)

	return &App{
		config:  c,
		log:     logger,
		api:     apiClient,
		session: sess,
		auth:    as,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any saved session and enters the interactive loop. It blocks
// until the user exits.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)
	if a.session.IsAuthenticated() {
		a.bindServices()
	}

	fmt.Println("FocusDeck CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))

	a.stopTimer()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// bindServices constructs the collection services against the current
// session token. Call after every successful sign-in.
func (a *App) bindServices() {
	token := a.session.Token()
	a.todos = services.NewTodoService(a.api, token, models.TodoFilter{}, a.log)
	a.habits = services.NewHabitService(a.api, token, models.HabitFilter{}, a.log)
	a.pomodoros = services.NewPomodoroService(a.api, token, a.log)
	a.dashboard = services.NewDashboardService(a.api, token, a.log)
}

func (a *App) unbindServices() {
	a.todos = nil
	a.habits = nil
	a.pomodoros = nil
	a.dashboard = nil
}

func (a *App) stopTimer() {
	if a.timer != nil {
		a.timer.Pause()
		a.timer = nil
	}
}

func (a *App) getStatus() string {
	user, _ := a.session.Current()
	if user == nil {
		if a.session.Verifying() {
			return "(restoring)"
		}
		return ""
	}
	s := user.Email
	if exp, ok := a.session.TokenExpiry(); ok {
		s = fmt.Sprintf("%s, session until %s", s, exp.Local().Format("15:04"))
	}
	return fmt.Sprintf("(%s)", s)
}

// allowed reports whether a guard decision admits the caller, printing a
// hint when it does not.
func (a *App) allowed(d Decision) bool {
	switch d {
	case Wait:
		printlnFn("Still restoring your session, try again in a moment.")
		return false
	case Deny:
		printlnFn("Sign in first.")
		return false
	}
	return true
}
