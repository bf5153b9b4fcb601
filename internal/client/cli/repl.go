package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	GoogleLogin(ctx context.Context) error
	VerifyEmail(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Logout(ctx context.Context) error

	Todos(ctx context.Context) error
	AddTodo(ctx context.Context) error
	CompleteTodo(ctx context.Context) error
	DeleteTodo(ctx context.Context) error
	FilterTodos(ctx context.Context) error

	Habits(ctx context.Context) error
	AddHabit(ctx context.Context) error
	LogHabit(ctx context.Context) error
	HabitStats(ctx context.Context) error

	Pomodoros(ctx context.Context) error
	StartPomodoro(ctx context.Context) error
	PausePomodoro(ctx context.Context) error
	ResumePomodoro(ctx context.Context) error
	StopPomodoro(ctx context.Context) error
	PomodoroStats(ctx context.Context) error

	Dashboard(ctx context.Context) error
	Admin(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the FocusDeck CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fd> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Todos:     (t)odos, addtodo, done, rmtodo, filter")
				printlnFn("Habits:    (h)abits, addhabit, loghabit, habitstats")
				printlnFn("Pomodoro:  pomo, start, pause, resume, stop, pomostats")
				printlnFn("Other:     dash, admin, logout, exit")
			} else {
				printlnFn("Available commands: register, login, google, verify, forgot, reset, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "google":
			_ = a.GoogleLogin(ctx)

		case "verify":
			_ = a.VerifyEmail(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "t", "todos":
			_ = a.Todos(ctx)

		case "addtodo":
			_ = a.AddTodo(ctx)

		case "done":
			_ = a.CompleteTodo(ctx)

		case "rmtodo":
			_ = a.DeleteTodo(ctx)

		case "filter":
			_ = a.FilterTodos(ctx)

		case "h", "habits":
			_ = a.Habits(ctx)

		case "addhabit":
			_ = a.AddHabit(ctx)

		case "loghabit":
			_ = a.LogHabit(ctx)

		case "habitstats":
			_ = a.HabitStats(ctx)

		case "pomo":
			_ = a.Pomodoros(ctx)

		case "start":
			_ = a.StartPomodoro(ctx)

		case "pause":
			_ = a.PausePomodoro(ctx)

		case "resume":
			_ = a.ResumePomodoro(ctx)

		case "stop":
			_ = a.StopPomodoro(ctx)

		case "pomostats":
			_ = a.PomodoroStats(ctx)

		case "dash":
			_ = a.Dashboard(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
