// Package cli provides the interactive FocusDeck command-line client.
//
// It wires configuration, the REST API client, the persisted session, and
// the per-collection services into an interactive REPL. Typical flow:
// restore the saved session on startup, then execute user commands against
// todos, habits, pomodoro sessions, and the dashboard.
//
// Key features:
//   - Login / Register / Logout, with email OTP verification
//   - Federated sign-in through a loopback browser callback
//   - Password recovery (request + reset)
//   - Todo, habit, and pomodoro management with server-confirmed mutations
//   - A ticking pomodoro countdown with pause/resume
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL, and Countdown for details.
package cli
