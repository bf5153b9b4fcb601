// Package services contains the client-side application services of
// FocusDeck: the auth flow controller driving the session store, and one
// collection service per server-backed entity (todos, habits, pomodoro
// sessions, dashboard stats).
//
// Collection services are transient: screens create one per mount with the
// current token, fetch on demand, and discard it on unmount. Local state
// changes only after the server confirms a mutation; a failed call leaves
// the collection exactly as it was.
package services
