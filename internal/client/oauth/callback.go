// Package oauth runs a short-lived loopback HTTP listener that captures the
// authorization code from a federated login redirect. The code itself is
// exchanged by the backend; the client only forwards it.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CallbackPath is the redirect path registered with the identity provider.
const CallbackPath = "/auth/google/callback"

// CallbackListener waits for exactly one redirect carrying ?code=.
type CallbackListener struct {
	srv  *http.Server
	ln   net.Listener
	code chan string
}

// Listen starts the listener on addr ("127.0.0.1:0" picks a free port).
func Listen(addr string) (*CallbackListener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("oauth listener: %w", err)
	}

	l := &CallbackListener{
		ln:   ln,
		code: make(chan string, 1),
	}

	r := chi.NewRouter()
	r.Get(CallbackPath, l.handleCallback)

	l.srv = &http.Server{Handler: r}
	go func() { _ = l.srv.Serve(ln) }()

	return l, nil
}

func (l *CallbackListener) handleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing code parameter", http.StatusBadRequest)
		return
	}
	select {
	case l.code <- code:
	default: // a code was already delivered; ignore repeats
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "Login received. You can close this window and return to the terminal.")
}

// URL returns the full redirect URL to hand to the identity provider.
func (l *CallbackListener) URL() string {
	return fmt.Sprintf("http://%s%s", l.ln.Addr().String(), CallbackPath)
}

// Wait blocks until a code arrives or ctx is done.
func (l *CallbackListener) Wait(ctx context.Context) (string, error) {
	select {
	case code := <-l.code:
		return code, nil
	case <-ctx.Done():
		return "", errors.New("no authorization code received: " + ctx.Err().Error())
	}
}

// Close shuts the listener down.
func (l *CallbackListener) Close() error {
	return l.srv.Close()
}
