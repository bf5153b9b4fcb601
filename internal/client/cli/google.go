package cli

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mkorolev/focusdeck/internal/client/oauth"
)

// googleLoginTimeout bounds how long we wait for the browser round-trip.
const googleLoginTimeout = 2 * time.Minute

// GoogleLogin signs in through the server's Google OAuth flow. A loopback
// listener catches the provider redirect, and the received authorization
// code is exchanged for a session.
func (a *App) GoogleLogin(ctx context.Context) error {
	switch publicOnly(a.session) {
	case Wait:
		printlnFn("Still restoring your session, try again in a moment.")
		return nil
	case Deny:
		printlnFn("You are already signed in. Use 'logout' first.")
		return nil
	}

	listener, err := oauth.Listen(a.config.OAuthListenAddr)
	if err != nil {
		printlnFn("Could not start the callback listener:", err.Error())
		return err
	}
	defer listener.Close()

	loginURL := fmt.Sprintf("%s/auth/google/login?redirect_uri=%s",
		a.config.ServerBaseURL, url.QueryEscape(listener.URL()))
	printlnFn("Open this URL in your browser to continue:")
	printlnFn("  " + loginURL)

	waitCtx, cancel := context.WithTimeout(ctx, googleLoginTimeout)
	defer cancel()

	code, err := listener.Wait(waitCtx)
	if err != nil {
		printlnFn("No callback received:", err.Error())
		return err
	}

	if err := a.auth.GoogleLogin(ctx, code); err != nil {
		printlnFn("Google sign-in failed:", a.auth.Err())
		return err
	}

	a.bindServices()
	printlnFn("Welcome!")
	return nil
}
