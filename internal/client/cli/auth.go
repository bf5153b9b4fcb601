package cli

import (
	"context"
	"errors"
	"os"

	"github.com/mkorolev/focusdeck/internal/client/otp"
	"github.com/mkorolev/focusdeck/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates the account. New accounts
// start unverified: an OTP is emailed and the user completes the signup
// verification flow before they can log in.
func (a *App) Register(ctx context.Context) error {
	switch publicOnly(a.session) {
	case Wait:
		printlnFn("Still restoring your session, try again in a moment.")
		return nil
	case Deny:
		printlnFn("You are already signed in. Use 'logout' first.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, email, username, fullName, string(password)); err != nil {
		printlnFn("Registration failed:", a.auth.Err())
		return err
	}

	printlnFn("Account created. Check your inbox for a verification code.")
	return a.verifyScreen(ctx, email, otp.FlowSignup)
}

// Login prompts for credentials and authenticates. A login rejected because
// the email is unverified branches into the OTP verification flow (the
// server has already sent a fresh code).
func (a *App) Login(ctx context.Context) error {
	switch publicOnly(a.session) {
	case Wait:
		printlnFn("Still restoring your session, try again in a moment.")
		return nil
	case Deny:
		printlnFn("You are already signed in. Use 'logout' first.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrUnverified) {
			printlnFn("Please verify your email. OTP sent.")
			return a.verifyScreen(ctx, email, otp.FlowLogin)
		}
		printlnFn("Login failed:", a.auth.Err())
		return err
	}

	a.bindServices()
	printlnFn("Welcome back!")
	return nil
}

// VerifyEmail requests a fresh OTP for an email and opens the entry screen.
// Useful when a previous verification attempt was abandoned.
func (a *App) VerifyEmail(ctx context.Context) error {
	switch publicOnly(a.session) {
	case Wait:
		printlnFn("Still restoring your session, try again in a moment.")
		return nil
	case Deny:
		printlnFn("You are already signed in.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.SendOTP(ctx, email); err != nil {
		printlnFn("Could not send code:", a.auth.Err())
		return err
	}
	printlnFn("Code sent.")
	return a.verifyScreen(ctx, email, otp.FlowLogin)
}

// ForgotPassword requests a password-reset email.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		printlnFn("Request failed:", a.auth.Err())
		return err
	}
	printlnFn("If that address exists, a reset link is on its way.")
	return nil
}

// ResetPassword consumes a reset token from the recovery email and sets a
// new password.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.ResetPassword(ctx, token, string(password)); err != nil {
		printlnFn("Reset failed:", a.auth.Err())
		return err
	}
	printlnFn("Password updated. You can log in now.")
	return nil
}

// Logout drops the session and unbinds the collection services.
func (a *App) Logout(ctx context.Context) error {
	a.stopTimer()
	a.auth.Logout(ctx)
	a.unbindServices()
	printlnFn("Signed out.")
	return nil
}
