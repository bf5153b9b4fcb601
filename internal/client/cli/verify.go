package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mkorolev/focusdeck/internal/client/otp"
)

// renderSlots draws the six OTP boxes, marking the focused one.
func renderSlots(c *otp.Challenge) string {
	var b strings.Builder
	for i, s := range c.Slots() {
		if s == "" {
			s = "_"
		}
		if i == c.Focus() {
			fmt.Fprintf(&b, "[%s]", s)
		} else {
			fmt.Fprintf(&b, " %s ", s)
		}
	}
	return b.String()
}

// verifyScreen runs the interactive OTP entry loop for email.
//
// Input per line:
//   - a single digit fills the focused slot and moves focus right
//   - "b" clears backwards (backspace semantics)
//   - "c" clears every slot
//   - a longer string is treated as a paste of up to six characters
//   - "submit" verifies once all six slots are filled
//   - "resend" requests a fresh code and clears the slots
//   - "cancel" abandons verification
//
// On the login flow a successful verification signs the user in; on the
// signup flow it only marks the email verified and the user logs in
// afterwards.
func (a *App) verifyScreen(ctx context.Context, email string, flow otp.Flow) error {
	ch := otp.NewChallenge(email, flow)

	for {
		printlnFn("Code:", renderSlots(ch))
		line, err := getSimpleText(a.reader, "digit / b / c / submit / resend / cancel", os.Stdout)
		if err != nil {
			return err
		}

		switch {
		case line == "cancel":
			printlnFn("Verification abandoned.")
			return nil

		case line == "submit":
			code, ok := ch.Code()
			if !ok {
				printlnFn("Enter all six digits first.")
				continue
			}
			if flow == otp.FlowSignup {
				if err := a.auth.VerifyOTPSignup(ctx, email, code); err != nil {
					// Entered digits stay in place so the user can retry
					// or correct a single slot.
					printlnFn("Verification failed:", a.auth.Err())
					continue
				}
				printlnFn("Email verified. You can log in now.")
				return nil
			}
			if err := a.auth.VerifyOTP(ctx, email, code); err != nil {
				printlnFn("Verification failed:", a.auth.Err())
				continue
			}
			a.bindServices()
			printlnFn("Email verified, you are signed in.")
			return nil

		case line == "resend":
			if a.auth.Loading() {
				printlnFn("Still sending, hold on.")
				continue
			}
			if err := a.auth.SendOTP(ctx, email); err != nil {
				printlnFn("Could not resend:", a.auth.Err())
				continue
			}
			ch.Clear()
			printlnFn("A new code is on its way.")

		case line == "b":
			ch.Backspace(ch.Focus())

		case line == "c":
			ch.Clear()

		case len(line) == 1:
			ch.Input(ch.Focus(), line)

		case line != "":
			ch.Paste(line)
		}
	}
}
