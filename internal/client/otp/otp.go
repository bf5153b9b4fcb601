// Package otp implements the six-slot one-time-code entry state machine:
// each slot holds the empty string or one decimal digit, and a focus index
// tracks which slot receives the next keystroke.
package otp

import "strings"

// SlotCount is the fixed number of code digits.
const SlotCount = 6

// Flow distinguishes which verification call a completed code feeds.
type Flow string

const (
	FlowLogin  Flow = "login"
	FlowSignup Flow = "signup"
)

// Challenge is an ephemeral OTP entry in progress. It is never persisted;
// navigating away discards it.
type Challenge struct {
	Email string
	Flow  Flow

	slots [SlotCount]string
	focus int
}

// NewChallenge starts an empty entry for the given email and flow.
func NewChallenge(email string, flow Flow) *Challenge {
	return &Challenge{Email: email, Flow: flow}
}

// Input stores a keystroke into slot i. A non-digit, non-empty value is
// rejected. Entering a digit into a slot before the last moves focus to the
// next slot; entering the empty string (deletion) leaves focus in place.
func (c *Challenge) Input(i int, s string) {
	if i < 0 || i >= SlotCount {
		return
	}
	if s != "" && !isDigit(s) {
		return
	}
	c.slots[i] = s
	if s != "" && i < SlotCount-1 {
		c.focus = i + 1
	} else {
		c.focus = i
	}
}

// Backspace handles the delete key in slot i: when the slot is already
// empty and i > 0, focus moves back one slot. A non-empty slot is cleared
// through Input(i, "") by the caller first, matching box-per-digit inputs.
func (c *Challenge) Backspace(i int) {
	if i > 0 && i < SlotCount && c.slots[i] == "" {
		c.focus = i - 1
	}
}

// Paste distributes up to the first SlotCount characters of text
// positionally: digits land in their slot, non-digits leave that slot
// untouched. Focus does not move.
func (c *Challenge) Paste(text string) {
	if len(text) > SlotCount {
		text = text[:SlotCount]
	}
	for i, r := range []byte(text) {
		ch := string(r)
		if isDigit(ch) {
			c.slots[i] = ch
		}
	}
}

// Clear empties every slot and resets focus, e.g. before a resend.
func (c *Challenge) Clear() {
	c.slots = [SlotCount]string{}
	c.focus = 0
}

// Code concatenates the slots. ok is true only when all six are filled;
// submit stays disabled otherwise.
func (c *Challenge) Code() (code string, ok bool) {
	var b strings.Builder
	for _, s := range c.slots {
		if s == "" {
			return "", false
		}
		b.WriteString(s)
	}
	return b.String(), true
}

// Focus returns the slot index that receives the next keystroke.
func (c *Challenge) Focus() int {
	return c.focus
}

// Slots returns a copy of the current slot contents.
func (c *Challenge) Slots() [SlotCount]string {
	return c.slots
}

func isDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}
