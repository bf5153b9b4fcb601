package api

import (
	"net/http"
	"strings"

	"github.com/mkorolev/focusdeck/internal/common"
)

// unverifiedDetail is the server's reason for a login rejected on an
// unverified account. The server sends a fresh OTP before responding.
const unverifiedDetail = "Please verify your email. OTP sent."

// Error is the normalized shape of every non-2xx API response. Message is
// the server's human-readable detail, or a generic fallback when the body
// was absent or unparsable.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap maps well-known failures onto sentinel errors so that callers can
// branch with errors.Is without inspecting status codes or message text.
func (e *Error) Unwrap() error {
	if strings.Contains(e.Message, unverifiedDetail) {
		return common.ErrUnverified
	}
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}
