package services

import (
	"context"
	"errors"
	"sync"

	"github.com/mkorolev/focusdeck/internal/client/models"
	"github.com/mkorolev/focusdeck/internal/common"
	"github.com/mkorolev/focusdeck/internal/logging"
)

// authAPI is the slice of the API client the auth flow needs.
type authAPI interface {
	Login(ctx context.Context, email, password, otpCode string) (models.Token, error)
	Register(ctx context.Context, email, username, fullName, password string) (models.User, error)
	CurrentUser(ctx context.Context, token string) (models.User, error)
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (models.Token, error)
	VerifyOTPSignup(ctx context.Context, email, code string) error
	GoogleLogin(ctx context.Context, code string) (models.Token, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

// sessionWriter is the session store surface the auth flow drives.
type sessionWriter interface {
	Login(ctx context.Context, user models.User, token string) error
	Logout(ctx context.Context)
}

// AuthService orchestrates login, registration, OTP verification, federated
// login, and password recovery.
//
// Contract, shared by every operation:
//   - loading is true for the duration of the call and false afterward;
//   - a failure records the server's message (readable via Err) and is
//     returned to the caller so screens can branch on it;
//   - operations that yield a token finish by fetching the current user and
//     writing both into the session store.
//
// Exception: a login rejected because the account is unverified returns an
// error matching common.ErrUnverified and records no display message — the
// caller is expected to move to the OTP entry screen instead.
type AuthService struct {
	api     authAPI
	session sessionWriter
	log     logging.Logger

	mu      sync.Mutex
	loading bool
	lastErr string
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(api authAPI, session sessionWriter, log logging.Logger) *AuthService {
	return &AuthService{api: api, session: session, log: log}
}

// Loading reports whether an operation is in flight.
func (s *AuthService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last recorded failure message, or "" after a success.
func (s *AuthService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *AuthService) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *AuthService) finish(msg string) {
	s.mu.Lock()
	s.loading = false
	s.lastErr = msg
	s.mu.Unlock()
}

// completeLogin writes the validated pair into the session store. Persist
// failures are logged but do not fail the login: the in-memory session is
// already authoritative.
func (s *AuthService) completeLogin(ctx context.Context, user models.User, token string) {
	if err := s.session.Login(ctx, user, token); err != nil {
		s.log.Warn(ctx, "session not persisted", "err", err)
	}
}

// Login authenticates with email and password, resolves the token to a user
// profile, and writes the session. An unverified account yields an error
// matching common.ErrUnverified; the server has already sent a fresh OTP.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	s.begin()

	tok, err := s.api.Login(ctx, email, password, "")
	if err != nil {
		if errors.Is(err, common.ErrUnverified) {
			s.finish("") // not a display error: caller redirects to OTP entry
		} else {
			s.finish(err.Error())
		}
		return err
	}

	user, err := s.api.CurrentUser(ctx, tok.AccessToken)
	if err != nil {
		s.finish(err.Error())
		return err
	}

	s.completeLogin(ctx, user, tok.AccessToken)
	s.log.Info(ctx, "logged in", "email", user.Email)
	s.finish("")
	return nil
}

// Register creates an account. The caller navigates to OTP verification on
// success; no session is written.
func (s *AuthService) Register(ctx context.Context, email, username, fullName, password string) error {
	s.begin()
	if _, err := s.api.Register(ctx, email, username, fullName, password); err != nil {
		s.finish(err.Error())
		return err
	}
	s.finish("")
	return nil
}

// SendOTP (re)issues a one-time code to the given email.
func (s *AuthService) SendOTP(ctx context.Context, email string) error {
	s.begin()
	if err := s.api.SendOTP(ctx, email); err != nil {
		s.finish(err.Error())
		return err
	}
	s.finish("")
	return nil
}

// VerifyOTP confirms a login OTP, resolves the issued token to a user
// profile, and writes the session.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	s.begin()

	tok, err := s.api.VerifyOTP(ctx, email, code)
	if err != nil {
		s.finish(err.Error())
		return err
	}
	user, err := s.api.CurrentUser(ctx, tok.AccessToken)
	if err != nil {
		s.finish(err.Error())
		return err
	}

	s.completeLogin(ctx, user, tok.AccessToken)
	s.log.Info(ctx, "logged in via OTP", "email", user.Email)
	s.finish("")
	return nil
}

// VerifyOTPSignup confirms the post-registration verification code. The
// caller proceeds to a normal login; no session is written.
func (s *AuthService) VerifyOTPSignup(ctx context.Context, email, code string) error {
	s.begin()
	if err := s.api.VerifyOTPSignup(ctx, email, code); err != nil {
		s.finish(err.Error())
		return err
	}
	s.finish("")
	return nil
}

// GoogleLogin exchanges a federated authorization code and writes the
// session, mirroring the Login chain.
func (s *AuthService) GoogleLogin(ctx context.Context, code string) error {
	s.begin()

	tok, err := s.api.GoogleLogin(ctx, code)
	if err != nil {
		s.finish(err.Error())
		return err
	}
	user, err := s.api.CurrentUser(ctx, tok.AccessToken)
	if err != nil {
		s.finish(err.Error())
		return err
	}

	s.completeLogin(ctx, user, tok.AccessToken)
	s.log.Info(ctx, "logged in via Google", "email", user.Email)
	s.finish("")
	return nil
}

// ForgotPassword requests a reset email. The caller shows a confirmation
// message on success.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	s.begin()
	if err := s.api.ForgotPassword(ctx, email); err != nil {
		s.finish(err.Error())
		return err
	}
	s.finish("")
	return nil
}

// ResetPassword submits a new password with the emailed reset token.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	s.begin()
	if err := s.api.ResetPassword(ctx, resetToken, newPassword); err != nil {
		s.finish(err.Error())
		return err
	}
	s.finish("")
	return nil
}

// Logout clears the session.
func (s *AuthService) Logout(ctx context.Context) {
	s.session.Logout(ctx)
}
