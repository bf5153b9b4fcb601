package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorolev/focusdeck/internal/client/models"
	"github.com/mkorolev/focusdeck/internal/common"
	"github.com/mkorolev/focusdeck/internal/logging"
)

// ---- fakes ----

type fakeAuthAPI struct {
	LoginTok models.Token
	LoginErr error

	RegisterUser models.User
	RegisterErr  error

	CurrentUserRet models.User
	CurrentUserErr error

	SendOTPErr         error
	VerifyOTPTok       models.Token
	VerifyOTPErr       error
	VerifyOTPSignupErr error
	GoogleTok          models.Token
	GoogleErr          error
	ForgotErr          error
	ResetErr           error

	LastLoginEmail    string
	LastLoginPassword string
	LastLoginOTP      string
	LastCurrentToken  string
	LastOTPEmail      string
	LastOTPCode       string
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password, otpCode string) (models.Token, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	f.LastLoginOTP = otpCode
	return f.LoginTok, f.LoginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, email, username, fullName, password string) (models.User, error) {
	return f.RegisterUser, f.RegisterErr
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context, token string) (models.User, error) {
	f.LastCurrentToken = token
	return f.CurrentUserRet, f.CurrentUserErr
}

func (f *fakeAuthAPI) SendOTP(ctx context.Context, email string) error {
	f.LastOTPEmail = email
	return f.SendOTPErr
}

func (f *fakeAuthAPI) VerifyOTP(ctx context.Context, email, code string) (models.Token, error) {
	f.LastOTPEmail = email
	f.LastOTPCode = code
	return f.VerifyOTPTok, f.VerifyOTPErr
}

func (f *fakeAuthAPI) VerifyOTPSignup(ctx context.Context, email, code string) error {
	f.LastOTPEmail = email
	f.LastOTPCode = code
	return f.VerifyOTPSignupErr
}

func (f *fakeAuthAPI) GoogleLogin(ctx context.Context, code string) (models.Token, error) {
	return f.GoogleTok, f.GoogleErr
}

func (f *fakeAuthAPI) ForgotPassword(ctx context.Context, email string) error {
	return f.ForgotErr
}

func (f *fakeAuthAPI) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return f.ResetErr
}

type fakeSession struct {
	LoginUser  *models.User
	LoginToken string
	LoginErr   error
	LoggedOut  bool
}

func (f *fakeSession) Login(ctx context.Context, user models.User, token string) error {
	f.LoginUser = &user
	f.LoginToken = token
	return f.LoginErr
}

func (f *fakeSession) Logout(ctx context.Context) { f.LoggedOut = true }

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

// ---- tests ----

func TestLogin_SuccessChain_WritesSession(t *testing.T) {
	api := &fakeAuthAPI{
		LoginTok:       models.Token{AccessToken: "tok-1", TokenType: "bearer"},
		CurrentUserRet: models.User{ID: 1, Email: "u@example.com"},
	}
	sess := &fakeSession{}
	svc := NewAuthService(api, sess, discardLogger())

	err := svc.Login(context.Background(), "u@example.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, "tok-1", api.LastCurrentToken, "current-user must use the fresh token")
	require.NotNil(t, sess.LoginUser)
	assert.Equal(t, "u@example.com", sess.LoginUser.Email)
	assert.Equal(t, "tok-1", sess.LoginToken)
	assert.Empty(t, svc.Err())
	assert.False(t, svc.Loading())
}

func TestLogin_UnverifiedAccount_SignalsWithoutDisplayError(t *testing.T) {
	api := &fakeAuthAPI{
		LoginErr: fmt.Errorf("login: %w", common.ErrUnverified),
	}
	sess := &fakeSession{}
	svc := NewAuthService(api, sess, discardLogger())

	err := svc.Login(context.Background(), "new@example.com", "pw")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnverified))
	assert.Empty(t, svc.Err(), "unverified is a flow signal, not a display error")
	assert.Nil(t, sess.LoginUser, "session must stay empty")
	assert.False(t, svc.Loading())
}

func TestLogin_BadCredentials_RecordsMessage(t *testing.T) {
	api := &fakeAuthAPI{LoginErr: errors.New("Incorrect email or password")}
	svc := NewAuthService(api, &fakeSession{}, discardLogger())

	err := svc.Login(context.Background(), "u@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", svc.Err())
}

func TestLogin_CurrentUserFails_NoSessionWrite(t *testing.T) {
	api := &fakeAuthAPI{
		LoginTok:       models.Token{AccessToken: "tok"},
		CurrentUserErr: common.ErrUnauthorized,
	}
	sess := &fakeSession{}
	svc := NewAuthService(api, sess, discardLogger())

	err := svc.Login(context.Background(), "u@example.com", "pw")
	require.Error(t, err)
	assert.Nil(t, sess.LoginUser)
	assert.NotEmpty(t, svc.Err())
}

func TestVerifyOTP_SuccessChain_WritesSession(t *testing.T) {
	api := &fakeAuthAPI{
		VerifyOTPTok:   models.Token{AccessToken: "tok-otp"},
		CurrentUserRet: models.User{ID: 2, Email: "new@example.com"},
	}
	sess := &fakeSession{}
	svc := NewAuthService(api, sess, discardLogger())

	err := svc.VerifyOTP(context.Background(), "new@example.com", "123456")
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", api.LastOTPEmail)
	assert.Equal(t, "123456", api.LastOTPCode)
	assert.Equal(t, "tok-otp", api.LastCurrentToken)
	require.NotNil(t, sess.LoginUser)
	assert.Equal(t, "tok-otp", sess.LoginToken)
}

func TestVerifyOTPSignup_NoSessionWrite(t *testing.T) {
	api := &fakeAuthAPI{}
	sess := &fakeSession{}
	svc := NewAuthService(api, sess, discardLogger())

	require.NoError(t, svc.VerifyOTPSignup(context.Background(), "new@example.com", "654321"))
	assert.Nil(t, sess.LoginUser, "signup verification must not log in")
}

func TestVerifyOTP_Failure_KeepsMessage(t *testing.T) {
	api := &fakeAuthAPI{VerifyOTPErr: errors.New("Invalid OTP code")}
	svc := NewAuthService(api, &fakeSession{}, discardLogger())

	err := svc.VerifyOTP(context.Background(), "u@example.com", "000000")
	require.Error(t, err)
	assert.Equal(t, "Invalid OTP code", svc.Err())
}

func TestGoogleLogin_SuccessChain(t *testing.T) {
	api := &fakeAuthAPI{
		GoogleTok:      models.Token{AccessToken: "tok-g"},
		CurrentUserRet: models.User{ID: 3, Email: "g@example.com"},
	}
	sess := &fakeSession{}
	svc := NewAuthService(api, sess, discardLogger())

	require.NoError(t, svc.GoogleLogin(context.Background(), "4/code"))
	assert.Equal(t, "tok-g", sess.LoginToken)
}

func TestRegister_Failure_RecordsMessage(t *testing.T) {
	api := &fakeAuthAPI{RegisterErr: errors.New("Email already registered")}
	svc := NewAuthService(api, &fakeSession{}, discardLogger())

	err := svc.Register(context.Background(), "u@example.com", "u", "U", "pw")
	require.Error(t, err)
	assert.Equal(t, "Email already registered", svc.Err())
}

func TestLogout_ClearsSession(t *testing.T) {
	sess := &fakeSession{}
	svc := NewAuthService(&fakeAuthAPI{}, sess, discardLogger())

	svc.Logout(context.Background())
	assert.True(t, sess.LoggedOut)
}

func TestUnverifiedThenVerify_EndToEnd(t *testing.T) {
	api := &fakeAuthAPI{
		LoginErr:       fmt.Errorf("login: %w", common.ErrUnverified),
		VerifyOTPTok:   models.Token{AccessToken: "tok-final"},
		CurrentUserRet: models.User{ID: 9, Email: "late@example.com"},
	}
	sess := &fakeSession{}
	svc := NewAuthService(api, sess, discardLogger())

	// Login is rejected: the screen inspects the error and moves to OTP
	// entry seeded with the submitted email.
	err := svc.Login(context.Background(), "late@example.com", "pw")
	require.True(t, errors.Is(err, common.ErrUnverified))

	// Entering the correct code completes the chain into the session.
	require.NoError(t, svc.VerifyOTP(context.Background(), "late@example.com", "123456"))
	require.NotNil(t, sess.LoginUser)
	assert.Equal(t, "late@example.com", sess.LoginUser.Email)
	assert.Equal(t, "tok-final", sess.LoginToken)
}
