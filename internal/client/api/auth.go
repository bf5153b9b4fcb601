package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mkorolev/focusdeck/internal/client/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	OTPCode  string `json:"otp_code,omitempty"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type otpRequest struct {
	Email string `json:"email"`
}

type otpVerifyRequest struct {
	Email   string `json:"email"`
	OTPCode string `json:"otp_code"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// Login authenticates with email and password. otpCode may be empty; it is
// only required by deployments that demand a fresh code on every login.
func (c *HTTPClient) Login(ctx context.Context, email, password, otpCode string) (models.Token, error) {
	var tok models.Token
	err := c.do(ctx, http.MethodPost, "/auth/login", "", nil,
		loginRequest{Email: email, Password: password, OTPCode: otpCode}, &tok)
	return tok, err
}

// Register creates a new account. The account stays unverified until the
// emailed OTP is confirmed via VerifyOTPSignup.
func (c *HTTPClient) Register(ctx context.Context, email, username, fullName, password string) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/auth/register", "", nil,
		registerRequest{Email: email, Username: username, FullName: fullName, Password: password}, &user)
	return user, err
}

// CurrentUser resolves a bearer token to the account profile.
func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, nil, &user)
	return user, err
}

// SendOTP (re)issues a one-time code to the given email.
func (c *HTTPClient) SendOTP(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/send-otp", "", nil, otpRequest{Email: email}, nil)
}

// VerifyOTP confirms a login OTP and returns an access token.
func (c *HTTPClient) VerifyOTP(ctx context.Context, email, code string) (models.Token, error) {
	var tok models.Token
	err := c.do(ctx, http.MethodPost, "/auth/verify-otp", "", nil,
		otpVerifyRequest{Email: email, OTPCode: code}, &tok)
	return tok, err
}

// VerifyOTPSignup confirms the post-registration email verification OTP.
// No token is issued; the caller proceeds to a normal login.
func (c *HTTPClient) VerifyOTPSignup(ctx context.Context, email, code string) error {
	return c.do(ctx, http.MethodPost, "/auth/verify-otp-signup", "", nil,
		otpVerifyRequest{Email: email, OTPCode: code}, nil)
}

// GoogleLogin exchanges a federated authorization code for an access token.
func (c *HTTPClient) GoogleLogin(ctx context.Context, code string) (models.Token, error) {
	q := url.Values{}
	q.Set("code", code)
	var tok models.Token
	err := c.do(ctx, http.MethodGet, "/auth/google/callback", "", q, nil, &tok)
	return tok, err
}

// ForgotPassword requests a password-reset email.
func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", "", nil,
		forgotPasswordRequest{Email: email}, nil)
}

// ResetPassword submits a new password together with the emailed reset token.
func (c *HTTPClient) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/auth/reset-password", "", nil,
		resetPasswordRequest{Token: resetToken, NewPassword: newPassword}, nil)
}
