// Package models defines the typed records exchanged with the FocusDeck API.
package models

// User is the authenticated account profile returned by /auth/me.
type User struct {
	ID             int     `json:"id"`
	Email          string  `json:"email"`
	Username       string  `json:"username"`
	FullName       string  `json:"full_name"`
	IsActive       bool    `json:"is_active"`
	IsVerified     bool    `json:"is_verified"`
	IsAdmin        bool    `json:"is_admin"`
	Role           string  `json:"role"`
	ProfilePicture *string `json:"profile_picture"`
}

// Token is the bearer credential issued by login and OTP verification.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
