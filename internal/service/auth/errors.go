package auth

import "errors"

var (
	// ErrInvalidToken indicates the token is malformed, has an invalid
	// signature, or fails validation for a reason other than expiry.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates the token's expiry time has passed.
	ErrExpiredToken = errors.New("token has expired")

	// ErrInvalidCredentials indicates the email/password pair did not match
	// a known user. Deliberately vague so login failures do not reveal
	// whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
