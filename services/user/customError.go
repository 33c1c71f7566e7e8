package user

import "errors"

// ErrInvalidCredentials is returned when email/password authentication fails.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// OTPPendingError signals that OTP initiation succeeded but verification is pending.
type OTPPendingError struct {
	SessionID string
}

func (e OTPPendingError) Error() string {
	return "OTP pending; sessionID: " + e.SessionID
}
