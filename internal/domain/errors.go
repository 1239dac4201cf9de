package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether email or password failed.
	// The reason is to prevent account-enumeration side channels.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotAuthenticated signals a request carrying no usable access token.
	ErrNotAuthenticated = errors.New("please login to access this resource")
	// ErrSessionExpired signals a present but no-longer-verifiable access token.
	ErrSessionExpired = errors.New("your session got expired, please login back to continue")
	// ErrUserNotFound signals a valid token whose backing session entry is gone.
	ErrUserNotFound = errors.New("user not found")
	// ErrRefreshFailed covers every refresh-path failure; the caller must
	// re-authenticate from credentials regardless of the underlying cause.
	ErrRefreshFailed  = errors.New("could not refresh token")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidInput   = errors.New("invalid input")
	ErrConflict       = errors.New("conflict")
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrCodeMismatch   = errors.New("invalid activation code")
	ErrAlreadyOwned   = errors.New("you have already purchased this course")
	ErrNotPurchased   = errors.New("you are not eligible to access this course")
	ErrNoPasswordAuth = errors.New("password update not supported for socially authenticated users")
)
