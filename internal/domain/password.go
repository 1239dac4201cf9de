package domain

import "fmt"

const (
	minPasswordLength = 6
	maxPasswordLength = 128
)

// ValidatePassword enforces the baseline password policy for credential
// accounts. Social-auth accounts carry no password and skip this entirely.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be <= %d characters", ErrInvalidInput, maxPasswordLength)
	}
	return nil
}
