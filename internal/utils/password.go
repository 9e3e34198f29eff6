package utils

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password the reset and registration flows accept.
const MinPasswordLength = 8

var (
	errPasswordTooShort   = errors.New("password must be at least 8 characters")
	errPasswordNeedsMix   = errors.New("password must contain both letters and digits")
	errPasswordWhitespace = errors.New("password must not contain whitespace")
)

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordPolicy checks a candidate password against the password policy.
func ValidatePasswordPolicy(password string) error {
	if len(password) < MinPasswordLength {
		return errPasswordTooShort
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return errPasswordWhitespace
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errPasswordNeedsMix
	}
	return nil
}
