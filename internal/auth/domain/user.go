// Package domain holds the auth service's core types and validation rules.
package domain

import (
	"errors"
	"strings"
	"time"
)

// User is the public identity shape echoed back by register and login.
// It never carries the password hash.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Credential is the record the auth service expects from the credential
// store: subject identity plus the argon2id password hash. The service never
// persists these itself; the store is an external collaborator.
type Credential struct {
	SubjectID    string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Validation limits for registration input.
const (
	MinPasswordLength = 8
	MinUsernameLength = 3
)

var (
	ErrEmailInvalid     = errors.New("domain: invalid email address")
	ErrEmailRequired    = errors.New("domain: email is required")
	ErrPasswordRequired = errors.New("domain: password is required")
	ErrPasswordTooShort = errors.New("domain: password too short")
	ErrUsernameTooShort = errors.New("domain: username too short")
)

// ValidateRegistration checks registration input. These are the cheap checks
// and they run before any hashing or store work.
func ValidateRegistration(email, password, username string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(strings.TrimSpace(username)) < MinUsernameLength {
		return ErrUsernameTooShort
	}
	return nil
}

// ValidateLogin checks login input before any credential lookup.
func ValidateLogin(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidateEmail enforces the minimal shape local@domain. Full RFC 5322
// validation is a rabbit hole; delivery is what actually validates an email.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return ErrEmailInvalid
	}
	if strings.ContainsAny(email, " \t") {
		return ErrEmailInvalid
	}
	return nil
}

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
