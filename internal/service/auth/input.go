package auth

import (
	"strings"

	"github.com/socialblog/backend/internal/domain"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 30
	minPasswordLen = 8
)

// RegisterInput holds the parameters for creating an account.
type RegisterInput struct {
	Username string
	Email    string
	Nickname string
	Password string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	switch {
	case username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case len(username) < minUsernameLen || len(username) > maxUsernameLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 3-30 characters"})
	case strings.ContainsAny(username, " \t"):
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not contain whitespace"})
	}

	if !strings.Contains(i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if strings.TrimSpace(i.Nickname) == "" {
		errs = append(errs, domain.FieldError{Field: "nickname", Message: "required"})
	}
	if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds the credentials for a password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResetPasswordInput holds the parameters for redeeming a reset token.
type ResetPasswordInput struct {
	Username    string
	Token       string
	NewPassword string
}

// Validate checks all fields and collects all errors.
func (i ResetPasswordInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Token == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	}
	if len(i.NewPassword) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "min 8 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
