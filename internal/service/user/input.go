package user

import (
	"strings"

	"github.com/socialblog/backend/internal/domain"
)

const maxNicknameLen = 50

// UpdateProfileInput holds the parameters for updating the caller's
// profile. nil fields are left unchanged.
type UpdateProfileInput struct {
	Nickname *string
	Email    *string
	Avatar   *domain.MediaUpload
	// RemoveAvatar releases the current avatar without supplying a new
	// one. Ignored when Avatar is set.
	RemoveAvatar bool
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Nickname == nil && i.Email == nil && i.Avatar == nil && !i.RemoveAvatar {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Nickname != nil {
		nickname := strings.TrimSpace(*i.Nickname)
		if nickname == "" {
			errs = append(errs, domain.FieldError{Field: "nickname", Message: "required"})
		}
		if len(nickname) > maxNicknameLen {
			errs = append(errs, domain.FieldError{Field: "nickname", Message: "max 50 characters"})
		}
	}
	if i.Email != nil && !strings.Contains(*i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if i.Avatar != nil && !domain.SupportedMediaType(i.Avatar.ContentType) {
		errs = append(errs, domain.FieldError{Field: "avatar", Message: "unsupported media type"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
