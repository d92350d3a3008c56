package comment

import (
	"strings"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

const maxContentLen = 5000

// CreateCommentInput holds the parameters for creating a comment under
// a post (root level) or under another comment (reply).
type CreateCommentInput struct {
	ParentKind domain.ParentKind
	ParentID   uuid.UUID
	Content    string
	Media      *domain.MediaUpload
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate() error {
	var errs []domain.FieldError

	if !i.ParentKind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "parent_kind", Message: "must be POST or COMMENT"})
	}
	if i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 5000 characters"})
	}
	if i.Media != nil && !domain.SupportedMediaType(i.Media.ContentType) {
		errs = append(errs, domain.FieldError{Field: "media", Message: "unsupported media type"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCommentInput holds the parameters for editing a comment body.
type UpdateCommentInput struct {
	CommentID uuid.UUID
	Content   string
}

// Validate checks all fields and collects all errors.
func (i UpdateCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCommentsInput selects a container whose direct children are listed.
type ListCommentsInput struct {
	ParentKind domain.ParentKind
	ParentID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListCommentsInput) Validate() error {
	var errs []domain.FieldError

	if !i.ParentKind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "parent_kind", Message: "must be POST or COMMENT"})
	}
	if i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
