package post

import (
	"strings"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

const (
	maxTitleLen   = 200
	maxExcerptLen = 500
	maxTags       = 10
)

// CreatePostInput holds the parameters for creating a post.
type CreatePostInput struct {
	Title      string
	Excerpt    string
	Body       string
	CategoryID uuid.UUID
	Tags       []string
	Cover      *domain.MediaUpload
}

// Validate checks all fields and collects all errors.
func (i CreatePostInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(i.Excerpt) > maxExcerptLen {
		errs = append(errs, domain.FieldError{Field: "excerpt", Message: "max 500 characters"})
	}
	if strings.TrimSpace(i.Body) == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 10 tags"})
	}
	if i.Cover != nil && !domain.SupportedMediaType(i.Cover.ContentType) {
		errs = append(errs, domain.FieldError{Field: "cover", Message: "unsupported media type"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePostInput holds the parameters for a partial post update.
// nil fields are left unchanged.
type UpdatePostInput struct {
	PostID     uuid.UUID
	Title      *string
	Excerpt    *string
	Body       *string
	CategoryID *uuid.UUID
	Tags       []string // nil = don't change
	Cover      *domain.MediaUpload
	// RemoveCover releases the current cover without supplying a new one.
	// Ignored when Cover is set.
	RemoveCover bool
}

// Validate checks all fields and collects all errors.
func (i UpdatePostInput) Validate() error {
	var errs []domain.FieldError

	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if i.Title == nil && i.Excerpt == nil && i.Body == nil && i.CategoryID == nil &&
		i.Tags == nil && i.Cover == nil && !i.RemoveCover {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Excerpt != nil && len(*i.Excerpt) > maxExcerptLen {
		errs = append(errs, domain.FieldError{Field: "excerpt", Message: "max 500 characters"})
	}
	if i.Body != nil && strings.TrimSpace(*i.Body) == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if i.CategoryID != nil && *i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 10 tags"})
	}
	if i.Cover != nil && !domain.SupportedMediaType(i.Cover.ContentType) {
		errs = append(errs, domain.FieldError{Field: "cover", Message: "unsupported media type"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
