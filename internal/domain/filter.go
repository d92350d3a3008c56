package domain

import (
	"time"

	"github.com/google/uuid"
)

// PostFilter defines parameters for searching and paginating posts.
// All provided filters apply conjunctively. Blocked posts are excluded
// unless IncludeBlocked is set (admin-only path, gated by the caller).
type PostFilter struct {
	// Keyword performs a case-insensitive substring match across
	// title, excerpt and body.
	Keyword *string

	// OwnerID filters posts authored by the given user.
	OwnerID *uuid.UUID

	// CategoryID filters posts in the given category.
	CategoryID *uuid.UUID

	// Tags filters posts carrying at least one of the given tags.
	Tags []string

	// FromDate/ToDate bound the creation time (inclusive). Both must be
	// set for the range to apply, matching the source behavior.
	FromDate *time.Time
	ToDate   *time.Time

	// Sort selects the ordering. nil keeps the store's natural order.
	// An unrecognized value fails fast with ErrValidation.
	Sort *PostSort

	IncludeBlocked bool

	// Skip/Limit implement offset pagination, skip applied before limit.
	Skip  int
	Limit int
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Normalize applies defaults, clamps pagination and validates the sort.
func (f *PostFilter) Normalize() error {
	if f.Sort != nil && !f.Sort.IsValid() {
		return NewValidationError("sort", "unknown sort value")
	}
	if f.Limit <= 0 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	return nil
}

// Page holds offset pagination parameters for simple listings.
type Page struct {
	Skip  int
	Limit int
}

// Normalize clamps the page to sane bounds.
func (p *Page) Normalize() {
	if p.Limit <= 0 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}
