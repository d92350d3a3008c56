package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups posts. Name is unique; Slug is derived from Name at
// create/rename time (see Slugify) and is also unique.
type Category struct {
	ID         uuid.UUID
	Name       string
	Slug       string
	Background *MediaRef
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ResourceKind implements the authz resource discriminator.
func (c *Category) ResourceKind() ResourceKind { return KindCategory }

// ResourceOwner returns uuid.Nil: categories have no owning actor, so
// ownership-based ability rules never apply to them.
func (c *Category) ResourceOwner() uuid.UUID { return uuid.Nil }

// CategoryUpdateParams describes a partial update of a category.
type CategoryUpdateParams struct {
	Name       *string
	Background *MediaRef
	// RemoveBackground releases the existing background without supplying
	// a new one. Ignored when Background is set.
	RemoveBackground bool
}
