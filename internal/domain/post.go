package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a published piece of content.
//
// CommentIDs holds root-level comments in insertion order (append-only,
// chronological display order). Every id in it must reference an existing
// comment whose PostID equals this post's ID; the comment service maintains
// that invariant. Likes is a set mutated only through atomic set-add /
// set-remove operations.
type Post struct {
	ID         uuid.UUID
	Title      string
	Excerpt    string
	Body       string
	Slug       string
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
	Cover      *MediaRef
	Tags       []string
	Likes      []uuid.UUID
	CommentIDs []uuid.UUID
	IsBlocked  bool
	ViewCount  uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ResourceKind implements the authz resource discriminator.
func (p *Post) ResourceKind() ResourceKind { return KindPost }

// ResourceOwner returns the authoring actor id.
func (p *Post) ResourceOwner() uuid.UUID { return p.OwnerID }

// PostUpdateParams describes a partial update of a post.
// nil fields are left unchanged.
type PostUpdateParams struct {
	Title      *string
	Excerpt    *string
	Body       *string
	CategoryID *uuid.UUID
	Tags       []string // nil = don't change
	Cover      *MediaRef
	// RemoveCover releases the existing cover without supplying a new one.
	// Ignored when Cover is set.
	RemoveCover bool
}
