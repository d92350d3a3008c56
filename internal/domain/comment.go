package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply attached either to a post (root level) or to another
// comment. A comment id appears in exactly one container: the post's
// CommentIDs when ParentCommentID is nil, otherwise the parent comment's
// ChildIDs. The tree under a post is acyclic and finite-depth.
type Comment struct {
	ID              uuid.UUID
	Content         string
	OwnerID         uuid.UUID
	PostID          uuid.UUID
	ParentCommentID *uuid.UUID
	ChildIDs        []uuid.UUID
	Likes           []uuid.UUID
	Media           *MediaRef
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ResourceKind implements the authz resource discriminator.
func (c *Comment) ResourceKind() ResourceKind { return KindComment }

// ResourceOwner returns the authoring actor id.
func (c *Comment) ResourceOwner() uuid.UUID { return c.OwnerID }

// IsRoot reports whether the comment hangs directly off its post.
func (c *Comment) IsRoot() bool { return c.ParentCommentID == nil }

// CommentUpdateParams describes a partial update of a comment.
type CommentUpdateParams struct {
	Content *string
}
