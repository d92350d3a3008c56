package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
	"github.com/socialblog/backend/internal/loader"
)

// ListComments returns the direct children of a container in insertion
// order. Dangling ids are dropped silently.
func (s *Service) ListComments(ctx context.Context, input ListCommentsInput) ([]*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var childIDs []uuid.UUID
	switch input.ParentKind {
	case domain.ParentPost:
		post, err := s.posts.GetByID(ctx, input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("resolve post: %w", err)
		}
		childIDs = post.CommentIDs
	case domain.ParentComment:
		parent, err := s.comments.GetByID(ctx, input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("resolve parent comment: %w", err)
		}
		childIDs = parent.ChildIDs
	}

	children, err := s.comments.GetByIDs(ctx, childIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve comments: %w", err)
	}

	// The batch read loses the container's ordering; restore it.
	byID := make(map[uuid.UUID]*domain.Comment, len(children))
	for _, c := range children {
		byID[c.ID] = c
	}
	ordered := make([]*domain.Comment, 0, len(children))
	for _, id := range childIDs {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

// ResolvedComment pairs a comment with its expanded owner reference.
// Owner is nil when the owning user no longer exists.
type ResolvedComment struct {
	Comment *domain.Comment
	Owner   *domain.User
}

// ListCommentsResolved returns the direct children of a container with
// their owner references expanded. Owner lookups go through the
// request's batch loaders when present, so a whole listing costs one
// user read regardless of thread size.
func (s *Service) ListCommentsResolved(ctx context.Context, input ListCommentsInput) ([]*ResolvedComment, error) {
	children, err := s.ListComments(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.resolveOwners(ctx, children)
}

func (s *Service) resolveOwners(ctx context.Context, comments []*domain.Comment) ([]*ResolvedComment, error) {
	ownerIDs := make([]uuid.UUID, 0, len(comments))
	for _, c := range comments {
		ownerIDs = append(ownerIDs, c.OwnerID)
	}

	var (
		owners []*domain.User
		err    error
	)
	if loaders, ok := loader.FromCtx(ctx); ok {
		owners, err = loader.ResolveMany(ctx, loaders.Users, ownerIDs)
	} else {
		owners, err = s.users.GetByIDs(ctx, ownerIDs)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve owners: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.User, len(owners))
	for _, u := range owners {
		byID[u.ID] = u
	}

	resolved := make([]*ResolvedComment, 0, len(comments))
	for _, c := range comments {
		resolved = append(resolved, &ResolvedComment{Comment: c, Owner: byID[c.OwnerID]})
	}
	return resolved, nil
}

// CountComments returns how many comments a post has, replies included.
func (s *Service) CountComments(ctx context.Context, postID uuid.UUID) (int, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return 0, fmt.Errorf("resolve post: %w", err)
	}

	n, err := s.comments.CountByPost(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}

// GetComment returns a comment by id.
func (s *Service) GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return c, nil
}
