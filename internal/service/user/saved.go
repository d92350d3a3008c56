package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
	"github.com/socialblog/backend/pkg/ctxutil"
)

// SavePost adds postID to the caller's saved-post set. Saving a post
// twice changes nothing and succeeds. The post id is not resolved: a
// save may reference a post deleted concurrently, and readers drop
// such dangling ids.
func (s *Service) SavePost(ctx context.Context, postID uuid.UUID) error {
	return s.setSaved(ctx, postID, true)
}

// UnsavePost removes postID from the caller's saved-post set.
func (s *Service) UnsavePost(ctx context.Context, postID uuid.UUID) error {
	return s.setSaved(ctx, postID, false)
}

func (s *Service) setSaved(ctx context.Context, postID uuid.UUID, save bool) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var (
		resolved bool
		err      error
	)
	if save {
		resolved, err = s.users.AddSavedPost(ctx, userID, postID)
	} else {
		resolved, err = s.users.RemoveSavedPost(ctx, userID, postID)
	}
	if err != nil {
		return fmt.Errorf("update saved posts: %w", err)
	}
	if !resolved {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// SavedPosts returns a page of the caller's saved posts in save order.
// Dangling ids are dropped silently, so a page may come back shorter
// than its limit.
func (s *Service) SavedPosts(ctx context.Context, page domain.Page) ([]*domain.Post, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}
	page.Normalize()

	ids := actor.SavedPosts
	if page.Skip >= len(ids) {
		return []*domain.Post{}, nil
	}
	ids = ids[page.Skip:]
	if len(ids) > page.Limit {
		ids = ids[:page.Limit]
	}

	posts, err := s.posts.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve saved posts: %w", err)
	}

	// The batch read loses the save ordering; restore it.
	byID := make(map[uuid.UUID]*domain.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	ordered := make([]*domain.Post, 0, len(posts))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
