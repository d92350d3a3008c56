package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/socialblog/backend/internal/authz"
	"github.com/socialblog/backend/internal/domain"
)

// UpdatePost applies a partial update to a post owned by the actor (or
// any post, for admins). A title change derives a fresh slug. A cover
// change commits the new blob before releasing the old one.
func (s *Service) UpdatePost(ctx context.Context, input UpdatePostInput) (*domain.Post, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.posts.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if err := authz.Require(actor, authz.ActionUpdate, current); err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title != current.Title {
			slug, err := s.freeSlug(ctx, domain.Slugify(title))
			if err != nil {
				return nil, err
			}
			current.Title = title
			current.Slug = slug
		}
	}
	if input.Excerpt != nil {
		current.Excerpt = strings.TrimSpace(*input.Excerpt)
	}
	if input.Body != nil {
		current.Body = *input.Body
	}
	if input.CategoryID != nil && *input.CategoryID != current.CategoryID {
		if _, err := s.categories.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, fmt.Errorf("resolve category: %w", err)
		}
		current.CategoryID = *input.CategoryID
	}
	if input.Tags != nil {
		current.Tags = normalizeTags(input.Tags)
	}

	oldCover := current.Cover
	releaseOld := false
	switch {
	case input.Cover != nil:
		next, err := s.media.Put(ctx, input.Cover.Data, input.Cover.ContentType)
		if err != nil {
			return nil, fmt.Errorf("store cover: %w", err)
		}
		current.Cover = next
		releaseOld = oldCover != nil
	case input.RemoveCover && oldCover != nil:
		current.Cover = nil
		releaseOld = true
	}

	updated, err := s.posts.Update(ctx, current)
	if err != nil {
		if input.Cover != nil && current.Cover != nil {
			s.releaseMedia(ctx, current.Cover.StorageID, "release cover after failed update")
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	if releaseOld {
		s.releaseMedia(ctx, oldCover.StorageID, "release replaced cover")
	}

	s.log.InfoContext(ctx, "post updated",
		slog.String("post_id", updated.ID.String()),
	)

	return updated, nil
}
