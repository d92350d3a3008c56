package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/socialblog/backend/internal/authz"
	"github.com/socialblog/backend/internal/domain"
	"github.com/socialblog/backend/pkg/ctxutil"
)

// CreatePost publishes a new post for the authenticated user.
// The category must exist before anything else happens; the slug is
// derived from the title with collision suffixing.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	draft := &domain.Post{
		Title:      strings.TrimSpace(input.Title),
		Excerpt:    strings.TrimSpace(input.Excerpt),
		Body:       input.Body,
		OwnerID:    actor.ID,
		CategoryID: input.CategoryID,
		Tags:       normalizeTags(input.Tags),
	}
	if err := authz.Require(actor, authz.ActionCreate, draft); err != nil {
		return nil, err
	}

	if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	draft.Slug, err = s.freeSlug(ctx, domain.Slugify(draft.Title))
	if err != nil {
		return nil, err
	}

	if input.Cover != nil {
		draft.Cover, err = s.media.Put(ctx, input.Cover.Data, input.Cover.ContentType)
		if err != nil {
			return nil, fmt.Errorf("store cover: %w", err)
		}
	}

	created, err := s.posts.Create(ctx, draft)
	if err != nil {
		if draft.Cover != nil {
			s.releaseMedia(ctx, draft.Cover.StorageID, "release cover after failed create")
		}
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("post_id", created.ID.String()),
		slog.String("owner_id", actor.ID.String()),
		slog.String("slug", created.Slug),
	)

	return created, nil
}

func (s *Service) freeSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for n := 2; ; n++ {
		exists, err := s.posts.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = domain.SlugWithSuffix(base, n)
	}
}

func (s *Service) requireActor(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	actor, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load actor: %w", err)
	}
	return actor, nil
}

func (s *Service) releaseMedia(ctx context.Context, storageID, msg string) {
	if err := s.media.Delete(ctx, storageID); err != nil {
		s.log.WarnContext(ctx, msg,
			slog.String("storage_id", storageID),
			slog.String("error", err.Error()),
		)
	}
}

// normalizeTags trims, lowercases and deduplicates tags, dropping empties.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
