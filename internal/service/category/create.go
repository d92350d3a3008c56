package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/socialblog/backend/internal/authz"
	"github.com/socialblog/backend/internal/domain"
	"github.com/socialblog/backend/pkg/ctxutil"
)

// CreateCategory creates a new category with a derived, collision-free slug.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := authz.Require(actor, authz.ActionCreate, &domain.Category{}); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	slug, err := s.freeSlug(ctx, domain.Slugify(name))
	if err != nil {
		return nil, err
	}

	var background *domain.MediaRef
	if input.Background != nil {
		background, err = s.media.Put(ctx, input.Background.Data, input.Background.ContentType)
		if err != nil {
			return nil, fmt.Errorf("store background: %w", err)
		}
	}

	created, err := s.categories.Create(ctx, &domain.Category{
		Name:       name,
		Slug:       slug,
		Background: background,
	})
	if err != nil {
		// The blob is orphaned otherwise.
		if background != nil {
			if delErr := s.media.Delete(ctx, background.StorageID); delErr != nil {
				s.log.WarnContext(ctx, "release background after failed create",
					slog.String("storage_id", background.StorageID),
					slog.String("error", delErr.Error()),
				)
			}
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)

	return created, nil
}

// freeSlug probes the repository for the first unused slug, suffixing
// -2, -3, ... on collisions.
func (s *Service) freeSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for n := 2; ; n++ {
		exists, err := s.categories.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = domain.SlugWithSuffix(base, n)
	}
}

// requireActor loads the authenticated user issuing the request.
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
