package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/socialblog/backend/internal/authz"
	"github.com/socialblog/backend/internal/domain"
)

// UpdateCategory applies a partial update. A name change derives a fresh
// slug; a background change commits the new blob before releasing the
// old one, so a failed update never leaves the category without media.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if err := authz.Require(actor, authz.ActionUpdate, current); err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != current.Name {
			slug, err := s.freeSlug(ctx, domain.Slugify(name))
			if err != nil {
				return nil, err
			}
			current.Name = name
			current.Slug = slug
		}
	}

	oldBackground := current.Background
	releaseOld := false
	switch {
	case input.Background != nil:
		next, err := s.media.Put(ctx, input.Background.Data, input.Background.ContentType)
		if err != nil {
			return nil, fmt.Errorf("store background: %w", err)
		}
		current.Background = next
		releaseOld = oldBackground != nil
	case input.RemoveBackground && oldBackground != nil:
		current.Background = nil
		releaseOld = true
	}

	updated, err := s.categories.Update(ctx, current)
	if err != nil {
		if input.Background != nil && current.Background != nil {
			if delErr := s.media.Delete(ctx, current.Background.StorageID); delErr != nil {
				s.log.WarnContext(ctx, "release background after failed update",
					slog.String("storage_id", current.Background.StorageID),
					slog.String("error", delErr.Error()),
				)
			}
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	if releaseOld {
		if err := s.media.Delete(ctx, oldBackground.StorageID); err != nil {
			s.log.WarnContext(ctx, "release replaced background",
				slog.String("storage_id", oldBackground.StorageID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("category_id", updated.ID.String()),
	)

	return updated, nil
}
