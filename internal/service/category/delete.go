package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/authz"
)

// DeleteCategory removes a category and releases its background media.
// Posts referencing the category keep their dangling reference; readers
// resolve it to nothing.
func (s *Service) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return err
	}

	current, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if err := authz.Require(actor, authz.ActionDelete, current); err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, categoryID); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	if current.Background != nil {
		if err := s.media.Delete(ctx, current.Background.StorageID); err != nil {
			s.log.WarnContext(ctx, "release background of deleted category",
				slog.String("storage_id", current.Background.StorageID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("category_id", categoryID.String()),
	)

	return nil
}
