package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/authz"
)

// DeletePost removes a post and releases its cover media. Comments of
// the post are NOT cascaded: they become orphans that readers resolve
// to nothing, and saved-post references on users dangle the same way.
func (s *Service) DeletePost(ctx context.Context, postID uuid.UUID) error {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return err
	}

	current, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}
	if err := authz.Require(actor, authz.ActionDelete, current); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if current.Cover != nil {
		s.releaseMedia(ctx, current.Cover.StorageID, "release cover of deleted post")
	}

	s.log.InfoContext(ctx, "post deleted",
		slog.String("post_id", postID.String()),
		slog.String("owner_id", current.OwnerID.String()),
	)

	return nil
}
