package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

// BlockPost hides a post from public listings. Moderation is an admin
// capability regardless of ownership.
func (s *Service) BlockPost(ctx context.Context, postID uuid.UUID) error {
	return s.setBlocked(ctx, postID, true)
}

// UnblockPost restores a blocked post.
func (s *Service) UnblockPost(ctx context.Context, postID uuid.UUID) error {
	return s.setBlocked(ctx, postID, false)
}

func (s *Service) setBlocked(ctx context.Context, postID uuid.UUID, blocked bool) error {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.posts.SetBlocked(ctx, postID, blocked); err != nil {
		return fmt.Errorf("set blocked: %w", err)
	}

	s.log.InfoContext(ctx, "post moderation changed",
		slog.String("post_id", postID.String()),
		slog.Bool("blocked", blocked),
		slog.String("admin_id", actor.ID.String()),
	)
	return nil
}
