package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
	"github.com/socialblog/backend/pkg/ctxutil"
)

// LikeComment adds the actor to the comment's like set. A zero-modified
// outcome (missing comment OR repeated like) reports NotFound, same as
// post likes.
func (s *Service) LikeComment(ctx context.Context, commentID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	modified, err := s.comments.AddLike(ctx, commentID, userID)
	if err != nil {
		return fmt.Errorf("like comment: %w", err)
	}
	if !modified {
		return fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "comment liked",
		slog.String("comment_id", commentID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}

// UnlikeComment removes the actor from the comment's like set.
func (s *Service) UnlikeComment(ctx context.Context, commentID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	modified, err := s.comments.RemoveLike(ctx, commentID, userID)
	if err != nil {
		return fmt.Errorf("unlike comment: %w", err)
	}
	if !modified {
		return fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "comment unliked",
		slog.String("comment_id", commentID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}
