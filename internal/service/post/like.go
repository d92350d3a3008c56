package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
	"github.com/socialblog/backend/pkg/ctxutil"
)

// LikePost adds the actor to the post's like set. A zero-modified
// outcome (missing post OR repeated like) reports NotFound; callers
// cannot distinguish the two, which keeps the operation a single
// atomic statement.
func (s *Service) LikePost(ctx context.Context, postID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	modified, err := s.posts.AddLike(ctx, postID, userID)
	if err != nil {
		return fmt.Errorf("like post: %w", err)
	}
	if !modified {
		return fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "post liked",
		slog.String("post_id", postID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}

// UnlikePost removes the actor from the post's like set. Same
// zero-modified conflation as LikePost.
func (s *Service) UnlikePost(ctx context.Context, postID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	modified, err := s.posts.RemoveLike(ctx, postID, userID)
	if err != nil {
		return fmt.Errorf("unlike post: %w", err)
	}
	if !modified {
		return fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "post unliked",
		slog.String("post_id", postID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}
