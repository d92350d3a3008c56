package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/socialblog/backend/internal/authz"
	"github.com/socialblog/backend/internal/domain"
)

// UpdateComment replaces the body of a comment owned by the actor (or
// any comment, for admins).
func (s *Service) UpdateComment(ctx context.Context, input UpdateCommentInput) (*domain.Comment, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.comments.GetByID(ctx, input.CommentID)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if err := authz.Require(actor, authz.ActionUpdate, current); err != nil {
		return nil, err
	}

	updated, err := s.comments.Update(ctx, input.CommentID, strings.TrimSpace(input.Content))
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment updated",
		slog.String("comment_id", updated.ID.String()),
	)

	return updated, nil
}
