package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

// Follow adds targetID to the caller's following set and the caller to
// the target's followers set. Both writes are idempotent; following an
// already-followed user changes nothing and succeeds.
//
// The two sides are written without a transaction. When exactly one
// side resolves, the operation still succeeds and the divergence is
// logged; only a fully unresolved pair reports NotFound.
func (s *Service) Follow(ctx context.Context, targetID uuid.UUID) error {
	return s.setFollow(ctx, targetID, true)
}

// Unfollow removes the follow relation between the caller and targetID.
// Unfollowing a user that was never followed changes nothing and
// succeeds.
func (s *Service) Unfollow(ctx context.Context, targetID uuid.UUID) error {
	return s.setFollow(ctx, targetID, false)
}

func (s *Service) setFollow(ctx context.Context, targetID uuid.UUID, follow bool) error {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return err
	}
	if actor.ID == targetID {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "target_id", Message: "cannot follow yourself"},
		}}
	}

	var (
		following bool
		follower  bool
	)
	if follow {
		following, err = s.users.AddFollowing(ctx, actor.ID, targetID)
	} else {
		following, err = s.users.RemoveFollowing(ctx, actor.ID, targetID)
	}
	if err != nil {
		return fmt.Errorf("update following set: %w", err)
	}

	if follow {
		follower, err = s.users.AddFollower(ctx, targetID, actor.ID)
	} else {
		follower, err = s.users.RemoveFollower(ctx, targetID, actor.ID)
	}
	if err != nil {
		return fmt.Errorf("update followers set: %w", err)
	}

	if !following && !follower {
		return fmt.Errorf("user %s: %w", targetID, domain.ErrNotFound)
	}
	if following != follower {
		s.log.WarnContext(ctx, "follow relation resolved one-sided",
			slog.String("user_id", actor.ID.String()),
			slog.String("target_id", targetID.String()),
			slog.Bool("following_side", following),
			slog.Bool("follower_side", follower),
		)
	}
	return nil
}
