package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

// GetUser returns a user by id.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetUserByUsername returns a user by username.
func (s *Service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListUsers returns all users ordered by username.
func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateProfile applies partial profile changes to the calling user.
// A replaced or removed avatar is released from the media store only
// after the profile write committed.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	draft := *actor
	if input.Nickname != nil {
		draft.Nickname = *input.Nickname
	}
	if input.Email != nil {
		draft.Email = *input.Email
	}

	var oldAvatar *domain.MediaRef
	switch {
	case input.Avatar != nil:
		ref, err := s.media.Put(ctx, input.Avatar.Data, input.Avatar.ContentType)
		if err != nil {
			return nil, fmt.Errorf("store avatar: %w", err)
		}
		oldAvatar = actor.Avatar
		draft.Avatar = ref
	case input.RemoveAvatar:
		oldAvatar = actor.Avatar
		draft.Avatar = nil
	}

	updated, err := s.users.UpdateProfile(ctx, &draft)
	if err != nil {
		if input.Avatar != nil && draft.Avatar != nil {
			s.releaseMedia(ctx, draft.Avatar.StorageID, "release orphaned avatar")
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if oldAvatar != nil {
		s.releaseMedia(ctx, oldAvatar.StorageID, "release replaced avatar")
	}

	s.log.InfoContext(ctx, "profile updated", "user_id", updated.ID.String())
	return updated, nil
}
