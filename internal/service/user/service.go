// Package user implements profile management and the social graph:
// follow relations and saved posts.
//
// The follow relation is two-sided (the follower's following set and
// the followee's followers set) and the two writes are not wrapped in
// a transaction. A one-sided outcome is tolerated and logged; readers
// of either set must not assume the other side agrees.
package user

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
	"github.com/socialblog/backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error)

	AddFollowing(ctx context.Context, userID, targetID uuid.UUID) (bool, error)
	RemoveFollowing(ctx context.Context, userID, targetID uuid.UUID) (bool, error)
	AddFollower(ctx context.Context, userID, sourceID uuid.UUID) (bool, error)
	RemoveFollower(ctx context.Context, userID, sourceID uuid.UUID) (bool, error)
	AddSavedPost(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	RemoveSavedPost(ctx context.Context, userID, postID uuid.UUID) (bool, error)
}

type postRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Post, error)
}

type mediaStore interface {
	Put(ctx context.Context, data io.Reader, contentType string) (*domain.MediaRef, error)
	Delete(ctx context.Context, storageID string) error
}

// Service provides user profile and social graph operations.
type Service struct {
	users userRepo
	posts postRepo
	media mediaStore
	log   *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, users userRepo, posts postRepo, media mediaStore) *Service {
	return &Service{
		users: users,
		posts: posts,
		media: media,
		log:   log.With("service", "user"),
	}
}

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

func (s *Service) releaseMedia(ctx context.Context, storageID, msg string) {
	if err := s.media.Delete(ctx, storageID); err != nil {
		s.log.WarnContext(ctx, msg,
			slog.String("storage_id", storageID),
			slog.String("error", err.Error()),
		)
	}
}
