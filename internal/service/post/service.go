// Package post implements post authoring, moderation and engagement.
package post

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
	SlugExists(ctx context.Context, slug string) (bool, error)

	AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)

	IncrementViewCount(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	IncrementViewCountBySlug(ctx context.Context, slug string) (*domain.Post, error)
}

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type mediaStore interface {
	Put(ctx context.Context, data io.Reader, contentType string) (*domain.MediaRef, error)
	Delete(ctx context.Context, storageID string) error
}

// Service provides post operations.
type Service struct {
	posts      postRepo
	categories categoryRepo
	users      userRepo
	media      mediaStore
	log        *slog.Logger
}

// NewService creates a new Post service.
func NewService(
	log *slog.Logger,
	posts postRepo,
	categories categoryRepo,
	users userRepo,
	media mediaStore,
) *Service {
	return &Service{
		posts:      posts,
		categories: categories,
		users:      users,
		media:      media,
		log:        log.With("service", "post"),
	}
}
