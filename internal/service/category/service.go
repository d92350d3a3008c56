// Package category implements category management.
//
// Categories are a flat, admin-curated taxonomy: every write operation
// requires the MANAGE capability, which only admins hold.
package category

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type mediaStore interface {
	Put(ctx context.Context, data io.Reader, contentType string) (*domain.MediaRef, error)
	Delete(ctx context.Context, storageID string) error
}

// Service provides category operations.
type Service struct {
	categories categoryRepo
	users      userRepo
	media      mediaStore
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(log *slog.Logger, categories categoryRepo, users userRepo, media mediaStore) *Service {
	return &Service{
		categories: categories,
		users:      users,
		media:      media,
		log:        log.With("service", "category"),
	}
}
