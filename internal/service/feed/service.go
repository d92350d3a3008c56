// Package feed implements post discovery: filtered search and the
// follow-ranked suggestion feed.
package feed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
	"github.com/socialblog/backend/pkg/ctxutil"
)

type postRepo interface {
	Find(ctx context.Context, f domain.PostFilter) ([]*domain.Post, error)
	Suggest(ctx context.Context, followingIDs []uuid.UUID, page domain.Page) ([]*domain.Post, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service provides the post feed operations.
type Service struct {
	posts postRepo
	users userRepo
	log   *slog.Logger
}

// NewService creates a new Feed service.
func NewService(log *slog.Logger, posts postRepo, users userRepo) *Service {
	return &Service{
		posts: posts,
		users: users,
		log:   log.With("service", "feed"),
	}
}

// Find returns posts matching the filter. Blocked posts stay hidden
// for everyone but admins, whatever the filter asks for.
func (s *Service) Find(ctx context.Context, filter domain.PostFilter) ([]*domain.Post, error) {
	if err := filter.Normalize(); err != nil {
		return nil, err
	}
	if !ctxutil.IsAdminCtx(ctx) {
		filter.IncludeBlocked = false
	}

	posts, err := s.posts.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	return posts, nil
}

// Suggest returns a page of posts ranked for the calling user: posts
// by followed authors first, newest first within each band.
func (s *Service) Suggest(ctx context.Context, page domain.Page) ([]*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	actor, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load actor: %w", err)
	}
	page.Normalize()

	posts, err := s.posts.Suggest(ctx, actor.Following, page)
	if err != nil {
		return nil, fmt.Errorf("suggest posts: %w", err)
	}
	return posts, nil
}
