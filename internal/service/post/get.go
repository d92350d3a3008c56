package post

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
	"github.com/socialblog/backend/pkg/ctxutil"
)

// GetPost returns a post by id or slug. Blocked posts stay readable
// only by admins and their owner.
func (s *Service) GetPost(ctx context.Context, idOrSlug string) (*domain.Post, error) {
	p, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if err := s.gateBlocked(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ViewPost atomically bumps the view counter and returns the updated
// post. Every call counts: repeat views by the same reader are not
// deduplicated.
func (s *Service) ViewPost(ctx context.Context, idOrSlug string) (*domain.Post, error) {
	var (
		p   *domain.Post
		err error
	)
	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		p, err = s.posts.IncrementViewCount(ctx, id)
	} else {
		p, err = s.posts.IncrementViewCountBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, fmt.Errorf("view post: %w", err)
	}
	if err := s.gateBlocked(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) resolve(ctx context.Context, idOrSlug string) (*domain.Post, error) {
	if id, err := uuid.Parse(idOrSlug); err == nil {
		p, err := s.posts.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get post: %w", err)
		}
		return p, nil
	}
	p, err := s.posts.GetBySlug(ctx, idOrSlug)
	if err != nil {
		return nil, fmt.Errorf("get post by slug: %w", err)
	}
	return p, nil
}

// gateBlocked hides blocked posts from everyone except admins and the
// owner. Hidden means NotFound, not Forbidden: the existence of a
// blocked post is not disclosed.
func (s *Service) gateBlocked(ctx context.Context, p *domain.Post) error {
	if !p.IsBlocked {
		return nil
	}
	if ctxutil.IsAdminCtx(ctx) {
		return nil
	}
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok && userID == p.OwnerID {
		return nil
	}
	return fmt.Errorf("post %s: %w", p.ID, domain.ErrNotFound)
}
