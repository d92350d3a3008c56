package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

// Hand-rolled moq-style mocks for the consumer interfaces.

type postRepoMock struct {
	FindFunc    func(ctx context.Context, f domain.PostFilter) ([]*domain.Post, error)
	SuggestFunc func(ctx context.Context, followingIDs []uuid.UUID, page domain.Page) ([]*domain.Post, error)

	mu    sync.Mutex
	calls struct {
		Find    []domain.PostFilter
		Suggest []struct {
			FollowingIDs []uuid.UUID
			Page         domain.Page
		}
	}
}

func (m *postRepoMock) Find(ctx context.Context, f domain.PostFilter) ([]*domain.Post, error) {
	m.mu.Lock()
	m.calls.Find = append(m.calls.Find, f)
	m.mu.Unlock()
	return m.FindFunc(ctx, f)
}

func (m *postRepoMock) FindCalls() []domain.PostFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Find
}

func (m *postRepoMock) Suggest(ctx context.Context, followingIDs []uuid.UUID, page domain.Page) ([]*domain.Post, error) {
	m.mu.Lock()
	m.calls.Suggest = append(m.calls.Suggest, struct {
		FollowingIDs []uuid.UUID
		Page         domain.Page
	}{followingIDs, page})
	m.mu.Unlock()
	return m.SuggestFunc(ctx, followingIDs, page)
}

func (m *postRepoMock) SuggestCalls() []struct {
	FollowingIDs []uuid.UUID
	Page         domain.Page
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Suggest
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}
