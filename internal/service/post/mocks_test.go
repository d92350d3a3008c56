package post

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetBySlugFunc  func(ctx context.Context, slug string) (*domain.Post, error)
	CreateFunc     func(ctx context.Context, p *domain.Post) (*domain.Post, error)
	UpdateFunc     func(ctx context.Context, p *domain.Post) (*domain.Post, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	SetBlockedFunc func(ctx context.Context, id uuid.UUID, blocked bool) error
	SlugExistsFunc func(ctx context.Context, slug string) (bool, error)

	AddLikeFunc    func(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	RemoveLikeFunc func(ctx context.Context, postID, userID uuid.UUID) (bool, error)

	IncrementViewCountFunc       func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	IncrementViewCountBySlugFunc func(ctx context.Context, slug string) (*domain.Post, error)

	mu    sync.Mutex
	calls struct {
		Create     []*domain.Post
		Update     []*domain.Post
		Delete     []uuid.UUID
		SetBlocked []struct {
			ID      uuid.UUID
			Blocked bool
		}
		AddLike []struct {
			PostID uuid.UUID
			UserID uuid.UUID
		}
		RemoveLike []struct {
			PostID uuid.UUID
			UserID uuid.UUID
		}
	}
}

func (m *postRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.GetByIDFunc == nil {
		panic("postRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *postRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	if m.GetBySlugFunc == nil {
		panic("postRepoMock.GetBySlugFunc: method is nil but was called")
	}
	return m.GetBySlugFunc(ctx, slug)
}

func (m *postRepoMock) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	if m.CreateFunc == nil {
		panic("postRepoMock.CreateFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, p)
	m.mu.Unlock()
	return m.CreateFunc(ctx, p)
}

func (m *postRepoMock) CreateCalls() []*domain.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *postRepoMock) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	if m.UpdateFunc == nil {
		panic("postRepoMock.UpdateFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, p)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, p)
}

func (m *postRepoMock) UpdateCalls() []*domain.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

func (m *postRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("postRepoMock.DeleteFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *postRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

func (m *postRepoMock) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	if m.SetBlockedFunc == nil {
		panic("postRepoMock.SetBlockedFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.SetBlocked = append(m.calls.SetBlocked, struct {
		ID      uuid.UUID
		Blocked bool
	}{id, blocked})
	m.mu.Unlock()
	return m.SetBlockedFunc(ctx, id, blocked)
}

func (m *postRepoMock) SetBlockedCalls() []struct {
	ID      uuid.UUID
	Blocked bool
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetBlocked
}

func (m *postRepoMock) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFunc == nil {
		panic("postRepoMock.SlugExistsFunc: method is nil but was called")
	}
	return m.SlugExistsFunc(ctx, slug)
}

func (m *postRepoMock) AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	if m.AddLikeFunc == nil {
		panic("postRepoMock.AddLikeFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.AddLike = append(m.calls.AddLike, struct {
		PostID uuid.UUID
		UserID uuid.UUID
	}{postID, userID})
	m.mu.Unlock()
	return m.AddLikeFunc(ctx, postID, userID)
}

func (m *postRepoMock) AddLikeCalls() []struct {
	PostID uuid.UUID
	UserID uuid.UUID
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.AddLike
}

func (m *postRepoMock) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	if m.RemoveLikeFunc == nil {
		panic("postRepoMock.RemoveLikeFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.RemoveLike = append(m.calls.RemoveLike, struct {
		PostID uuid.UUID
		UserID uuid.UUID
	}{postID, userID})
	m.mu.Unlock()
	return m.RemoveLikeFunc(ctx, postID, userID)
}

func (m *postRepoMock) RemoveLikeCalls() []struct {
	PostID uuid.UUID
	UserID uuid.UUID
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RemoveLike
}

func (m *postRepoMock) IncrementViewCount(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.IncrementViewCountFunc == nil {
		panic("postRepoMock.IncrementViewCountFunc: method is nil but was called")
	}
	return m.IncrementViewCountFunc(ctx, id)
}

func (m *postRepoMock) IncrementViewCountBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	if m.IncrementViewCountBySlugFunc == nil {
		panic("postRepoMock.IncrementViewCountBySlugFunc: method is nil but was called")
	}
	return m.IncrementViewCountBySlugFunc(ctx, slug)
}

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

func (m *categoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

var _ mediaStore = &mediaStoreMock{}

type mediaStoreMock struct {
	PutFunc    func(ctx context.Context, data io.Reader, contentType string) (*domain.MediaRef, error)
	DeleteFunc func(ctx context.Context, storageID string) error

	mu    sync.Mutex
	calls struct {
		Put    []string
		Delete []string
	}
}

func (m *mediaStoreMock) Put(ctx context.Context, data io.Reader, contentType string) (*domain.MediaRef, error) {
	if m.PutFunc == nil {
		panic("mediaStoreMock.PutFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.Put = append(m.calls.Put, contentType)
	m.mu.Unlock()
	return m.PutFunc(ctx, data, contentType)
}

func (m *mediaStoreMock) PutCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Put
}

func (m *mediaStoreMock) Delete(ctx context.Context, storageID string) error {
	if m.DeleteFunc == nil {
		panic("mediaStoreMock.DeleteFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, storageID)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, storageID)
}

func (m *mediaStoreMock) DeleteCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}
