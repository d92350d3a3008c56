package category

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetBySlugFunc  func(ctx context.Context, slug string) (*domain.Category, error)
	ListFunc       func(ctx context.Context) ([]*domain.Category, error)
	CreateFunc     func(ctx context.Context, c *domain.Category) (*domain.Category, error)
	UpdateFunc     func(ctx context.Context, c *domain.Category) (*domain.Category, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	SlugExistsFunc func(ctx context.Context, slug string) (bool, error)

	mu    sync.Mutex
	calls struct {
		Create     []*domain.Category
		Update     []*domain.Category
		Delete     []uuid.UUID
		SlugExists []string
	}
}

func (m *categoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *categoryRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if m.GetBySlugFunc == nil {
		panic("categoryRepoMock.GetBySlugFunc: method is nil but was called")
	}
	return m.GetBySlugFunc(ctx, slug)
}

func (m *categoryRepoMock) List(ctx context.Context) ([]*domain.Category, error) {
	if m.ListFunc == nil {
		panic("categoryRepoMock.ListFunc: method is nil but was called")
	}
	return m.ListFunc(ctx)
}

func (m *categoryRepoMock) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if m.CreateFunc == nil {
		panic("categoryRepoMock.CreateFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, c)
	m.mu.Unlock()
	return m.CreateFunc(ctx, c)
}

func (m *categoryRepoMock) CreateCalls() []*domain.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *categoryRepoMock) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if m.UpdateFunc == nil {
		panic("categoryRepoMock.UpdateFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, c)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, c)
}

func (m *categoryRepoMock) UpdateCalls() []*domain.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

func (m *categoryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("categoryRepoMock.DeleteFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *categoryRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

func (m *categoryRepoMock) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFunc == nil {
		panic("categoryRepoMock.SlugExistsFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.SlugExists = append(m.calls.SlugExists, slug)
	m.mu.Unlock()
	return m.SlugExistsFunc(ctx, slug)
}

func (m *categoryRepoMock) SlugExistsCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SlugExists
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
