package user

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

// Hand-rolled moq-style mocks for the consumer interfaces.

type setOpCall struct {
	UserID   uuid.UUID
	MemberID uuid.UUID
}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	GetByIDsFunc      func(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
	ListFunc          func(ctx context.Context) ([]*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, u *domain.User) (*domain.User, error)

	AddFollowingFunc    func(ctx context.Context, userID, targetID uuid.UUID) (bool, error)
	RemoveFollowingFunc func(ctx context.Context, userID, targetID uuid.UUID) (bool, error)
	AddFollowerFunc     func(ctx context.Context, userID, sourceID uuid.UUID) (bool, error)
	RemoveFollowerFunc  func(ctx context.Context, userID, sourceID uuid.UUID) (bool, error)
	AddSavedPostFunc    func(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	RemoveSavedPostFunc func(ctx context.Context, userID, postID uuid.UUID) (bool, error)

	mu    sync.Mutex
	calls struct {
		UpdateProfile   []*domain.User
		AddFollowing    []setOpCall
		RemoveFollowing []setOpCall
		AddFollower     []setOpCall
		RemoveFollower  []setOpCall
		AddSavedPost    []setOpCall
		RemoveSavedPost []setOpCall
	}
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetByUsernameFunc(ctx, username)
}

func (m *userRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	return m.GetByIDsFunc(ctx, ids)
}

func (m *userRepoMock) List(ctx context.Context) ([]*domain.User, error) {
	return m.ListFunc(ctx)
}

func (m *userRepoMock) UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error) {
	m.mu.Lock()
	m.calls.UpdateProfile = append(m.calls.UpdateProfile, u)
	m.mu.Unlock()
	return m.UpdateProfileFunc(ctx, u)
}

func (m *userRepoMock) UpdateProfileCalls() []*domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateProfile
}

func (m *userRepoMock) AddFollowing(ctx context.Context, userID, targetID uuid.UUID) (bool, error) {
	m.record(&m.calls.AddFollowing, userID, targetID)
	return m.AddFollowingFunc(ctx, userID, targetID)
}

func (m *userRepoMock) RemoveFollowing(ctx context.Context, userID, targetID uuid.UUID) (bool, error) {
	m.record(&m.calls.RemoveFollowing, userID, targetID)
	return m.RemoveFollowingFunc(ctx, userID, targetID)
}

func (m *userRepoMock) AddFollower(ctx context.Context, userID, sourceID uuid.UUID) (bool, error) {
	m.record(&m.calls.AddFollower, userID, sourceID)
	return m.AddFollowerFunc(ctx, userID, sourceID)
}

func (m *userRepoMock) RemoveFollower(ctx context.Context, userID, sourceID uuid.UUID) (bool, error) {
	m.record(&m.calls.RemoveFollower, userID, sourceID)
	return m.RemoveFollowerFunc(ctx, userID, sourceID)
}

func (m *userRepoMock) AddSavedPost(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	m.record(&m.calls.AddSavedPost, userID, postID)
	return m.AddSavedPostFunc(ctx, userID, postID)
}

func (m *userRepoMock) RemoveSavedPost(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	m.record(&m.calls.RemoveSavedPost, userID, postID)
	return m.RemoveSavedPostFunc(ctx, userID, postID)
}

func (m *userRepoMock) record(dst *[]setOpCall, userID, memberID uuid.UUID) {
	m.mu.Lock()
	*dst = append(*dst, setOpCall{UserID: userID, MemberID: memberID})
	m.mu.Unlock()
}

func (m *userRepoMock) AddFollowingCalls() []setOpCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.AddFollowing
}

func (m *userRepoMock) RemoveFollowingCalls() []setOpCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RemoveFollowing
}

func (m *userRepoMock) AddFollowerCalls() []setOpCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.AddFollower
}

func (m *userRepoMock) RemoveFollowerCalls() []setOpCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RemoveFollower
}

func (m *userRepoMock) AddSavedPostCalls() []setOpCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.AddSavedPost
}

func (m *userRepoMock) RemoveSavedPostCalls() []setOpCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RemoveSavedPost
}

type postRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]*domain.Post, error)

	mu    sync.Mutex
	calls struct {
		GetByIDs [][]uuid.UUID
	}
}

func (m *postRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Post, error) {
	m.mu.Lock()
	m.calls.GetByIDs = append(m.calls.GetByIDs, ids)
	m.mu.Unlock()
	return m.GetByIDsFunc(ctx, ids)
}

func (m *postRepoMock) GetByIDsCalls() [][]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByIDs
}

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
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, storageID)
	m.mu.Unlock()
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, storageID)
}

func (m *mediaStoreMock) DeleteCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}
