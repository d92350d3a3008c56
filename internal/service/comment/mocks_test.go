package comment

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	GetByIDsFunc    func(ctx context.Context, ids []uuid.UUID) ([]*domain.Comment, error)
	CreateFunc      func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, content string) (*domain.Comment, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) (bool, error)
	CountByPostFunc func(ctx context.Context, postID uuid.UUID) (int, error)

	AddLikeFunc        func(ctx context.Context, commentID, userID uuid.UUID) (bool, error)
	RemoveLikeFunc     func(ctx context.Context, commentID, userID uuid.UUID) (bool, error)
	AppendChildFunc    func(ctx context.Context, parentID, childID uuid.UUID) (bool, error)
	RemoveChildRefFunc func(ctx context.Context, childID uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		Create      []*domain.Comment
		Delete      []uuid.UUID
		AppendChild []struct {
			ParentID uuid.UUID
			ChildID  uuid.UUID
		}
		RemoveChildRef []uuid.UUID
	}
}

func (m *commentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *commentRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Comment, error) {
	if m.GetByIDsFunc == nil {
		panic("commentRepoMock.GetByIDsFunc: method is nil but was called")
	}
	return m.GetByIDsFunc(ctx, ids)
}

func (m *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if m.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, c)
	m.mu.Unlock()
	return m.CreateFunc(ctx, c)
}

func (m *commentRepoMock) CreateCalls() []*domain.Comment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *commentRepoMock) Update(ctx context.Context, id uuid.UUID, content string) (*domain.Comment, error) {
	if m.UpdateFunc == nil {
		panic("commentRepoMock.UpdateFunc: method is nil but was called")
	}
	return m.UpdateFunc(ctx, id, content)
}

func (m *commentRepoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc == nil {
		panic("commentRepoMock.DeleteFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *commentRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

func (m *commentRepoMock) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	if m.CountByPostFunc == nil {
		panic("commentRepoMock.CountByPostFunc: method is nil but was called")
	}
	return m.CountByPostFunc(ctx, postID)
}

func (m *commentRepoMock) AddLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	if m.AddLikeFunc == nil {
		panic("commentRepoMock.AddLikeFunc: method is nil but was called")
	}
	return m.AddLikeFunc(ctx, commentID, userID)
}

func (m *commentRepoMock) RemoveLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	if m.RemoveLikeFunc == nil {
		panic("commentRepoMock.RemoveLikeFunc: method is nil but was called")
	}
	return m.RemoveLikeFunc(ctx, commentID, userID)
}

func (m *commentRepoMock) AppendChild(ctx context.Context, parentID, childID uuid.UUID) (bool, error) {
	if m.AppendChildFunc == nil {
		panic("commentRepoMock.AppendChildFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.AppendChild = append(m.calls.AppendChild, struct {
		ParentID uuid.UUID
		ChildID  uuid.UUID
	}{parentID, childID})
	m.mu.Unlock()
	return m.AppendChildFunc(ctx, parentID, childID)
}

func (m *commentRepoMock) AppendChildCalls() []struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.AppendChild
}

func (m *commentRepoMock) RemoveChildRef(ctx context.Context, childID uuid.UUID) error {
	if m.RemoveChildRefFunc == nil {
		panic("commentRepoMock.RemoveChildRefFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.RemoveChildRef = append(m.calls.RemoveChildRef, childID)
	m.mu.Unlock()
	return m.RemoveChildRefFunc(ctx, childID)
}

func (m *commentRepoMock) RemoveChildRefCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RemoveChildRef
}

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	AppendCommentFunc    func(ctx context.Context, postID, commentID uuid.UUID) (bool, error)
	RemoveCommentRefFunc func(ctx context.Context, commentID uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		AppendComment []struct {
			PostID    uuid.UUID
			CommentID uuid.UUID
		}
		RemoveCommentRef []uuid.UUID
	}
}

func (m *postRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.GetByIDFunc == nil {
		panic("postRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *postRepoMock) AppendComment(ctx context.Context, postID, commentID uuid.UUID) (bool, error) {
	if m.AppendCommentFunc == nil {
		panic("postRepoMock.AppendCommentFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.AppendComment = append(m.calls.AppendComment, struct {
		PostID    uuid.UUID
		CommentID uuid.UUID
	}{postID, commentID})
	m.mu.Unlock()
	return m.AppendCommentFunc(ctx, postID, commentID)
}

func (m *postRepoMock) AppendCommentCalls() []struct {
	PostID    uuid.UUID
	CommentID uuid.UUID
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.AppendComment
}

func (m *postRepoMock) RemoveCommentRef(ctx context.Context, commentID uuid.UUID) error {
	if m.RemoveCommentRefFunc == nil {
		panic("postRepoMock.RemoveCommentRefFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.RemoveCommentRef = append(m.calls.RemoveCommentRef, commentID)
	m.mu.Unlock()
	return m.RemoveCommentRefFunc(ctx, commentID)
}

func (m *postRepoMock) RemoveCommentRefCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RemoveCommentRef
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)

	mu    sync.Mutex
	calls struct {
		GetByIDs [][]uuid.UUID
	}
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	if m.GetByIDsFunc == nil {
		panic("userRepoMock.GetByIDsFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.calls.GetByIDs = append(m.calls.GetByIDs, ids)
	m.mu.Unlock()
	return m.GetByIDsFunc(ctx, ids)
}

func (m *userRepoMock) GetByIDsCalls() [][]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByIDs
}

// categoryReaderStub satisfies loader.CategoryReader for tests that
// build full per-request loaders.
type categoryReaderStub struct{}

func (categoryReaderStub) GetByIDs(context.Context, []uuid.UUID) ([]*domain.Category, error) {
	return []*domain.Category{}, nil
}

var _ mediaStore = &mediaStoreMock{}

type mediaStoreMock struct {
	PutFunc    func(ctx context.Context, data io.Reader, contentType string) (*domain.MediaRef, error)
	DeleteFunc func(ctx context.Context, storageID string) error

	mu    sync.Mutex
	calls struct {
		Delete []string
	}
}

func (m *mediaStoreMock) Put(ctx context.Context, data io.Reader, contentType string) (*domain.MediaRef, error) {
	if m.PutFunc == nil {
		panic("mediaStoreMock.PutFunc: method is nil but was called")
	}
	return m.PutFunc(ctx, data, contentType)
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
