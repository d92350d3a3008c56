// Package comment implements the threaded comment graph of a post.
//
// A comment lives in exactly one container: the post's root-level list
// or a parent comment's child list. Creation links the container in a
// second step after the insert; deletion walks the subtree and then
// unlinks the root from whichever container still references it. The
// steps are deliberately not transactional across entities, so readers
// must tolerate dangling ids in either direction.
package comment

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
	"github.com/socialblog/backend/pkg/ctxutil"
)

type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	Update(ctx context.Context, id uuid.UUID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)

	AddLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error)
	RemoveLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error)
	AppendChild(ctx context.Context, parentID, childID uuid.UUID) (bool, error)
	RemoveChildRef(ctx context.Context, childID uuid.UUID) error
}

type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	AppendComment(ctx context.Context, postID, commentID uuid.UUID) (bool, error)
	RemoveCommentRef(ctx context.Context, commentID uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
}

type mediaStore interface {
	Put(ctx context.Context, data io.Reader, contentType string) (*domain.MediaRef, error)
	Delete(ctx context.Context, storageID string) error
}

// Service provides comment operations.
type Service struct {
	comments commentRepo
	posts    postRepo
	users    userRepo
	media    mediaStore
	log      *slog.Logger
}

// NewService creates a new Comment service.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	posts postRepo,
	users userRepo,
	media mediaStore,
) *Service {
	return &Service{
		comments: comments,
		posts:    posts,
		users:    users,
		media:    media,
		log:      log.With("service", "comment"),
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
