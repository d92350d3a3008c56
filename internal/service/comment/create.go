package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/socialblog/backend/internal/authz"
	"github.com/socialblog/backend/internal/domain"
)

// CreateComment attaches a new comment to its container. The comment row
// is inserted first; linking it into the container is a second step, and
// a failed link leaves an orphan that listings simply never reach.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	draft := &domain.Comment{
		Content: strings.TrimSpace(input.Content),
		OwnerID: actor.ID,
	}
	if err := authz.Require(actor, authz.ActionCreate, draft); err != nil {
		return nil, err
	}

	switch input.ParentKind {
	case domain.ParentPost:
		post, err := s.posts.GetByID(ctx, input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("resolve post: %w", err)
		}
		draft.PostID = post.ID
	case domain.ParentComment:
		parent, err := s.comments.GetByID(ctx, input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("resolve parent comment: %w", err)
		}
		draft.PostID = parent.PostID
		draft.ParentCommentID = &parent.ID
	}

	if input.Media != nil {
		draft.Media, err = s.media.Put(ctx, input.Media.Data, input.Media.ContentType)
		if err != nil {
			return nil, fmt.Errorf("store media: %w", err)
		}
	}

	created, err := s.comments.Create(ctx, draft)
	if err != nil {
		if draft.Media != nil {
			s.releaseMedia(ctx, draft.Media.StorageID, "release media after failed create")
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}

	// Link into the container. The container can disappear between the
	// resolve above and here; the orphan is tolerated.
	var linked bool
	if created.IsRoot() {
		linked, err = s.posts.AppendComment(ctx, created.PostID, created.ID)
	} else {
		linked, err = s.comments.AppendChild(ctx, *created.ParentCommentID, created.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("link comment: %w", err)
	}
	if !linked {
		s.log.WarnContext(ctx, "comment container vanished before linking",
			slog.String("comment_id", created.ID.String()),
		)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("comment_id", created.ID.String()),
		slog.String("post_id", created.PostID.String()),
		slog.String("owner_id", actor.ID.String()),
	)

	return created, nil
}
