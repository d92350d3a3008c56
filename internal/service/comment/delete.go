package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/authz"
	"github.com/socialblog/backend/internal/domain"
)

// DeleteComment removes a comment and its whole reply subtree.
// Descendants go first (deepest first), then the root is unlinked from
// its container, and the root record itself is removed last, so an
// interrupted cascade never leaves a container pointing at a record
// that is already gone. Descendants that vanish mid-walk are
// tolerated: the walk resolves what it can and deletes what still
// exists.
func (s *Service) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return err
	}

	root, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if err := authz.Require(actor, authz.ActionDelete, root); err != nil {
		return err
	}

	subtree, err := s.collectSubtree(ctx, root)
	if err != nil {
		return err
	}

	// Descendants in reverse walk order, so children always go before
	// the comment that references them.
	deleted := 0
	for i := len(subtree) - 1; i >= 1; i-- {
		c := subtree[i]
		gone, err := s.comments.Delete(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("delete comment %s: %w", c.ID, err)
		}
		if gone {
			deleted++
			if c.Media != nil {
				s.releaseMedia(ctx, c.Media.StorageID, "release media of deleted comment")
			}
		}
	}

	// Unlink the root from whichever container still references it.
	// Sweeping both sides costs one statement each and keeps the walk
	// independent of the root's recorded parent kind. Unlinking happens
	// before the root record is removed.
	if err := s.posts.RemoveCommentRef(ctx, root.ID); err != nil {
		return fmt.Errorf("unlink from post: %w", err)
	}
	if err := s.comments.RemoveChildRef(ctx, root.ID); err != nil {
		return fmt.Errorf("unlink from parent comment: %w", err)
	}

	gone, err := s.comments.Delete(ctx, root.ID)
	if err != nil {
		return fmt.Errorf("delete comment %s: %w", root.ID, err)
	}
	if gone {
		deleted++
		if root.Media != nil {
			s.releaseMedia(ctx, root.Media.StorageID, "release media of deleted comment")
		}
	}

	s.log.InfoContext(ctx, "comment subtree deleted",
		slog.String("comment_id", root.ID.String()),
		slog.Int("deleted", deleted),
	)

	return nil
}

// collectSubtree walks the reply tree breadth-first, returning the root
// and every reachable descendant. Dangling child ids resolve to nothing
// and end the branch.
func (s *Service) collectSubtree(ctx context.Context, root *domain.Comment) ([]*domain.Comment, error) {
	subtree := []*domain.Comment{root}
	frontier := root.ChildIDs

	for len(frontier) > 0 {
		children, err := s.comments.GetByIDs(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("resolve replies: %w", err)
		}

		frontier = nil
		for _, child := range children {
			subtree = append(subtree, child)
			frontier = append(frontier, child.ChildIDs...)
		}
	}

	return subtree, nil
}
