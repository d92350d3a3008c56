// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/socialblog/backend/internal/adapter/postgres"
	"github.com/socialblog/backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const commentColumns = `id, content, owner_id, post_id, parent_comment_id,
child_ids, likes, media_storage_id, media_url, created_at, updated_at`

const getByIDSQL = `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

const getByIDsSQL = `SELECT ` + commentColumns + ` FROM comments WHERE id = ANY($1::uuid[])`

const createSQL = `
INSERT INTO comments (content, owner_id, post_id, parent_comment_id, media_storage_id, media_url)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + commentColumns

const updateSQL = `
UPDATE comments SET content = $2, updated_at = now()
WHERE id = $1
RETURNING ` + commentColumns

const deleteSQL = `DELETE FROM comments WHERE id = $1`

const countByPostSQL = `SELECT count(*) FROM comments WHERE post_id = $1`

const addLikeSQL = `
UPDATE comments SET likes = array_append(likes, $2), updated_at = now()
WHERE id = $1 AND NOT ($2 = ANY(likes))`

const removeLikeSQL = `
UPDATE comments SET likes = array_remove(likes, $2), updated_at = now()
WHERE id = $1 AND $2 = ANY(likes)`

const appendChildSQL = `
UPDATE comments SET child_ids = array_append(child_ids, $2), updated_at = now()
WHERE id = $1 AND NOT ($2 = ANY(child_ids))`

// removeChildRefSQL unlinks a reply from whichever comment references
// it. No id filter on purpose: the cascade uses it as a sweep.
const removeChildRefSQL = `
UPDATE comments SET child_ids = array_remove(child_ids, $1), updated_at = now()
WHERE $1 = ANY(child_ids)`

// GetByID returns a comment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanComment(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return c, nil
}

// GetByIDs returns the comments for the given ids in one round trip.
// Missing ids are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Comment, error) {
	if len(ids) == 0 {
		return []*domain.Comment{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get comments by ids: %w", err)
	}
	defer rows.Close()

	result := []*domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountByPost returns the number of comments attached to a post,
// replies included.
func (r *Repo) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countByPostSQL, postID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}

// Create inserts a new comment and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	mediaID, mediaURL := postgres.MediaToColumns(c.Media)
	var parentID any
	if c.ParentCommentID != nil {
		parentID = *c.ParentCommentID
	}
	created, err := scanComment(q.QueryRow(ctx, createSQL,
		c.Content, c.OwnerID, c.PostID, parentID, mediaID, mediaURL))
	if err != nil {
		return nil, postgres.MapError(err, "comment", uuid.Nil)
	}
	return created, nil
}

// Update replaces the comment body.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, content string) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanComment(q.QueryRow(ctx, updateSQL, id, content))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return updated, nil
}

// Delete removes a comment. The returned bool reports whether a row
// was deleted; the cascade tolerates already-gone descendants.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "comment", id)
	}
	return tag.RowsAffected() > 0, nil
}

// AddLike adds userID to the comment's like set. The returned bool is
// false when the comment is missing or the user already liked it.
func (r *Repo) AddLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	return r.setOp(ctx, addLikeSQL, commentID, userID)
}

// RemoveLike removes userID from the comment's like set. The returned
// bool is false when the comment is missing or the user had not liked it.
func (r *Repo) RemoveLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	return r.setOp(ctx, removeLikeSQL, commentID, userID)
}

// AppendChild links a reply to its parent comment, keeping insertion
// order.
func (r *Repo) AppendChild(ctx context.Context, parentID, childID uuid.UUID) (bool, error) {
	return r.setOp(ctx, appendChildSQL, parentID, childID)
}

// RemoveChildRef unlinks the reply from any comment referencing it.
func (r *Repo) RemoveChildRef(ctx context.Context, childID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, removeChildRefSQL, childID); err != nil {
		return fmt.Errorf("unlink reply %s: %w", childID, err)
	}
	return nil
}

func (r *Repo) setOp(ctx context.Context, sql string, commentID, memberID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, commentID, memberID)
	if err != nil {
		return false, postgres.MapError(err, "comment", commentID)
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	var (
		c        domain.Comment
		parentID pgtype.UUID
		mediaID  pgtype.Text
		mediaURL pgtype.Text
	)

	err := row.Scan(
		&c.ID, &c.Content, &c.OwnerID, &c.PostID, &parentID,
		&c.ChildIDs, &c.Likes, &mediaID, &mediaURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if parentID.Valid {
		id := uuid.UUID(parentID.Bytes)
		c.ParentCommentID = &id
	}
	c.Media = postgres.MediaFromColumns(mediaID, mediaURL)
	return &c, nil
}
