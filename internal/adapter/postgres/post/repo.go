// Package post implements the Post repository using PostgreSQL.
//
// Likes and the root-level comment list are uuid[] columns; every
// mutation on them is a single UPDATE whose RowsAffected tells the
// service layer whether anything changed.
package post

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/socialblog/backend/internal/adapter/postgres"
	"github.com/socialblog/backend/internal/domain"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const postColumns = `id, title, excerpt, body, slug, owner_id, category_id,
cover_storage_id, cover_url, tags, likes, comment_ids, is_blocked, view_count,
created_at, updated_at`

const getByIDSQL = `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

const getBySlugSQL = `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`

const getByIDsSQL = `SELECT ` + postColumns + ` FROM posts WHERE id = ANY($1::uuid[])`

const createSQL = `
INSERT INTO posts (title, excerpt, body, slug, owner_id, category_id, cover_storage_id, cover_url, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + postColumns

const updateSQL = `
UPDATE posts
SET title = $2, excerpt = $3, body = $4, category_id = $5,
    cover_storage_id = $6, cover_url = $7, tags = $8, updated_at = now()
WHERE id = $1
RETURNING ` + postColumns

const deleteSQL = `DELETE FROM posts WHERE id = $1`

const slugExistsSQL = `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)`

const setBlockedSQL = `UPDATE posts SET is_blocked = $2, updated_at = now() WHERE id = $1`

// Like mutations use the guarded form: zero rows means the post is
// missing OR the like was already in the requested state. The service
// layer deliberately treats both the same way.
const addLikeSQL = `
UPDATE posts SET likes = array_append(likes, $2), updated_at = now()
WHERE id = $1 AND NOT ($2 = ANY(likes))`

const removeLikeSQL = `
UPDATE posts SET likes = array_remove(likes, $2), updated_at = now()
WHERE id = $1 AND $2 = ANY(likes)`

const appendCommentSQL = `
UPDATE posts SET comment_ids = array_append(comment_ids, $2), updated_at = now()
WHERE id = $1 AND NOT ($2 = ANY(comment_ids))`

// removeCommentRefSQL unlinks a comment from whichever post references
// it. No id filter on purpose: the cascade uses it as a sweep.
const removeCommentRefSQL = `
UPDATE posts SET comment_ids = array_remove(comment_ids, $1), updated_at = now()
WHERE $1 = ANY(comment_ids)`

const incViewByIDSQL = `
UPDATE posts SET view_count = view_count + 1 WHERE id = $1
RETURNING ` + postColumns

const incViewBySlugSQL = `
UPDATE posts SET view_count = view_count + 1 WHERE slug = $1
RETURNING ` + postColumns

const suggestSQL = `
SELECT ` + postColumns + ` FROM posts
ORDER BY (owner_id = ANY($1::uuid[])) DESC, created_at DESC
OFFSET $2 LIMIT $3`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a post by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPost(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	return p, nil
}

// GetBySlug returns a post by unique slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPost(q.QueryRow(ctx, getBySlugSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, "post", uuid.Nil)
	}
	return p, nil
}

// GetByIDs returns the posts for the given ids in one round trip.
// Missing ids are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Post, error) {
	if len(ids) == 0 {
		return []*domain.Post{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get posts by ids: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// SlugExists reports whether any post already uses the given slug.
func (r *Repo) SlugExists(ctx context.Context, slug string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, slugExistsSQL, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("check post slug: %w", err)
	}
	return exists, nil
}

// Find returns posts matching the filter, ordered and paginated.
// The filter must be normalized by the caller.
func (r *Repo) Find(ctx context.Context, f domain.PostFilter) ([]*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Select(postColumns).
		From("posts").
		PlaceholderFormat(sq.Dollar)

	if !f.IncludeBlocked {
		b = b.Where(sq.Eq{"is_blocked": false})
	}
	if f.Keyword != nil && *f.Keyword != "" {
		pattern := "%" + *f.Keyword + "%"
		b = b.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"excerpt": pattern},
			sq.ILike{"body": pattern},
		})
	}
	if f.OwnerID != nil {
		b = b.Where(sq.Eq{"owner_id": *f.OwnerID})
	}
	if f.CategoryID != nil {
		b = b.Where(sq.Eq{"category_id": *f.CategoryID})
	}
	if len(f.Tags) > 0 {
		b = b.Where("tags && ?", f.Tags)
	}
	// The date range only applies when both bounds are present.
	if f.FromDate != nil && f.ToDate != nil {
		b = b.Where(sq.GtOrEq{"created_at": *f.FromDate}).
			Where(sq.LtOrEq{"created_at": *f.ToDate})
	}

	switch {
	case f.Sort != nil && *f.Sort == domain.SortPopular:
		b = b.OrderBy("view_count DESC", "created_at DESC")
	default:
		b = b.OrderBy("created_at DESC")
	}

	b = b.Offset(uint64(f.Skip)).Limit(uint64(f.Limit))

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build post query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// Suggest returns posts ranked with the given authors first, newest
// first within each group.
func (r *Repo) Suggest(ctx context.Context, followingIDs []uuid.UUID, page domain.Page) ([]*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if followingIDs == nil {
		followingIDs = []uuid.UUID{}
	}
	rows, err := q.Query(ctx, suggestSQL, followingIDs, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("suggest posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new post and returns the persisted row.
// Returns domain.ErrAlreadyExists on a slug collision.
func (r *Repo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	coverID, coverURL := postgres.MediaToColumns(p.Cover)
	created, err := scanPost(q.QueryRow(ctx, createSQL,
		p.Title, p.Excerpt, p.Body, p.Slug, p.OwnerID, p.CategoryID, coverID, coverURL, p.Tags))
	if err != nil {
		return nil, postgres.MapError(err, "post", uuid.Nil)
	}
	return created, nil
}

// Update overwrites the mutable fields of a post. The caller merges
// partial params first.
func (r *Repo) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	coverID, coverURL := postgres.MediaToColumns(p.Cover)
	updated, err := scanPost(q.QueryRow(ctx, updateSQL,
		p.ID, p.Title, p.Excerpt, p.Body, p.CategoryID, coverID, coverURL, p.Tags))
	if err != nil {
		return nil, postgres.MapError(err, "post", p.ID)
	}
	return updated, nil
}

// Delete removes a post. Returns domain.ErrNotFound for an unknown id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetBlocked flips the moderation flag. Returns domain.ErrNotFound for
// an unknown id.
func (r *Repo) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setBlockedSQL, id, blocked)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddLike adds userID to the post's like set. The returned bool is
// false when the post is missing or the user already liked it.
func (r *Repo) AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	return r.setOp(ctx, addLikeSQL, postID, userID)
}

// RemoveLike removes userID from the post's like set. The returned bool
// is false when the post is missing or the user had not liked it.
func (r *Repo) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	return r.setOp(ctx, removeLikeSQL, postID, userID)
}

// AppendComment links a root comment to the post, keeping insertion
// order. The returned bool is false when the post is missing or the
// comment is already linked.
func (r *Repo) AppendComment(ctx context.Context, postID, commentID uuid.UUID) (bool, error) {
	return r.setOp(ctx, appendCommentSQL, postID, commentID)
}

// RemoveCommentRef unlinks the comment from any post referencing it.
func (r *Repo) RemoveCommentRef(ctx context.Context, commentID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, removeCommentRefSQL, commentID); err != nil {
		return fmt.Errorf("unlink comment %s: %w", commentID, err)
	}
	return nil
}

// IncrementViewCount bumps the view counter by id and returns the
// updated post.
func (r *Repo) IncrementViewCount(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPost(q.QueryRow(ctx, incViewByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	return p, nil
}

// IncrementViewCountBySlug bumps the view counter by slug and returns
// the updated post.
func (r *Repo) IncrementViewCountBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPost(q.QueryRow(ctx, incViewBySlugSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, "post", uuid.Nil)
	}
	return p, nil
}

func (r *Repo) setOp(ctx context.Context, sql string, postID, memberID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, postID, memberID)
	if err != nil {
		return false, postgres.MapError(err, "post", postID)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

type rowIterator interface {
	rowScanner
	Next() bool
	Err() error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var (
		p        domain.Post
		coverID  pgtype.Text
		coverURL pgtype.Text
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Excerpt, &p.Body, &p.Slug, &p.OwnerID, &p.CategoryID,
		&coverID, &coverURL, &p.Tags, &p.Likes, &p.CommentIDs, &p.IsBlocked, &p.ViewCount,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Cover = postgres.MediaFromColumns(coverID, coverURL)
	return &p, nil
}

func collectPosts(rows rowIterator) ([]*domain.Post, error) {
	result := []*domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
