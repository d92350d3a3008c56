// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/socialblog/backend/internal/adapter/postgres"
	"github.com/socialblog/backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const categoryColumns = `id, name, slug, background_storage_id, background_url, created_at, updated_at`

const getByIDSQL = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

const getBySlugSQL = `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`

const getByIDsSQL = `SELECT ` + categoryColumns + ` FROM categories WHERE id = ANY($1::uuid[])`

const listSQL = `SELECT ` + categoryColumns + ` FROM categories ORDER BY name`

const createSQL = `
INSERT INTO categories (name, slug, background_storage_id, background_url)
VALUES ($1, $2, $3, $4)
RETURNING ` + categoryColumns

const updateSQL = `
UPDATE categories
SET name = $2, slug = $3, background_storage_id = $4, background_url = $5, updated_at = now()
WHERE id = $1
RETURNING ` + categoryColumns

const deleteSQL = `DELETE FROM categories WHERE id = $1`

const slugExistsSQL = `SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1)`

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanOne(q.QueryRow(ctx, getByIDSQL, id), id)
}

// GetBySlug returns a category by its unique slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanOne(q.QueryRow(ctx, getBySlugSQL, slug), uuid.Nil)
}

// GetByIDs returns the categories matching the given ids, in no
// particular order. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Category, error) {
	if len(ids) == 0 {
		return []*domain.Category{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	defer rows.Close()

	result := []*domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("get categories: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	return result, nil
}

// List returns all categories ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	result := []*domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return result, nil
}

// Create inserts a new category and returns the persisted row.
// Returns domain.ErrAlreadyExists on a duplicate name or slug.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	storageID, url := postgres.MediaToColumns(c.Background)
	return r.scanOne(q.QueryRow(ctx, createSQL, c.Name, c.Slug, storageID, url), uuid.Nil)
}

// Update overwrites the mutable fields of a category. The caller merges
// partial params into the current entity before calling.
func (r *Repo) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	storageID, url := postgres.MediaToColumns(c.Background)
	return r.scanOne(q.QueryRow(ctx, updateSQL, c.ID, c.Name, c.Slug, storageID, url), c.ID)
}

// Delete removes a category.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SlugExists reports whether any category already uses the given slug.
func (r *Repo) SlugExists(ctx context.Context, slug string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, slugExistsSQL, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("category slug exists: %w", err)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *Repo) scanOne(row rowScanner, id uuid.UUID) (*domain.Category, error) {
	c, err := scanCategory(row)
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return c, nil
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var (
		c         domain.Category
		storageID pgtype.Text
		url       pgtype.Text
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &storageID, &url, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt
	c.UpdatedAt = updatedAt
	c.Background = postgres.MediaFromColumns(storageID, url)
	return &c, nil
}
