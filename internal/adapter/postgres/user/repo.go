// Package user implements the User repository using PostgreSQL.
//
// The follow/follower/saved-post relations are uuid[] columns mutated only
// through single-statement set operations, so each mutation is atomic and
// reports via RowsAffected whether the target row resolved.
package user

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

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, email, nickname, role, avatar_storage_id, avatar_url,
following, followers, saved_posts, created_at, updated_at`

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByUsernameSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

const getByIDsSQL = `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1::uuid[])`

const listSQL = `SELECT ` + userColumns + ` FROM users ORDER BY username`

const createSQL = `
INSERT INTO users (username, email, nickname, role, password_hash, avatar_storage_id, avatar_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

const updateProfileSQL = `
UPDATE users
SET email = $2, nickname = $3, avatar_storage_id = $4, avatar_url = $5, updated_at = now()
WHERE username = $1
RETURNING ` + userColumns

const credentialsSQL = `
SELECT ` + userColumns + `, password_hash, reset_token_hash, reset_expires_at
FROM users WHERE username = $1`

const updatePasswordSQL = `
UPDATE users
SET password_hash = $2, reset_token_hash = NULL, reset_expires_at = NULL, updated_at = now()
WHERE username = $1`

const setResetTokenSQL = `
UPDATE users SET reset_token_hash = $2, reset_expires_at = $3, updated_at = now()
WHERE username = $1`

// Set mutations. The CASE form mirrors an atomic set-add: the statement
// matches whenever the row exists, so RowsAffected answers "did the user
// resolve", not "did the set change".
const addFollowingSQL = `
UPDATE users
SET following = CASE WHEN $2 = ANY(following) THEN following ELSE array_append(following, $2) END,
    updated_at = now()
WHERE id = $1`

const removeFollowingSQL = `
UPDATE users SET following = array_remove(following, $2), updated_at = now() WHERE id = $1`

const addFollowerSQL = `
UPDATE users
SET followers = CASE WHEN $2 = ANY(followers) THEN followers ELSE array_append(followers, $2) END,
    updated_at = now()
WHERE id = $1`

const removeFollowerSQL = `
UPDATE users SET followers = array_remove(followers, $2), updated_at = now() WHERE id = $1`

const addSavedPostSQL = `
UPDATE users
SET saved_posts = CASE WHEN $2 = ANY(saved_posts) THEN saved_posts ELSE array_append(saved_posts, $2) END,
    updated_at = now()
WHERE id = $1`

const removeSavedPostSQL = `
UPDATE users SET saved_posts = array_remove(saved_posts, $2), updated_at = now() WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByUsername returns a user by unique username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// GetByIDs returns the users for the given ids in one round trip.
// Missing ids are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}
	defer rows.Close()

	result := []*domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// List returns all users ordered by username.
func (r *Repo) List(ctx context.Context) ([]*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	result := []*domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetCredentials returns a user plus password hash and pending reset
// token by username.
func (r *Repo) GetCredentials(ctx context.Context, username string) (*domain.Credentials, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		u         domain.User
		role      string
		avatarID  pgtype.Text
		avatarURL pgtype.Text
		hash      string
		resetHash pgtype.Text
		resetExp  pgtype.Timestamptz
	)
	err := q.QueryRow(ctx, credentialsSQL, username).Scan(
		&u.ID, &u.Username, &u.Email, &u.Nickname, &role, &avatarID, &avatarURL,
		&u.Following, &u.Followers, &u.SavedPosts, &u.CreatedAt, &u.UpdatedAt,
		&hash, &resetHash, &resetExp,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	u.Role = domain.Role(role)
	u.Avatar = postgres.MediaFromColumns(avatarID, avatarURL)

	creds := &domain.Credentials{User: u, PasswordHash: hash}
	if resetHash.Valid {
		creds.Reset = domain.PasswordReset{TokenHash: resetHash.String, ExpiresAt: resetExp.Time}
	}
	return creds, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted row.
// Returns domain.ErrAlreadyExists when the username or email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	avatarID, avatarURL := postgres.MediaToColumns(u.Avatar)
	created, err := scanUser(q.QueryRow(ctx, createSQL,
		u.Username, u.Email, u.Nickname, u.Role.String(), passwordHash, avatarID, avatarURL))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return created, nil
}

// UpdateProfile overwrites the mutable profile fields of the user
// identified by username. The caller merges partial params first.
func (r *Repo) UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	avatarID, avatarURL := postgres.MediaToColumns(u.Avatar)
	updated, err := scanUser(q.QueryRow(ctx, updateProfileSQL,
		u.Username, u.Email, u.Nickname, avatarID, avatarURL))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return updated, nil
}

// UpdatePassword replaces the password hash and clears any pending
// reset token.
func (r *Repo) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updatePasswordSQL, username, passwordHash)
	if err != nil {
		return postgres.MapError(err, "user", uuid.Nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
	}
	return nil
}

// SetResetToken stores the hashed password-reset token and its expiry.
func (r *Repo) SetResetToken(ctx context.Context, username, tokenHash string, expiresAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setResetTokenSQL, username, tokenHash, expiresAt)
	if err != nil {
		return postgres.MapError(err, "user", uuid.Nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Social set mutations
// ---------------------------------------------------------------------------

// AddFollowing adds targetID to the user's following set.
// The returned bool reports whether the user row resolved.
func (r *Repo) AddFollowing(ctx context.Context, userID, targetID uuid.UUID) (bool, error) {
	return r.setOp(ctx, addFollowingSQL, userID, targetID)
}

// RemoveFollowing removes targetID from the user's following set.
func (r *Repo) RemoveFollowing(ctx context.Context, userID, targetID uuid.UUID) (bool, error) {
	return r.setOp(ctx, removeFollowingSQL, userID, targetID)
}

// AddFollower adds sourceID to the user's followers set.
func (r *Repo) AddFollower(ctx context.Context, userID, sourceID uuid.UUID) (bool, error) {
	return r.setOp(ctx, addFollowerSQL, userID, sourceID)
}

// RemoveFollower removes sourceID from the user's followers set.
func (r *Repo) RemoveFollower(ctx context.Context, userID, sourceID uuid.UUID) (bool, error) {
	return r.setOp(ctx, removeFollowerSQL, userID, sourceID)
}

// AddSavedPost adds postID to the user's saved-post set.
func (r *Repo) AddSavedPost(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	return r.setOp(ctx, addSavedPostSQL, userID, postID)
}

// RemoveSavedPost removes postID from the user's saved-post set.
func (r *Repo) RemoveSavedPost(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	return r.setOp(ctx, removeSavedPostSQL, userID, postID)
}

func (r *Repo) setOp(ctx context.Context, sql string, userID, memberID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, userID, memberID)
	if err != nil {
		return false, postgres.MapError(err, "user", userID)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u         domain.User
		role      string
		avatarID  pgtype.Text
		avatarURL pgtype.Text
	)

	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Nickname, &role, &avatarID, &avatarURL,
		&u.Following, &u.Followers, &u.SavedPosts, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Role = domain.Role(role)
	u.Avatar = postgres.MediaFromColumns(avatarID, avatarURL)
	return &u, nil
}
