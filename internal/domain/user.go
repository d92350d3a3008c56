package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a platform actor capable of owning content.
//
// Following, Followers and SavedPosts are relation sets maintained only
// through the social-graph operations (never by direct field writes), so
// that the two-sided follow relation stays symmetric.
type User struct {
	ID         uuid.UUID
	Username   string
	Email      string
	Nickname   string
	Role       Role
	Avatar     *MediaRef
	Following  []uuid.UUID
	Followers  []uuid.UUID
	SavedPosts []uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// PasswordHash is populated only by credential lookups.
	PasswordHash string
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// Follows reports whether ownerID is in the user's following set.
func (u *User) Follows(ownerID uuid.UUID) bool {
	for _, id := range u.Following {
		if id == ownerID {
			return true
		}
	}
	return false
}

// ResourceKind implements the authz resource discriminator.
func (u *User) ResourceKind() ResourceKind { return KindUser }

// ResourceOwner returns the owning actor id. A user owns itself, but no
// ability rule grants ownership-based access on users.
func (u *User) ResourceOwner() uuid.UUID { return u.ID }

// Credentials bundles a user with its secret columns. Only the auth
// flow reads them; User.PasswordHash stays empty on normal reads.
type Credentials struct {
	User         User
	PasswordHash string
	Reset        PasswordReset
}

// PasswordReset is the single outstanding reset token of a user.
// A zero value means no reset is pending.
type PasswordReset struct {
	TokenHash string
	ExpiresAt time.Time
}

// IsUsable reports whether the reset token can still redeem a password
// change at the given instant.
func (p PasswordReset) IsUsable(now time.Time) bool {
	return p.TokenHash != "" && now.Before(p.ExpiresAt)
}
