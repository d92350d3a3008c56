package auth

import "github.com/socialblog/backend/internal/domain"

// Result is the outcome of a successful register or login.
type Result struct {
	User        *domain.User
	AccessToken string
}
