// Package auth implements registration, password login and the
// password-reset flow.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/config"
	"github.com/socialblog/backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error)
	GetCredentials(ctx context.Context, username string) (*domain.Credentials, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	SetResetToken(ctx context.Context, username, tokenHash string, expiresAt time.Time) error
}

// jwtManager defines the token manager interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	GenerateResetToken() (raw string, hash string, err error)
}

// notifier delivers the raw reset token to the account's mailbox.
type notifier interface {
	SendPasswordReset(ctx context.Context, recipient, token string) error
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements authentication operations.
type Service struct {
	log    *slog.Logger
	cfg    config.AuthConfig
	users  userRepo
	jwt    jwtManager
	mailer notifier
	tx     txManager
}

// NewService creates a new Auth service.
func NewService(
	log *slog.Logger,
	cfg config.AuthConfig,
	users userRepo,
	jwt jwtManager,
	mailer notifier,
	tx txManager,
) *Service {
	return &Service{
		log:    log.With("service", "auth"),
		cfg:    cfg,
		users:  users,
		jwt:    jwt,
		mailer: mailer,
		tx:     tx,
	}
}
