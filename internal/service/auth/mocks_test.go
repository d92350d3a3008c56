package auth

import (
	"context"
	"sync"
	"time"

	"github.com/socialblog/backend/internal/domain"
)

// Hand-rolled moq-style mocks for the consumer interfaces.

type userRepoMock struct {
	CreateFunc         func(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error)
	GetCredentialsFunc func(ctx context.Context, username string) (*domain.Credentials, error)
	UpdatePasswordFunc func(ctx context.Context, username, passwordHash string) error
	SetResetTokenFunc  func(ctx context.Context, username, tokenHash string, expiresAt time.Time) error

	mu    sync.Mutex
	calls struct {
		Create         []*domain.User
		UpdatePassword []struct {
			Username     string
			PasswordHash string
		}
		SetResetToken []struct {
			Username  string
			TokenHash string
			ExpiresAt time.Time
		}
	}
}

func (m *userRepoMock) Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, u)
	m.mu.Unlock()
	return m.CreateFunc(ctx, u, passwordHash)
}

func (m *userRepoMock) CreateCalls() []*domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *userRepoMock) GetCredentials(ctx context.Context, username string) (*domain.Credentials, error) {
	return m.GetCredentialsFunc(ctx, username)
}

func (m *userRepoMock) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	m.mu.Lock()
	m.calls.UpdatePassword = append(m.calls.UpdatePassword, struct {
		Username     string
		PasswordHash string
	}{username, passwordHash})
	m.mu.Unlock()
	return m.UpdatePasswordFunc(ctx, username, passwordHash)
}

func (m *userRepoMock) UpdatePasswordCalls() []struct {
	Username     string
	PasswordHash string
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdatePassword
}

func (m *userRepoMock) SetResetToken(ctx context.Context, username, tokenHash string, expiresAt time.Time) error {
	m.mu.Lock()
	m.calls.SetResetToken = append(m.calls.SetResetToken, struct {
		Username  string
		TokenHash string
		ExpiresAt time.Time
	}{username, tokenHash, expiresAt})
	m.mu.Unlock()
	return m.SetResetTokenFunc(ctx, username, tokenHash, expiresAt)
}

func (m *userRepoMock) SetResetTokenCalls() []struct {
	Username  string
	TokenHash string
	ExpiresAt time.Time
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetResetToken
}

type notifierMock struct {
	SendPasswordResetFunc func(ctx context.Context, recipient, token string) error

	mu    sync.Mutex
	calls struct {
		SendPasswordReset []struct {
			Recipient string
			Token     string
		}
	}
}

func (m *notifierMock) SendPasswordReset(ctx context.Context, recipient, token string) error {
	m.mu.Lock()
	m.calls.SendPasswordReset = append(m.calls.SendPasswordReset, struct {
		Recipient string
		Token     string
	}{recipient, token})
	m.mu.Unlock()
	if m.SendPasswordResetFunc == nil {
		return nil
	}
	return m.SendPasswordResetFunc(ctx, recipient, token)
}

func (m *notifierMock) SendPasswordResetCalls() []struct {
	Recipient string
	Token     string
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SendPasswordReset
}

// txManagerMock runs the callback inline, no transaction involved.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
