package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/socialblog/backend/internal/domain"
)

// Register creates a new account and signs the user in. The role is
// always USER; admins are promoted out of band.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username: strings.TrimSpace(input.Username),
		Email:    input.Email,
		Nickname: strings.TrimSpace(input.Nickname),
		Role:     domain.RoleUser,
	}, string(hash))
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(created.ID, created.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", "user_id", created.ID.String())
	return &Result{User: created, AccessToken: token}, nil
}
