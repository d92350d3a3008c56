package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/socialblog/backend/internal/auth"
	"github.com/socialblog/backend/internal/domain"
)

// RequestPasswordReset stores a fresh reset token for the account and
// mails the raw token to its address. The outcome is identical for
// known and unknown usernames, so the endpoint cannot be used to probe
// which accounts exist. Mail delivery is best effort.
func (s *Service) RequestPasswordReset(ctx context.Context, username string) error {
	creds, err := s.users.GetCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "password reset requested for unknown username")
			return nil
		}
		return fmt.Errorf("get credentials: %w", err)
	}

	raw, hash, err := s.jwt.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.ResetTokenTTL)
	if err := s.users.SetResetToken(ctx, creds.User.Username, hash, expiresAt); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	if err := s.mailer.SendPasswordReset(ctx, creds.User.Email, raw); err != nil {
		s.log.WarnContext(ctx, "reset mail delivery failed",
			"user_id", creds.User.ID.String(),
			"error", err.Error(),
		)
	}

	s.log.InfoContext(ctx, "password reset requested", "user_id", creds.User.ID.String())
	return nil
}

// ResetPassword redeems a reset token for a new password. The token
// check and the password write run in one transaction so a token
// cannot be redeemed twice.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		creds, err := s.users.GetCredentials(ctx, input.Username)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("get credentials: %w", err)
		}

		if !creds.Reset.IsUsable(time.Now()) {
			return domain.ErrUnauthorized
		}
		if auth.HashToken(input.Token) != creds.Reset.TokenHash {
			return domain.ErrUnauthorized
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.BcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		// Clears the reset token alongside the hash.
		return s.users.UpdatePassword(ctx, creds.User.Username, string(hash))
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "password reset completed")
	return nil
}
