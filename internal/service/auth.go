package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/d9705996/kysai/internal/auth"
	"github.com/d9705996/kysai/internal/domain"
	"github.com/d9705996/kysai/internal/repository"
	"github.com/d9705996/kysai/internal/schema"
)

// AuthService exchanges credentials for access tokens.
type AuthService struct {
	users     *repository.UserRepository
	secret    string
	accessTTL time.Duration
	log       *slog.Logger
}

func NewAuthService(users *repository.UserRepository, secret string, accessTTL time.Duration, log *slog.Logger) *AuthService {
	return &AuthService{users: users, secret: secret, accessTTL: accessTTL, log: log}
}

// Login verifies the credentials and issues a bearer token. Unknown emails
// and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*schema.TokenResponse, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(u.HashedPassword, password) {
		s.log.WarnContext(ctx, "login rejected", "email", email)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := auth.IssueAccessToken(u.ID, u.Email, string(u.Role), u.OrganizationID, s.secret, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	return &schema.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}
