package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/italosilvaf/TesteSolfacil/internal/auth"
	"github.com/italosilvaf/TesteSolfacil/internal/config"
	"github.com/italosilvaf/TesteSolfacil/internal/domain"
	"github.com/italosilvaf/TesteSolfacil/internal/repository"
)

// ErrInvalidCredentials is returned for every login failure. Unknown email
// and wrong password collapse to the same outcome so the endpoint cannot be
// used to enumerate registered partners.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService coordinates credential verification and token issuance.
type AuthService struct {
	partners   repository.PartnerRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, partners repository.PartnerRepository) *AuthService {
	return &AuthService{
		partners:   partners,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// Authenticate looks a partner up by email and verifies the password.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.Partner, error) {
	partner, err := s.partners.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.ComparePassword(partner.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return partner, nil
}

// Login authenticates a partner and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.Token, error) {
	partner, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", domain.Token{}, err
	}
	return s.tokenMgr.Issue(partner.ID)
}

// HashPassword hashes a plaintext password with the configured cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	return auth.HashPassword(password, s.bcryptCost)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
