package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/italosilvaf/TesteSolfacil/internal/auth"
	"github.com/italosilvaf/TesteSolfacil/internal/config"
	"github.com/italosilvaf/TesteSolfacil/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60 * 24 * 7,
		BcryptCost:            4,
	}
}

func seedPartner(t *testing.T, repo *fakePartnerRepo, email, password string) *domain.Partner {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)

	partner := &domain.Partner{
		Name:         "Acme Solar",
		CNPJ:         "34427619000107",
		Email:        email,
		PasswordHash: hash,
	}
	require.NoError(t, repo.Create(context.Background(), partner))
	return partner
}

func TestAuthenticate(t *testing.T) {
	repo := newFakePartnerRepo()
	seeded := seedPartner(t, repo, "acme@example.com", "s3cret")
	svc := NewAuthService(testAuthConfig(), repo)

	partner, err := svc.Authenticate(context.Background(), "acme@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, partner.ID)
}

func TestAuthenticateUniformFailure(t *testing.T) {
	repo := newFakePartnerRepo()
	seedPartner(t, repo, "acme@example.com", "s3cret")
	svc := NewAuthService(testAuthConfig(), repo)

	// Wrong password and unknown email must be the same outcome.
	_, wrongPassword := svc.Authenticate(context.Background(), "acme@example.com", "wrong")
	_, unknownEmail := svc.Authenticate(context.Background(), "nobody@example.com", "s3cret")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newFakePartnerRepo()
	seeded := seedPartner(t, repo, "acme@example.com", "s3cret")
	svc := NewAuthService(testAuthConfig(), repo)

	signed, token, err := svc.Login(context.Background(), "acme@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, token.Subject)

	subject, err := svc.TokenManager().Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, subject)
}

func TestLoginBadCredentials(t *testing.T) {
	repo := newFakePartnerRepo()
	seedPartner(t, repo, "acme@example.com", "s3cret")
	svc := NewAuthService(testAuthConfig(), repo)

	_, _, err := svc.Login(context.Background(), "acme@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
