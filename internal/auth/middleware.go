package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/italosilvaf/TesteSolfacil/internal/domain"
	"github.com/italosilvaf/TesteSolfacil/internal/repository"
	apperrors "github.com/italosilvaf/TesteSolfacil/pkg/util"
)

const principalKey = "auth_principal"

// credentialMessage is the single message returned for every authentication
// failure on protected routes. Missing header, bad signature, expired token
// and unknown partner must stay indistinguishable.
const credentialMessage = "could not validate credentials"

// Middleware validates bearer tokens and loads the acting partner.
type Middleware struct {
	tokens   *TokenManager
	partners repository.PartnerRepository
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, partners repository.PartnerRepository) *Middleware {
	return &Middleware{tokens: tokens, partners: partners}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized(credentialMessage)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized(credentialMessage)
	}

	subject, err := m.tokens.Verify(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized(credentialMessage)
	}

	partner, err := m.partners.GetByID(c.Context(), subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized(credentialMessage)
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, partner)
	return c.Next()
}

// PartnerFromContext retrieves the authenticated partner.
func PartnerFromContext(c *fiber.Ctx) (*domain.Partner, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	partner, ok := val.(*domain.Partner)
	return partner, ok
}
