package dto

import (
	"time"

	"github.com/italosilvaf/TesteSolfacil/internal/domain"
)

// PartnerSignupRequest payload for new partners.
type PartnerSignupRequest struct {
	Name     string `json:"name"`
	CNPJ     string `json:"cnpj"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PartnerUpdateRequest payload for partner edits; empty fields are ignored.
type PartnerUpdateRequest struct {
	Name     string `json:"name"`
	CNPJ     string `json:"cnpj"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the bearer-token envelope returned at login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PartnerResponse is the partner representation returned by the API. The
// password hash is never serialized.
type PartnerResponse struct {
	ID        int64           `json:"id"`
	UUID      string          `json:"uuid"`
	Name      string          `json:"name"`
	CNPJ      string          `json:"cnpj"`
	Email     string          `json:"email"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
	Plants    []PlantResponse `json:"plants,omitempty"`
}

// NewPartnerResponse maps a domain partner.
func NewPartnerResponse(partner domain.Partner) PartnerResponse {
	return PartnerResponse{
		ID:        partner.ID,
		UUID:      partner.UUID.String(),
		Name:      partner.Name,
		CNPJ:      partner.CNPJ,
		Email:     partner.Email,
		CreatedAt: partner.CreatedAt,
		UpdatedAt: partner.UpdatedAt,
	}
}

// NewPartnerListResponse maps a slice of domain partners.
func NewPartnerListResponse(partners []domain.Partner) []PartnerResponse {
	out := make([]PartnerResponse, 0, len(partners))
	for _, partner := range partners {
		out = append(out, NewPartnerResponse(partner))
	}
	return out
}
