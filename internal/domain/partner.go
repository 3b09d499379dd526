package domain

import (
	"time"

	"github.com/google/uuid"
)

// Partner is the domain model for companies that register plants.
// CNPJ is stored normalized (digits only).
type Partner struct {
	UUID         uuid.UUID
	ID           int64
	Name         string
	CNPJ         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
