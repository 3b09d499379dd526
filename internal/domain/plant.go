package domain

import (
	"time"

	"github.com/google/uuid"
)

// Plant is an energy-generation site registered by a partner.
// CEP is stored as an 8-digit string; PartnerID is the owning partner.
type Plant struct {
	UUID          uuid.UUID
	ID            int64
	Name          string
	CEP           string
	Latitude      float64
	Longitude     float64
	MaxCapacityGW int
	PartnerID     int64
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
