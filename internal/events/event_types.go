package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPartnerRegistered EventType = "partner_registered"
	EventPlantRegistered   EventType = "plant_registered"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	PartnerID int64       `json:"partner_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent builds an event envelope for the given partner.
func NewEvent(eventType EventType, partnerID int64, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		PartnerID: partnerID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// PartnerRegisteredPayload payload.
type PartnerRegisteredPayload struct {
	Name  string `json:"name"`
	CNPJ  string `json:"cnpj"`
	Email string `json:"email"`
}

// PlantRegisteredPayload payload.
type PlantRegisteredPayload struct {
	PlantID       int64  `json:"plant_id"`
	Name          string `json:"name"`
	CEP           string `json:"cep"`
	MaxCapacityGW int    `json:"max_capacity_gw"`
}
