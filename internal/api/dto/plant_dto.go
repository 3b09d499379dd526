package dto

import (
	"time"

	"github.com/italosilvaf/TesteSolfacil/internal/domain"
)

// PlantCreateRequest payload for new plants.
type PlantCreateRequest struct {
	Name          string  `json:"name"`
	CEP           string  `json:"cep"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	MaxCapacityGW int     `json:"max_capacity_gw"`
}

// PlantUpdateRequest payload for plant edits; absent fields are ignored.
type PlantUpdateRequest struct {
	Name          string   `json:"name"`
	CEP           string   `json:"cep"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	MaxCapacityGW int      `json:"max_capacity_gw"`
}

// PlantResponse is the plant representation returned by the API.
type PlantResponse struct {
	ID            int64      `json:"id"`
	UUID          string     `json:"uuid"`
	Name          string     `json:"name"`
	CEP           string     `json:"cep"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	MaxCapacityGW int        `json:"max_capacity_gw"`
	PartnerID     int64      `json:"partner_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// NewPlantResponse maps a domain plant.
func NewPlantResponse(plant domain.Plant) PlantResponse {
	return PlantResponse{
		ID:            plant.ID,
		UUID:          plant.UUID.String(),
		Name:          plant.Name,
		CEP:           plant.CEP,
		Latitude:      plant.Latitude,
		Longitude:     plant.Longitude,
		MaxCapacityGW: plant.MaxCapacityGW,
		PartnerID:     plant.PartnerID,
		CreatedAt:     plant.CreatedAt,
		UpdatedAt:     plant.UpdatedAt,
	}
}

// NewPlantListResponse maps a slice of domain plants.
func NewPlantListResponse(plants []domain.Plant) []PlantResponse {
	out := make([]PlantResponse, 0, len(plants))
	for _, plant := range plants {
		out = append(out, NewPlantResponse(plant))
	}
	return out
}
