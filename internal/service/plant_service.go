package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/italosilvaf/TesteSolfacil/internal/auth"
	"github.com/italosilvaf/TesteSolfacil/internal/cache"
	"github.com/italosilvaf/TesteSolfacil/internal/domain"
	"github.com/italosilvaf/TesteSolfacil/internal/events"
	"github.com/italosilvaf/TesteSolfacil/internal/repository"
	"github.com/italosilvaf/TesteSolfacil/internal/validation"
	apperrors "github.com/italosilvaf/TesteSolfacil/pkg/util"
)

const topPlantsLimit = 5

// PlantInput carries the writable fields of a plant.
type PlantInput struct {
	Name          string
	CEP           string
	Latitude      float64
	Longitude     float64
	MaxCapacityGW int
}

// PlantUpdate carries the optional fields of a plant update. Zero values
// leave the stored value unchanged.
type PlantUpdate struct {
	Name          string
	CEP           string
	Latitude      *float64
	Longitude     *float64
	MaxCapacityGW int
}

// PlantService orchestrates plant registration and CRUD.
type PlantService struct {
	plants     repository.PlantRepository
	rankings   *cache.RankingCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewPlantService builds the service.
func NewPlantService(plants repository.PlantRepository, rankings *cache.RankingCache, dispatcher events.Dispatcher, logger *zap.Logger) *PlantService {
	return &PlantService{
		plants:     plants,
		rankings:   rankings,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Register creates a plant owned by the acting partner.
func (s *PlantService) Register(ctx context.Context, partnerID int64, input PlantInput) (*domain.Plant, error) {
	if input.Name == "" {
		return nil, apperrors.NewValidationError("name required", map[string]any{"field": "name"})
	}
	if !validation.ValidCEP(input.CEP) {
		return nil, apperrors.NewValidationError("invalid CEP", map[string]any{"field": "cep"})
	}

	plant := &domain.Plant{
		UUID:          uuid.New(),
		Name:          input.Name,
		CEP:           input.CEP,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		MaxCapacityGW: input.MaxCapacityGW,
		PartnerID:     partnerID,
	}
	if err := s.plants.Create(ctx, plant); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("a plant with this CEP is already registered")
		}
		return nil, err
	}

	s.rankings.Invalidate(ctx, cache.KeyTopPlants)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventPlantRegistered, partnerID, events.PlantRegisteredPayload{
			PlantID:       plant.ID,
			Name:          plant.Name,
			CEP:           plant.CEP,
			MaxCapacityGW: plant.MaxCapacityGW,
		}))
	}
	return plant, nil
}

// List returns all plants.
func (s *PlantService) List(ctx context.Context) ([]domain.Plant, error) {
	plants, err := s.plants.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(plants) == 0 {
		return nil, apperrors.NewNotFound("plant")
	}
	return plants, nil
}

// Get returns a plant by id.
func (s *PlantService) Get(ctx context.Context, id int64) (*domain.Plant, error) {
	plant, err := s.plants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("plant")
		}
		return nil, err
	}
	return plant, nil
}

// Update edits a plant record. Only the registering partner may do so.
func (s *PlantService) Update(ctx context.Context, acting, id int64, update PlantUpdate) (*domain.Plant, error) {
	plant, err := s.plants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("plant")
		}
		return nil, err
	}

	if !auth.Authorize(acting, plant.PartnerID) {
		return nil, apperrors.NewForbidden("the logged-in partner may not modify this plant")
	}

	if update.Name != "" {
		plant.Name = update.Name
	}
	if update.CEP != "" {
		if !validation.ValidCEP(update.CEP) {
			return nil, apperrors.NewValidationError("invalid CEP", map[string]any{"field": "cep"})
		}
		plant.CEP = update.CEP
	}
	if update.Latitude != nil {
		plant.Latitude = *update.Latitude
	}
	if update.Longitude != nil {
		plant.Longitude = *update.Longitude
	}
	if update.MaxCapacityGW != 0 {
		plant.MaxCapacityGW = update.MaxCapacityGW
	}

	if err := s.plants.Update(ctx, plant); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("a plant with this CEP is already registered")
		}
		return nil, err
	}

	s.rankings.Invalidate(ctx, cache.KeyTopPlants)
	return plant, nil
}

// Delete removes a plant record. Only the registering partner may do so.
func (s *PlantService) Delete(ctx context.Context, acting, id int64) error {
	plant, err := s.plants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("plant")
		}
		return err
	}

	if !auth.Authorize(acting, plant.PartnerID) {
		return apperrors.NewForbidden("the logged-in partner may not delete this plant")
	}

	if err := s.plants.Delete(ctx, id); err != nil {
		return err
	}
	s.rankings.Invalidate(ctx, cache.KeyTopPlants)
	return nil
}

// TopCapacityPlants returns the five highest-capacity plants, served from
// the ranking cache when warm.
func (s *PlantService) TopCapacityPlants(ctx context.Context) ([]domain.Plant, error) {
	if plants, ok := s.rankings.GetPlants(ctx, cache.KeyTopPlants); ok {
		return plants, nil
	}

	plants, err := s.plants.ListTopCapacity(ctx, topPlantsLimit)
	if err != nil {
		return nil, err
	}
	if len(plants) == 0 {
		return nil, apperrors.NewNotFound("plant")
	}

	s.rankings.SetPlants(ctx, cache.KeyTopPlants, plants)
	return plants, nil
}
