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

const lastPartnersLimit = 10

// PartnerUpdate carries the optional fields of a partner update. Empty
// strings leave the stored value unchanged.
type PartnerUpdate struct {
	Name     string
	CNPJ     string
	Email    string
	Password string
}

// PartnerService orchestrates partner registration and CRUD.
type PartnerService struct {
	partners   repository.PartnerRepository
	plants     repository.PlantRepository
	authSvc    *AuthService
	rankings   *cache.RankingCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewPartnerService builds the service.
func NewPartnerService(partners repository.PartnerRepository, plants repository.PlantRepository, authSvc *AuthService, rankings *cache.RankingCache, dispatcher events.Dispatcher, logger *zap.Logger) *PartnerService {
	return &PartnerService{
		partners:   partners,
		plants:     plants,
		authSvc:    authSvc,
		rankings:   rankings,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Signup registers a new partner. The CNPJ is validated and stored
// normalized (digits only); the password is stored only as a bcrypt hash.
func (s *PartnerService) Signup(ctx context.Context, name, cnpj, email, password string) (*domain.Partner, error) {
	if !validation.ValidCNPJ(cnpj) {
		return nil, apperrors.NewValidationError("invalid CNPJ", map[string]any{"field": "cnpj"})
	}
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password required", nil)
	}

	hash, err := s.authSvc.HashPassword(password)
	if err != nil {
		return nil, err
	}

	partner := &domain.Partner{
		UUID:         uuid.New(),
		Name:         name,
		CNPJ:         validation.OnlyDigits(cnpj),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.partners.Create(ctx, partner); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("a partner with this e-mail or CNPJ is already registered")
		}
		return nil, err
	}

	s.rankings.Invalidate(ctx, cache.KeyLastPartners)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventPartnerRegistered, partner.ID, events.PartnerRegisteredPayload{
			Name:  partner.Name,
			CNPJ:  partner.CNPJ,
			Email: partner.Email,
		}))
	}
	return partner, nil
}

// List returns all partners.
func (s *PartnerService) List(ctx context.Context) ([]domain.Partner, error) {
	partners, err := s.partners.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(partners) == 0 {
		return nil, apperrors.NewNotFound("partner")
	}
	return partners, nil
}

// Get returns a partner and the plants it registered.
func (s *PartnerService) Get(ctx context.Context, id int64) (*domain.Partner, []domain.Plant, error) {
	partner, err := s.partners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("partner")
		}
		return nil, nil, err
	}

	plants, err := s.plants.ListByPartner(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return partner, plants, nil
}

// Update edits a partner record. Only the partner itself may do so.
func (s *PartnerService) Update(ctx context.Context, acting, id int64, update PartnerUpdate) (*domain.Partner, error) {
	partner, err := s.partners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("partner")
		}
		return nil, err
	}

	if !auth.Authorize(acting, partner.ID) {
		return nil, apperrors.NewForbidden("the logged-in partner may not modify this partner")
	}

	if update.Name != "" {
		partner.Name = update.Name
	}
	if update.CNPJ != "" {
		if !validation.ValidCNPJ(update.CNPJ) {
			return nil, apperrors.NewValidationError("invalid CNPJ", map[string]any{"field": "cnpj"})
		}
		partner.CNPJ = validation.OnlyDigits(update.CNPJ)
	}
	if update.Email != "" {
		partner.Email = update.Email
	}
	if update.Password != "" {
		hash, err := s.authSvc.HashPassword(update.Password)
		if err != nil {
			return nil, err
		}
		partner.PasswordHash = hash
	}

	if err := s.partners.Update(ctx, partner); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("a partner with this e-mail or CNPJ is already registered")
		}
		return nil, err
	}

	s.rankings.Invalidate(ctx, cache.KeyLastPartners)
	return partner, nil
}

// Delete removes a partner record. Only the partner itself may do so; its
// plants are removed by the cascading foreign key.
func (s *PartnerService) Delete(ctx context.Context, acting, id int64) error {
	partner, err := s.partners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("partner")
		}
		return err
	}

	if !auth.Authorize(acting, partner.ID) {
		return apperrors.NewForbidden("the logged-in partner may not delete this partner")
	}

	if err := s.partners.Delete(ctx, id); err != nil {
		return err
	}
	s.rankings.Invalidate(ctx, cache.KeyLastPartners, cache.KeyTopPlants)
	return nil
}

// LastPartners returns the ten most recently registered partners, served
// from the ranking cache when warm.
func (s *PartnerService) LastPartners(ctx context.Context) ([]domain.Partner, error) {
	if partners, ok := s.rankings.GetPartners(ctx, cache.KeyLastPartners); ok {
		return partners, nil
	}

	partners, err := s.partners.ListLast(ctx, lastPartnersLimit)
	if err != nil {
		return nil, err
	}
	if len(partners) == 0 {
		return nil, apperrors.NewNotFound("partner")
	}

	s.rankings.SetPartners(ctx, cache.KeyLastPartners, partners)
	return partners, nil
}
