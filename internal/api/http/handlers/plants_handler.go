package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/italosilvaf/TesteSolfacil/internal/api/dto"
	"github.com/italosilvaf/TesteSolfacil/internal/auth"
	"github.com/italosilvaf/TesteSolfacil/internal/service"
	apperrors "github.com/italosilvaf/TesteSolfacil/pkg/util"
)

// PlantsHandler exposes plant CRUD endpoints.
type PlantsHandler struct {
	plants *service.PlantService
}

// NewPlantsHandler constructs handler.
func NewPlantsHandler(plants *service.PlantService) *PlantsHandler {
	return &PlantsHandler{plants: plants}
}

// Create handles POST /plants. The plant is owned by the logged-in partner.
func (h *PlantsHandler) Create(c *fiber.Ctx) error {
	acting, ok := auth.PartnerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("could not validate credentials")
	}

	var req dto.PlantCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	plant, err := h.plants.Register(c.Context(), acting.ID, service.PlantInput{
		Name:          req.Name,
		CEP:           req.CEP,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		MaxCapacityGW: req.MaxCapacityGW,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewPlantResponse(*plant),
	})
}

// List handles GET /plants.
func (h *PlantsHandler) List(c *fiber.Ctx) error {
	plants, err := h.plants.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPlantListResponse(plants)})
}

// Get handles GET /plants/:id.
func (h *PlantsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	plant, err := h.plants.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPlantResponse(*plant)})
}

// Update handles PUT /plants/:id. Only the registering partner may edit.
func (h *PlantsHandler) Update(c *fiber.Ctx) error {
	acting, ok := auth.PartnerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("could not validate credentials")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.PlantUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	plant, err := h.plants.Update(c.Context(), acting.ID, id, service.PlantUpdate{
		Name:          req.Name,
		CEP:           req.CEP,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		MaxCapacityGW: req.MaxCapacityGW,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"data": dto.NewPlantResponse(*plant),
	})
}

// Delete handles DELETE /plants/:id. Only the registering partner may delete.
func (h *PlantsHandler) Delete(c *fiber.Ctx) error {
	acting, ok := auth.PartnerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("could not validate credentials")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.plants.Delete(c.Context(), acting.ID, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
