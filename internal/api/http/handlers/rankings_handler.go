package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/italosilvaf/TesteSolfacil/internal/api/dto"
	"github.com/italosilvaf/TesteSolfacil/internal/service"
)

// RankingsHandler exposes the two ranking endpoints.
type RankingsHandler struct {
	partners *service.PartnerService
	plants   *service.PlantService
}

// NewRankingsHandler constructs handler.
func NewRankingsHandler(partners *service.PartnerService, plants *service.PlantService) *RankingsHandler {
	return &RankingsHandler{partners: partners, plants: plants}
}

// LastPartners handles GET /last-partners, the ten most recently registered.
func (h *RankingsHandler) LastPartners(c *fiber.Ctx) error {
	partners, err := h.partners.LastPartners(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPartnerListResponse(partners)})
}

// TopCapacityPlants handles GET /top-capacity-plants, the five largest.
func (h *RankingsHandler) TopCapacityPlants(c *fiber.Ctx) error {
	plants, err := h.plants.TopCapacityPlants(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPlantListResponse(plants)})
}
