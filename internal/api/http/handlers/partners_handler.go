package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/italosilvaf/TesteSolfacil/internal/api/dto"
	"github.com/italosilvaf/TesteSolfacil/internal/auth"
	"github.com/italosilvaf/TesteSolfacil/internal/service"
	apperrors "github.com/italosilvaf/TesteSolfacil/pkg/util"
)

// PartnersHandler exposes partner registration, login and CRUD endpoints.
type PartnersHandler struct {
	partners *service.PartnerService
	auth     *service.AuthService
}

// NewPartnersHandler constructs handler.
func NewPartnersHandler(partners *service.PartnerService, authService *service.AuthService) *PartnersHandler {
	return &PartnersHandler{partners: partners, auth: authService}
}

// Signup handles POST /partners/signup.
func (h *PartnersHandler) Signup(c *fiber.Ctx) error {
	var req dto.PartnerSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	partner, err := h.partners.Signup(c.Context(), req.Name, req.CNPJ, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewPartnerResponse(*partner),
	})
}

// Login handles POST /partners/login. Every credential failure produces the
// same generic response.
func (h *PartnersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.NewDomainError("INVALID_CREDENTIALS", "incorrect access data", http.StatusBadRequest, nil)
		}
		return err
	}

	return c.JSON(dto.LoginResponse{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /partners/me, returning the logged-in partner.
func (h *PartnersHandler) Me(c *fiber.Ctx) error {
	partner, ok := auth.PartnerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("could not validate credentials")
	}
	return c.JSON(fiber.Map{"data": dto.NewPartnerResponse(*partner)})
}

// List handles GET /partners.
func (h *PartnersHandler) List(c *fiber.Ctx) error {
	partners, err := h.partners.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPartnerListResponse(partners)})
}

// Get handles GET /partners/:id, returning the partner with its plants.
func (h *PartnersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	partner, plants, err := h.partners.Get(c.Context(), id)
	if err != nil {
		return err
	}

	resp := dto.NewPartnerResponse(*partner)
	resp.Plants = dto.NewPlantListResponse(plants)
	return c.JSON(fiber.Map{"data": resp})
}

// Update handles PUT /partners/:id. Partners may only edit themselves.
func (h *PartnersHandler) Update(c *fiber.Ctx) error {
	acting, ok := auth.PartnerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("could not validate credentials")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.PartnerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	partner, err := h.partners.Update(c.Context(), acting.ID, id, service.PartnerUpdate{
		Name:     req.Name,
		CNPJ:     req.CNPJ,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"data": dto.NewPartnerResponse(*partner),
	})
}

// Delete handles DELETE /partners/:id. Partners may only delete themselves.
func (h *PartnersHandler) Delete(c *fiber.Ctx) error {
	acting, ok := auth.PartnerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("could not validate credentials")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.partners.Delete(c.Context(), acting.ID, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"field": "id"})
	}
	return id, nil
}
