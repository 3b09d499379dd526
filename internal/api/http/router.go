package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/italosilvaf/TesteSolfacil/internal/api/http/handlers"
	"github.com/italosilvaf/TesteSolfacil/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Partners       *handlers.PartnersHandler
	Plants         *handlers.PlantsHandler
	Rankings       *handlers.RankingsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	partners := api.Group("/partners")
	partners.Post("/signup", cfg.Partners.Signup)
	partners.Post("/login", cfg.Partners.Login)
	// Literal routes before /:id so "me" is not captured as an id.
	partners.Get("/me", cfg.AuthMiddleware.Handle, cfg.Partners.Me)
	partners.Get("/", cfg.Partners.List)
	partners.Get("/:id", cfg.Partners.Get)
	partners.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Partners.Update)
	partners.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Partners.Delete)

	plants := api.Group("/plants")
	plants.Post("/", cfg.AuthMiddleware.Handle, cfg.Plants.Create)
	plants.Get("/", cfg.Plants.List)
	plants.Get("/:id", cfg.Plants.Get)
	plants.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Plants.Update)
	plants.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Plants.Delete)

	api.Get("/last-partners", cfg.Rankings.LastPartners)
	api.Get("/top-capacity-plants", cfg.Rankings.TopCapacityPlants)
}
