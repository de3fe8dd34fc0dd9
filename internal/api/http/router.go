package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/auth-gateway/internal/api/http/handlers"
	"github.com/spec-kit/auth-gateway/internal/auth"
	"github.com/spec-kit/auth-gateway/internal/domain"
)

// PublicRoutes lists the paths that bypass the security pipeline. OPTIONS
// requests always bypass regardless of path.
var PublicRoutes = []string{
	"/auth/register",
	"/auth/login",
	"/health/live",
	"/health/ready",
}

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Users    *handlers.UsersHandler
	Pipeline *auth.SecurityPipeline
}

// RegisterRoutes wires the security pipeline and HTTP routes. The pipeline
// runs for every request; public routes are bypassed inside it.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Pipeline.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/info", cfg.Auth.Info)
	authGroup.Get("/users/:id", auth.RequireRole(domain.RoleAdmin), cfg.Users.GetByID)
}
