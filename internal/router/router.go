package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"mimarfolio/internal/auth"
	"mimarfolio/internal/handler"
	"mimarfolio/internal/model"
	"mimarfolio/internal/repository"
	"mimarfolio/internal/validation"
)

// Handlers bundles every HTTP handler wired into the router.
type Handlers struct {
	Auth        *handler.AuthHandler
	Project     *handler.ProjectHandler
	Testimonial *handler.TestimonialHandler
	Service     *handler.ServiceHandler
	Team        *handler.TeamHandler
	Contact     *handler.ContactHandler
	Upload      *handler.UploadHandler
	Stats       *handler.StatsHandler
}

// Register wires routes and middleware. Public reads need no token; all
// mutations except the contact form sit behind the auth gate plus an ADMIN
// role check.
func Register(
	e *echo.Echo,
	h Handlers,
	jwtService *auth.JWTService,
	users repository.UserRepository,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.Validator = validation.New()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/projects", h.Project.List)
	api.GET("/projects/:id", h.Project.Get)
	api.GET("/testimonials", h.Testimonial.List)
	api.GET("/services", h.Service.List)
	api.GET("/team", h.Team.List)
	api.POST("/contact", h.Contact.Submit)

	// Authenticated routes
	authed := api.Group("", auth.RequireAuth(jwtService, users))
	authed.GET("/auth/me", h.Auth.Me)
	authed.PUT("/auth/password", h.Auth.ChangePassword)

	// Admin-only routes
	admin := authed.Group("", auth.RequireRole(model.RoleAdmin))
	admin.POST("/projects", h.Project.Create)
	admin.PUT("/projects/:id", h.Project.Update)
	admin.DELETE("/projects/:id", h.Project.Delete)

	admin.POST("/testimonials", h.Testimonial.Create)
	admin.PUT("/testimonials/:id", h.Testimonial.Update)
	admin.DELETE("/testimonials/:id", h.Testimonial.Delete)

	admin.POST("/services", h.Service.Create)
	admin.PUT("/services/:id", h.Service.Update)
	admin.DELETE("/services/:id", h.Service.Delete)

	admin.POST("/team", h.Team.Create)
	admin.PUT("/team/:id", h.Team.Update)
	admin.DELETE("/team/:id", h.Team.Delete)

	admin.GET("/contact", h.Contact.List)
	admin.PATCH("/contact/:id/read", h.Contact.MarkRead)
	admin.DELETE("/contact/:id", h.Contact.Delete)

	admin.POST("/admin/upload", h.Upload.Upload)
	admin.GET("/admin/stats", h.Stats.Dashboard)
}
