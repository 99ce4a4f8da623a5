package config

import (
	"homegnome/app"
	"homegnome/app/controller/auth"
	"homegnome/app/controller/health"
	"homegnome/app/controller/listings"
	"homegnome/app/controller/profile"
	"homegnome/app/middleware/sessionauth"

	"github.com/labstack/echo/v4"
)

func AddRoutes(e *echo.Echo, container *app.Container) {
	root := e.Group("")
	health.Register(root)

	v1 := e.Group("/api/v1")

	authMiddleware := sessionauth.Middleware(container.Sessions)

	authHandler := auth.NewHandler(container.Sessions)
	authHandler.RegisterRoutes(v1.Group("/auth"), authMiddleware)

	profileHandler := profile.NewHandler(container.Sessions)
	profileGroup := v1.Group("/profile")
	profileGroup.Use(authMiddleware)
	profileHandler.RegisterRoutes(profileGroup)

	listingsHandler := listings.NewHandler(container.Listings, container.Completions)
	listingsHandler.RegisterRoutes(v1.Group("/listings"), authMiddleware)
}
