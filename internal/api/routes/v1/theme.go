package v1

import (
	"invitation-studio-backend/internal/config"
	"invitation-studio-backend/internal/handlers"
	"invitation-studio-backend/internal/libraries"
	"invitation-studio-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

var hub *libraries.Hub

func init() {
	// Initialize the Hub once
	hub = libraries.NewHub()
	// Start the Hub in a goroutine
	go hub.Run()
}

func registerThemes(r fiber.Router) {
	// Initialize handler
	themeRepo := repo.NewThemeRepository(config.DB)
	themeHandler := handlers.NewThemeHandler(themeRepo, hub)

	// Register routes
	r.Get("/unified-themes", themeHandler.GetThemes)
	r.Post("/unified-themes", themeHandler.CreateTheme)
	r.Post("/unified-themes/ornaments", themeHandler.SaveOrnaments)
	r.Get("/unified-themes/:themeId/sections/:section", themeHandler.GetSectionOrnaments)
	r.Put("/unified-themes/:themeId", themeHandler.UpdateTheme)
	r.Delete("/unified-themes/:themeId", themeHandler.DeleteTheme)

	// Live preview refresh channel
	r.Get("/ws", libraries.WebSocketHandler(hub))
}
