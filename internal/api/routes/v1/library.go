package v1

import (
	"invitation-studio-backend/internal/config"
	"invitation-studio-backend/internal/handlers"
	"invitation-studio-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerLibrary(r fiber.Router) {
	libraryRepo := repo.NewLibraryRepository(config.DB)
	libraryHandler := handlers.NewLibraryHandler(libraryRepo)

	r.Get("/ornament-library", libraryHandler.GetLibraryOrnaments)
	r.Post("/ornament-library", libraryHandler.CreateLibraryOrnament)
	r.Post("/ornament-library/:id/stamp", libraryHandler.StampLibraryOrnament)
	r.Delete("/ornament-library/:id", libraryHandler.DeleteLibraryOrnament)
}
