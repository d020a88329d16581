package v1

import (
	"invitation-studio-backend/internal/config"
	"invitation-studio-backend/internal/handlers"
	"invitation-studio-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerGuests(r fiber.Router) {
	guestRepo := repo.NewGuestRepository(config.DB)
	guestHandler := handlers.NewGuestHandler(guestRepo)

	r.Post("/guests", guestHandler.CreateGuest)
	r.Get("/guests/theme/:themeId", guestHandler.GetGuestsByTheme)
	r.Get("/guests/theme/:themeId/rsvp-summary", guestHandler.GetRSVPSummary)
	r.Patch("/guests/:guestId", guestHandler.UpdateGuest)
	r.Delete("/guests/:guestId", guestHandler.DeleteGuest)

	// public invite surface
	r.Get("/invite/:slug", guestHandler.GetGuestBySlug)
	r.Post("/rsvp/:slug", guestHandler.SubmitRSVP)
}
