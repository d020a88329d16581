package v1

import (
	"context"
	"log"
	"os"

	"invitation-studio-backend/internal/config"
	"invitation-studio-backend/internal/handlers"
	"invitation-studio-backend/internal/moderation"
	"invitation-studio-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerGuestbook(r fiber.Router) {
	guestbookRepo := repo.NewGuestbookRepository(config.DB)

	// Moderation assistant is optional; without a provider every entry waits
	// for manual review.
	var moderator moderation.Client
	if kind := os.Getenv("MODERATION_PROVIDER"); kind != "" {
		client, err := moderation.NewClient(context.Background(), kind)
		if err != nil {
			log.Printf("moderation disabled: %v", err)
		} else {
			moderator = client
		}
	}

	guestbookHandler := handlers.NewGuestbookHandler(guestbookRepo, moderator)

	r.Post("/guestbook/:themeId", guestbookHandler.CreateEntry)
	r.Get("/guestbook/:themeId", guestbookHandler.GetEntriesByTheme)
	r.Patch("/guestbook/entries/:entryId/status", guestbookHandler.UpdateEntryStatus)
	r.Delete("/guestbook/entries/:entryId", guestbookHandler.DeleteEntry)
}
