package handlers

import (
	"context"
	"log"
	"time"

	"invitation-studio-backend/internal/models"
	"invitation-studio-backend/internal/moderation"
	"invitation-studio-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GuestbookHandler struct {
	repo      repo.GuestbookRepoInterface
	moderator moderation.Client
}

// NewGuestbookHandler wires the repo and an optional moderation client; with a
// nil moderator every entry simply waits for manual review.
func NewGuestbookHandler(repo repo.GuestbookRepoInterface, moderator moderation.Client) *GuestbookHandler {
	return &GuestbookHandler{
		repo:      repo,
		moderator: moderator,
	}
}

// function to submit a guestbook entry from the public page
func (h *GuestbookHandler) CreateEntry(c *fiber.Ctx) error {
	themeId, err := uuid.Parse(c.Params("themeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid theme ID",
		})
	}

	var dto struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if dto.Name == "" || dto.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and message are required",
		})
	}

	entry := &models.GuestbookEntry{
		ThemeID: themeId,
		Name:    dto.Name,
		Message: dto.Message,
	}
	id, err := h.repo.CreateEntry(entry)
	if err != nil {
		log.Println(err, "Error creating guestbook entry")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create guestbook entry",
		})
	}

	if h.moderator != nil {
		go h.moderateEntry(id, dto.Name, dto.Message)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":   id.String(),
		"status": entry.Status,
	})
}

// moderateEntry runs the assistant review off the request path. Approve and
// reject verdicts are applied; flags and provider failures leave the entry
// pending for the dashboard owner.
func (h *GuestbookHandler) moderateEntry(entryId uuid.UUID, name, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := h.moderator.Review(ctx, name, message)
	if err != nil {
		log.Println(err, "Error moderating guestbook entry")
		return
	}

	var status models.GuestbookStatus
	switch result.Verdict {
	case moderation.VerdictApprove:
		status = models.GuestbookApproved
	case moderation.VerdictReject:
		status = models.GuestbookRejected
	default:
		return
	}

	if err := h.repo.UpdateStatus(entryId, status, result.Reason); err != nil {
		log.Println(err, "Error applying moderation verdict")
	}
}

// function to list guestbook entries; the live page gets approved only, the
// dashboard passes all=true
func (h *GuestbookHandler) GetEntriesByTheme(c *fiber.Ctx) error {
	themeId, err := uuid.Parse(c.Params("themeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid theme ID",
		})
	}

	status := models.GuestbookApproved
	if c.QueryBool("all") {
		status = ""
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 20)

	entries, total, err := h.repo.GetEntriesByTheme(themeId, status, page, pageSize)
	if err != nil {
		log.Println(err, "Error getting guestbook entries")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get guestbook entries",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"entries": entries,
		"total":   total,
	})
}

// function to approve or reject an entry from the dashboard
func (h *GuestbookHandler) UpdateEntryStatus(c *fiber.Ctx) error {
	entryId, err := uuid.Parse(c.Params("entryId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entry ID",
		})
	}

	var dto struct {
		Status string `json:"status"`
		Note   string `json:"note"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	status := models.GuestbookStatus(dto.Status)
	if status != models.GuestbookApproved && status != models.GuestbookRejected && status != models.GuestbookPending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status must be approved, rejected or pending",
		})
	}

	if err := h.repo.UpdateStatus(entryId, status, dto.Note); err != nil {
		log.Println(err, "Error updating entry status")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update entry status",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Entry status updated",
	})
}

// function to delete an entry
func (h *GuestbookHandler) DeleteEntry(c *fiber.Ctx) error {
	entryId, err := uuid.Parse(c.Params("entryId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entry ID",
		})
	}

	if err := h.repo.DeleteEntry(entryId); err != nil {
		log.Println(err, "Error deleting guestbook entry")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete guestbook entry",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Entry deleted successfully",
	})
}
