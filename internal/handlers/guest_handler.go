package handlers

import (
	"log"

	"invitation-studio-backend/internal/models"
	"invitation-studio-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GuestHandler struct {
	repo repo.GuestRepoInterface
}

func NewGuestHandler(repo repo.GuestRepoInterface) *GuestHandler {
	return &GuestHandler{repo: repo}
}

// function to add a guest to a theme's list
func (h *GuestHandler) CreateGuest(c *fiber.Ctx) error {
	var dto struct {
		ThemeID   string `json:"themeId"`
		Name      string `json:"name"`
		Phone     string `json:"phone"`
		PartySize int    `json:"party_size"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if dto.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Guest name is required",
		})
	}

	themeId, err := uuid.Parse(dto.ThemeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid theme ID",
		})
	}

	guest := &models.Guest{
		ThemeID:   themeId,
		Name:      dto.Name,
		Phone:     dto.Phone,
		PartySize: dto.PartySize,
	}
	id, err := h.repo.CreateGuest(guest)
	if err != nil {
		log.Println(err, "Error creating guest")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create guest",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid": id.String(),
		"slug": guest.Slug,
	})
}

// function to list guests of a theme
func (h *GuestHandler) GetGuestsByTheme(c *fiber.Ctx) error {
	themeId, err := uuid.Parse(c.Params("themeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid theme ID",
		})
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 50)

	guests, total, err := h.repo.GetGuestsByTheme(themeId, page, pageSize)
	if err != nil {
		log.Println(err, "Error getting guests")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get guests",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"guests": guests,
		"total":  total,
	})
}

// function to update a guest record
func (h *GuestHandler) UpdateGuest(c *fiber.Ctx) error {
	guestId, err := uuid.Parse(c.Params("guestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid guest ID",
		})
	}

	var dto struct {
		Name      *string `json:"name"`
		Phone     *string `json:"phone"`
		PartySize *int    `json:"party_size"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Phone != nil {
		updates["phone"] = *dto.Phone
	}
	if dto.PartySize != nil {
		updates["party_size"] = *dto.PartySize
	}
	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No fields to update",
		})
	}

	if err := h.repo.UpdateGuest(guestId, updates); err != nil {
		log.Println(err, "Error updating guest")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update guest",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Guest updated successfully",
	})
}

// function to delete a guest
func (h *GuestHandler) DeleteGuest(c *fiber.Ctx) error {
	guestId, err := uuid.Parse(c.Params("guestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid guest ID",
		})
	}

	if err := h.repo.DeleteGuest(guestId); err != nil {
		log.Println(err, "Error deleting guest")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete guest",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Guest deleted successfully",
	})
}

// function to look up an invite by slug, for the public invitation page
func (h *GuestHandler) GetGuestBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	guest, err := h.repo.GetGuestBySlug(slug)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invite not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"guest": guest,
	})
}

// function to submit an RSVP against an invite slug
func (h *GuestHandler) SubmitRSVP(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var dto struct {
		Status    string `json:"status"`
		PartySize int    `json:"party_size"`
		Message   string `json:"message"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	status := models.RSVPStatus(dto.Status)
	if status != models.RSVPAttending && status != models.RSVPDeclined {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status must be attending or declined",
		})
	}
	if dto.PartySize <= 0 {
		dto.PartySize = 1
	}

	guest, err := h.repo.SubmitRSVP(slug, status, dto.PartySize, dto.Message)
	if err != nil {
		log.Println(err, "Error submitting RSVP")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invite not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "RSVP recorded",
		"guest":   guest,
	})
}

// function to aggregate RSVP status for the dashboard
func (h *GuestHandler) GetRSVPSummary(c *fiber.Ctx) error {
	themeId, err := uuid.Parse(c.Params("themeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid theme ID",
		})
	}

	summary, err := h.repo.GetRSVPSummary(themeId)
	if err != nil {
		log.Println(err, "Error getting RSVP summary")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get RSVP summary",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"summary": summary,
	})
}
