package handlers

import (
	"encoding/json"
	"log"

	"invitation-studio-backend/internal/libraries"
	"invitation-studio-backend/internal/models"
	"invitation-studio-backend/internal/ornament"
	"invitation-studio-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// for simple crud operations service layer is not required
type ThemeHandler struct {
	repo repo.ThemeRepoInterface
	hub  *libraries.Hub
}

func NewThemeHandler(repo repo.ThemeRepoInterface, hub *libraries.Hub) *ThemeHandler {
	return &ThemeHandler{
		repo: repo,
		hub:  hub,
	}
}

// themeResponse is the wire shape both the editor and the live page consume.
func themeResponse(theme *models.Theme) fiber.Map {
	ornaments := json.RawMessage(theme.Ornaments)
	if len(ornaments) == 0 {
		ornaments = json.RawMessage("[]")
	}
	return fiber.Map{
		"uuid":        theme.UUID.String(),
		"theme_name":  theme.ThemeName,
		"description": theme.Description,
		"colors":      json.RawMessage(theme.Colors),
		"backgrounds": json.RawMessage(theme.Backgrounds),
		"ornaments":   fiber.Map{"ornaments": ornaments},
		"created_at":  theme.CreatedAt,
		"updated_at":  theme.UpdatedAt,
	}
}

// function to create a theme
func (h *ThemeHandler) CreateTheme(c *fiber.Ctx) error {
	var dto struct {
		ThemeName   string          `json:"theme_name"`
		Description string          `json:"description"`
		UserID      string          `json:"userId"`
		Colors      json.RawMessage `json:"colors"`
		Backgrounds json.RawMessage `json:"backgrounds"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if dto.ThemeName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Theme name is required",
		})
	}

	userID, err := uuid.Parse(dto.UserID)
	if err != nil {
		log.Println(err, "Error parsing user id")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid user id",
		})
	}

	id, err := h.repo.CreateTheme(&models.Theme{
		ThemeName:   dto.ThemeName,
		Description: dto.Description,
		UserID:      userID,
		Colors:      datatypes.JSON(dto.Colors),
		Backgrounds: datatypes.JSON(dto.Backgrounds),
		Ornaments:   datatypes.JSON("[]"),
	})
	if err != nil {
		log.Println(err, "Error creating theme")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create theme",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"uuid":    id.String(),
	})
}

// function to get a theme by the themeId query param, or list a user's themes
func (h *ThemeHandler) GetThemes(c *fiber.Ctx) error {
	themeIdStr := c.Query("themeId")
	if themeIdStr != "" {
		themeId, err := uuid.Parse(themeIdStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid theme ID",
			})
		}

		theme, err := h.repo.GetThemeByID(themeId)
		if err != nil {
			log.Println(err, "Error getting theme")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Theme not found",
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"theme":   themeResponse(theme),
		})
	}

	userIdStr := c.Query("userId")
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "themeId or userId query is required",
		})
	}

	themes, err := h.repo.GetThemesByUser(userId)
	if err != nil {
		log.Println(err, "Error getting themes")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to get themes",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"themes":  themes,
	})
}

// function to save the whole ornament collection for a theme
func (h *ThemeHandler) SaveOrnaments(c *fiber.Ctx) error {
	var dto struct {
		ThemeID   string              `json:"themeId"`
		Ornaments []ornament.Ornament `json:"ornaments"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	themeId, err := uuid.Parse(dto.ThemeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid theme ID",
		})
	}

	// Section ids are normalized here, not by caller convention. An ornament
	// saved under an unknown id would silently never render again.
	if dto.Ornaments == nil {
		dto.Ornaments = []ornament.Ornament{}
	}
	if err := ornament.Normalize(dto.Ornaments); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	payload, err := json.Marshal(dto.Ornaments)
	if err != nil {
		log.Println(err, "Error marshaling ornaments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to serialize ornaments",
		})
	}

	if err := h.repo.ReplaceOrnaments(themeId, datatypes.JSON(payload)); err != nil {
		log.Println(err, "Error saving ornaments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save ornaments",
		})
	}

	if h.hub != nil {
		go h.hub.BroadcastThemeSaved(themeId.String())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

// function to get the visible ornaments of one section, for the live page
func (h *ThemeHandler) GetSectionOrnaments(c *fiber.Ctx) error {
	themeId, err := uuid.Parse(c.Params("themeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid theme ID",
		})
	}

	section, err := ornament.NormalizeSection(c.Params("section"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	theme, err := h.repo.GetThemeByID(themeId)
	if err != nil {
		log.Println(err, "Error getting theme")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Theme not found",
		})
	}

	var ornaments []ornament.Ornament
	if len(theme.Ornaments) > 0 {
		if err := json.Unmarshal(theme.Ornaments, &ornaments); err != nil {
			log.Println(err, "Error unmarshaling ornaments")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Corrupt ornament collection",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"section":   section,
		"ornaments": ornament.VisibleInSection(ornaments, section),
	})
}

// function to update theme metadata
func (h *ThemeHandler) UpdateTheme(c *fiber.Ctx) error {
	themeId, err := uuid.Parse(c.Params("themeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid theme ID",
		})
	}

	var dto struct {
		ThemeName   *string         `json:"theme_name"`
		Description *string         `json:"description"`
		Colors      json.RawMessage `json:"colors"`
		Backgrounds json.RawMessage `json:"backgrounds"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	updates := map[string]interface{}{}
	if dto.ThemeName != nil {
		updates["theme_name"] = *dto.ThemeName
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if len(dto.Colors) > 0 {
		updates["colors"] = datatypes.JSON(dto.Colors)
	}
	if len(dto.Backgrounds) > 0 {
		updates["backgrounds"] = datatypes.JSON(dto.Backgrounds)
	}
	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No fields to update",
		})
	}

	if err := h.repo.UpdateTheme(themeId, updates); err != nil {
		log.Println(err, "Error updating theme")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update theme",
		})
	}

	if h.hub != nil {
		go h.hub.BroadcastThemeSaved(themeId.String())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

// function to delete a theme
func (h *ThemeHandler) DeleteTheme(c *fiber.Ctx) error {
	themeId, err := uuid.Parse(c.Params("themeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid theme ID",
		})
	}

	if err := h.repo.DeleteTheme(themeId); err != nil {
		log.Println(err, "Error deleting theme")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete theme",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
