package handlers

import (
	"encoding/base64"
	"log"
	"strings"
	"time"

	"invitation-studio-backend/internal/libraries"
	"invitation-studio-backend/internal/models"
	"invitation-studio-backend/internal/ornament"
	"invitation-studio-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LibraryHandler struct {
	repo repo.LibraryRepoInterface
}

func NewLibraryHandler(repo repo.LibraryRepoInterface) *LibraryHandler {
	return &LibraryHandler{repo: repo}
}

// function to list library ornaments, optionally by category
func (h *LibraryHandler) GetLibraryOrnaments(c *fiber.Ctx) error {
	category := c.Query("category")

	entries, err := h.repo.GetLibraryOrnaments(category)
	if err != nil {
		log.Println(err, "Error getting library ornaments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to get library ornaments",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"ornaments": entries,
	})
}

// function to add a reusable library ornament
func (h *LibraryHandler) CreateLibraryOrnament(c *fiber.Ctx) error {
	var dto struct {
		OrnamentName  string `json:"ornament_name"`
		OrnamentImage string `json:"ornament_image"`
		Category      string `json:"category"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if dto.OrnamentName == "" || dto.OrnamentImage == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "ornament_name and ornament_image are required",
		})
	}

	image := dto.OrnamentImage
	if offloaded, ok := offloadArtwork(c, image); ok {
		image = offloaded
	}

	id, err := h.repo.CreateLibraryOrnament(&models.LibraryOrnament{
		OrnamentName:  dto.OrnamentName,
		OrnamentImage: image,
		Category:      dto.Category,
	})
	if err != nil {
		log.Println(err, "Error creating library ornament")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create library ornament",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      id.String(),
	})
}

// offloadArtwork moves inline base64 artwork to the bucket when one is
// configured. Anything else (plain URLs, missing GCP config, decode failure)
// keeps the image stored inline.
func offloadArtwork(c *fiber.Ctx, image string) (string, bool) {
	if !strings.HasPrefix(image, "data:") {
		return "", false
	}
	clients := libraries.GetClients()
	if clients == nil || clients.Bucket == "" {
		return "", false
	}

	meta, data, found := strings.Cut(image, ",")
	if !found {
		return "", false
	}
	contentType := strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		log.Println(err, "Error decoding artwork base64")
		return "", false
	}

	ext := "png"
	if _, sub, ok := strings.Cut(contentType, "/"); ok && sub != "" {
		ext = sub
	}
	objectName := "ornaments/" + uuid.NewString() + "." + ext

	url, err := clients.UploadArtwork(c.Context(), objectName, decoded, contentType)
	if err != nil {
		log.Println(err, "Error uploading artwork")
		return "", false
	}
	return url, true
}

// function to stamp a library entry into a fresh theme ornament
func (h *LibraryHandler) StampLibraryOrnament(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid library ornament ID",
		})
	}

	var dto struct {
		Section string `json:"section"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	section, err := ornament.NormalizeSection(dto.Section)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	entries, err := h.repo.GetLibraryOrnaments("")
	if err != nil {
		log.Println(err, "Error getting library ornaments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to get library ornaments",
		})
	}

	for _, entry := range entries {
		if entry.UUID == id {
			stamped := ornament.FromLibrary(ornament.LibraryEntry{
				ID:       entry.UUID.String(),
				Name:     entry.OrnamentName,
				Image:    entry.OrnamentImage,
				Category: entry.Category,
			}, section, time.Now())
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"success":  true,
				"ornament": stamped,
			})
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"error":   "Library ornament not found",
	})
}

// function to delete a library ornament
func (h *LibraryHandler) DeleteLibraryOrnament(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid library ornament ID",
		})
	}

	if err := h.repo.DeleteLibraryOrnament(id); err != nil {
		log.Println(err, "Error deleting library ornament")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete library ornament",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
