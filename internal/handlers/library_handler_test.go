package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"invitation-studio-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLibraryRepo struct {
	entries []models.LibraryOrnament
}

func (r *fakeLibraryRepo) CreateLibraryOrnament(entry *models.LibraryOrnament) (uuid.UUID, error) {
	id := uuid.New()
	entry.UUID = id
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, *entry)
	return id, nil
}

func (r *fakeLibraryRepo) GetLibraryOrnaments(category string) ([]models.LibraryOrnament, error) {
	if category == "" {
		return r.entries, nil
	}
	var out []models.LibraryOrnament
	for _, e := range r.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeLibraryRepo) DeleteLibraryOrnament(id uuid.UUID) error {
	for i, e := range r.entries {
		if e.UUID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("not found")
}

func newLibraryApp(repo *fakeLibraryRepo) *fiber.App {
	app := fiber.New()
	handler := NewLibraryHandler(repo)
	app.Get("/api/v1/ornament-library", handler.GetLibraryOrnaments)
	app.Post("/api/v1/ornament-library", handler.CreateLibraryOrnament)
	app.Post("/api/v1/ornament-library/:id/stamp", handler.StampLibraryOrnament)
	app.Delete("/api/v1/ornament-library/:id", handler.DeleteLibraryOrnament)
	return app
}

func TestLibraryCreateAndFilterByCategory(t *testing.T) {
	repo := &fakeLibraryRepo{}
	app := newLibraryApp(repo)

	resp, body := jsonRequest(t, app, http.MethodPost, "/api/v1/ornament-library", fiber.Map{
		"ornament_name":  "flower",
		"ornament_image": "/x.png",
		"category":       "flowers",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, _ = jsonRequest(t, app, http.MethodPost, "/api/v1/ornament-library", fiber.Map{
		"ornament_name":  "ribbon",
		"ornament_image": "/r.png",
		"category":       "ribbons",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = jsonRequest(t, app, http.MethodGet, "/api/v1/ornament-library?category=flowers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := body["ornaments"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "flower", list[0].(map[string]interface{})["ornament_name"])
}

func TestLibraryCreateValidation(t *testing.T) {
	repo := &fakeLibraryRepo{}
	app := newLibraryApp(repo)

	resp, body := jsonRequest(t, app, http.MethodPost, "/api/v1/ornament-library", fiber.Map{
		"ornament_name": "flower",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestLibraryStampProducesFreshOrnament(t *testing.T) {
	repo := &fakeLibraryRepo{}
	app := newLibraryApp(repo)

	entry := &models.LibraryOrnament{
		OrnamentName:  "flower",
		OrnamentImage: "/x.png",
		Category:      "flowers",
	}
	id, err := repo.CreateLibraryOrnament(entry)
	require.NoError(t, err)

	resp, body := jsonRequest(t, app, http.MethodPost, "/api/v1/ornament-library/"+id.String()+"/stamp", fiber.Map{
		"section": "gallery",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stamped := body["ornament"].(map[string]interface{})
	assert.Equal(t, "flower", stamped["name"])
	assert.Equal(t, "/x.png", stamped["image"])
	assert.Equal(t, "gallery", stamped["section"])
	assert.NotEqual(t, id.String(), stamped["id"])

	position := stamped["position"].(map[string]interface{})
	assert.Equal(t, "10%", position["top"])
	assert.Equal(t, "10%", position["left"])

	style := stamped["style"].(map[string]interface{})
	assert.Equal(t, "150px", style["width"])
	assert.Equal(t, float64(15), style["zIndex"])
}

func TestLibraryStampUnknownSection(t *testing.T) {
	repo := &fakeLibraryRepo{}
	app := newLibraryApp(repo)

	entry := &models.LibraryOrnament{OrnamentName: "flower", OrnamentImage: "/x.png"}
	id, err := repo.CreateLibraryOrnament(entry)
	require.NoError(t, err)

	resp, _ := jsonRequest(t, app, http.MethodPost, "/api/v1/ornament-library/"+id.String()+"/stamp", fiber.Map{
		"section": "sidebar",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
