package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"invitation-studio-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGuestbookRepo struct {
	entries map[uuid.UUID]*models.GuestbookEntry
	order   []uuid.UUID
}

func newFakeGuestbookRepo() *fakeGuestbookRepo {
	return &fakeGuestbookRepo{entries: map[uuid.UUID]*models.GuestbookEntry{}}
}

func (r *fakeGuestbookRepo) CreateEntry(entry *models.GuestbookEntry) (uuid.UUID, error) {
	id := uuid.New()
	entry.UUID = id
	if entry.Status == "" {
		entry.Status = models.GuestbookPending
	}
	r.entries[id] = entry
	r.order = append(r.order, id)
	return id, nil
}

func (r *fakeGuestbookRepo) GetEntriesByTheme(themeId uuid.UUID, status models.GuestbookStatus, page int, pageSize int) ([]models.GuestbookEntry, int64, error) {
	var out []models.GuestbookEntry
	for _, id := range r.order {
		e := r.entries[id]
		if e.ThemeID != themeId {
			continue
		}
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeGuestbookRepo) UpdateStatus(entryId uuid.UUID, status models.GuestbookStatus, note string) error {
	entry, ok := r.entries[entryId]
	if !ok {
		return fmt.Errorf("entry not found")
	}
	entry.Status = status
	if note != "" {
		entry.ModerationNote = note
	}
	return nil
}

func (r *fakeGuestbookRepo) DeleteEntry(entryId uuid.UUID) error {
	delete(r.entries, entryId)
	return nil
}

func newGuestbookApp(repo *fakeGuestbookRepo) *fiber.App {
	app := fiber.New()
	handler := NewGuestbookHandler(repo, nil)
	app.Post("/api/v1/guestbook/:themeId", handler.CreateEntry)
	app.Get("/api/v1/guestbook/:themeId", handler.GetEntriesByTheme)
	app.Patch("/api/v1/guestbook/entries/:entryId/status", handler.UpdateEntryStatus)
	app.Delete("/api/v1/guestbook/entries/:entryId", handler.DeleteEntry)
	return app
}

func TestGuestbookSubmitStartsPending(t *testing.T) {
	repo := newFakeGuestbookRepo()
	app := newGuestbookApp(repo)
	themeId := uuid.New()

	resp, body := jsonRequest(t, app, http.MethodPost, "/api/v1/guestbook/"+themeId.String(), fiber.Map{
		"name":    "Ana",
		"message": "Congratulations!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, string(models.GuestbookPending), body["status"])

	resp, _ = jsonRequest(t, app, http.MethodPost, "/api/v1/guestbook/"+themeId.String(), fiber.Map{
		"name": "Ana",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGuestbookLiveFetchApprovedOnly(t *testing.T) {
	repo := newFakeGuestbookRepo()
	app := newGuestbookApp(repo)
	themeId := uuid.New()

	approved := &models.GuestbookEntry{ThemeID: themeId, Name: "A", Message: "hi", Status: models.GuestbookApproved}
	pending := &models.GuestbookEntry{ThemeID: themeId, Name: "B", Message: "yo", Status: models.GuestbookPending}
	rejected := &models.GuestbookEntry{ThemeID: themeId, Name: "C", Message: "spam", Status: models.GuestbookRejected}
	for _, e := range []*models.GuestbookEntry{approved, pending, rejected} {
		_, err := repo.CreateEntry(e)
		require.NoError(t, err)
	}

	// live page: approved only
	resp, body := jsonRequest(t, app, http.MethodGet, "/api/v1/guestbook/"+themeId.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := body["entries"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].(map[string]interface{})["name"])

	// dashboard: everything
	resp, body = jsonRequest(t, app, http.MethodGet, "/api/v1/guestbook/"+themeId.String()+"?all=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["entries"].([]interface{}), 3)
}

func TestGuestbookStatusPatch(t *testing.T) {
	repo := newFakeGuestbookRepo()
	app := newGuestbookApp(repo)
	themeId := uuid.New()

	entry := &models.GuestbookEntry{ThemeID: themeId, Name: "A", Message: "hi"}
	id, err := repo.CreateEntry(entry)
	require.NoError(t, err)

	resp, _ := jsonRequest(t, app, http.MethodPatch, "/api/v1/guestbook/entries/"+id.String()+"/status", fiber.Map{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.GuestbookApproved, repo.entries[id].Status)

	resp, _ = jsonRequest(t, app, http.MethodPatch, "/api/v1/guestbook/entries/"+id.String()+"/status", fiber.Map{
		"status": "nonsense",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
