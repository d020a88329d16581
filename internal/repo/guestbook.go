package repo

import (
	"invitation-studio-backend/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuestbookRepo struct {
	db *gorm.DB
}

type GuestbookRepoInterface interface {
	CreateEntry(entry *models.GuestbookEntry) (uuid.UUID, error)
	GetEntriesByTheme(themeId uuid.UUID, status models.GuestbookStatus, page int, pageSize int) ([]models.GuestbookEntry, int64, error)
	UpdateStatus(entryId uuid.UUID, status models.GuestbookStatus, note string) error
	DeleteEntry(entryId uuid.UUID) error
}

func NewGuestbookRepository(db *gorm.DB) GuestbookRepoInterface {
	return &GuestbookRepo{db: db}
}

func (r *GuestbookRepo) CreateEntry(entry *models.GuestbookEntry) (uuid.UUID, error) {
	id := uuid.New()
	entry.UUID = id
	if entry.Status == "" {
		entry.Status = models.GuestbookPending
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	err := r.db.Create(entry).Error
	return id, err
}

// GetEntriesByTheme returns entries newest first; status narrows the result
// (the live page passes approved, the dashboard passes "").
func (r *GuestbookRepo) GetEntriesByTheme(themeId uuid.UUID, status models.GuestbookStatus, page int, pageSize int) ([]models.GuestbookEntry, int64, error) {
	var entries []models.GuestbookEntry
	var total int64

	if page < 1 {
		page = 1
	}
	const DefaultPageSize = 20
	const MaxPageSize = 100
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	offset := (page - 1) * pageSize

	base := r.db.Model(&models.GuestbookEntry{}).Where("theme_id = ?", themeId)
	if status != "" {
		base = base.Where("status = ?", status)
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := base.Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *GuestbookRepo) UpdateStatus(entryId uuid.UUID, status models.GuestbookStatus, note string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if note != "" {
		updates["moderation_note"] = note
	}
	return r.db.Model(&models.GuestbookEntry{}).Where("uuid = ?", entryId).Updates(updates).Error
}

func (r *GuestbookRepo) DeleteEntry(entryId uuid.UUID) error {
	return r.db.Where("uuid = ?", entryId).Delete(&models.GuestbookEntry{}).Error
}
