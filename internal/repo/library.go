package repo

import (
	"invitation-studio-backend/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LibraryRepo struct {
	db *gorm.DB
}

type LibraryRepoInterface interface {
	CreateLibraryOrnament(entry *models.LibraryOrnament) (uuid.UUID, error)
	GetLibraryOrnaments(category string) ([]models.LibraryOrnament, error)
	DeleteLibraryOrnament(id uuid.UUID) error
}

func NewLibraryRepository(db *gorm.DB) LibraryRepoInterface {
	return &LibraryRepo{db: db}
}

func (r *LibraryRepo) CreateLibraryOrnament(entry *models.LibraryOrnament) (uuid.UUID, error) {
	id := uuid.New()
	entry.UUID = id
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	err := r.db.Create(entry).Error
	return id, err
}

// GetLibraryOrnaments lists reusable assets, optionally narrowed to one
// category.
func (r *LibraryRepo) GetLibraryOrnaments(category string) ([]models.LibraryOrnament, error) {
	var entries []models.LibraryOrnament
	query := r.db.Order("created_at desc")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&entries).Error
	return entries, err
}

func (r *LibraryRepo) DeleteLibraryOrnament(id uuid.UUID) error {
	return r.db.Where("uuid = ?", id).Delete(&models.LibraryOrnament{}).Error
}
