package repo

import (
	"invitation-studio-backend/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ThemeRepo represents the repository for the theme model
type ThemeRepo struct {
	db *gorm.DB
}

type ThemeRepoInterface interface {
	CreateTheme(theme *models.Theme) (uuid.UUID, error)
	GetThemeByID(themeId uuid.UUID) (*models.Theme, error)
	GetThemesByUser(userId uuid.UUID) ([]models.Theme, error)
	UpdateTheme(themeId uuid.UUID, updates map[string]interface{}) error
	DeleteTheme(themeId uuid.UUID) error
	ReplaceOrnaments(themeId uuid.UUID, ornaments datatypes.JSON) error
}

func NewThemeRepository(db *gorm.DB) ThemeRepoInterface {
	return &ThemeRepo{db: db}
}

// CreateTheme creates a new theme in the database
func (r *ThemeRepo) CreateTheme(theme *models.Theme) (uuid.UUID, error) {
	id := uuid.New()
	theme.UUID = id
	theme.CreatedAt = time.Now()
	theme.UpdatedAt = time.Now()
	err := r.db.Create(theme).Error
	return id, err
}

func (r *ThemeRepo) GetThemeByID(themeId uuid.UUID) (*models.Theme, error) {
	var theme models.Theme
	err := r.db.Where("uuid = ?", themeId).First(&theme).Error
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (r *ThemeRepo) GetThemesByUser(userId uuid.UUID) ([]models.Theme, error) {
	var themes []models.Theme
	err := r.db.Where("user_id = ?", userId).Order("created_at desc").Find(&themes).Error
	return themes, err
}

func (r *ThemeRepo) UpdateTheme(themeId uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	return r.db.Model(&models.Theme{}).Where("uuid = ?", themeId).Updates(updates).Error
}

func (r *ThemeRepo) DeleteTheme(themeId uuid.UUID) error {
	return r.db.Where("uuid = ?", themeId).Delete(&models.Theme{}).Error
}

// ReplaceOrnaments swaps the whole ornament collection for a theme in one
// transaction. Last writer wins; a failed save leaves the previous collection
// intact.
func (r *ThemeRepo) ReplaceOrnaments(themeId uuid.UUID, ornaments datatypes.JSON) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var theme models.Theme
		if err := tx.Where("uuid = ?", themeId).First(&theme).Error; err != nil {
			return err
		}
		return tx.Model(&theme).Updates(map[string]interface{}{
			"ornaments":  ornaments,
			"updated_at": time.Now(),
		}).Error
	})
}
