package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Theme represents one invitation theme owned by a tenant. Ornaments, colors
// and backgrounds are stored as JSONB documents; the ornament collection is
// always replaced wholesale on save, never patched.
type Theme struct {
	UUID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"uuid"`
	UserID      uuid.UUID      `gorm:"not null;index" json:"user_id"`
	ThemeName   string         `gorm:"not null" json:"theme_name"`
	Description string         `json:"description"`
	Colors      datatypes.JSON `json:"colors"`
	Backgrounds datatypes.JSON `json:"backgrounds"`
	Ornaments   datatypes.JSON `json:"ornaments"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
