package models

import (
	"time"

	"github.com/google/uuid"
)

// LibraryOrnament is a reusable artwork asset. OrnamentImage holds either a
// bucket URL (after offload) or an inline data URI.
type LibraryOrnament struct {
	UUID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrnamentName  string    `gorm:"not null" json:"ornament_name"`
	OrnamentImage string    `gorm:"not null" json:"ornament_image"`
	Category      string    `gorm:"index" json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
