package models

import (
	"time"

	"github.com/google/uuid"
)

type GuestbookStatus string

const (
	GuestbookPending  GuestbookStatus = "pending"
	GuestbookApproved GuestbookStatus = "approved"
	GuestbookRejected GuestbookStatus = "rejected"
)

// GuestbookEntry is a public message left on an invitation page. Entries start
// pending; the moderation assistant or the dashboard owner moves them to
// approved or rejected. Only approved entries reach the live page.
type GuestbookEntry struct {
	UUID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"uuid"`
	ThemeID        uuid.UUID       `gorm:"not null;index" json:"theme_id"`
	Name           string          `gorm:"not null" json:"name"`
	Message        string          `gorm:"not null" json:"message"`
	Status         GuestbookStatus `gorm:"default:'pending';index" json:"status"`
	ModerationNote string          `json:"moderation_note,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
