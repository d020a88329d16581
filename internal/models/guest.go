package models

import (
	"time"

	"github.com/google/uuid"
)

type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPAttending RSVPStatus = "attending"
	RSVPDeclined  RSVPStatus = "declined"
)

// Guest is one invited party on a theme's guest list. Slug is the public
// invite token embedded in the guest's personal link.
type Guest struct {
	UUID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"uuid"`
	ThemeID     uuid.UUID  `gorm:"not null;index" json:"theme_id"`
	Name        string     `gorm:"not null" json:"name"`
	Phone       string     `json:"phone"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Status      RSVPStatus `gorm:"default:'pending'" json:"status"`
	PartySize   int        `gorm:"default:1" json:"party_size"`
	Message     string     `json:"message"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RSVPSummary aggregates per-theme attendance for the dashboard.
type RSVPSummary struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Attending int64 `json:"attending"`
	Declined  int64 `json:"declined"`
	Headcount int64 `json:"headcount"`
}
