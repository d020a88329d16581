package repo

import (
	"invitation-studio-backend/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuestRepo struct {
	db *gorm.DB
}

type GuestRepoInterface interface {
	CreateGuest(guest *models.Guest) (uuid.UUID, error)
	GetGuestsByTheme(themeId uuid.UUID, page int, pageSize int) ([]models.Guest, int64, error)
	GetGuestBySlug(slug string) (*models.Guest, error)
	UpdateGuest(guestId uuid.UUID, updates map[string]interface{}) error
	DeleteGuest(guestId uuid.UUID) error
	SubmitRSVP(slug string, status models.RSVPStatus, partySize int, message string) (*models.Guest, error)
	GetRSVPSummary(themeId uuid.UUID) (*models.RSVPSummary, error)
}

func NewGuestRepository(db *gorm.DB) GuestRepoInterface {
	return &GuestRepo{db: db}
}

func (r *GuestRepo) CreateGuest(guest *models.Guest) (uuid.UUID, error) {
	id := uuid.New()
	guest.UUID = id
	if guest.Slug == "" {
		guest.Slug = uuid.NewString()
	}
	if guest.Status == "" {
		guest.Status = models.RSVPPending
	}
	if guest.PartySize <= 0 {
		guest.PartySize = 1
	}
	guest.CreatedAt = time.Now()
	guest.UpdatedAt = time.Now()
	err := r.db.Create(guest).Error
	return id, err
}

// signature returns guests, totalCount, error
func (r *GuestRepo) GetGuestsByTheme(themeId uuid.UUID, page int, pageSize int) ([]models.Guest, int64, error) {
	var guests []models.Guest
	var total int64

	// sane defaults + cap
	if page < 1 {
		page = 1
	}
	const DefaultPageSize = 50
	const MaxPageSize = 200
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	offset := (page - 1) * pageSize

	base := r.db.Model(&models.Guest{}).Where("theme_id = ?", themeId)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := base.Order("created_at asc").
		Limit(pageSize).
		Offset(offset).
		Find(&guests).Error; err != nil {
		return nil, 0, err
	}

	return guests, total, nil
}

func (r *GuestRepo) GetGuestBySlug(slug string) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.Where("slug = ?", slug).First(&guest).Error
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepo) UpdateGuest(guestId uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	return r.db.Model(&models.Guest{}).Where("uuid = ?", guestId).Updates(updates).Error
}

func (r *GuestRepo) DeleteGuest(guestId uuid.UUID) error {
	return r.db.Where("uuid = ?", guestId).Delete(&models.Guest{}).Error
}

// SubmitRSVP records a guest's response against their invite slug.
func (r *GuestRepo) SubmitRSVP(slug string, status models.RSVPStatus, partySize int, message string) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slug = ?", slug).First(&guest).Error; err != nil {
			return err
		}
		now := time.Now()
		return tx.Model(&guest).Updates(map[string]interface{}{
			"status":       status,
			"party_size":   partySize,
			"message":      message,
			"responded_at": now,
			"updated_at":   now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepo) GetRSVPSummary(themeId uuid.UUID) (*models.RSVPSummary, error) {
	var summary models.RSVPSummary

	base := r.db.Model(&models.Guest{}).Where("theme_id = ?", themeId)

	if err := base.Count(&summary.Total).Error; err != nil {
		return nil, err
	}

	type statusCount struct {
		Status models.RSVPStatus
		Count  int64
	}
	var counts []statusCount
	if err := base.Select("status, count(*) as count").Group("status").Scan(&counts).Error; err != nil {
		return nil, err
	}
	for _, c := range counts {
		switch c.Status {
		case models.RSVPPending:
			summary.Pending = c.Count
		case models.RSVPAttending:
			summary.Attending = c.Count
		case models.RSVPDeclined:
			summary.Declined = c.Count
		}
	}

	err := r.db.Model(&models.Guest{}).
		Where("theme_id = ? AND status = ?", themeId, models.RSVPAttending).
		Select("coalesce(sum(party_size), 0)").
		Scan(&summary.Headcount).Error
	return &summary, err
}
