// Package campaigns provides database operations for campaign records.
package campaigns

import (
	"gorm.io/gorm"

	"github.com/avolkov/outreach/internal/entities"
)

// Repository handles all campaign database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new campaigns repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new draft campaign for the given owner.
func (r *Repository) Create(userID, name, description string) (*entities.Campaign, error) {
	campaign := &entities.Campaign{
		UserID:      userID,
		Name:        name,
		Description: description,
		Status:      entities.CampaignStatusDraft,
	}
	if err := r.db.Create(campaign).Error; err != nil {
		return nil, err
	}
	return campaign, nil
}

// List returns the owner's campaigns, newest first.
func (r *Repository) List(userID string) ([]entities.Campaign, error) {
	campaigns := []entities.Campaign{}
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&campaigns).Error
	return campaigns, err
}
