package repository

import (
	"gorm.io/gorm"

	"github.com/pitcherapp/pitcher/internal/models"
)

// GormPitchRepository is a GORM implementation of PitchRepository
type GormPitchRepository struct {
	db *gorm.DB
}

// NewPitchRepository creates a new PitchRepository
func NewPitchRepository(db *gorm.DB) PitchRepository {
	return &GormPitchRepository{db: db}
}

// Create creates a new pitch
func (r *GormPitchRepository) Create(pitch *models.Pitch) error {
	return r.db.Create(pitch).Error
}

// FindByID finds a pitch by ID
func (r *GormPitchRepository) FindByID(id uint64) (*models.Pitch, error) {
	var pitch models.Pitch
	if err := r.db.First(&pitch, id).Error; err != nil {
		return nil, err
	}
	return &pitch, nil
}

// ListAll retrieves every pitch, unfiltered, in storage order
func (r *GormPitchRepository) ListAll() ([]models.Pitch, error) {
	var pitches []models.Pitch
	if err := r.db.Find(&pitches).Error; err != nil {
		return nil, err
	}
	return pitches, nil
}

// Delete removes a pitch by ID. A zero-row delete is treated as success.
func (r *GormPitchRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Pitch{}, id).Error
}
