package repository

import (
	"context"
	"fmt"

	"github.com/camden-git/hrmbackend/models"
	"gorm.io/gorm"
)

// LocationRepository handles database operations for Location
type LocationRepository struct {
	DB *gorm.DB
}

// NewLocationRepository creates a new instance of LocationRepository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{DB: db}
}

// FindByID retrieves a location by ID regardless of status
func (r *LocationRepository) FindByID(ctx context.Context, id uint) (*models.Location, error) {
	var location models.Location
	if err := r.DB.WithContext(ctx).First(&location, id).Error; err != nil {
		return nil, translateFindError(err, "location", id)
	}
	return &location, nil
}

// List retrieves all active locations ordered by name
func (r *LocationRepository) List(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	err := r.DB.WithContext(ctx).Where("status = ?", true).Order("name ASC").Find(&locations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (r *LocationRepository) Add(ctx context.Context, location *models.Location) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Create(location).Error; err != nil {
			return fmt.Errorf("failed to create location %s: %w", location.Name, err)
		}
		return nil
	})
}

func (r *LocationRepository) Update(ctx context.Context, location *models.Location) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Save(location).Error; err != nil {
			return fmt.Errorf("failed to update location ID %d: %w", location.ID, err)
		}
		return nil
	})
}
