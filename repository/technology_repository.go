package repository

import (
	"context"
	"fmt"

	"github.com/camden-git/hrmbackend/models"
	"gorm.io/gorm"
)

// TechnologyRepository handles database operations for the Technology catalog
type TechnologyRepository struct {
	DB *gorm.DB
}

// NewTechnologyRepository creates a new instance of TechnologyRepository
func NewTechnologyRepository(db *gorm.DB) *TechnologyRepository {
	return &TechnologyRepository{DB: db}
}

// FindByID retrieves a technology by ID regardless of status
func (r *TechnologyRepository) FindByID(ctx context.Context, id uint) (*models.Technology, error) {
	var technology models.Technology
	if err := r.DB.WithContext(ctx).First(&technology, id).Error; err != nil {
		return nil, translateFindError(err, "technology", id)
	}
	return &technology, nil
}

// List retrieves the full active catalog ordered by ID
func (r *TechnologyRepository) List(ctx context.Context) ([]models.Technology, error) {
	var technologies []models.Technology
	err := r.DB.WithContext(ctx).Where("status = ?", true).Order("id ASC").Find(&technologies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list technologies: %w", err)
	}
	return technologies, nil
}

// ListByCategory retrieves the active technologies of one category ordered by ID
func (r *TechnologyRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.Technology, error) {
	var technologies []models.Technology
	err := r.DB.WithContext(ctx).
		Where("status = ? AND category_id = ?", true, categoryID).
		Order("id ASC").
		Find(&technologies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list technologies for category %d: %w", categoryID, err)
	}
	return technologies, nil
}

func (r *TechnologyRepository) Add(ctx context.Context, technology *models.Technology) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Create(technology).Error; err != nil {
			return fmt.Errorf("failed to create technology %s: %w", technology.Name, err)
		}
		return nil
	})
}

func (r *TechnologyRepository) Update(ctx context.Context, technology *models.Technology) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Save(technology).Error; err != nil {
			return fmt.Errorf("failed to update technology ID %d: %w", technology.ID, err)
		}
		return nil
	})
}
