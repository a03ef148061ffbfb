package repository

import (
	"context"
	"fmt"

	"github.com/camden-git/hrmbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository handles database operations for Category
type CategoryRepository struct {
	DB *gorm.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// FindByID retrieves a category by ID regardless of status, with its active technologies
func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.DB.WithContext(ctx).
		Preload("Technologies", "status = ?", true).
		First(&category, id).Error
	if err != nil {
		return nil, translateFindError(err, "category", id)
	}
	return &category, nil
}

// List retrieves all active categories ordered by name, with their active technologies
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.DB.WithContext(ctx).
		Preload("Technologies", "status = ?", true).
		Where("status = ?", true).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Add(ctx context.Context, category *models.Category) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(category).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", category.Name, err)
		}
		return nil
	})
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(category).Error; err != nil {
			return fmt.Errorf("failed to update category ID %d: %w", category.ID, err)
		}
		return nil
	})
}
