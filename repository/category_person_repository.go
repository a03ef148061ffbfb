package repository

import (
	"context"
	"fmt"

	"github.com/camden-git/hrmbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryPersonRepository handles database operations for a person's skill entries
type CategoryPersonRepository struct {
	DB *gorm.DB
}

// NewCategoryPersonRepository creates a new instance of CategoryPersonRepository
func NewCategoryPersonRepository(db *gorm.DB) *CategoryPersonRepository {
	return &CategoryPersonRepository{DB: db}
}

func (r *CategoryPersonRepository) FindByID(ctx context.Context, id uint) (*models.CategoryPerson, error) {
	var categoryPerson models.CategoryPerson
	if err := r.DB.WithContext(ctx).Preload("Category").First(&categoryPerson, id).Error; err != nil {
		return nil, translateFindError(err, "category person", id)
	}
	return &categoryPerson, nil
}

// ListByPerson retrieves the active skill entries of a person in display order
func (r *CategoryPersonRepository) ListByPerson(ctx context.Context, personID uint) ([]models.CategoryPerson, error) {
	var categoryPersons []models.CategoryPerson
	err := r.DB.WithContext(ctx).
		Preload("Category").
		Where("status = ? AND person_id = ?", true, personID).
		Order("order_index ASC, id ASC").
		Find(&categoryPersons).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list category persons for person %d: %w", personID, err)
	}
	return categoryPersons, nil
}

func (r *CategoryPersonRepository) Add(ctx context.Context, categoryPerson *models.CategoryPerson) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(categoryPerson).Error; err != nil {
			return fmt.Errorf("failed to create category person for person %d: %w", categoryPerson.PersonID, err)
		}
		return nil
	})
}

func (r *CategoryPersonRepository) Update(ctx context.Context, categoryPerson *models.CategoryPerson) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(categoryPerson).Error; err != nil {
			return fmt.Errorf("failed to update category person ID %d: %w", categoryPerson.ID, err)
		}
		return nil
	})
}
