package repository

import (
	"context"
	"fmt"

	"github.com/camden-git/hrmbackend/models"
	"gorm.io/gorm"
)

// EducationRepository handles database operations for a person's education history
type EducationRepository struct {
	DB *gorm.DB
}

// NewEducationRepository creates a new instance of EducationRepository
func NewEducationRepository(db *gorm.DB) *EducationRepository {
	return &EducationRepository{DB: db}
}

func (r *EducationRepository) FindByID(ctx context.Context, id uint) (*models.Education, error) {
	var education models.Education
	if err := r.DB.WithContext(ctx).First(&education, id).Error; err != nil {
		return nil, translateFindError(err, "education", id)
	}
	return &education, nil
}

// ListByPerson retrieves the active education entries of a person in display order
func (r *EducationRepository) ListByPerson(ctx context.Context, personID uint) ([]models.Education, error) {
	var educations []models.Education
	err := r.DB.WithContext(ctx).
		Where("status = ? AND person_id = ?", true, personID).
		Order("order_index ASC, id ASC").
		Find(&educations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list educations for person %d: %w", personID, err)
	}
	return educations, nil
}

func (r *EducationRepository) Add(ctx context.Context, education *models.Education) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Create(education).Error; err != nil {
			return fmt.Errorf("failed to create education for person %d: %w", education.PersonID, err)
		}
		return nil
	})
}

func (r *EducationRepository) Update(ctx context.Context, education *models.Education) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Save(education).Error; err != nil {
			return fmt.Errorf("failed to update education ID %d: %w", education.ID, err)
		}
		return nil
	})
}
