package repository

import (
	"context"
	"fmt"

	"github.com/camden-git/hrmbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for a person's project history
type ProjectRepository struct {
	DB *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

// FindByID retrieves a project by ID with its group
func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.DB.WithContext(ctx).Preload("Group").First(&project, id).Error; err != nil {
		return nil, translateFindError(err, "project", id)
	}
	return &project, nil
}

// ListByPerson retrieves the active projects of a person in display order
func (r *ProjectRepository) ListByPerson(ctx context.Context, personID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.DB.WithContext(ctx).
		Preload("Group").
		Where("status = ? AND person_id = ?", true, personID).
		Order("order_index ASC, id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for person %d: %w", personID, err)
	}
	return projects, nil
}

func (r *ProjectRepository) Add(ctx context.Context, project *models.Project) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return fmt.Errorf("failed to create project %s: %w", project.Name, err)
		}
		return nil
	})
}

func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(project).Error; err != nil {
			return fmt.Errorf("failed to update project ID %d: %w", project.ID, err)
		}
		return nil
	})
}
