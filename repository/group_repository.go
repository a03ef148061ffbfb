package repository

import (
	"context"
	"fmt"

	"github.com/camden-git/hrmbackend/models"
	"gorm.io/gorm"
)

// GroupRepository handles database operations for Group
type GroupRepository struct {
	DB *gorm.DB
}

// NewGroupRepository creates a new instance of GroupRepository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

// FindByID retrieves a group by ID regardless of status
func (r *GroupRepository) FindByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	if err := r.DB.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, translateFindError(err, "group", id)
	}
	return &group, nil
}

// List retrieves all active groups ordered by ID
func (r *GroupRepository) List(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	err := r.DB.WithContext(ctx).Where("status = ?", true).Order("id ASC").Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// SearchByName retrieves active groups whose name, with spaces removed, contains name
func (r *GroupRepository) SearchByName(ctx context.Context, name string) ([]models.Group, error) {
	var groups []models.Group
	err := r.DB.WithContext(ctx).
		Where("status = ?", true).
		Where("REPLACE(LOWER(name), ' ', '') LIKE ?", "%"+name+"%").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search groups by name %q: %w", name, err)
	}
	return groups, nil
}

func (r *GroupRepository) Add(ctx context.Context, group *models.Group) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return fmt.Errorf("failed to create group %s: %w", group.Name, err)
		}
		return nil
	})
}

func (r *GroupRepository) Update(ctx context.Context, group *models.Group) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Save(group).Error; err != nil {
			return fmt.Errorf("failed to update group ID %d: %w", group.ID, err)
		}
		return nil
	})
}
