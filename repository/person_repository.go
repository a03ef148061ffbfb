package repository

import (
	"context"
	"fmt"

	"github.com/camden-git/hrmbackend/database"
	"github.com/camden-git/hrmbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PersonRepository handles database operations for Person and its sub-resources
type PersonRepository struct {
	DB *gorm.DB
}

// NewPersonRepository creates a new instance of PersonRepository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{DB: db}
}

// withDetails preloads the references and the active sub-resources of a person
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Location").
		Preload("Group").
		Preload("Projects", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", true).Order("order_index ASC, id ASC")
		}).
		Preload("Projects.Group").
		Preload("CategoryPersons", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", true).Order("order_index ASC, id ASC")
		}).
		Preload("CategoryPersons.Category").
		Preload("Educations", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", true).Order("order_index ASC, id ASC")
		})
}

// FindByID retrieves a person by ID regardless of status, preloading its details
func (r *PersonRepository) FindByID(ctx context.Context, id uint) (*models.Person, error) {
	var person models.Person
	err := withDetails(r.DB.WithContext(ctx)).First(&person, id).Error
	if err != nil {
		return nil, translateFindError(err, "person", id)
	}
	return &person, nil
}

// ListPaginated retrieves one page of active persons and the total number of active persons
func (r *PersonRepository) ListPaginated(ctx context.Context, p Pagination) ([]models.Person, int64, error) {
	return r.listPage(ctx, p, r.DB.WithContext(ctx).Model(&models.Person{}).Where("status = ?", true))
}

// ListByLocation is ListPaginated restricted to the persons assigned to locationID
func (r *PersonRepository) ListByLocation(ctx context.Context, p Pagination, locationID uint) ([]models.Person, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.Person{}).
		Where("status = ?", true).
		Where("location_id = ?", locationID)
	return r.listPage(ctx, p, query)
}

func (r *PersonRepository) listPage(ctx context.Context, p Pagination, query *gorm.DB) ([]models.Person, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count people: %w", err)
	}

	var people []models.Person
	err := withDetails(query.Session(&gorm.Session{})).
		Order(database.PersonOrderClause(p.Sort)).
		Offset(p.Offset()).
		Limit(p.PageSize).
		Find(&people).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list people page %d: %w", p.Page, err)
	}
	return people, total, nil
}

// ListActive retrieves every active person ordered by name, used by exports
func (r *PersonRepository) ListActive(ctx context.Context) ([]models.Person, error) {
	var people []models.Person
	err := r.DB.WithContext(ctx).
		Preload("Location").
		Preload("Group").
		Where("status = ?", true).
		Order(database.PersonOrderClause(database.SortNameAsc)).
		Find(&people).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active people: %w", err)
	}
	return people, nil
}

// TotalRecords counts the active persons
func (r *PersonRepository) TotalRecords(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&models.Person{}).Where("status = ?", true).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count people: %w", err)
	}
	return total, nil
}

// Add stages the creation of a person. Associations are persisted by their own repositories.
func (r *PersonRepository) Add(ctx context.Context, person *models.Person) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(person).Error; err != nil {
			return fmt.Errorf("failed to create person %s: %w", person.FullName(), err)
		}
		return nil
	})
}

// Update stages a full-row save of a person
func (r *PersonRepository) Update(ctx context.Context, person *models.Person) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(person).Error; err != nil {
			return fmt.Errorf("failed to update person ID %d: %w", person.ID, err)
		}
		return nil
	})
}
