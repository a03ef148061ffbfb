package repository

import (
	"context"
	"math"
	"time"

	"github.com/camden-git/hrmbackend/models"
)

// Pagination selects one page of an ordered listing. Page is 1-based.
type Pagination struct {
	Page     int
	PageSize int
	Sort     string
}

// Offset returns the number of rows skipped before the page starts.
// It saturates at math.MaxInt so a page far past the end stays empty.
func (p Pagination) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// UnitOfWorkInterface commits every mutation staged within one operation
type UnitOfWorkInterface interface {
	Begin(ctx context.Context) context.Context
	Complete(ctx context.Context) error
}

// PersonRepositoryInterface defines the methods for person data operations
type PersonRepositoryInterface interface {
	FindByID(ctx context.Context, id uint) (*models.Person, error)
	ListPaginated(ctx context.Context, p Pagination) ([]models.Person, int64, error)
	ListByLocation(ctx context.Context, p Pagination, locationID uint) ([]models.Person, int64, error)
	ListActive(ctx context.Context) ([]models.Person, error)
	TotalRecords(ctx context.Context) (int64, error)
	Add(ctx context.Context, person *models.Person) error
	Update(ctx context.Context, person *models.Person) error
}

// LocationRepositoryInterface defines the methods for location data operations
type LocationRepositoryInterface interface {
	FindByID(ctx context.Context, id uint) (*models.Location, error)
	List(ctx context.Context) ([]models.Location, error)
	Add(ctx context.Context, location *models.Location) error
	Update(ctx context.Context, location *models.Location) error
}

// GroupRepositoryInterface defines the methods for group data operations
type GroupRepositoryInterface interface {
	FindByID(ctx context.Context, id uint) (*models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
	SearchByName(ctx context.Context, name string) ([]models.Group, error)
	Add(ctx context.Context, group *models.Group) error
	Update(ctx context.Context, group *models.Group) error
}

// TechnologyRepositoryInterface defines the methods for technology catalog operations
type TechnologyRepositoryInterface interface {
	FindByID(ctx context.Context, id uint) (*models.Technology, error)
	List(ctx context.Context) ([]models.Technology, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Technology, error)
	Add(ctx context.Context, technology *models.Technology) error
	Update(ctx context.Context, technology *models.Technology) error
}

// CategoryRepositoryInterface defines the methods for category data operations
type CategoryRepositoryInterface interface {
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Add(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
}

// EducationRepositoryInterface defines the methods for education data operations
type EducationRepositoryInterface interface {
	FindByID(ctx context.Context, id uint) (*models.Education, error)
	ListByPerson(ctx context.Context, personID uint) ([]models.Education, error)
	Add(ctx context.Context, education *models.Education) error
	Update(ctx context.Context, education *models.Education) error
}

// ProjectRepositoryInterface defines the methods for project data operations
type ProjectRepositoryInterface interface {
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	ListByPerson(ctx context.Context, personID uint) ([]models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
}

// CategoryPersonRepositoryInterface defines the methods for a person's skill entries
type CategoryPersonRepositoryInterface interface {
	FindByID(ctx context.Context, id uint) (*models.CategoryPerson, error)
	ListByPerson(ctx context.Context, personID uint) ([]models.CategoryPerson, error)
	Add(ctx context.Context, categoryPerson *models.CategoryPerson) error
	Update(ctx context.Context, categoryPerson *models.CategoryPerson) error
}

// AccountRepositoryInterface defines the methods for account data operations
type AccountRepositoryInterface interface {
	FindByID(ctx context.Context, id uint) (*models.Account, error)
	FindByUserName(ctx context.Context, userName string) (*models.Account, error)
	ListPaginated(ctx context.Context, p Pagination) ([]models.Account, error)
	TotalRecords(ctx context.Context) (int64, error)
	UserNameExists(ctx context.Context, userName string) (bool, error)
	Add(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
	TouchActivity(ctx context.Context, id uint, at time.Time) error
	Remove(ctx context.Context, account *models.Account) error
}
