package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/camden-git/hrmbackend/events"
	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/repository"
)

// MockPersonRepository is a mock implementation of PersonRepositoryInterface
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindByID(ctx context.Context, id uint) (*models.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonRepository) ListPaginated(ctx context.Context, p repository.Pagination) ([]models.Person, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Person), args.Get(1).(int64), args.Error(2)
}

func (m *MockPersonRepository) ListByLocation(ctx context.Context, p repository.Pagination, locationID uint) ([]models.Person, int64, error) {
	args := m.Called(ctx, p, locationID)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Person), args.Get(1).(int64), args.Error(2)
}

func (m *MockPersonRepository) ListActive(ctx context.Context) ([]models.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Person), args.Error(1)
}

func (m *MockPersonRepository) TotalRecords(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPersonRepository) Add(ctx context.Context, person *models.Person) error {
	return m.Called(ctx, person).Error(0)
}

func (m *MockPersonRepository) Update(ctx context.Context, person *models.Person) error {
	return m.Called(ctx, person).Error(0)
}

// MockLocationRepository is a mock implementation of LocationRepositoryInterface
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id uint) (*models.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationRepository) List(ctx context.Context) ([]models.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Location), args.Error(1)
}

func (m *MockLocationRepository) Add(ctx context.Context, location *models.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, location *models.Location) error {
	return m.Called(ctx, location).Error(0)
}

// MockGroupRepository is a mock implementation of GroupRepositoryInterface
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) FindByID(ctx context.Context, id uint) (*models.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) List(ctx context.Context) ([]models.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockGroupRepository) SearchByName(ctx context.Context, name string) ([]models.Group, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockGroupRepository) Add(ctx context.Context, group *models.Group) error {
	return m.Called(ctx, group).Error(0)
}

func (m *MockGroupRepository) Update(ctx context.Context, group *models.Group) error {
	return m.Called(ctx, group).Error(0)
}

// MockTechnologyRepository is a mock implementation of TechnologyRepositoryInterface
type MockTechnologyRepository struct {
	mock.Mock
}

func (m *MockTechnologyRepository) FindByID(ctx context.Context, id uint) (*models.Technology, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Technology), args.Error(1)
}

func (m *MockTechnologyRepository) List(ctx context.Context) ([]models.Technology, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Technology), args.Error(1)
}

func (m *MockTechnologyRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.Technology, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Technology), args.Error(1)
}

func (m *MockTechnologyRepository) Add(ctx context.Context, technology *models.Technology) error {
	return m.Called(ctx, technology).Error(0)
}

func (m *MockTechnologyRepository) Update(ctx context.Context, technology *models.Technology) error {
	return m.Called(ctx, technology).Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepositoryInterface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Add(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

// MockCatalog is a mock implementation of Catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) All(ctx context.Context) ([]models.Technology, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Technology), args.Error(1)
}

// fakeUnitOfWork counts commits and can be told to fail them
type fakeUnitOfWork struct {
	mu        sync.Mutex
	begun     int
	completed int
	err       error
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) context.Context {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.begun++
	return ctx
}

func (u *fakeUnitOfWork) Complete(context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.completed++
	return u.err
}

// recordingPublisher keeps every published event
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(e events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// MockAccountRepository is a mock implementation of AccountRepositoryInterface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uint) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByUserName(ctx context.Context, userName string) (*models.Account, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) ListPaginated(ctx context.Context, p repository.Pagination) ([]models.Account, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockAccountRepository) TotalRecords(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) UserNameExists(ctx context.Context, userName string) (bool, error) {
	args := m.Called(ctx, userName)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Add(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) TouchActivity(ctx context.Context, id uint, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockAccountRepository) Remove(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}
