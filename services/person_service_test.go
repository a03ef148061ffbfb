package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/repository"
	"github.com/camden-git/hrmbackend/resources"
)

type personServiceFixture struct {
	people    *MockPersonRepository
	locations *MockLocationRepository
	groups    *MockGroupRepository
	catalog   *MockCatalog
	uow       *fakeUnitOfWork
	publisher *recordingPublisher
	service   *PersonService
}

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newPersonServiceFixture() *personServiceFixture {
	f := &personServiceFixture{
		people:    new(MockPersonRepository),
		locations: new(MockLocationRepository),
		groups:    new(MockGroupRepository),
		catalog:   new(MockCatalog),
		uow:       &fakeUnitOfWork{},
		publisher: &recordingPublisher{},
	}
	f.service = NewPersonService(f.people, f.locations, f.groups, f.catalog, f.uow, f.publisher,
		DefaultPageLimits, "system", zap.NewNop())
	f.service.now = func() time.Time { return fixedNow }
	return f
}

func uintPtr(v uint) *uint { return &v }

func createRequest() resources.CreatePersonResource {
	return resources.CreatePersonResource{
		StaffID:     "S-001",
		FirstName:   "Linh",
		LastName:    "Nguyen",
		Email:       "linh@example.com",
		YearOfBirth: time.Date(1994, 3, 2, 0, 0, 0, 0, time.UTC),
		Gender:      models.GenderFemale,
	}
}

func TestPersonService_Create_UnknownLocationIsCleared(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	req := createRequest()
	req.LocationID = uintPtr(99)

	f.locations.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrNotFound)
	f.people.On("Add", ctx, mock.AnythingOfType("*models.Person")).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Person).ID = 42 }).
		Return(nil)
	f.catalog.On("All", ctx).Return([]models.Technology{}, nil)

	result := f.service.Create(ctx, req)

	require.True(t, result.Success, result.Message)
	assert.Nil(t, result.Resource.Location)
	assert.Equal(t, uint(42), result.Resource.ID)
	assert.Equal(t, "system", result.Resource.CreatedBy)
	assert.Equal(t, fixedNow, result.Resource.CreatedAt)
	assert.True(t, result.Resource.Status)
	assert.Equal(t, 1, f.uow.completed)
	assert.Equal(t, []string{"person.created"}, f.publisher.types())

	saved := f.people.Calls[0].Arguments.Get(1).(*models.Person)
	assert.Nil(t, saved.LocationID)
	f.people.AssertExpectations(t)
}

func TestPersonService_Create_EmbedsResolvedReferences(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	req := createRequest()
	req.LocationID = uintPtr(1)
	req.GroupID = uintPtr(5)

	f.locations.On("FindByID", ctx, uint(1)).Return(&models.Location{ID: 1, Name: "Hanoi", Status: true}, nil)
	f.groups.On("FindByID", ctx, uint(5)).Return(&models.Group{ID: 5, Name: "Core", Technology: models.TechnologyTags{"Go"}, Status: true}, nil)
	f.people.On("Add", ctx, mock.AnythingOfType("*models.Person")).Return(nil)
	f.catalog.On("All", ctx).Return(testCatalog, nil)

	result := f.service.Create(ctx, req)

	require.True(t, result.Success, result.Message)
	require.NotNil(t, result.Resource.Location)
	assert.Equal(t, "Hanoi", result.Resource.Location.Name)
	require.NotNil(t, result.Resource.Group)
	require.Len(t, result.Resource.Group.Technology, 1)
	assert.Equal(t, "Go", result.Resource.Group.Technology[0].Name)
}

func TestPersonService_Create_CommitFailure(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()
	f.uow.err = errors.New("database is locked")

	f.people.On("Add", ctx, mock.AnythingOfType("*models.Person")).Return(nil)

	result := f.service.Create(ctx, createRequest())

	assert.False(t, result.Success)
	assert.Nil(t, result.Resource)
	assert.Equal(t, FailureStore, result.Kind)
	assert.Contains(t, result.Message, "An error occurred when saving the Person: ")
	assert.Contains(t, result.Message, "database is locked")
	assert.Empty(t, f.publisher.types())
}

func TestPersonService_Create_LocationLookupError(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	req := createRequest()
	req.LocationID = uintPtr(3)
	f.locations.On("FindByID", ctx, uint(3)).Return(nil, errors.New("connection reset"))

	result := f.service.Create(ctx, req)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "connection reset")
	assert.Equal(t, 0, f.uow.completed)
	f.people.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPersonService_Update_NotFoundNeverCommits(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	f.people.On("FindByID", ctx, uint(404)).Return(nil, repository.ErrNotFound)

	result := f.service.Update(ctx, 404, resources.UpdatePersonResource(createRequest()))

	assert.False(t, result.Success)
	assert.Equal(t, msgPersonNotExistent, result.Message)
	assert.Equal(t, FailureNotFound, result.Kind)
	assert.Equal(t, 0, f.uow.begun)
	assert.Equal(t, 0, f.uow.completed)
	f.people.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPersonService_Update_FullReplace(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	existing := &models.Person{
		ID: 7, StaffID: "OLD", FirstName: "Old", LastName: "Name", Phone: "0123",
		LocationID: uintPtr(1), Location: &models.Location{ID: 1, Name: "Hanoi"},
		CreatedBy: "system", Status: true,
	}
	f.people.On("FindByID", ctx, uint(7)).Return(existing, nil)
	f.people.On("Update", ctx, existing).Return(nil)
	f.catalog.On("All", ctx).Return(testCatalog, nil)

	req := resources.UpdatePersonResource(createRequest())
	result := f.service.Update(ctx, 7, req)

	require.True(t, result.Success, result.Message)
	assert.Equal(t, "S-001", existing.StaffID)
	assert.Equal(t, "Linh", existing.FirstName)
	assert.Empty(t, existing.Phone, "fields absent from the request are overwritten")
	assert.Nil(t, existing.LocationID)
	assert.Nil(t, result.Resource.Location)
	assert.Equal(t, fixedNow, existing.UpdatedAt)
	assert.Equal(t, "system", existing.CreatedBy)
	assert.Equal(t, 1, f.uow.completed)
	assert.Equal(t, []string{"person.updated"}, f.publisher.types())
}

func TestPersonService_Update_UnknownLocationIsCleared(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	existing := &models.Person{
		ID: 8, FirstName: "Hoa", LocationID: uintPtr(1), Location: &models.Location{ID: 1, Name: "Hanoi"},
		CreatedBy: "system", Status: true,
	}
	f.people.On("FindByID", ctx, uint(8)).Return(existing, nil)
	f.locations.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrNotFound)
	f.people.On("Update", ctx, existing).Return(nil)
	f.catalog.On("All", ctx).Return(testCatalog, nil)

	req := resources.UpdatePersonResource(createRequest())
	req.LocationID = uintPtr(99)
	result := f.service.Update(ctx, 8, req)

	require.True(t, result.Success, result.Message)
	assert.Nil(t, existing.LocationID)
	assert.Nil(t, existing.Location)
	assert.Nil(t, result.Resource.Location)
	assert.Equal(t, 1, f.uow.completed)
	f.locations.AssertExpectations(t)
}

func TestPersonService_Update_UnknownGroupIsCleared(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	existing := &models.Person{
		ID: 8, FirstName: "Hoa", GroupID: uintPtr(5), Group: &models.Group{ID: 5, Name: "Core"},
		CreatedBy: "system", Status: true,
	}
	f.people.On("FindByID", ctx, uint(8)).Return(existing, nil)
	f.groups.On("FindByID", ctx, uint(77)).Return(nil, repository.ErrNotFound)
	f.people.On("Update", ctx, existing).Return(nil)
	f.catalog.On("All", ctx).Return(testCatalog, nil)

	req := resources.UpdatePersonResource(createRequest())
	req.GroupID = uintPtr(77)
	result := f.service.Update(ctx, 8, req)

	require.True(t, result.Success, result.Message)
	assert.Nil(t, existing.GroupID)
	assert.Nil(t, existing.Group)
	assert.Nil(t, result.Resource.Group)
	assert.Equal(t, 1, f.uow.completed)
	f.groups.AssertExpectations(t)
}

func TestPersonService_Create_UnknownGroupIsCleared(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	req := createRequest()
	req.GroupID = uintPtr(77)

	f.groups.On("FindByID", ctx, uint(77)).Return(nil, repository.ErrNotFound)
	f.people.On("Add", ctx, mock.AnythingOfType("*models.Person")).Return(nil)
	f.catalog.On("All", ctx).Return([]models.Technology{}, nil)

	result := f.service.Create(ctx, req)

	require.True(t, result.Success, result.Message)
	assert.Nil(t, result.Resource.Group)
	assert.Equal(t, 1, f.uow.completed)

	saved := f.people.Calls[0].Arguments.Get(1).(*models.Person)
	assert.Nil(t, saved.GroupID)
	assert.Nil(t, saved.Group)
}

func TestPersonService_SetAvatar_ReturnsReplacedFile(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	existing := &models.Person{
		ID: 4, FirstName: "Khanh", Avatar: "/api/avatars/someone-else.jpg", AvatarFile: "avatars/old.jpg", Status: true,
	}
	f.people.On("FindByID", ctx, uint(4)).Return(existing, nil)
	f.people.On("Update", ctx, existing).Return(nil)
	f.catalog.On("All", ctx).Return([]models.Technology{}, nil)

	result, replaced := f.service.SetAvatar(ctx, 4, "/api/avatars/new.jpg", "avatars/new.jpg")

	require.True(t, result.Success, result.Message)
	assert.Equal(t, "avatars/old.jpg", replaced)
	assert.Equal(t, "/api/avatars/new.jpg", result.Resource.Avatar)
	assert.Equal(t, "avatars/new.jpg", existing.AvatarFile)
}

func TestPersonService_SetAvatar_CommitFailureKeepsPreviousFile(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()
	f.uow.err = errors.New("database is locked")

	existing := &models.Person{ID: 4, FirstName: "Khanh", AvatarFile: "avatars/old.jpg", Status: true}
	f.people.On("FindByID", ctx, uint(4)).Return(existing, nil)
	f.people.On("Update", ctx, existing).Return(nil)

	result, replaced := f.service.SetAvatar(ctx, 4, "/api/avatars/new.jpg", "avatars/new.jpg")

	assert.False(t, result.Success)
	assert.Empty(t, replaced)
}

func TestPersonService_AssignComponent_Deduplicates(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	existing := &models.Person{ID: 3, FirstName: "Minh", Status: true}
	f.people.On("FindByID", ctx, uint(3)).Return(existing, nil)
	f.people.On("Update", ctx, existing).Return(nil)
	f.catalog.On("All", ctx).Return([]models.Technology{}, nil)

	result := f.service.AssignComponent(ctx, 3, resources.ComponentResource{
		OrderIndex: []interface{}{float64(3), float64(1), float64(3), float64(2), float64(1)},
	})

	require.True(t, result.Success, result.Message)
	assert.ElementsMatch(t, []int{1, 2, 3}, []int(existing.OrderIndex))
	assert.Len(t, result.Resource.OrderIndex, 3)
	assert.Equal(t, 1, f.uow.completed)
}

func TestPersonService_AssignComponent_InvalidElementLeavesIndexUnchanged(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	existing := &models.Person{ID: 3, FirstName: "Minh", OrderIndex: models.OrderIndex{5, 6}, Status: true}
	f.people.On("FindByID", ctx, uint(3)).Return(existing, nil)

	result := f.service.AssignComponent(ctx, 3, resources.ComponentResource{
		OrderIndex: []interface{}{float64(1), "two", float64(3)},
	})

	assert.False(t, result.Success)
	assert.Equal(t, msgElementNotValid, result.Message)
	assert.Equal(t, FailureInvalid, result.Kind)
	assert.Equal(t, models.OrderIndex{5, 6}, existing.OrderIndex)
	assert.Equal(t, 0, f.uow.completed)
	f.people.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPersonService_AssignComponent_NotFound(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()
	f.people.On("FindByID", ctx, uint(8)).Return(nil, repository.ErrNotFound)

	result := f.service.AssignComponent(ctx, 8, resources.ComponentResource{OrderIndex: []interface{}{1}})

	assert.False(t, result.Success)
	assert.Equal(t, msgPersonNotExistent, result.Message)
}

func TestPersonService_List_ResolvesTechnologies(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	people := []models.Person{{
		ID:        1,
		FirstName: "Quang",
		Status:    true,
		Projects: []models.Project{
			{ID: 10, PersonID: 1, Name: "Billing", Technology: models.ParseTechnologyTags("Go,Rust"), Status: true},
		},
		CategoryPersons: []models.CategoryPerson{
			{ID: 20, PersonID: 1, CategoryID: 1, Technology: models.ParseTechnologyTags(""), Status: true},
		},
	}}
	f.people.On("ListPaginated", ctx, repository.Pagination{Page: 1, PageSize: 10}).Return(people, int64(1), nil)
	f.catalog.On("All", ctx).Return([]models.Technology{
		{ID: 1, Name: "Go", Status: true},
		{ID: 2, Name: "Rust", Status: true},
		{ID: 3, Name: "Python", Status: true},
	}, nil)

	result := f.service.List(ctx, Query{})

	require.True(t, result.Success, result.Message)
	page := result.Resource
	require.Len(t, page.Items, 1)

	project := page.Items[0].Projects[0]
	var projectTechnologies []string
	for _, tech := range project.Technology {
		projectTechnologies = append(projectTechnologies, tech.Name)
	}
	assert.Equal(t, []string{"Go", "Rust"}, projectTechnologies)

	skill := page.Items[0].CategoryPersons[0]
	assert.NotNil(t, skill.Technology)
	assert.Empty(t, skill.Technology)
}

func TestPersonService_List_PageMetadata(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	page := make([]models.Person, 10)
	for i := range page {
		page[i] = models.Person{ID: uint(11 + i), Status: true}
	}
	f.people.On("ListPaginated", ctx, repository.Pagination{Page: 2, PageSize: 10}).Return(page, int64(25), nil)
	f.catalog.On("All", ctx).Return([]models.Technology{}, nil)

	result := f.service.List(ctx, Query{Page: 2, PageSize: 10})

	require.True(t, result.Success)
	assert.Len(t, result.Resource.Items, 10)
	assert.Equal(t, uint(11), result.Resource.Items[0].ID)
	assert.Equal(t, int64(25), result.Resource.TotalRecords)
	assert.Equal(t, 3, result.Resource.TotalPages)
	assert.Equal(t, 2, result.Resource.Page)
}

func TestPersonService_List_PageSizeIsCapped(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	f.people.On("ListPaginated", ctx, repository.Pagination{Page: 1, PageSize: 100, Sort: "name_asc"}).
		Return([]models.Person{}, int64(0), nil)
	f.catalog.On("All", ctx).Return([]models.Technology{}, nil)

	result := f.service.List(ctx, Query{Page: 0, PageSize: 5000, Sort: "name_asc"})

	require.True(t, result.Success)
	assert.Equal(t, 100, result.Resource.PageSize)
	assert.NotNil(t, result.Resource.Items)
}

func TestPersonService_List_StoreError(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	f.people.On("ListByLocation", ctx, repository.Pagination{Page: 1, PageSize: 10}, uint(2)).
		Return(nil, int64(0), errors.New("no such table: people"))

	result := f.service.ListWithLocation(ctx, Query{}, 2)

	assert.False(t, result.Success)
	assert.Equal(t, "An error occurred when listing Persons: no such table: people", result.Message)
}

func TestPersonService_FindByID(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	f.people.On("FindByID", ctx, uint(12)).Return(nil, repository.ErrNotFound)
	result := f.service.FindByID(ctx, 12)
	assert.False(t, result.Success)
	assert.Equal(t, "Id '12' is not existent.", result.Message)
	assert.Equal(t, FailureNotFound, result.Kind)
}

func TestPersonService_Delete_IsSoft(t *testing.T) {
	f := newPersonServiceFixture()
	ctx := context.Background()

	existing := &models.Person{ID: 9, FirstName: "Tam", Status: true}
	f.people.On("FindByID", ctx, uint(9)).Return(existing, nil)
	f.people.On("Update", ctx, existing).Return(nil)
	f.catalog.On("All", ctx).Return([]models.Technology{}, nil)

	result := f.service.Delete(ctx, 9)

	require.True(t, result.Success, result.Message)
	assert.False(t, existing.Status)
	assert.False(t, result.Resource.Status)
	f.people.AssertNumberOfCalls(t, "Update", 1)
	assert.Equal(t, []string{"person.deleted"}, f.publisher.types())
}
