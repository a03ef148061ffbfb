package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/events"
	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/repository"
	"github.com/camden-git/hrmbackend/resources"
)

const (
	msgPersonNotExistent = "Person is not existent."
	msgElementNotValid   = "Element is not valid."
)

// PersonService orchestrates person creation, update, order-index assignment and enriched listing
type PersonService struct {
	people    repository.PersonRepositoryInterface
	locations repository.LocationRepositoryInterface
	groups    repository.GroupRepositoryInterface
	catalog   Catalog
	uow       repository.UnitOfWorkInterface
	publisher events.Publisher
	limits    PageLimits
	actor     string
	logger    *zap.Logger
	now       func() time.Time
}

// NewPersonService creates a new person workflow service. actor is recorded as CreatedBy.
func NewPersonService(
	people repository.PersonRepositoryInterface,
	locations repository.LocationRepositoryInterface,
	groups repository.GroupRepositoryInterface,
	catalog Catalog,
	uow repository.UnitOfWorkInterface,
	publisher events.Publisher,
	limits PageLimits,
	actor string,
	logger *zap.Logger,
) *PersonService {
	return &PersonService{
		people:    people,
		locations: locations,
		groups:    groups,
		catalog:   catalog,
		uow:       uow,
		publisher: publisher,
		limits:    limits,
		actor:     actor,
		logger:    logger,
		now:       time.Now,
	}
}

// Create persists a new person. Unresolvable location or group references are cleared.
func (s *PersonService) Create(ctx context.Context, req resources.CreatePersonResource) Result[resources.PersonResource] {
	person := req.ToModel()

	if err := s.resolveReferences(ctx, &person); err != nil {
		return Fail[resources.PersonResource](FailureStore, fmt.Sprintf("An error occurred when saving the Person: %v", err))
	}

	now := s.now()
	person.CreatedAt = now
	person.UpdatedAt = now
	person.CreatedBy = s.actor
	person.Status = true

	ctx = s.uow.Begin(ctx)
	if err := s.people.Add(ctx, &person); err != nil {
		return Fail[resources.PersonResource](FailureStore, fmt.Sprintf("An error occurred when saving the Person: %v", err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save person", zap.String("staff_id", person.StaffID), zap.Error(err))
		return Fail[resources.PersonResource](FailureStore, fmt.Sprintf("An error occurred when saving the Person: %v", err))
	}

	res := resources.FromPerson(&person, s.resolver(ctx))
	s.publisher.Publish(events.New("person", events.ActionCreated, person.ID, res))
	return Ok(res)
}

// Update replaces every updatable field of an existing person
func (s *PersonService) Update(ctx context.Context, id uint, req resources.UpdatePersonResource) Result[resources.PersonResource] {
	person, res, ok := s.findForMutation(ctx, id, "updating")
	if !ok {
		return res
	}

	req.ApplyTo(person)
	if err := s.resolveReferences(ctx, person); err != nil {
		return Fail[resources.PersonResource](FailureStore, fmt.Sprintf("An error occurred when updating the Person: %v", err))
	}
	person.UpdatedAt = s.now()

	return s.save(ctx, person, "updating", events.ActionUpdated)
}

// AssignComponent stores a de-duplicated order index. Every element must be an integer;
// otherwise nothing is changed.
func (s *PersonService) AssignComponent(ctx context.Context, id uint, req resources.ComponentResource) Result[resources.PersonResource] {
	person, res, ok := s.findForMutation(ctx, id, "updating")
	if !ok {
		return res
	}

	values, valid := coerceInts(req.OrderIndex)
	if !valid {
		return Fail[resources.PersonResource](FailureInvalid, msgElementNotValid)
	}

	person.OrderIndex = models.NewOrderIndex(values)
	person.UpdatedAt = s.now()

	return s.save(ctx, person, "updating", events.ActionUpdated)
}

// Delete marks a person inactive. The row stays addressable by ID.
func (s *PersonService) Delete(ctx context.Context, id uint) Result[resources.PersonResource] {
	person, res, ok := s.findForMutation(ctx, id, "deleting")
	if !ok {
		return res
	}

	person.Status = false
	person.UpdatedAt = s.now()

	return s.save(ctx, person, "deleting", events.ActionDeleted)
}

// SetAvatar records an uploaded avatar stored at file and served at avatarURL.
// On success it also returns the file of the avatar it replaced, if one was uploaded before.
func (s *PersonService) SetAvatar(ctx context.Context, id uint, avatarURL, file string) (Result[resources.PersonResource], string) {
	person, res, ok := s.findForMutation(ctx, id, "updating")
	if !ok {
		return res, ""
	}

	replaced := person.AvatarFile
	person.Avatar = avatarURL
	person.AvatarFile = file
	person.UpdatedAt = s.now()

	res = s.save(ctx, person, "updating", events.ActionUpdated)
	if !res.Success {
		return res, ""
	}
	return res, replaced
}

// FindByID returns a person regardless of status, with sub-resources enriched
func (s *PersonService) FindByID(ctx context.Context, id uint) Result[resources.PersonResource] {
	person, err := s.people.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Fail[resources.PersonResource](FailureNotFound, fmt.Sprintf("Id '%d' is not existent.", id))
		}
		return Fail[resources.PersonResource](FailureStore, fmt.Sprintf("An error occurred when finding the Person: %v", err))
	}

	catalog, err := s.catalog.All(ctx)
	if err != nil {
		return Fail[resources.PersonResource](FailureStore, fmt.Sprintf("An error occurred when finding the Person: %v", err))
	}
	return Ok(resources.FromPerson(person, resolverFor(catalog)))
}

// List returns one page of active persons with technology tags resolved against the catalog
func (s *PersonService) List(ctx context.Context, q Query) Result[PageResult[resources.PersonResource]] {
	p := s.limits.normalize(q)
	people, total, err := s.people.ListPaginated(ctx, p)
	if err != nil {
		return s.listFailure(err)
	}
	return s.enrichPage(ctx, people, p, total)
}

// ListWithLocation is List restricted to one location
func (s *PersonService) ListWithLocation(ctx context.Context, q Query, locationID uint) Result[PageResult[resources.PersonResource]] {
	p := s.limits.normalize(q)
	people, total, err := s.people.ListByLocation(ctx, p, locationID)
	if err != nil {
		return s.listFailure(err)
	}
	return s.enrichPage(ctx, people, p, total)
}

// ExportActive returns every active person enriched like a listing page, for spreadsheet export
func (s *PersonService) ExportActive(ctx context.Context) Result[[]resources.PersonResource] {
	people, err := s.people.ListActive(ctx)
	if err != nil {
		s.logger.Error("failed to list persons for export", zap.Error(err))
		return Fail[[]resources.PersonResource](FailureStore, fmt.Sprintf("An error occurred when listing Persons: %v", err))
	}
	catalog, err := s.catalog.All(ctx)
	if err != nil {
		return Fail[[]resources.PersonResource](FailureStore, fmt.Sprintf("An error occurred when listing Persons: %v", err))
	}
	resolve := resolverFor(catalog)

	items := make([]resources.PersonResource, 0, len(people))
	for i := range people {
		items = append(items, resources.FromPerson(&people[i], resolve))
	}
	return Ok(items)
}

// TotalRecords counts the active persons
func (s *PersonService) TotalRecords(ctx context.Context) (int64, error) {
	return s.people.TotalRecords(ctx)
}

func (s *PersonService) enrichPage(ctx context.Context, people []models.Person, p repository.Pagination, total int64) Result[PageResult[resources.PersonResource]] {
	catalog, err := s.catalog.All(ctx)
	if err != nil {
		return s.listFailure(err)
	}
	resolve := resolverFor(catalog)

	items := make([]resources.PersonResource, 0, len(people))
	for i := range people {
		items = append(items, resources.FromPerson(&people[i], resolve))
	}
	return Ok(newPageResult(items, p, total))
}

func (s *PersonService) listFailure(err error) Result[PageResult[resources.PersonResource]] {
	s.logger.Error("failed to list persons", zap.Error(err))
	return Fail[PageResult[resources.PersonResource]](FailureStore, fmt.Sprintf("An error occurred when listing Persons: %v", err))
}

// findForMutation loads the target of a mutation. ok=false carries the failure to return.
func (s *PersonService) findForMutation(ctx context.Context, id uint, verb string) (*models.Person, Result[resources.PersonResource], bool) {
	person, err := s.people.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Fail[resources.PersonResource](FailureNotFound, msgPersonNotExistent), false
		}
		return nil, Fail[resources.PersonResource](FailureStore, fmt.Sprintf("An error occurred when %s the Person: %v", verb, err)), false
	}
	return person, Result[resources.PersonResource]{}, true
}

func (s *PersonService) save(ctx context.Context, person *models.Person, verb, action string) Result[resources.PersonResource] {
	ctx = s.uow.Begin(ctx)
	if err := s.people.Update(ctx, person); err != nil {
		return Fail[resources.PersonResource](FailureStore, fmt.Sprintf("An error occurred when %s the Person: %v", verb, err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save person", zap.Uint("person_id", person.ID), zap.String("action", action), zap.Error(err))
		return Fail[resources.PersonResource](FailureStore, fmt.Sprintf("An error occurred when %s the Person: %v", verb, err))
	}

	res := resources.FromPerson(person, s.resolver(ctx))
	s.publisher.Publish(events.New("person", action, person.ID, res))
	return Ok(res)
}

// resolveReferences loads the optional location and group, clearing any that no longer exist
func (s *PersonService) resolveReferences(ctx context.Context, person *models.Person) error {
	location, err := resolveOptional(ctx, person.LocationID, s.locations.FindByID)
	if err != nil {
		return err
	}
	if location == nil {
		person.LocationID = nil
	}
	person.Location = location

	group, err := resolveOptional(ctx, person.GroupID, s.groups.FindByID)
	if err != nil {
		return err
	}
	if group == nil {
		person.GroupID = nil
	}
	person.Group = group
	return nil
}

func (s *PersonService) resolver(ctx context.Context) resources.TechnologyResolver {
	return currentResolver(ctx, s.catalog, s.logger)
}
