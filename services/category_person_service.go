package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/events"
	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/repository"
	"github.com/camden-git/hrmbackend/resources"
)

const msgCategoryPersonNotExistent = "CategoryPerson is not existent."

// CategoryPersonService manages the per-category skill entries of persons
type CategoryPersonService struct {
	categoryPersons repository.CategoryPersonRepositoryInterface
	people          repository.PersonRepositoryInterface
	categories      repository.CategoryRepositoryInterface
	catalog         Catalog
	uow             repository.UnitOfWorkInterface
	publisher       events.Publisher
	logger          *zap.Logger
}

func NewCategoryPersonService(
	categoryPersons repository.CategoryPersonRepositoryInterface,
	people repository.PersonRepositoryInterface,
	categories repository.CategoryRepositoryInterface,
	catalog Catalog,
	uow repository.UnitOfWorkInterface,
	publisher events.Publisher,
	logger *zap.Logger,
) *CategoryPersonService {
	return &CategoryPersonService{
		categoryPersons: categoryPersons,
		people:          people,
		categories:      categories,
		catalog:         catalog,
		uow:             uow,
		publisher:       publisher,
		logger:          logger,
	}
}

func (s *CategoryPersonService) ListByPerson(ctx context.Context, personID uint) Result[[]resources.CategoryPersonResource] {
	if res, ok := ensurePerson[[]resources.CategoryPersonResource](ctx, s.people, personID); !ok {
		return res
	}
	entries, err := s.categoryPersons.ListByPerson(ctx, personID)
	if err != nil {
		return Fail[[]resources.CategoryPersonResource](FailureStore, fmt.Sprintf("An error occurred when listing CategoryPersons: %v", err))
	}
	catalog, err := s.catalog.All(ctx)
	if err != nil {
		return Fail[[]resources.CategoryPersonResource](FailureStore, fmt.Sprintf("An error occurred when listing CategoryPersons: %v", err))
	}
	resolve := resolverFor(catalog)
	out := make([]resources.CategoryPersonResource, 0, len(entries))
	for i := range entries {
		out = append(out, resources.FromCategoryPerson(&entries[i], resolve))
	}
	return Ok(out)
}

// Create adds a skill entry. Both the person and the category must exist.
func (s *CategoryPersonService) Create(ctx context.Context, personID uint, req resources.SaveCategoryPersonResource) Result[resources.CategoryPersonResource] {
	if res, ok := ensurePerson[resources.CategoryPersonResource](ctx, s.people, personID); !ok {
		return res
	}
	category, res, ok := s.requireCategory(ctx, req.CategoryID, "saving")
	if !ok {
		return res
	}

	entry := models.CategoryPerson{PersonID: personID, Status: true}
	req.ApplyTo(&entry)
	entry.Category = category

	ctx = s.uow.Begin(ctx)
	if err := s.categoryPersons.Add(ctx, &entry); err != nil {
		return Fail[resources.CategoryPersonResource](FailureStore, fmt.Sprintf("An error occurred when saving the CategoryPerson: %v", err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save category person", zap.Uint("person_id", personID), zap.Error(err))
		return Fail[resources.CategoryPersonResource](FailureStore, fmt.Sprintf("An error occurred when saving the CategoryPerson: %v", err))
	}
	return s.committed(ctx, &entry, events.ActionCreated)
}

func (s *CategoryPersonService) Update(ctx context.Context, id uint, req resources.SaveCategoryPersonResource) Result[resources.CategoryPersonResource] {
	entry, res, ok := s.findForMutation(ctx, id, "updating")
	if !ok {
		return res
	}
	category, res, ok := s.requireCategory(ctx, req.CategoryID, "updating")
	if !ok {
		return res
	}
	req.ApplyTo(entry)
	entry.Category = category
	return s.save(ctx, entry, "updating", events.ActionUpdated)
}

func (s *CategoryPersonService) Delete(ctx context.Context, id uint) Result[resources.CategoryPersonResource] {
	entry, res, ok := s.findForMutation(ctx, id, "deleting")
	if !ok {
		return res
	}
	entry.Status = false
	return s.save(ctx, entry, "deleting", events.ActionDeleted)
}

func (s *CategoryPersonService) requireCategory(ctx context.Context, categoryID uint, verb string) (*models.Category, Result[resources.CategoryPersonResource], bool) {
	category, found, err := requireExisting(ctx, categoryID, s.categories.FindByID)
	if err != nil {
		return nil, Fail[resources.CategoryPersonResource](FailureStore, fmt.Sprintf("An error occurred when %s the CategoryPerson: %v", verb, err)), false
	}
	if !found {
		return nil, categoryNotExistent[resources.CategoryPersonResource](categoryID), false
	}
	return category, Result[resources.CategoryPersonResource]{}, true
}

func (s *CategoryPersonService) findForMutation(ctx context.Context, id uint, verb string) (*models.CategoryPerson, Result[resources.CategoryPersonResource], bool) {
	entry, err := s.categoryPersons.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Fail[resources.CategoryPersonResource](FailureNotFound, msgCategoryPersonNotExistent), false
		}
		return nil, Fail[resources.CategoryPersonResource](FailureStore, fmt.Sprintf("An error occurred when %s the CategoryPerson: %v", verb, err)), false
	}
	return entry, Result[resources.CategoryPersonResource]{}, true
}

func (s *CategoryPersonService) save(ctx context.Context, entry *models.CategoryPerson, verb, action string) Result[resources.CategoryPersonResource] {
	ctx = s.uow.Begin(ctx)
	if err := s.categoryPersons.Update(ctx, entry); err != nil {
		return Fail[resources.CategoryPersonResource](FailureStore, fmt.Sprintf("An error occurred when %s the CategoryPerson: %v", verb, err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save category person", zap.Uint("category_person_id", entry.ID), zap.Error(err))
		return Fail[resources.CategoryPersonResource](FailureStore, fmt.Sprintf("An error occurred when %s the CategoryPerson: %v", verb, err))
	}
	return s.committed(ctx, entry, action)
}

func (s *CategoryPersonService) committed(ctx context.Context, entry *models.CategoryPerson, action string) Result[resources.CategoryPersonResource] {
	resolve := currentResolver(ctx, s.catalog, s.logger)
	res := resources.FromCategoryPerson(entry, resolve)
	s.publisher.Publish(events.New("category_person", action, entry.ID, res))
	return Ok(res)
}
