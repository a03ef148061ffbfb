package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/events"
	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/repository"
	"github.com/camden-git/hrmbackend/resources"
)

const msgTechnologyNotExistent = "Technology is not existent."

// TechnologyService manages the technology catalog
type TechnologyService struct {
	technologies repository.TechnologyRepositoryInterface
	categories   repository.CategoryRepositoryInterface
	catalog      *TechnologyCatalog
	uow          repository.UnitOfWorkInterface
	publisher    events.Publisher
	logger       *zap.Logger
}

func NewTechnologyService(
	technologies repository.TechnologyRepositoryInterface,
	categories repository.CategoryRepositoryInterface,
	catalog *TechnologyCatalog,
	uow repository.UnitOfWorkInterface,
	publisher events.Publisher,
	logger *zap.Logger,
) *TechnologyService {
	return &TechnologyService{
		technologies: technologies,
		categories:   categories,
		catalog:      catalog,
		uow:          uow,
		publisher:    publisher,
		logger:       logger,
	}
}

// cleanName trims a name and collapses inner whitespace runs to one space
func cleanName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func categoryNotExistent[T any](id uint) Result[T] {
	return Fail[T](FailureInvalid, fmt.Sprintf("CategoryId '%d' is not existent.", id))
}

// List returns the full active catalog
func (s *TechnologyService) List(ctx context.Context) Result[[]resources.TechnologyResource] {
	technologies, err := s.catalog.All(ctx)
	if err != nil {
		return Fail[[]resources.TechnologyResource](FailureStore, fmt.Sprintf("An error occurred when listing Technologies: %v", err))
	}
	return Ok(resources.FromTechnologies(technologies))
}

// ListByCategory returns the active technologies of an existing category
func (s *TechnologyService) ListByCategory(ctx context.Context, categoryID uint) Result[[]resources.TechnologyResource] {
	_, found, err := requireExisting(ctx, categoryID, s.categories.FindByID)
	if err != nil {
		return Fail[[]resources.TechnologyResource](FailureStore, fmt.Sprintf("An error occurred when listing Technologies: %v", err))
	}
	if !found {
		return categoryNotExistent[[]resources.TechnologyResource](categoryID)
	}

	technologies, err := s.technologies.ListByCategory(ctx, categoryID)
	if err != nil {
		return Fail[[]resources.TechnologyResource](FailureStore, fmt.Sprintf("An error occurred when listing Technologies: %v", err))
	}
	return Ok(resources.FromTechnologies(technologies))
}

func (s *TechnologyService) FindByID(ctx context.Context, id uint) Result[resources.TechnologyResource] {
	technology, err := s.technologies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Fail[resources.TechnologyResource](FailureNotFound, msgTechnologyNotExistent)
		}
		return Fail[resources.TechnologyResource](FailureStore, fmt.Sprintf("An error occurred when finding the Technology: %v", err))
	}
	return Ok(resources.FromTechnology(technology))
}

// Create adds a technology to an existing category
func (s *TechnologyService) Create(ctx context.Context, req resources.SaveTechnologyResource) Result[resources.TechnologyResource] {
	_, found, err := requireExisting(ctx, req.CategoryID, s.categories.FindByID)
	if err != nil {
		return Fail[resources.TechnologyResource](FailureStore, fmt.Sprintf("An error occurred when saving the Technology: %v", err))
	}
	if !found {
		return categoryNotExistent[resources.TechnologyResource](req.CategoryID)
	}

	technology := req.ToModel()
	technology.Name = cleanName(technology.Name)

	ctx = s.uow.Begin(ctx)
	if err := s.technologies.Add(ctx, &technology); err != nil {
		return Fail[resources.TechnologyResource](FailureStore, fmt.Sprintf("An error occurred when saving the Technology: %v", err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save technology", zap.String("name", technology.Name), zap.Error(err))
		return Fail[resources.TechnologyResource](FailureStore, fmt.Sprintf("An error occurred when saving the Technology: %v", err))
	}

	return s.committed(ctx, &technology, events.ActionCreated)
}

// Update renames a technology. The category is not changed.
func (s *TechnologyService) Update(ctx context.Context, id uint, req resources.SaveTechnologyResource) Result[resources.TechnologyResource] {
	technology, res, ok := s.findForMutation(ctx, id, "updating")
	if !ok {
		return res
	}
	technology.Name = cleanName(req.Name)
	return s.save(ctx, technology, "updating", events.ActionUpdated)
}

// Delete marks a technology inactive, removing it from the catalog
func (s *TechnologyService) Delete(ctx context.Context, id uint) Result[resources.TechnologyResource] {
	technology, res, ok := s.findForMutation(ctx, id, "deleting")
	if !ok {
		return res
	}
	technology.Status = false
	return s.save(ctx, technology, "deleting", events.ActionDeleted)
}

func (s *TechnologyService) findForMutation(ctx context.Context, id uint, verb string) (*models.Technology, Result[resources.TechnologyResource], bool) {
	technology, err := s.technologies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Fail[resources.TechnologyResource](FailureNotFound, msgTechnologyNotExistent), false
		}
		return nil, Fail[resources.TechnologyResource](FailureStore, fmt.Sprintf("An error occurred when %s the Technology: %v", verb, err)), false
	}
	return technology, Result[resources.TechnologyResource]{}, true
}

func (s *TechnologyService) save(ctx context.Context, technology *models.Technology, verb, action string) Result[resources.TechnologyResource] {
	ctx = s.uow.Begin(ctx)
	if err := s.technologies.Update(ctx, technology); err != nil {
		return Fail[resources.TechnologyResource](FailureStore, fmt.Sprintf("An error occurred when %s the Technology: %v", verb, err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save technology", zap.Uint("technology_id", technology.ID), zap.Error(err))
		return Fail[resources.TechnologyResource](FailureStore, fmt.Sprintf("An error occurred when %s the Technology: %v", verb, err))
	}
	return s.committed(ctx, technology, action)
}

func (s *TechnologyService) committed(ctx context.Context, technology *models.Technology, action string) Result[resources.TechnologyResource] {
	s.catalog.Invalidate(ctx)
	res := resources.FromTechnology(technology)
	s.publisher.Publish(events.New("technology", action, technology.ID, res))
	return Ok(res)
}
