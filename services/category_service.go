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

const msgCategoryNotExistent = "Category is not existent."

// CategoryService manages technology categories
type CategoryService struct {
	categories repository.CategoryRepositoryInterface
	catalog    *TechnologyCatalog
	uow        repository.UnitOfWorkInterface
	publisher  events.Publisher
	logger     *zap.Logger
}

func NewCategoryService(
	categories repository.CategoryRepositoryInterface,
	catalog *TechnologyCatalog,
	uow repository.UnitOfWorkInterface,
	publisher events.Publisher,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categories: categories,
		catalog:    catalog,
		uow:        uow,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *CategoryService) List(ctx context.Context) Result[[]resources.CategoryResource] {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return Fail[[]resources.CategoryResource](FailureStore, fmt.Sprintf("An error occurred when listing Categories: %v", err))
	}
	out := make([]resources.CategoryResource, 0, len(categories))
	for i := range categories {
		out = append(out, resources.FromCategory(&categories[i]))
	}
	return Ok(out)
}

func (s *CategoryService) FindByID(ctx context.Context, id uint) Result[resources.CategoryResource] {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Fail[resources.CategoryResource](FailureNotFound, fmt.Sprintf("Id '%d' is not existent.", id))
		}
		return Fail[resources.CategoryResource](FailureStore, fmt.Sprintf("An error occurred when finding the Category: %v", err))
	}
	return Ok(resources.FromCategory(category))
}

func (s *CategoryService) Create(ctx context.Context, req resources.SaveCategoryResource) Result[resources.CategoryResource] {
	category := req.ToModel()
	category.Name = cleanName(category.Name)

	ctx = s.uow.Begin(ctx)
	if err := s.categories.Add(ctx, &category); err != nil {
		return Fail[resources.CategoryResource](FailureStore, fmt.Sprintf("An error occurred when saving the Category: %v", err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save category", zap.String("name", category.Name), zap.Error(err))
		return Fail[resources.CategoryResource](FailureStore, fmt.Sprintf("An error occurred when saving the Category: %v", err))
	}

	res := resources.FromCategory(&category)
	s.publisher.Publish(events.New("category", events.ActionCreated, category.ID, res))
	return Ok(res)
}

func (s *CategoryService) Update(ctx context.Context, id uint, req resources.SaveCategoryResource) Result[resources.CategoryResource] {
	category, res, ok := s.findForMutation(ctx, id, "updating")
	if !ok {
		return res
	}
	category.Name = cleanName(req.Name)
	return s.save(ctx, category, "updating", events.ActionUpdated)
}

// Delete marks a category inactive. Its technologies drop out of category listings
// but remain in the catalog until deleted themselves.
func (s *CategoryService) Delete(ctx context.Context, id uint) Result[resources.CategoryResource] {
	category, res, ok := s.findForMutation(ctx, id, "deleting")
	if !ok {
		return res
	}
	category.Status = false
	return s.save(ctx, category, "deleting", events.ActionDeleted)
}

func (s *CategoryService) findForMutation(ctx context.Context, id uint, verb string) (*models.Category, Result[resources.CategoryResource], bool) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Fail[resources.CategoryResource](FailureNotFound, msgCategoryNotExistent), false
		}
		return nil, Fail[resources.CategoryResource](FailureStore, fmt.Sprintf("An error occurred when %s the Category: %v", verb, err)), false
	}
	return category, Result[resources.CategoryResource]{}, true
}

func (s *CategoryService) save(ctx context.Context, category *models.Category, verb, action string) Result[resources.CategoryResource] {
	ctx = s.uow.Begin(ctx)
	if err := s.categories.Update(ctx, category); err != nil {
		return Fail[resources.CategoryResource](FailureStore, fmt.Sprintf("An error occurred when %s the Category: %v", verb, err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save category", zap.Uint("category_id", category.ID), zap.Error(err))
		return Fail[resources.CategoryResource](FailureStore, fmt.Sprintf("An error occurred when %s the Category: %v", verb, err))
	}

	s.catalog.Invalidate(ctx)
	res := resources.FromCategory(category)
	s.publisher.Publish(events.New("category", action, category.ID, res))
	return Ok(res)
}
