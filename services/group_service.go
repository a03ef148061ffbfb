package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/facette/natsort"
	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/events"
	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/repository"
	"github.com/camden-git/hrmbackend/resources"
)

const msgGroupNotExistent = "Group is not existent."

// GroupService manages teams and resolves their technology tags
type GroupService struct {
	groups    repository.GroupRepositoryInterface
	catalog   Catalog
	uow       repository.UnitOfWorkInterface
	publisher events.Publisher
	logger    *zap.Logger
}

func NewGroupService(
	groups repository.GroupRepositoryInterface,
	catalog Catalog,
	uow repository.UnitOfWorkInterface,
	publisher events.Publisher,
	logger *zap.Logger,
) *GroupService {
	return &GroupService{groups: groups, catalog: catalog, uow: uow, publisher: publisher, logger: logger}
}

func (s *GroupService) List(ctx context.Context) Result[[]resources.GroupResource] {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return Fail[[]resources.GroupResource](FailureStore, fmt.Sprintf("An error occurred when listing Groups: %v", err))
	}
	return s.mapGroups(ctx, groups)
}

// Search matches active groups by name ignoring case and whitespace, in natural name order
func (s *GroupService) Search(ctx context.Context, name string) Result[[]resources.GroupResource] {
	term := strings.ToLower(strings.Join(strings.Fields(name), ""))
	groups, err := s.groups.SearchByName(ctx, term)
	if err != nil {
		return Fail[[]resources.GroupResource](FailureStore, fmt.Sprintf("An error occurred when searching Groups: %v", err))
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return natsort.Compare(strings.ToLower(groups[i].Name), strings.ToLower(groups[j].Name))
	})
	return s.mapGroups(ctx, groups)
}

func (s *GroupService) FindByID(ctx context.Context, id uint) Result[resources.GroupResource] {
	group, err := s.groups.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Fail[resources.GroupResource](FailureNotFound, fmt.Sprintf("Id '%d' is not existent.", id))
		}
		return Fail[resources.GroupResource](FailureStore, fmt.Sprintf("An error occurred when finding the Group: %v", err))
	}
	catalog, err := s.catalog.All(ctx)
	if err != nil {
		return Fail[resources.GroupResource](FailureStore, fmt.Sprintf("An error occurred when finding the Group: %v", err))
	}
	return Ok(*resources.FromGroup(group, resolverFor(catalog)))
}

func (s *GroupService) Create(ctx context.Context, req resources.SaveGroupResource) Result[resources.GroupResource] {
	group := req.ToModel()
	group.Name = cleanName(group.Name)

	ctx = s.uow.Begin(ctx)
	if err := s.groups.Add(ctx, &group); err != nil {
		return Fail[resources.GroupResource](FailureStore, fmt.Sprintf("An error occurred when saving the Group: %v", err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save group", zap.String("name", group.Name), zap.Error(err))
		return Fail[resources.GroupResource](FailureStore, fmt.Sprintf("An error occurred when saving the Group: %v", err))
	}
	return s.committed(ctx, &group, events.ActionCreated)
}

func (s *GroupService) Update(ctx context.Context, id uint, req resources.SaveGroupResource) Result[resources.GroupResource] {
	group, res, ok := s.findForMutation(ctx, id, "updating")
	if !ok {
		return res
	}
	req.ApplyTo(group)
	group.Name = cleanName(group.Name)
	return s.save(ctx, group, "updating", events.ActionUpdated)
}

func (s *GroupService) Delete(ctx context.Context, id uint) Result[resources.GroupResource] {
	group, res, ok := s.findForMutation(ctx, id, "deleting")
	if !ok {
		return res
	}
	group.Status = false
	return s.save(ctx, group, "deleting", events.ActionDeleted)
}

func (s *GroupService) mapGroups(ctx context.Context, groups []models.Group) Result[[]resources.GroupResource] {
	catalog, err := s.catalog.All(ctx)
	if err != nil {
		return Fail[[]resources.GroupResource](FailureStore, fmt.Sprintf("An error occurred when listing Groups: %v", err))
	}
	resolve := resolverFor(catalog)
	out := make([]resources.GroupResource, 0, len(groups))
	for i := range groups {
		out = append(out, *resources.FromGroup(&groups[i], resolve))
	}
	return Ok(out)
}

func (s *GroupService) findForMutation(ctx context.Context, id uint, verb string) (*models.Group, Result[resources.GroupResource], bool) {
	group, err := s.groups.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Fail[resources.GroupResource](FailureNotFound, msgGroupNotExistent), false
		}
		return nil, Fail[resources.GroupResource](FailureStore, fmt.Sprintf("An error occurred when %s the Group: %v", verb, err)), false
	}
	return group, Result[resources.GroupResource]{}, true
}

func (s *GroupService) save(ctx context.Context, group *models.Group, verb, action string) Result[resources.GroupResource] {
	ctx = s.uow.Begin(ctx)
	if err := s.groups.Update(ctx, group); err != nil {
		return Fail[resources.GroupResource](FailureStore, fmt.Sprintf("An error occurred when %s the Group: %v", verb, err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save group", zap.Uint("group_id", group.ID), zap.Error(err))
		return Fail[resources.GroupResource](FailureStore, fmt.Sprintf("An error occurred when %s the Group: %v", verb, err))
	}
	return s.committed(ctx, group, action)
}

func (s *GroupService) committed(ctx context.Context, group *models.Group, action string) Result[resources.GroupResource] {
	resolve := currentResolver(ctx, s.catalog, s.logger)
	res := *resources.FromGroup(group, resolve)
	s.publisher.Publish(events.New("group", action, group.ID, res))
	return Ok(res)
}
