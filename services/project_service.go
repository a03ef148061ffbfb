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

const msgProjectNotExistent = "Project is not existent."

// ProjectService manages the project history of persons
type ProjectService struct {
	projects  repository.ProjectRepositoryInterface
	people    repository.PersonRepositoryInterface
	groups    repository.GroupRepositoryInterface
	catalog   Catalog
	uow       repository.UnitOfWorkInterface
	publisher events.Publisher
	logger    *zap.Logger
}

func NewProjectService(
	projects repository.ProjectRepositoryInterface,
	people repository.PersonRepositoryInterface,
	groups repository.GroupRepositoryInterface,
	catalog Catalog,
	uow repository.UnitOfWorkInterface,
	publisher events.Publisher,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projects:  projects,
		people:    people,
		groups:    groups,
		catalog:   catalog,
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// ListByPerson returns a person's active projects with technology tags resolved
func (s *ProjectService) ListByPerson(ctx context.Context, personID uint) Result[[]resources.ProjectResource] {
	if res, ok := ensurePerson[[]resources.ProjectResource](ctx, s.people, personID); !ok {
		return res
	}
	projects, err := s.projects.ListByPerson(ctx, personID)
	if err != nil {
		return Fail[[]resources.ProjectResource](FailureStore, fmt.Sprintf("An error occurred when listing Projects: %v", err))
	}
	catalog, err := s.catalog.All(ctx)
	if err != nil {
		return Fail[[]resources.ProjectResource](FailureStore, fmt.Sprintf("An error occurred when listing Projects: %v", err))
	}
	resolve := resolverFor(catalog)
	out := make([]resources.ProjectResource, 0, len(projects))
	for i := range projects {
		out = append(out, resources.FromProject(&projects[i], resolve))
	}
	return Ok(out)
}

// Create adds a project to a person. An unknown group reference is cleared.
func (s *ProjectService) Create(ctx context.Context, personID uint, req resources.SaveProjectResource) Result[resources.ProjectResource] {
	if res, ok := ensurePerson[resources.ProjectResource](ctx, s.people, personID); !ok {
		return res
	}

	project := models.Project{PersonID: personID, Status: true}
	req.ApplyTo(&project)
	if err := s.resolveGroup(ctx, &project); err != nil {
		return Fail[resources.ProjectResource](FailureStore, fmt.Sprintf("An error occurred when saving the Project: %v", err))
	}

	ctx = s.uow.Begin(ctx)
	if err := s.projects.Add(ctx, &project); err != nil {
		return Fail[resources.ProjectResource](FailureStore, fmt.Sprintf("An error occurred when saving the Project: %v", err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save project", zap.Uint("person_id", personID), zap.Error(err))
		return Fail[resources.ProjectResource](FailureStore, fmt.Sprintf("An error occurred when saving the Project: %v", err))
	}
	return s.committed(ctx, &project, events.ActionCreated)
}

func (s *ProjectService) Update(ctx context.Context, id uint, req resources.SaveProjectResource) Result[resources.ProjectResource] {
	project, res, ok := s.findForMutation(ctx, id, "updating")
	if !ok {
		return res
	}
	req.ApplyTo(project)
	if err := s.resolveGroup(ctx, project); err != nil {
		return Fail[resources.ProjectResource](FailureStore, fmt.Sprintf("An error occurred when updating the Project: %v", err))
	}
	return s.save(ctx, project, "updating", events.ActionUpdated)
}

func (s *ProjectService) Delete(ctx context.Context, id uint) Result[resources.ProjectResource] {
	project, res, ok := s.findForMutation(ctx, id, "deleting")
	if !ok {
		return res
	}
	project.Status = false
	return s.save(ctx, project, "deleting", events.ActionDeleted)
}

func (s *ProjectService) resolveGroup(ctx context.Context, project *models.Project) error {
	group, err := resolveOptional(ctx, project.GroupID, s.groups.FindByID)
	if err != nil {
		return err
	}
	if group == nil {
		project.GroupID = nil
	}
	project.Group = group
	return nil
}

func (s *ProjectService) findForMutation(ctx context.Context, id uint, verb string) (*models.Project, Result[resources.ProjectResource], bool) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Fail[resources.ProjectResource](FailureNotFound, msgProjectNotExistent), false
		}
		return nil, Fail[resources.ProjectResource](FailureStore, fmt.Sprintf("An error occurred when %s the Project: %v", verb, err)), false
	}
	return project, Result[resources.ProjectResource]{}, true
}

func (s *ProjectService) save(ctx context.Context, project *models.Project, verb, action string) Result[resources.ProjectResource] {
	ctx = s.uow.Begin(ctx)
	if err := s.projects.Update(ctx, project); err != nil {
		return Fail[resources.ProjectResource](FailureStore, fmt.Sprintf("An error occurred when %s the Project: %v", verb, err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save project", zap.Uint("project_id", project.ID), zap.Error(err))
		return Fail[resources.ProjectResource](FailureStore, fmt.Sprintf("An error occurred when %s the Project: %v", verb, err))
	}
	return s.committed(ctx, project, action)
}

func (s *ProjectService) committed(ctx context.Context, project *models.Project, action string) Result[resources.ProjectResource] {
	resolve := currentResolver(ctx, s.catalog, s.logger)
	res := resources.FromProject(project, resolve)
	s.publisher.Publish(events.New("project", action, project.ID, res))
	return Ok(res)
}
