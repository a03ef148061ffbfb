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

const msgEducationNotExistent = "Education is not existent."

// EducationService manages the education history of persons
type EducationService struct {
	educations repository.EducationRepositoryInterface
	people     repository.PersonRepositoryInterface
	uow        repository.UnitOfWorkInterface
	publisher  events.Publisher
	logger     *zap.Logger
}

func NewEducationService(
	educations repository.EducationRepositoryInterface,
	people repository.PersonRepositoryInterface,
	uow repository.UnitOfWorkInterface,
	publisher events.Publisher,
	logger *zap.Logger,
) *EducationService {
	return &EducationService{educations: educations, people: people, uow: uow, publisher: publisher, logger: logger}
}

func (s *EducationService) ListByPerson(ctx context.Context, personID uint) Result[[]resources.EducationResource] {
	if res, ok := ensurePerson[[]resources.EducationResource](ctx, s.people, personID); !ok {
		return res
	}
	educations, err := s.educations.ListByPerson(ctx, personID)
	if err != nil {
		return Fail[[]resources.EducationResource](FailureStore, fmt.Sprintf("An error occurred when listing Educations: %v", err))
	}
	out := make([]resources.EducationResource, 0, len(educations))
	for i := range educations {
		out = append(out, resources.FromEducation(&educations[i]))
	}
	return Ok(out)
}

func (s *EducationService) Create(ctx context.Context, personID uint, req resources.SaveEducationResource) Result[resources.EducationResource] {
	if res, ok := ensurePerson[resources.EducationResource](ctx, s.people, personID); !ok {
		return res
	}

	education := models.Education{PersonID: personID, Status: true}
	req.ApplyTo(&education)

	ctx = s.uow.Begin(ctx)
	if err := s.educations.Add(ctx, &education); err != nil {
		return Fail[resources.EducationResource](FailureStore, fmt.Sprintf("An error occurred when saving the Education: %v", err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save education", zap.Uint("person_id", personID), zap.Error(err))
		return Fail[resources.EducationResource](FailureStore, fmt.Sprintf("An error occurred when saving the Education: %v", err))
	}

	res := resources.FromEducation(&education)
	s.publisher.Publish(events.New("education", events.ActionCreated, education.ID, res))
	return Ok(res)
}

func (s *EducationService) Update(ctx context.Context, id uint, req resources.SaveEducationResource) Result[resources.EducationResource] {
	education, res, ok := s.findForMutation(ctx, id, "updating")
	if !ok {
		return res
	}
	req.ApplyTo(education)
	return s.save(ctx, education, "updating", events.ActionUpdated)
}

func (s *EducationService) Delete(ctx context.Context, id uint) Result[resources.EducationResource] {
	education, res, ok := s.findForMutation(ctx, id, "deleting")
	if !ok {
		return res
	}
	education.Status = false
	return s.save(ctx, education, "deleting", events.ActionDeleted)
}

func (s *EducationService) findForMutation(ctx context.Context, id uint, verb string) (*models.Education, Result[resources.EducationResource], bool) {
	education, err := s.educations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Fail[resources.EducationResource](FailureNotFound, msgEducationNotExistent), false
		}
		return nil, Fail[resources.EducationResource](FailureStore, fmt.Sprintf("An error occurred when %s the Education: %v", verb, err)), false
	}
	return education, Result[resources.EducationResource]{}, true
}

func (s *EducationService) save(ctx context.Context, education *models.Education, verb, action string) Result[resources.EducationResource] {
	ctx = s.uow.Begin(ctx)
	if err := s.educations.Update(ctx, education); err != nil {
		return Fail[resources.EducationResource](FailureStore, fmt.Sprintf("An error occurred when %s the Education: %v", verb, err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save education", zap.Uint("education_id", education.ID), zap.Error(err))
		return Fail[resources.EducationResource](FailureStore, fmt.Sprintf("An error occurred when %s the Education: %v", verb, err))
	}
	res := resources.FromEducation(education)
	s.publisher.Publish(events.New("education", action, education.ID, res))
	return Ok(res)
}

// ensurePerson checks that the owning person of a sub-resource exists
func ensurePerson[T any](ctx context.Context, people repository.PersonRepositoryInterface, personID uint) (Result[T], bool) {
	_, found, err := requireExisting(ctx, personID, people.FindByID)
	if err != nil {
		return Fail[T](FailureStore, fmt.Sprintf("An error occurred when finding the Person: %v", err)), false
	}
	if !found {
		return Fail[T](FailureNotFound, msgPersonNotExistent), false
	}
	return Result[T]{}, true
}
