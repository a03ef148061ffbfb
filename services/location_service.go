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

const msgLocationNotExistent = "Location is not existent."

// LocationService manages office locations
type LocationService struct {
	locations repository.LocationRepositoryInterface
	uow       repository.UnitOfWorkInterface
	publisher events.Publisher
	logger    *zap.Logger
}

func NewLocationService(
	locations repository.LocationRepositoryInterface,
	uow repository.UnitOfWorkInterface,
	publisher events.Publisher,
	logger *zap.Logger,
) *LocationService {
	return &LocationService{locations: locations, uow: uow, publisher: publisher, logger: logger}
}

func (s *LocationService) List(ctx context.Context) Result[[]resources.LocationResource] {
	locations, err := s.locations.List(ctx)
	if err != nil {
		return Fail[[]resources.LocationResource](FailureStore, fmt.Sprintf("An error occurred when listing Locations: %v", err))
	}
	out := make([]resources.LocationResource, 0, len(locations))
	for i := range locations {
		out = append(out, *resources.FromLocation(&locations[i]))
	}
	return Ok(out)
}

func (s *LocationService) FindByID(ctx context.Context, id uint) Result[resources.LocationResource] {
	location, err := s.locations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Fail[resources.LocationResource](FailureNotFound, fmt.Sprintf("Id '%d' is not existent.", id))
		}
		return Fail[resources.LocationResource](FailureStore, fmt.Sprintf("An error occurred when finding the Location: %v", err))
	}
	return Ok(*resources.FromLocation(location))
}

func (s *LocationService) Create(ctx context.Context, req resources.SaveLocationResource) Result[resources.LocationResource] {
	location := req.ToModel()

	ctx = s.uow.Begin(ctx)
	if err := s.locations.Add(ctx, &location); err != nil {
		return Fail[resources.LocationResource](FailureStore, fmt.Sprintf("An error occurred when saving the Location: %v", err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save location", zap.String("name", location.Name), zap.Error(err))
		return Fail[resources.LocationResource](FailureStore, fmt.Sprintf("An error occurred when saving the Location: %v", err))
	}

	res := *resources.FromLocation(&location)
	s.publisher.Publish(events.New("location", events.ActionCreated, location.ID, res))
	return Ok(res)
}

func (s *LocationService) Update(ctx context.Context, id uint, req resources.SaveLocationResource) Result[resources.LocationResource] {
	location, res, ok := s.findForMutation(ctx, id, "updating")
	if !ok {
		return res
	}
	req.ApplyTo(location)
	return s.save(ctx, location, "updating", events.ActionUpdated)
}

// Delete marks a location inactive. Persons keep their reference to it.
func (s *LocationService) Delete(ctx context.Context, id uint) Result[resources.LocationResource] {
	location, res, ok := s.findForMutation(ctx, id, "deleting")
	if !ok {
		return res
	}
	location.Status = false
	return s.save(ctx, location, "deleting", events.ActionDeleted)
}

func (s *LocationService) findForMutation(ctx context.Context, id uint, verb string) (*models.Location, Result[resources.LocationResource], bool) {
	location, err := s.locations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Fail[resources.LocationResource](FailureNotFound, msgLocationNotExistent), false
		}
		return nil, Fail[resources.LocationResource](FailureStore, fmt.Sprintf("An error occurred when %s the Location: %v", verb, err)), false
	}
	return location, Result[resources.LocationResource]{}, true
}

func (s *LocationService) save(ctx context.Context, location *models.Location, verb, action string) Result[resources.LocationResource] {
	ctx = s.uow.Begin(ctx)
	if err := s.locations.Update(ctx, location); err != nil {
		return Fail[resources.LocationResource](FailureStore, fmt.Sprintf("An error occurred when %s the Location: %v", verb, err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save location", zap.Uint("location_id", location.ID), zap.Error(err))
		return Fail[resources.LocationResource](FailureStore, fmt.Sprintf("An error occurred when %s the Location: %v", verb, err))
	}

	res := *resources.FromLocation(location)
	s.publisher.Publish(events.New("location", action, location.ID, res))
	return Ok(res)
}
