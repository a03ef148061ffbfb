package services

import (
	"context"
	"errors"

	"github.com/camden-git/hrmbackend/repository"
)

// resolveOptional looks up an optional reference. A missing row yields nil
// without an error, so the caller clears the reference.
func resolveOptional[T any](ctx context.Context, id *uint, find func(context.Context, uint) (*T, error)) (*T, error) {
	if id == nil {
		return nil, nil
	}
	entity, err := find(ctx, *id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entity, nil
}

// requireExisting looks up a mandatory reference. A missing row is reported
// through found=false; other errors are returned as-is.
func requireExisting[T any](ctx context.Context, id uint, find func(context.Context, uint) (*T, error)) (entity *T, found bool, err error) {
	entity, err = find(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return entity, true, nil
}
