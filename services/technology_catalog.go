package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/cache"
	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/repository"
)

// Catalog serves the full active technology list
type Catalog interface {
	All(ctx context.Context) ([]models.Technology, error)
}

// CatalogCache is the read-through store in front of the technology repository
type CatalogCache interface {
	GetTechnologies(ctx context.Context) ([]models.Technology, error)
	SetTechnologies(ctx context.Context, technologies []models.Technology) error
	Invalidate(ctx context.Context) error
}

// TechnologyCatalog reads the catalog through an optional cache. Cache failures
// are logged and fall back to the repository.
type TechnologyCatalog struct {
	technologies repository.TechnologyRepositoryInterface
	cache        CatalogCache
	logger       *zap.Logger
}

// NewTechnologyCatalog creates a catalog. cache may be nil.
func NewTechnologyCatalog(technologies repository.TechnologyRepositoryInterface, cache CatalogCache, logger *zap.Logger) *TechnologyCatalog {
	return &TechnologyCatalog{technologies: technologies, cache: cache, logger: logger}
}

func (c *TechnologyCatalog) All(ctx context.Context) ([]models.Technology, error) {
	if c.cache != nil {
		cached, err := c.cache.GetTechnologies(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			c.logger.Warn("technology cache read failed", zap.Error(err))
		}
	}

	technologies, err := c.technologies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load technology catalog: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.SetTechnologies(ctx, technologies); err != nil {
			c.logger.Warn("technology cache write failed", zap.Error(err))
		}
	}
	return technologies, nil
}

// Invalidate drops the cached catalog after a technology mutation
func (c *TechnologyCatalog) Invalidate(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Invalidate(ctx); err != nil {
		c.logger.Warn("technology cache invalidation failed", zap.Error(err))
	}
}
