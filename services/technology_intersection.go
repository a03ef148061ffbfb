package services

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/resources"
)

// normalizeTechnologyName folds case and drops all whitespace, so "Node JS" matches "nodejs"
func normalizeTechnologyName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// IntersectTechnologies returns the catalog entries named by tags, in catalog order.
// A tag names an entry either by its numeric ID or by its normalized name.
// Catalog entries not named by any tag are excluded.
func IntersectTechnologies(tags models.TechnologyTags, catalog []models.Technology) []resources.TechnologyResource {
	out := []resources.TechnologyResource{}
	if len(tags) == 0 || len(catalog) == 0 {
		return out
	}

	names := make(map[string]struct{}, len(tags))
	ids := make(map[uint]struct{}, len(tags))
	for _, tag := range tags {
		if id, err := strconv.ParseUint(strings.TrimSpace(tag), 10, 64); err == nil {
			ids[uint(id)] = struct{}{}
			continue
		}
		names[normalizeTechnologyName(tag)] = struct{}{}
	}

	for i := range catalog {
		_, byID := ids[catalog[i].ID]
		_, byName := names[normalizeTechnologyName(catalog[i].Name)]
		if byID || byName {
			out = append(out, resources.FromTechnology(&catalog[i]))
		}
	}
	return out
}

// resolverFor binds a catalog snapshot into a resolver for the resource mappers
func resolverFor(catalog []models.Technology) resources.TechnologyResolver {
	return func(tags models.TechnologyTags) []resources.TechnologyResource {
		return IntersectTechnologies(tags, catalog)
	}
}

// currentResolver resolves against the catalog as it is now. It is used after a
// commit, where a catalog failure only leaves the technologies unresolved.
func currentResolver(ctx context.Context, catalog Catalog, logger *zap.Logger) resources.TechnologyResolver {
	technologies, err := catalog.All(ctx)
	if err != nil {
		logger.Warn("technology catalog unavailable, returning unresolved technologies", zap.Error(err))
		return resolverFor(nil)
	}
	return resolverFor(technologies)
}
