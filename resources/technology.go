package resources

import "github.com/camden-git/hrmbackend/models"

// TechnologyResource is the wire shape of a catalog entry
type TechnologyResource struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
	Status     bool   `json:"status"`
}

// SaveTechnologyResource is the request body for creating or renaming a technology
type SaveTechnologyResource struct {
	Name       string `json:"name" validate:"required,max=250"`
	CategoryID uint   `json:"category_id" validate:"required"`
}

// CategoryResource is the wire shape of a category with its active technologies
type CategoryResource struct {
	ID           uint                 `json:"id"`
	Name         string               `json:"name"`
	Status       bool                 `json:"status"`
	Technologies []TechnologyResource `json:"technologies"`
}

type SaveCategoryResource struct {
	Name string `json:"name" validate:"required,max=250"`
}

// TechnologyResolver turns a tag list into the catalog entries it names
type TechnologyResolver func(tags models.TechnologyTags) []TechnologyResource

func FromTechnology(t *models.Technology) TechnologyResource {
	return TechnologyResource{
		ID:         t.ID,
		Name:       t.Name,
		CategoryID: t.CategoryID,
		Status:     t.Status,
	}
}

func FromTechnologies(technologies []models.Technology) []TechnologyResource {
	out := make([]TechnologyResource, 0, len(technologies))
	for i := range technologies {
		out = append(out, FromTechnology(&technologies[i]))
	}
	return out
}

func FromCategory(c *models.Category) CategoryResource {
	return CategoryResource{
		ID:           c.ID,
		Name:         c.Name,
		Status:       c.Status,
		Technologies: FromTechnologies(c.Technologies),
	}
}

func (r SaveTechnologyResource) ToModel() models.Technology {
	return models.Technology{Name: r.Name, CategoryID: r.CategoryID, Status: true}
}

func (r SaveCategoryResource) ToModel() models.Category {
	return models.Category{Name: r.Name, Status: true}
}
