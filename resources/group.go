package resources

import (
	"time"

	"github.com/camden-git/hrmbackend/models"
)

// GroupResource is the wire shape of a group with its technology tags resolved
type GroupResource struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	TeamSize    int                  `json:"team_size"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     *time.Time           `json:"end_date,omitempty"`
	Technology  []TechnologyResource `json:"technology"`
	Status      bool                 `json:"status"`
}

type SaveGroupResource struct {
	Name        string     `json:"name" validate:"required,max=250"`
	Description string     `json:"description" validate:"required,max=250"`
	TeamSize    int        `json:"team_size" validate:"gte=0"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	Technology  []string   `json:"technology" validate:"dive,required,max=100"`
}

func FromGroup(g *models.Group, resolve TechnologyResolver) *GroupResource {
	if g == nil {
		return nil
	}
	return &GroupResource{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		TeamSize:    g.TeamSize,
		StartDate:   g.StartDate,
		EndDate:     g.EndDate,
		Technology:  resolve(g.Technology),
		Status:      g.Status,
	}
}

func (r SaveGroupResource) ToModel() models.Group {
	g := models.Group{Status: true}
	r.ApplyTo(&g)
	return g
}

func (r SaveGroupResource) ApplyTo(g *models.Group) {
	g.Name = r.Name
	g.Description = r.Description
	g.TeamSize = r.TeamSize
	g.StartDate = r.StartDate
	g.EndDate = r.EndDate
	g.Technology = models.NewTechnologyTags(r.Technology)
}
