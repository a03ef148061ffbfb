package resources

import (
	"time"

	"github.com/camden-git/hrmbackend/models"
)

type ProjectResource struct {
	ID               uint                 `json:"id"`
	PersonID         uint                 `json:"person_id"`
	GroupID          *uint                `json:"group_id"`
	GroupName        string               `json:"group_name,omitempty"`
	Name             string               `json:"name"`
	Position         string               `json:"position"`
	Responsibilities string               `json:"responsibilities"`
	Technology       []TechnologyResource `json:"technology"`
	OrderIndex       int                  `json:"order_index"`
	Status           bool                 `json:"status"`
}

type SaveProjectResource struct {
	GroupID          *uint    `json:"group_id"`
	Name             string   `json:"name" validate:"required,max=250"`
	Position         string   `json:"position" validate:"max=250"`
	Responsibilities string   `json:"responsibilities" validate:"max=1000"`
	Technology       []string `json:"technology" validate:"dive,required,max=100"`
	OrderIndex       int      `json:"order_index" validate:"gte=0"`
}

type CategoryPersonResource struct {
	ID           uint                 `json:"id"`
	PersonID     uint                 `json:"person_id"`
	CategoryID   uint                 `json:"category_id"`
	CategoryName string               `json:"category_name,omitempty"`
	Technology   []TechnologyResource `json:"technology"`
	OrderIndex   int                  `json:"order_index"`
	Status       bool                 `json:"status"`
}

type SaveCategoryPersonResource struct {
	CategoryID uint     `json:"category_id" validate:"required"`
	Technology []string `json:"technology" validate:"dive,required,max=100"`
	OrderIndex int      `json:"order_index" validate:"gte=0"`
}

type EducationResource struct {
	ID          uint       `json:"id"`
	PersonID    uint       `json:"person_id"`
	CollegeName string     `json:"college_name"`
	Major       string     `json:"major"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	OrderIndex  int        `json:"order_index"`
	Status      bool       `json:"status"`
}

type SaveEducationResource struct {
	CollegeName string     `json:"college_name" validate:"required,max=250"`
	Major       string     `json:"major" validate:"required,max=250"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	OrderIndex  int        `json:"order_index" validate:"gte=0"`
}

func FromProject(p *models.Project, resolve TechnologyResolver) ProjectResource {
	res := ProjectResource{
		ID:               p.ID,
		PersonID:         p.PersonID,
		GroupID:          p.GroupID,
		Name:             p.Name,
		Position:         p.Position,
		Responsibilities: p.Responsibilities,
		Technology:       resolve(p.Technology),
		OrderIndex:       p.OrderIndex,
		Status:           p.Status,
	}
	if p.Group != nil {
		res.GroupName = p.Group.Name
	}
	return res
}

func FromCategoryPerson(c *models.CategoryPerson, resolve TechnologyResolver) CategoryPersonResource {
	res := CategoryPersonResource{
		ID:         c.ID,
		PersonID:   c.PersonID,
		CategoryID: c.CategoryID,
		Technology: resolve(c.Technology),
		OrderIndex: c.OrderIndex,
		Status:     c.Status,
	}
	if c.Category != nil {
		res.CategoryName = c.Category.Name
	}
	return res
}

func FromEducation(e *models.Education) EducationResource {
	return EducationResource{
		ID:          e.ID,
		PersonID:    e.PersonID,
		CollegeName: e.CollegeName,
		Major:       e.Major,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		OrderIndex:  e.OrderIndex,
		Status:      e.Status,
	}
}

func (r SaveProjectResource) ApplyTo(p *models.Project) {
	p.GroupID = r.GroupID
	p.Name = r.Name
	p.Position = r.Position
	p.Responsibilities = r.Responsibilities
	p.Technology = models.NewTechnologyTags(r.Technology)
	p.OrderIndex = r.OrderIndex
}

func (r SaveCategoryPersonResource) ApplyTo(c *models.CategoryPerson) {
	c.CategoryID = r.CategoryID
	c.Technology = models.NewTechnologyTags(r.Technology)
	c.OrderIndex = r.OrderIndex
}

func (r SaveEducationResource) ApplyTo(e *models.Education) {
	e.CollegeName = r.CollegeName
	e.Major = r.Major
	e.StartDate = r.StartDate
	e.EndDate = r.EndDate
	e.OrderIndex = r.OrderIndex
}
