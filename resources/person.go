package resources

import (
	"time"

	"github.com/camden-git/hrmbackend/models"
)

// PersonResource is the response shape of a person with references and sub-resources embedded
type PersonResource struct {
	ID              uint                     `json:"id"`
	StaffID         string                   `json:"staff_id"`
	FirstName       string                   `json:"first_name"`
	LastName        string                   `json:"last_name"`
	Email           string                   `json:"email"`
	Phone           string                   `json:"phone"`
	Avatar          string                   `json:"avatar"`
	Description     string                   `json:"description"`
	YearOfBirth     time.Time                `json:"year_of_birth"`
	Gender          models.Gender            `json:"gender"`
	CreatedBy       string                   `json:"created_by"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
	Status          bool                     `json:"status"`
	OrderIndex      []int                    `json:"order_index"`
	Location        *LocationResource        `json:"location"`
	Group           *GroupResource           `json:"group"`
	Projects        []ProjectResource        `json:"projects"`
	CategoryPersons []CategoryPersonResource `json:"category_persons"`
	Educations      []EducationResource      `json:"educations"`
}

// CreatePersonResource is the request body for creating a person
type CreatePersonResource struct {
	StaffID     string        `json:"staff_id" validate:"required,max=25"`
	FirstName   string        `json:"first_name" validate:"required,max=500"`
	LastName    string        `json:"last_name" validate:"required,max=500"`
	Email       string        `json:"email" validate:"omitempty,email,max=500"`
	Phone       string        `json:"phone" validate:"max=25"`
	Avatar      string        `json:"avatar" validate:"max=500"`
	Description string        `json:"description" validate:"max=500"`
	YearOfBirth time.Time     `json:"year_of_birth" validate:"required"`
	Gender      models.Gender `json:"gender" validate:"gte=0,lte=2"`
	LocationID  *uint         `json:"location_id"`
	GroupID     *uint         `json:"group_id"`
}

// UpdatePersonResource replaces every updatable field of a person
type UpdatePersonResource CreatePersonResource

// ComponentResource carries the raw order-index values; elements are coerced by the service
type ComponentResource struct {
	OrderIndex []interface{} `json:"order_index" validate:"required"`
}

func (r CreatePersonResource) ToModel() models.Person {
	return models.Person{
		StaffID:     r.StaffID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		Avatar:      r.Avatar,
		Description: r.Description,
		YearOfBirth: r.YearOfBirth,
		Gender:      r.Gender,
		LocationID:  r.LocationID,
		GroupID:     r.GroupID,
	}
}

// ApplyTo overwrites the updatable fields of p, including clearing optional references
func (r UpdatePersonResource) ApplyTo(p *models.Person) {
	p.StaffID = r.StaffID
	p.FirstName = r.FirstName
	p.LastName = r.LastName
	p.Email = r.Email
	p.Phone = r.Phone
	p.Avatar = r.Avatar
	p.Description = r.Description
	p.YearOfBirth = r.YearOfBirth
	p.Gender = r.Gender
	p.LocationID = r.LocationID
	p.GroupID = r.GroupID
}

// FromPerson maps a person and its loaded associations. Technology tags on
// projects, skill entries and the group are passed through resolve.
func FromPerson(p *models.Person, resolve TechnologyResolver) PersonResource {
	orderIndex := []int(p.OrderIndex)
	if orderIndex == nil {
		orderIndex = []int{}
	}

	res := PersonResource{
		ID:              p.ID,
		StaffID:         p.StaffID,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Email:           p.Email,
		Phone:           p.Phone,
		Avatar:          p.Avatar,
		Description:     p.Description,
		YearOfBirth:     p.YearOfBirth,
		Gender:          p.Gender,
		CreatedBy:       p.CreatedBy,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		Status:          p.Status,
		OrderIndex:      orderIndex,
		Location:        FromLocation(p.Location),
		Group:           FromGroup(p.Group, resolve),
		Projects:        make([]ProjectResource, 0, len(p.Projects)),
		CategoryPersons: make([]CategoryPersonResource, 0, len(p.CategoryPersons)),
		Educations:      make([]EducationResource, 0, len(p.Educations)),
	}
	for i := range p.Projects {
		res.Projects = append(res.Projects, FromProject(&p.Projects[i], resolve))
	}
	for i := range p.CategoryPersons {
		res.CategoryPersons = append(res.CategoryPersons, FromCategoryPerson(&p.CategoryPersons[i], resolve))
	}
	for i := range p.Educations {
		res.Educations = append(res.Educations, FromEducation(&p.Educations[i]))
	}
	return res
}
