package resources

import "github.com/camden-git/hrmbackend/models"

type LocationResource struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
}

type SaveLocationResource struct {
	Name        string `json:"name" validate:"required,max=250"`
	Address     string `json:"address" validate:"max=500"`
	Description string `json:"description" validate:"max=500"`
}

func FromLocation(l *models.Location) *LocationResource {
	if l == nil {
		return nil
	}
	return &LocationResource{
		ID:          l.ID,
		Name:        l.Name,
		Address:     l.Address,
		Description: l.Description,
		Status:      l.Status,
	}
}

func (r SaveLocationResource) ToModel() models.Location {
	return models.Location{Name: r.Name, Address: r.Address, Description: r.Description, Status: true}
}

func (r SaveLocationResource) ApplyTo(l *models.Location) {
	l.Name = r.Name
	l.Address = r.Address
	l.Description = r.Description
}
