package models

import "time"

// Gender of a person.
type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
	GenderOther
)

// Person represents a staff member record.
// It corresponds to the 'people' table. Status=false marks a soft-deleted row.
type Person struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffID     string     `gorm:"size:25;not null" json:"staff_id"`
	FirstName   string     `gorm:"size:500;not null" json:"first_name"`
	LastName    string     `gorm:"size:500;not null" json:"last_name"`
	Email       string     `gorm:"size:500" json:"email"`
	Phone       string     `gorm:"size:25" json:"phone"`
	Avatar      string     `gorm:"size:500" json:"avatar"`
	AvatarFile  string     `gorm:"size:255" json:"-"` // store path of the uploaded avatar, never client supplied
	Description string     `gorm:"size:500" json:"description"`
	YearOfBirth time.Time  `gorm:"not null" json:"year_of_birth"`
	Gender      Gender     `gorm:"not null;default:0" json:"gender"`
	CreatedBy   string     `gorm:"size:500;not null" json:"created_by"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Status      bool       `gorm:"not null;default:true;index" json:"status"`
	OrderIndex  OrderIndex `gorm:"type:varchar(250);not null;default:''" json:"order_index"`

	LocationID *uint     `gorm:"index" json:"location_id,omitempty"`
	Location   *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"location,omitempty"`
	GroupID    *uint     `gorm:"index" json:"group_id,omitempty"`
	Group      *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`

	// Relationships
	Projects        []Project        `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"projects,omitempty"`
	CategoryPersons []CategoryPerson `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"category_persons,omitempty"`
	Educations      []Education      `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"educations,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "people"
}

// FullName joins first and last name.
func (p Person) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}
