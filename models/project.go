package models

// Project is a person's project history entry.
type Project struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	PersonID         uint           `gorm:"not null;index" json:"person_id"`
	GroupID          *uint          `gorm:"index" json:"group_id,omitempty"`
	Group            *Group         `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	Name             string         `gorm:"size:250;not null" json:"name"`
	Position         string         `gorm:"size:250" json:"position"`
	Responsibilities string         `gorm:"size:1000" json:"responsibilities"`
	Technology       TechnologyTags `gorm:"type:varchar(500);not null;default:''" json:"technology"`
	OrderIndex       int            `gorm:"not null;default:0" json:"order_index"`
	Status           bool           `gorm:"not null;default:true" json:"status"`
}

// TableName explicitly sets the table name for GORM.
func (Project) TableName() string {
	return "projects"
}

// CategoryPerson records the technologies a person masters within one category.
type CategoryPerson struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	PersonID   uint           `gorm:"not null;index" json:"person_id"`
	CategoryID uint           `gorm:"not null;index" json:"category_id"`
	Category   *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Technology TechnologyTags `gorm:"type:varchar(500);not null;default:''" json:"technology"`
	OrderIndex int            `gorm:"not null;default:0" json:"order_index"`
	Status     bool           `gorm:"not null;default:true" json:"status"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryPerson) TableName() string {
	return "category_persons"
}
