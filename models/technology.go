package models

// Category groups technologies, e.g. "Backend" or "Database".
type Category struct {
	ID           uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string       `gorm:"size:250;not null" json:"name"`
	Status       bool         `gorm:"not null;default:true;index" json:"status"`
	Technologies []Technology `gorm:"foreignKey:CategoryID" json:"technologies,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Category) TableName() string {
	return "categories"
}

// Technology is reference data: the catalog persons, projects and groups are tagged with.
type Technology struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"size:250;not null" json:"name"`
	CategoryID uint   `gorm:"not null;index" json:"category_id"`
	Status     bool   `gorm:"not null;default:true;index" json:"status"`
}

// TableName explicitly sets the table name for GORM.
func (Technology) TableName() string {
	return "technologies"
}
