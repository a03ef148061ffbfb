package models

// Location is an office a person can be attached to.
type Location struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:250;not null" json:"name"`
	Address     string `gorm:"size:500" json:"address"`
	Description string `gorm:"size:500" json:"description"`
	Status      bool   `gorm:"not null;default:true;index" json:"status"`
}

// TableName explicitly sets the table name for GORM.
func (Location) TableName() string {
	return "locations"
}
