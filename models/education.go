package models

import "time"

// Education is a degree or course a person attended.
type Education struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	PersonID    uint       `gorm:"not null;index" json:"person_id"`
	CollegeName string     `gorm:"size:250;not null" json:"college_name"`
	Major       string     `gorm:"size:250;not null" json:"major"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	OrderIndex  int        `gorm:"not null;default:0" json:"order_index"`
	Status      bool       `gorm:"not null;default:true" json:"status"`
}

// TableName explicitly sets the table name for GORM.
func (Education) TableName() string {
	return "educations"
}
