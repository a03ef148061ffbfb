package models

import "time"

// Group is a team persons are assigned to. Technology lists the stack the team works with.
type Group struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"size:250;not null" json:"name"`
	Description string         `gorm:"size:250;not null" json:"description"`
	TeamSize    int            `gorm:"not null" json:"team_size"`
	StartDate   time.Time      `gorm:"not null" json:"start_date"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	Technology  TechnologyTags `gorm:"type:varchar(500);not null;default:''" json:"technology"`
	Status      bool           `gorm:"not null;default:true;index" json:"status"`
}

// TableName explicitly sets the table name for GORM.
func (Group) TableName() string {
	return "work_groups"
}
