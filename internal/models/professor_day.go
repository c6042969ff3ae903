package models

import "time"

// ProfessorDay represents the professor_days table.
// At most one record per calendar day; an unset day has no row at all,
// never an empty name.
type ProfessorDay struct {
	Date          string    `gorm:"primaryKey;size:10" json:"date"` // YYYY-MM-DD
	ProfessorName string    `gorm:"size:120;not null" json:"professorName"`
	UpdatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName specifies the table name for ProfessorDay model
func (ProfessorDay) TableName() string {
	return "professor_days"
}
