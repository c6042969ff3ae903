package models

import "time"

// RoomAssignment lives in the process-local annotation database, not the
// shared case store. It maps a surgery to one of the three physical rooms.
// A surgery with no row is unassigned.
type RoomAssignment struct {
	SurgeryID string    `gorm:"primaryKey;size:36" json:"surgery_id"`
	Room      int       `gorm:"not null" json:"room"` // 1..3
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for RoomAssignment model
func (RoomAssignment) TableName() string {
	return "room_assignments"
}
