package repository

import (
	"errors"
	"sync"

	"surgery-schedule-backend/internal/models"

	"gorm.io/gorm"
)

// AssignmentRepository is the key-value contract for the local room mapping.
// Implementations must persist each mutation before returning.
type AssignmentRepository interface {
	Get(surgeryID string) (int, bool, error)
	Set(surgeryID string, room int) error
	Delete(surgeryID string) error
	List() (map[string]int, error)
}

type GormAssignmentRepo struct {
	db *gorm.DB
}

func NewGormAssignmentRepo(db *gorm.DB) *GormAssignmentRepo {
	return &GormAssignmentRepo{db: db}
}

func (r *GormAssignmentRepo) Get(surgeryID string) (int, bool, error) {
	var a models.RoomAssignment
	err := r.db.Where("surgery_id = ?", surgeryID).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return a.Room, true, nil
}

func (r *GormAssignmentRepo) Set(surgeryID string, room int) error {
	return r.db.Save(&models.RoomAssignment{SurgeryID: surgeryID, Room: room}).Error
}

func (r *GormAssignmentRepo) Delete(surgeryID string) error {
	return r.db.Where("surgery_id = ?", surgeryID).Delete(&models.RoomAssignment{}).Error
}

func (r *GormAssignmentRepo) List() (map[string]int, error) {
	var assignments []models.RoomAssignment
	if err := r.db.Find(&assignments).Error; err != nil {
		return nil, err
	}
	mapping := make(map[string]int, len(assignments))
	for _, a := range assignments {
		mapping[a.SurgeryID] = a.Room
	}
	return mapping, nil
}

// MemoryAssignmentRepo is the fallback when the local database cannot be
// opened, and the test double.
type MemoryAssignmentRepo struct {
	mu    sync.Mutex
	rooms map[string]int
}

func NewMemoryAssignmentRepo() *MemoryAssignmentRepo {
	return &MemoryAssignmentRepo{rooms: make(map[string]int)}
}

func (r *MemoryAssignmentRepo) Get(surgeryID string) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[surgeryID]
	return room, ok, nil
}

func (r *MemoryAssignmentRepo) Set(surgeryID string, room int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[surgeryID] = room
	return nil
}

func (r *MemoryAssignmentRepo) Delete(surgeryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, surgeryID)
	return nil
}

func (r *MemoryAssignmentRepo) List() (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	mapping := make(map[string]int, len(r.rooms))
	for id, room := range r.rooms {
		mapping[id] = room
	}
	return mapping, nil
}
