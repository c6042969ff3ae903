package service

import (
	"errors"
	"fmt"
	"log"

	"surgery-schedule-backend/internal/models"
	"surgery-schedule-backend/internal/repository"
)

// RoomCount is the number of physical rooms cases can be assigned to
const RoomCount = 3

type AssignmentService struct {
	repo      repository.AssignmentRepository
	auditRepo auditLogger
}

func NewAssignmentService(repo repository.AssignmentRepository, auditRepo auditLogger) *AssignmentService {
	return &AssignmentService{
		repo:      repo,
		auditRepo: auditRepo,
	}
}

// Toggle assigns a case to a room, or unassigns it when it is already in
// that room. Assigning to a new room vacates the previous one: a case is in
// exactly one room or none. Returns whether the case ended up assigned.
func (s *AssignmentService) Toggle(surgeryID string, room int) (bool, error) {
	if surgeryID == "" {
		return false, errors.New("surgery id is required")
	}
	if room < 1 || room > RoomCount {
		return false, fmt.Errorf("room must be between 1 and %d", RoomCount)
	}

	current, ok, err := s.repo.Get(surgeryID)
	if err != nil {
		// Unreadable local state degrades to "unassigned"
		log.Printf("Warning: failed to read room assignment: %v", err)
		ok = false
	}

	if ok && current == room {
		if err := s.repo.Delete(surgeryID); err != nil {
			return false, fmt.Errorf("failed to unassign room: %w", err)
		}
		_ = s.auditRepo.CreateAuditLog("room_unassign", fmt.Sprintf("Unassigned surgery %s from room %d", surgeryID, room))
		return false, nil
	}

	if err := s.repo.Set(surgeryID, room); err != nil {
		return false, fmt.Errorf("failed to assign room: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog("room_assign", fmt.Sprintf("Assigned surgery %s to room %d", surgeryID, room))
	return true, nil
}

// Unassign removes a case's room assignment. Missing entry is a no-op.
func (s *AssignmentService) Unassign(surgeryID string) error {
	if surgeryID == "" {
		return errors.New("surgery id is required")
	}
	if err := s.repo.Delete(surgeryID); err != nil {
		return fmt.Errorf("failed to unassign room: %w", err)
	}
	return nil
}

// Mapping returns the persisted case-to-room map. Corrupt or missing local
// state yields an empty mapping, never an error.
func (s *AssignmentService) Mapping() map[string]int {
	mapping, err := s.repo.List()
	if err != nil {
		log.Printf("Warning: failed to load room assignments, using empty mapping: %v", err)
		return map[string]int{}
	}
	return mapping
}

// RoomPartition splits a day's cases into the three rooms and the
// unassigned remainder. The four buckets are disjoint and cover the input.
type RoomPartition struct {
	Rooms      [RoomCount][]models.Surgery `json:"rooms"`
	Unassigned []models.Surgery            `json:"unassigned"`
}

// Partition buckets the given cases by their assigned room. Mapping entries
// for cases outside the input are ignored; they are orphans cleaned up
// lazily by the background worker, not here.
func (s *AssignmentService) Partition(surgeries []models.Surgery) RoomPartition {
	mapping := s.Mapping()

	p := RoomPartition{Unassigned: []models.Surgery{}}
	for i := range p.Rooms {
		p.Rooms[i] = []models.Surgery{}
	}
	for _, surgery := range surgeries {
		room, ok := mapping[surgery.ID]
		if !ok || room < 1 || room > RoomCount {
			p.Unassigned = append(p.Unassigned, surgery)
			continue
		}
		p.Rooms[room-1] = append(p.Rooms[room-1], surgery)
	}
	return p
}

// CleanupOrphans deletes mapping entries whose surgery no longer exists
// anywhere in the case store. Best effort; returns how many were removed.
func (s *AssignmentService) CleanupOrphans(existing map[string]bool) int {
	mapping, err := s.repo.List()
	if err != nil {
		log.Printf("Warning: skipping assignment cleanup: %v", err)
		return 0
	}

	removed := 0
	for surgeryID := range mapping {
		if existing[surgeryID] {
			continue
		}
		if err := s.repo.Delete(surgeryID); err != nil {
			log.Printf("Warning: failed to delete orphaned assignment %s: %v", surgeryID, err)
			continue
		}
		removed++
	}
	return removed
}
