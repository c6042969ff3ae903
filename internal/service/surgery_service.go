package service

import (
	"errors"
	"fmt"

	"surgery-schedule-backend/internal/models"
	"surgery-schedule-backend/internal/store"
	"surgery-schedule-backend/pkg/utils"
)

// auditLogger records write operations for the audit trail. Satisfied by
// repository.AuditRepository; audit failures never fail the operation.
type auditLogger interface {
	CreateAuditLog(action string, details string) error
}

type SurgeryService struct {
	store     *store.SurgeryStore
	auditRepo auditLogger
}

func NewSurgeryService(store *store.SurgeryStore, auditRepo auditLogger) *SurgeryService {
	return &SurgeryService{
		store:     store,
		auditRepo: auditRepo,
	}
}

// Create validates and persists a new case. The store assigns the
// identifier and timestamps.
func (s *SurgeryService) Create(surgery *models.Surgery) error {
	if _, err := utils.ParseDate(surgery.Date); err != nil {
		return errors.New("invalid date, expected YYYY-MM-DD")
	}
	if surgery.PatientName == "" {
		return errors.New("patient name is required")
	}
	if surgery.Operation == "" {
		return errors.New("operation is required")
	}
	if surgery.Urine == "" {
		surgery.Urine = models.UrineSterile
	}

	if err := s.store.Add(surgery); err != nil {
		return fmt.Errorf("failed to create surgery: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog("surgery_create",
		fmt.Sprintf("Created surgery for %s on %s", surgery.PatientName, surgery.Date))

	return nil
}

// Update applies a partial patch to an existing case
func (s *SurgeryService) Update(id string, updates map[string]interface{}) error {
	if id == "" {
		return errors.New("surgery id is required")
	}
	if date, ok := updates["date"].(string); ok {
		if _, err := utils.ParseDate(date); err != nil {
			return errors.New("invalid date, expected YYYY-MM-DD")
		}
	}

	if err := s.store.Update(id, updates); err != nil {
		return err
	}

	_ = s.auditRepo.CreateAuditLog("surgery_update", fmt.Sprintf("Updated surgery %s", id))

	return nil
}

// Delete removes a case
func (s *SurgeryService) Delete(id string) error {
	if id == "" {
		return errors.New("surgery id is required")
	}
	if err := s.store.Delete(id); err != nil {
		return err
	}

	_ = s.auditRepo.CreateAuditLog("surgery_delete", fmt.Sprintf("Deleted surgery %s", id))

	return nil
}

// Subscribe registers a snapshot callback on the underlying case store and
// returns its disposal function.
func (s *SurgeryService) Subscribe(fn func([]models.Surgery)) func() {
	return s.store.Subscribe(fn)
}

// All returns the current full case collection
func (s *SurgeryService) All() []models.Surgery {
	return s.store.Snapshot()
}

// OnDate returns the day bucket for a calendar day
func (s *SurgeryService) OnDate(date string) []models.Surgery {
	return SurgeriesOn(s.store.Snapshot(), date)
}
