package service

import (
	"errors"
	"fmt"
	"strings"

	"surgery-schedule-backend/internal/models"
	"surgery-schedule-backend/pkg/utils"
)

// professorDayStore is the persistence contract for professor-of-day
// records. Satisfied by repository.ProfessorDayRepository.
type professorDayStore interface {
	GetAll() ([]models.ProfessorDay, error)
	GetByDate(date string) (*models.ProfessorDay, error)
	Upsert(day *models.ProfessorDay) error
	DeleteByDate(date string) error
}

type ProfessorDayService struct {
	repo professorDayStore
}

func NewProfessorDayService(repo professorDayStore) *ProfessorDayService {
	return &ProfessorDayService{repo: repo}
}

// Set upserts the professor of the day. A name that trims to empty clears
// the day by deleting the record; an empty name is never stored.
func (s *ProfessorDayService) Set(date, name string) error {
	if _, err := utils.ParseDate(date); err != nil {
		return errors.New("invalid date, expected YYYY-MM-DD")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		if err := s.repo.DeleteByDate(date); err != nil {
			return fmt.Errorf("failed to clear professor day: %w", err)
		}
		return nil
	}

	day := &models.ProfessorDay{Date: date, ProfessorName: name}
	if err := s.repo.Upsert(day); err != nil {
		return fmt.Errorf("failed to save professor day: %w", err)
	}
	return nil
}

// GetAll returns every professor-of-day record
func (s *ProfessorDayService) GetAll() ([]models.ProfessorDay, error) {
	return s.repo.GetAll()
}

// Get returns the professor name for a day, empty when unset
func (s *ProfessorDayService) Get(date string) (string, error) {
	day, err := s.repo.GetByDate(date)
	if err != nil {
		if err.Error() == "professor day not found" {
			return "", nil
		}
		return "", err
	}
	return day.ProfessorName, nil
}
