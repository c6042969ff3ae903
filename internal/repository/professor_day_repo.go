package repository

import (
	"errors"

	"surgery-schedule-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfessorDayRepository struct {
	db *gorm.DB
}

func NewProfessorDayRepo(db *gorm.DB) *ProfessorDayRepository {
	return &ProfessorDayRepository{db: db}
}

// GetAll fetches every professor-of-day record
func (r *ProfessorDayRepository) GetAll() ([]models.ProfessorDay, error) {
	var days []models.ProfessorDay
	err := r.db.Order("date ASC").Find(&days).Error
	return days, err
}

// GetByDate retrieves the professor-of-day record for one calendar day
func (r *ProfessorDayRepository) GetByDate(date string) (*models.ProfessorDay, error) {
	var day models.ProfessorDay
	err := r.db.Where("date = ?", date).First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("professor day not found")
		}
		return nil, err
	}
	return &day, nil
}

// Upsert creates or replaces the record keyed by date
func (r *ProfessorDayRepository) Upsert(day *models.ProfessorDay) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"professor_name", "updated_at"}),
	}).Create(day).Error
}

// DeleteByDate removes the record for a day. Missing record is a no-op.
func (r *ProfessorDayRepository) DeleteByDate(date string) error {
	return r.db.Where("date = ?", date).Delete(&models.ProfessorDay{}).Error
}
