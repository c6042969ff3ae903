package repository

import (
	"errors"

	"surgery-schedule-backend/internal/models"

	"gorm.io/gorm"
)

type SurgeryRepository struct {
	db *gorm.DB
}

func NewSurgeryRepo(db *gorm.DB) *SurgeryRepository {
	return &SurgeryRepository{db: db}
}

// GetAll fetches the full case collection in insertion order
func (r *SurgeryRepository) GetAll() ([]models.Surgery, error) {
	var surgeries []models.Surgery
	err := r.db.Order("created_at ASC").Find(&surgeries).Error
	return surgeries, err
}

// GetByID retrieves a single surgery by its identifier
func (r *SurgeryRepository) GetByID(id string) (*models.Surgery, error) {
	var surgery models.Surgery
	err := r.db.Where("id = ?", id).First(&surgery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("surgery not found")
		}
		return nil, err
	}
	return &surgery, nil
}

// Create persists a new surgery record
func (r *SurgeryRepository) Create(surgery *models.Surgery) error {
	return r.db.Create(surgery).Error
}

// Updates applies a partial patch to a surgery. GORM refreshes updated_at.
func (r *SurgeryRepository) Updates(id string, updates map[string]interface{}) error {
	result := r.db.Model(&models.Surgery{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("surgery not found")
	}
	return nil
}

// Delete removes a surgery record
func (r *SurgeryRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Surgery{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("surgery not found")
	}
	return nil
}
