package service

import (
	"errors"
	"testing"

	"surgery-schedule-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfessorDayRepo struct {
	days map[string]string
}

func newFakeProfessorDayRepo() *fakeProfessorDayRepo {
	return &fakeProfessorDayRepo{days: make(map[string]string)}
}

func (r *fakeProfessorDayRepo) GetAll() ([]models.ProfessorDay, error) {
	out := make([]models.ProfessorDay, 0, len(r.days))
	for date, name := range r.days {
		out = append(out, models.ProfessorDay{Date: date, ProfessorName: name})
	}
	return out, nil
}

func (r *fakeProfessorDayRepo) GetByDate(date string) (*models.ProfessorDay, error) {
	name, ok := r.days[date]
	if !ok {
		return nil, errors.New("professor day not found")
	}
	return &models.ProfessorDay{Date: date, ProfessorName: name}, nil
}

func (r *fakeProfessorDayRepo) Upsert(day *models.ProfessorDay) error {
	r.days[day.Date] = day.ProfessorName
	return nil
}

func (r *fakeProfessorDayRepo) DeleteByDate(date string) error {
	delete(r.days, date)
	return nil
}

func TestProfessorDaySetAndGet(t *testing.T) {
	repo := newFakeProfessorDayRepo()
	svc := NewProfessorDayService(repo)

	require.NoError(t, svc.Set("2024-03-04", "  Prof. Demir  "))

	name, err := svc.Get("2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, "Prof. Demir", name) // stored trimmed

	// overwrite, not duplicate
	require.NoError(t, svc.Set("2024-03-04", "Prof. Çelik"))
	name, err = svc.Get("2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, "Prof. Çelik", name)

	days, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, days, 1)
}

func TestProfessorDayEmptyNameClears(t *testing.T) {
	repo := newFakeProfessorDayRepo()
	svc := NewProfessorDayService(repo)

	require.NoError(t, svc.Set("2024-03-04", "Prof. Demir"))
	require.NoError(t, svc.Set("2024-03-04", "   "))

	name, err := svc.Get("2024-03-04")
	require.NoError(t, err)
	assert.Empty(t, name)
	assert.Empty(t, repo.days)
}

func TestProfessorDayGetUnsetDay(t *testing.T) {
	svc := NewProfessorDayService(newFakeProfessorDayRepo())

	name, err := svc.Get("2024-03-04")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestProfessorDaySetInvalidDate(t *testing.T) {
	svc := NewProfessorDayService(newFakeProfessorDayRepo())
	assert.Error(t, svc.Set("04.03.2024", "Prof. Demir"))
	assert.Error(t, svc.Set("", "Prof. Demir"))
}
