package service

import (
	"fmt"
	"testing"
	"time"

	"surgery-schedule-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeverity(t *testing.T) {
	tests := []struct {
		count    int
		expected Severity
	}{
		{0, SeverityNone},
		{1, SeverityLow},
		{7, SeverityLow},
		{8, SeverityMedium},
		{12, SeverityMedium},
		{13, SeverityHigh},
		{40, SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("count %d", tt.count), func(t *testing.T) {
			assert.Equal(t, tt.expected, LoadSeverity(tt.count))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, 1))
	assert.Equal(t, 29, DaysInMonth(2024, 2)) // leap year
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 28, DaysInMonth(1900, 2)) // century, not leap
	assert.Equal(t, 29, DaysInMonth(2000, 2))
	assert.Equal(t, 30, DaysInMonth(2024, 4))
	assert.Equal(t, 31, DaysInMonth(2024, 12))
}

func TestFirstWeekdayOffset(t *testing.T) {
	// March 2024 starts on a Friday, Monday-based index 4
	assert.Equal(t, 4, FirstWeekdayOffset(2024, 3))
	// January 2024 starts on a Monday
	assert.Equal(t, 0, FirstWeekdayOffset(2024, 1))
	// September 2024 starts on a Sunday, the last column
	assert.Equal(t, 6, FirstWeekdayOffset(2024, 9))
}

func TestBuildGrid(t *testing.T) {
	grid := BuildGrid(2024, 3)
	require.Len(t, grid, 4+31)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0, grid[i])
	}
	assert.Equal(t, 1, grid[4])
	assert.Equal(t, 31, grid[len(grid)-1])
}

func TestBuildGridShapeAllMonths(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			grid := BuildGrid(year, month)
			offset := FirstWeekdayOffset(year, month)
			days := DaysInMonth(year, month)
			require.Len(t, grid, offset+days, "%d-%02d", year, month)

			for i, d := range grid {
				if i < offset {
					assert.Equal(t, 0, d)
				} else {
					assert.Equal(t, i-offset+1, d)
				}
			}
		}
	}
}

func TestBuildMonthView(t *testing.T) {
	surgeries := []models.Surgery{}
	for i := 0; i < 9; i++ {
		surgeries = append(surgeries, models.Surgery{Date: "2024-03-05"})
	}
	surgeries = append(surgeries,
		models.Surgery{Date: "2024-03-06"},
		models.Surgery{Date: "2024-04-01"}, // outside the displayed month
	)

	today := time.Date(2024, 3, 6, 10, 0, 0, 0, time.Local)
	view := BuildMonthView(surgeries, 2024, 3, today)

	assert.Equal(t, 2024, view.Year)
	assert.Equal(t, 3, view.Month)
	require.Len(t, view.Cells, 4+31)

	byDay := make(map[int]GridCell)
	for _, cell := range view.Cells {
		if cell.Day != 0 {
			byDay[cell.Day] = cell
		}
	}

	assert.Equal(t, 9, byDay[5].Count)
	assert.Equal(t, SeverityMedium, byDay[5].Severity)
	assert.Equal(t, "2024-03-05", byDay[5].Date)

	assert.Equal(t, 1, byDay[6].Count)
	assert.Equal(t, SeverityLow, byDay[6].Severity)
	assert.True(t, byDay[6].IsToday)
	assert.False(t, byDay[5].IsToday)

	assert.Equal(t, 0, byDay[7].Count)
	assert.Equal(t, SeverityNone, byDay[7].Severity)

	// leading empty cells carry no date
	assert.Equal(t, 0, view.Cells[0].Day)
	assert.Empty(t, view.Cells[0].Date)
}

func TestSurgeriesOnPreservesOrder(t *testing.T) {
	surgeries := []models.Surgery{
		{ID: "a", Date: "2024-03-05"},
		{ID: "b", Date: "2024-03-06"},
		{ID: "c", Date: "2024-03-05"},
	}

	bucket := SurgeriesOn(surgeries, "2024-03-05")
	require.Len(t, bucket, 2)
	assert.Equal(t, "a", bucket[0].ID)
	assert.Equal(t, "c", bucket[1].ID)

	assert.Empty(t, SurgeriesOn(surgeries, "2024-03-07"))
	assert.Equal(t, 2, DailyCount(surgeries, "2024-03-05"))
}

func TestCalendarStateNavigate(t *testing.T) {
	state := CalendarState{DisplayedYear: 2024, DisplayedMonth: 12}

	state.Navigate(1)
	assert.Equal(t, 2025, state.DisplayedYear)
	assert.Equal(t, 1, state.DisplayedMonth)

	state.Navigate(-1)
	assert.Equal(t, 2024, state.DisplayedYear)
	assert.Equal(t, 12, state.DisplayedMonth)

	// twelve steps forward lands on the same month next year
	for i := 0; i < 12; i++ {
		state.Navigate(1)
	}
	assert.Equal(t, 2025, state.DisplayedYear)
	assert.Equal(t, 12, state.DisplayedMonth)
}

func TestCalendarStateJumpToToday(t *testing.T) {
	state := CalendarState{DisplayedYear: 2020, DisplayedMonth: 1, SelectedDate: "2020-01-15"}

	now := time.Date(2024, 8, 31, 14, 0, 0, 0, time.Local)
	state.JumpToToday(now)

	assert.Equal(t, 2024, state.DisplayedYear)
	assert.Equal(t, 8, state.DisplayedMonth)
	assert.Equal(t, "2024-08-31", state.SelectedDate)
}

func TestCalendarStateSelectDateKeepsDisplayedMonth(t *testing.T) {
	state := CalendarState{DisplayedYear: 2024, DisplayedMonth: 3}
	state.SelectDate("2024-05-10")

	assert.Equal(t, "2024-05-10", state.SelectedDate)
	assert.Equal(t, 3, state.DisplayedMonth)
}
