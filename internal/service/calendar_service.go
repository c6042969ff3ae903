package service

import (
	"fmt"
	"time"

	"surgery-schedule-backend/internal/models"
	"surgery-schedule-backend/pkg/utils"
)

// Severity classifies a day's case load for the calendar dot
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// LoadSeverity maps a daily case count to its tier. Thresholds are a fixed
// business rule: 1-7 low, 8-12 medium, above 12 high.
func LoadSeverity(count int) Severity {
	switch {
	case count == 0:
		return SeverityNone
	case count < 8:
		return SeverityLow
	case count <= 12:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// DaysInMonth returns the number of days in a month (month 1-12)
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local).
		AddDate(0, 1, -1).Day()
}

// FirstWeekdayOffset returns the Monday-based weekday index (0-6) of the
// first day of the month. Go's Weekday is Sunday-first, so it is remapped.
func FirstWeekdayOffset(year, month int) int {
	wd := int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local).Weekday())
	return (wd + 6) % 7
}

// BuildGrid produces the month grid day numbers: leading zeros for the
// weekday offset, then 1..daysInMonth. No trailing padding.
func BuildGrid(year, month int) []int {
	offset := FirstWeekdayOffset(year, month)
	days := DaysInMonth(year, month)

	grid := make([]int, 0, offset+days)
	for i := 0; i < offset; i++ {
		grid = append(grid, 0)
	}
	for d := 1; d <= days; d++ {
		grid = append(grid, d)
	}
	return grid
}

// GridCell is one slot of the rendered month grid
type GridCell struct {
	Day      int      `json:"day"` // 0 for a leading empty cell
	Date     string   `json:"date,omitempty"`
	Count    int      `json:"count"`
	Severity Severity `json:"severity"`
	IsToday  bool     `json:"isToday"`
}

// MonthView aggregates the case collection into a day-indexed month grid.
// The current day is passed in explicitly so the aggregation stays
// deterministic.
type MonthView struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Cells []GridCell `json:"cells"`
}

// BuildMonthView computes per-day counts and severity tiers for the
// displayed month.
func BuildMonthView(surgeries []models.Surgery, year, month int, today time.Time) MonthView {
	counts := make(map[string]int)
	for _, s := range surgeries {
		counts[s.Date]++
	}

	todayStr := utils.FormatDate(today)
	grid := BuildGrid(year, month)
	cells := make([]GridCell, 0, len(grid))
	for _, day := range grid {
		if day == 0 {
			cells = append(cells, GridCell{Severity: SeverityNone})
			continue
		}
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		count := counts[date]
		cells = append(cells, GridCell{
			Day:      day,
			Date:     date,
			Count:    count,
			Severity: LoadSeverity(count),
			IsToday:  date == todayStr,
		})
	}

	return MonthView{Year: year, Month: month, Cells: cells}
}

// DailyCount returns the number of cases on one calendar day
func DailyCount(surgeries []models.Surgery, date string) int {
	count := 0
	for _, s := range surgeries {
		if s.Date == date {
			count++
		}
	}
	return count
}

// SurgeriesOn returns the day bucket for a date, preserving input order
func SurgeriesOn(surgeries []models.Surgery, date string) []models.Surgery {
	bucket := []models.Surgery{}
	for _, s := range surgeries {
		if s.Date == date {
			bucket = append(bucket, s)
		}
	}
	return bucket
}

// CalendarState is the month-navigation state machine. SelectedDate may lie
// outside the displayed month; selection is never auto-corrected.
type CalendarState struct {
	DisplayedYear  int    `json:"displayedYear"`
	DisplayedMonth int    `json:"displayedMonth"` // 1-12
	SelectedDate   string `json:"selectedDate"`
}

// Navigate moves the displayed month by direction (+1 or -1), wrapping year
// boundaries.
func (c *CalendarState) Navigate(direction int) {
	c.DisplayedMonth += direction
	for c.DisplayedMonth < 1 {
		c.DisplayedMonth += 12
		c.DisplayedYear--
	}
	for c.DisplayedMonth > 12 {
		c.DisplayedMonth -= 12
		c.DisplayedYear++
	}
}

// JumpToToday resets the displayed month and selection to the given local
// day. The clock is a parameter, not ambient state.
func (c *CalendarState) JumpToToday(now time.Time) {
	c.DisplayedYear = now.Year()
	c.DisplayedMonth = int(now.Month())
	c.SelectedDate = utils.FormatDate(now)
}

// SelectDate selects a day, cross-month selection included
func (c *CalendarState) SelectDate(date string) {
	c.SelectedDate = date
}
