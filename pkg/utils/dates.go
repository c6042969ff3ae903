package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used everywhere in the schedule
const DateLayout = "2006-01-02"

var turkishMonths = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

var turkishMonthsShort = [...]string{
	"Oca", "Şub", "Mar", "Nis", "May", "Haz",
	"Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara",
}

// Indexed by time.Weekday (Sunday = 0)
var turkishWeekdays = [...]string{
	"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi",
}

// ParseDate parses a YYYY-MM-DD calendar day string
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a calendar day as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateDisplay renders a date string as e.g. "4 Mart 2024 Pazartesi".
// Invalid or empty input yields the empty string.
func FormatDateDisplay(dateStr string) string {
	t, err := ParseDate(dateStr)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d %s %d %s",
		t.Day(), turkishMonths[int(t.Month())-1], t.Year(), turkishWeekdays[int(t.Weekday())])
}

// FormatDateShort renders a date string as e.g. "4 Mar"
func FormatDateShort(dateStr string) string {
	t, err := ParseDate(dateStr)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d %s", t.Day(), turkishMonthsShort[int(t.Month())-1])
}
