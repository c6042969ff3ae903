package service

import (
	"testing"

	"surgery-schedule-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFixture() []models.Surgery {
	return []models.Surgery{
		{ID: "1", Date: "2024-03-06", PatientName: "Zeynep Kaya", Operation: "Sağ Nefrektomi", Professor: "Prof. Demir", Resident: "Dr. Ak", IsSecondRoom: true},
		{ID: "2", Date: "2024-03-05", PatientName: "Ali Yılmaz", Operation: "Prostat Bx", Professor: "Prof. Çelik", Resident: "Dr. Öz", IsRemaining: true},
		{ID: "3", Date: "2024-03-05", PatientName: "Mehmet Can", Operation: "TUR-M", Professor: "Prof. Demir", Resident: "Dr. Ak", IsMDP: true},
		{ID: "4", Date: "2024-03-07", PatientName: "Ayşe Öztürk", Operation: "Sağ Nx", Professor: "Prof. Çelik", Resident: "Dr. Öz", IsKG: true, Protocol: "12345"},
	}
}

func ids(surgeries []models.Surgery) []string {
	out := make([]string, 0, len(surgeries))
	for _, s := range surgeries {
		out = append(out, s.ID)
	}
	return out
}

func TestFilterSurgeriesSortsByDateStable(t *testing.T) {
	result := FilterSurgeries(listFixture(), Filters{})
	// ascending by date; same-date cases keep input order
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(result))
}

func TestFilterSurgeriesDoesNotMutateInput(t *testing.T) {
	input := listFixture()
	FilterSurgeries(input, Filters{})
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(input))
}

func TestFilterSurgeriesTextSearch(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		expected []string
	}{
		{"empty search matches all", "", []string{"2", "3", "1", "4"}},
		{"patient name", "zeynep", []string{"1"}},
		{"case-insensitive with turkish I", "ALİ", []string{"2"}},
		{"abbreviation matches expanded operation", "nx", []string{"1", "4"}},
		{"expanded term matches abbreviated operation", "nefrektomi", []string{"1", "4"}},
		{"bx abbreviation", "biyopsi", []string{"2"}},
		{"protocol", "12345", []string{"4"}},
		{"resident", "dr. öz", []string{"2", "4"}},
		{"no match", "yok böyle biri", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterSurgeries(listFixture(), Filters{Search: tt.search})
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestFilterSurgeriesCategorical(t *testing.T) {
	result := FilterSurgeries(listFixture(), Filters{Professor: "prof. demir"})
	assert.Equal(t, []string{"3", "1"}, ids(result))

	// operation dropdown values are normalized, so Nx and Nefrektomi collapse
	result = FilterSurgeries(listFixture(), Filters{Operation: "Sağ Nx"})
	assert.Equal(t, []string{"1", "4"}, ids(result))

	result = FilterSurgeries(listFixture(), Filters{Resident: "DR. AK"})
	assert.Equal(t, []string{"3", "1"}, ids(result))
}

func TestFilterSurgeriesFlagsAndRoom(t *testing.T) {
	fixture := listFixture()

	assert.Equal(t, []string{"1"}, ids(FilterSurgeries(fixture, Filters{Room: RoomSecond})))
	assert.Equal(t, []string{"2", "3", "4"}, ids(FilterSurgeries(fixture, Filters{Room: RoomFirst})))

	assert.Equal(t, []string{"2"}, ids(FilterSurgeries(fixture, Filters{Remaining: TriYes})))
	assert.Equal(t, []string{"3", "1", "4"}, ids(FilterSurgeries(fixture, Filters{Remaining: TriNo})))

	assert.Equal(t, []string{"3"}, ids(FilterSurgeries(fixture, Filters{MDP: TriYes})))
	assert.Equal(t, []string{"4"}, ids(FilterSurgeries(fixture, Filters{KG: TriYes})))
}

func TestFilterSurgeriesConjunction(t *testing.T) {
	// every added criterion narrows the result set
	fixture := listFixture()

	all := FilterSurgeries(fixture, Filters{})
	byProf := FilterSurgeries(fixture, Filters{Professor: "Prof. Çelik"})
	byProfAndFlag := FilterSurgeries(fixture, Filters{Professor: "Prof. Çelik", KG: TriYes})

	assert.Len(t, all, 4)
	assert.Len(t, byProf, 2)
	assert.Len(t, byProfAndFlag, 1)
	assert.Equal(t, "4", byProfAndFlag[0].ID)

	// contradictory gates yield an empty, non-nil result
	none := FilterSurgeries(fixture, Filters{Remaining: TriYes, MDP: TriYes})
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestParseTriStateAndRoomFilter(t *testing.T) {
	assert.Equal(t, TriYes, ParseTriState("yes"))
	assert.Equal(t, TriNo, ParseTriState("no"))
	assert.Equal(t, TriAny, ParseTriState(""))
	assert.Equal(t, TriAny, ParseTriState("maybe"))

	assert.Equal(t, RoomSecond, ParseRoomFilter("second"))
	assert.Equal(t, RoomFirst, ParseRoomFilter("first"))
	assert.Equal(t, RoomAny, ParseRoomFilter(""))
}

func TestBuildFilterOptions(t *testing.T) {
	opts := BuildFilterOptions(listFixture())

	assert.Equal(t, []string{"PROF. ÇELİK", "PROF. DEMİR"}, opts.Professors)
	assert.Equal(t, []string{"DR. AK", "DR. ÖZ"}, opts.Residents)
	// Nx variants collapse with their expanded spelling
	require.Len(t, opts.Operations, 3)
	assert.Contains(t, opts.Operations, "sağ nefrektomi")
	assert.Contains(t, opts.Operations, "prostat biyopsi")
	assert.Contains(t, opts.Operations, "tur-m")
}

func TestBuildFilterOptionsSkipsBlanks(t *testing.T) {
	opts := BuildFilterOptions([]models.Surgery{
		{Professor: "  ", Operation: "", Resident: ""},
		{Professor: "Prof. Demir", Operation: "TUR-M"},
	})

	assert.Equal(t, []string{"PROF. DEMİR"}, opts.Professors)
	assert.Equal(t, []string{"tur-m"}, opts.Operations)
	assert.Empty(t, opts.Residents)
}

func TestBuildListStats(t *testing.T) {
	stats := BuildListStats(listFixture(), "2024-03-06")

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.SecondRoom)
	assert.Equal(t, 1, stats.Remaining)
	assert.Equal(t, 2, stats.Upcoming) // on or after 2024-03-06

	empty := BuildListStats(nil, "2024-03-06")
	assert.Equal(t, ListStats{}, empty)
}
