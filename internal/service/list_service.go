package service

import (
	"sort"
	"strings"

	"surgery-schedule-backend/internal/models"
	"surgery-schedule-backend/pkg/utils"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TriState is a three-way boolean gate for flag filters
type TriState int

const (
	TriAny TriState = iota
	TriYes
	TriNo
)

// RoomFilter narrows by the second-room tag
type RoomFilter int

const (
	RoomAny RoomFilter = iota
	RoomSecond
	RoomFirst
)

// Filters is the compound predicate evaluated over the case collection.
// The zero value matches everything.
type Filters struct {
	Search    string
	Professor string
	Operation string
	Resident  string
	Room      RoomFilter
	Remaining TriState
	MDP       TriState
	KG        TriState
}

// ParseTriState maps the query values "yes"/"no" to a gate; anything else
// means unconstrained.
func ParseTriState(s string) TriState {
	switch s {
	case "yes":
		return TriYes
	case "no":
		return TriNo
	default:
		return TriAny
	}
}

// ParseRoomFilter maps "second"/"first" to a room gate
func ParseRoomFilter(s string) RoomFilter {
	switch s {
	case "second":
		return RoomSecond
	case "first":
		return RoomFirst
	default:
		return RoomAny
	}
}

func (t TriState) matches(flag bool) bool {
	switch t {
	case TriYes:
		return flag
	case TriNo:
		return !flag
	default:
		return true
	}
}

// FilterSurgeries evaluates the compound predicate and returns the matching
// cases ordered ascending by date. Same-date cases keep their input order.
// Pure: the input slice is not modified.
func FilterSurgeries(surgeries []models.Surgery, f Filters) []models.Surgery {
	sorted := make([]models.Surgery, len(surgeries))
	copy(sorted, surgeries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	search := utils.NormalizeText(f.Search)
	professor := utils.NormalizeText(f.Professor)
	operation := utils.NormalizeText(f.Operation)
	resident := utils.NormalizeText(f.Resident)

	out := []models.Surgery{}
	for _, s := range sorted {
		if !textMatch(s, search) {
			continue
		}
		if professor != "" && utils.NormalizeText(s.Professor) != professor {
			continue
		}
		if operation != "" && utils.NormalizeText(s.Operation) != operation {
			continue
		}
		if resident != "" && utils.NormalizeText(s.Resident) != resident {
			continue
		}
		if f.Room == RoomSecond && !s.IsSecondRoom {
			continue
		}
		if f.Room == RoomFirst && s.IsSecondRoom {
			continue
		}
		if !f.Remaining.matches(s.IsRemaining) {
			continue
		}
		if !f.MDP.matches(s.IsMDP) {
			continue
		}
		if !f.KG.matches(s.IsKG) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// textMatch checks the free-text OR-match across the searchable fields.
// The empty search string matches every case.
func textMatch(s models.Surgery, search string) bool {
	if search == "" {
		return true
	}
	for _, field := range []string{s.PatientName, s.Operation, s.Professor, s.Protocol, s.Resident} {
		if strings.Contains(utils.NormalizeText(field), search) {
			return true
		}
	}
	return false
}

// FilterOptions are the distinct dropdown values derived from the collection
type FilterOptions struct {
	Professors []string `json:"professors"`
	Operations []string `json:"operations"`
	Residents  []string `json:"residents"`
}

// BuildFilterOptions collects distinct professors, operations and residents,
// sorted with Turkish collation.
func BuildFilterOptions(surgeries []models.Surgery) FilterOptions {
	professors := map[string]bool{}
	operations := map[string]bool{}
	residents := map[string]bool{}
	for _, s := range surgeries {
		if v := utils.UpperTurkish(strings.TrimSpace(s.Professor)); v != "" {
			professors[v] = true
		}
		if v := utils.NormalizeText(s.Operation); v != "" {
			operations[v] = true
		}
		if v := utils.UpperTurkish(strings.TrimSpace(s.Resident)); v != "" {
			residents[v] = true
		}
	}

	return FilterOptions{
		Professors: sortedKeys(professors),
		Operations: sortedKeys(operations),
		Residents:  sortedKeys(residents),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	collate.New(language.Turkish).SortStrings(keys)
	return keys
}

// ListStats summarizes a filtered result set
type ListStats struct {
	Total      int `json:"total"`
	SecondRoom int `json:"secondRoom"`
	Remaining  int `json:"remaining"`
	Upcoming   int `json:"upcoming"`
}

// BuildListStats counts totals over a result set. Upcoming counts cases on
// or after the given day.
func BuildListStats(surgeries []models.Surgery, today string) ListStats {
	stats := ListStats{Total: len(surgeries)}
	for _, s := range surgeries {
		if s.IsSecondRoom {
			stats.SecondRoom++
		}
		if s.IsRemaining {
			stats.Remaining++
		}
		if s.Date >= today {
			stats.Upcoming++
		}
	}
	return stats
}
