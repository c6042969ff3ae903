package service

import (
	"fmt"
	"io"
	"log"
	"strings"

	"surgery-schedule-backend/internal/models"
	"surgery-schedule-backend/internal/store"
	"surgery-schedule-backend/pkg/utils"

	"github.com/xuri/excelize/v2"
)

// Sheet names are matched against Turkish day names by substring; the offset
// is days after the anchor Monday. Longer names come first so "pazartesi"
// and "cumartesi" are not swallowed by their prefixes.
var importDayOffsets = []struct {
	name   string
	offset int
}{
	{"pazartesi", 0},
	{"cumartesi", 5},
	{"salı", 1},
	{"çarşamba", 2},
	{"perşembe", 3},
	{"cuma", 4},
	{"pazar", 6},
}

// Expected column headers, the clinic's fixed spreadsheet contract
const (
	colPatientName = "HASTA ADI"
	colProtocol    = "PROTOKOL"
	colPhone       = "TELEFON"
	colOperation   = "OPERASYON"
	colProfessor   = "HOCA"
	colResident    = "VEREN DR"
	colUrine       = "İDRAR KÜLTÜRÜ"
	colAnesthesia  = "ANESTEZİ"
	colAge         = "YAŞ"
	colNote        = "NOTLAR"
)

type ImportService struct {
	store     *store.SurgeryStore
	auditRepo auditLogger
}

func NewImportService(store *store.SurgeryStore, auditRepo auditLogger) *ImportService {
	return &ImportService{
		store:     store,
		auditRepo: auditRepo,
	}
}

// ImportWorkbook parses a weekly schedule workbook and submits one case per
// usable row. anchorDate is the Monday of the week. Rows without a patient
// name are skipped silently; a failed submission does not abort the rest of
// the batch. Returns the number of cases added.
func (s *ImportService) ImportWorkbook(r io.Reader, anchorDate string) (int, error) {
	anchor, err := utils.ParseDate(anchorDate)
	if err != nil {
		return 0, fmt.Errorf("invalid anchor date: %w", err)
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read workbook: %w", err)
	}
	defer f.Close()

	totalAdded := 0
	for position, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			log.Printf("Warning: failed to read sheet %q: %v", sheetName, err)
			continue
		}
		if len(rows) < 2 {
			continue
		}

		offset := sheetDayOffset(sheetName, position)
		targetDate := utils.FormatDate(anchor.AddDate(0, 0, offset))

		headIdx := headerIndex(rows[0])
		for _, row := range rows[1:] {
			surgery, ok := mapRow(row, headIdx, targetDate)
			if !ok {
				continue
			}
			if err := s.store.Add(surgery); err != nil {
				log.Printf("Warning: failed to import row for %q: %v", surgery.PatientName, err)
				continue
			}
			totalAdded++
		}
	}

	_ = s.auditRepo.CreateAuditLog("excel_import",
		fmt.Sprintf("Imported %d surgeries from workbook, week of %s", totalAdded, anchorDate))

	return totalAdded, nil
}

// sheetDayOffset infers the day-of-week offset from the sheet name. A sheet
// with no recognizable day name falls back to its position in the workbook,
// except the first sheet which defaults to Monday.
func sheetDayOffset(sheetName string, position int) int {
	normalized := utils.LowerTurkish(strings.TrimSpace(sheetName))
	for _, day := range importDayOffsets {
		if strings.Contains(normalized, day.name) {
			return day.offset
		}
	}
	if position > 0 {
		return position
	}
	return 0
}

// headerIndex maps trimmed, uppercased column headers to their position
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for col, name := range header {
		key := utils.UpperTurkish(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, exists := idx[key]; !exists {
			idx[key] = col
		}
	}
	return idx
}

func cellValue(row []string, idx map[string]int, column string) string {
	col, ok := idx[column]
	if !ok || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// mapRow builds a day-stamped case record from one spreadsheet row.
// Returns false when the row has no patient name.
func mapRow(row []string, idx map[string]int, targetDate string) (*models.Surgery, bool) {
	patientName := cellValue(row, idx, colPatientName)
	if patientName == "" {
		return nil, false
	}

	age := cellValue(row, idx, colAge)
	note := cellValue(row, idx, colNote)
	if age != "" {
		note += fmt.Sprintf(" (Yaş: %s)", age)
	}

	return &models.Surgery{
		Date:        targetDate,
		PatientName: patientName,
		Protocol:    cellValue(row, idx, colProtocol),
		Phone:       cellValue(row, idx, colPhone),
		Operation:   cellValue(row, idx, colOperation),
		Professor:   cellValue(row, idx, colProfessor),
		Resident:    cellValue(row, idx, colResident),
		Urine:       cellValue(row, idx, colUrine),
		Anesthesia:  cellValue(row, idx, colAnesthesia),
		Age:         age,
		Note:        note,
	}, true
}
