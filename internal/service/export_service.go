package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"surgery-schedule-backend/internal/models"
	"surgery-schedule-backend/pkg/utils"
)

// CSV column order mirrors the case record's field list; headers stay in the
// clinic's language.
var csvHeader = []string{
	"Tarih", "Hasta Adı", "Protokol", "Yaş", "İşlem", "Hoca", "Asistan",
	"Telefon", "İdrar", "Anestezi", "Notlar", "2. Salon", "Kalan", "MDP", "KG",
}

// ExportCSV writes the case list as UTF-8 CSV with a byte-order marker so
// spreadsheet applications detect the encoding. Flags render as Evet/Hayır.
func ExportCSV(w io.Writer, surgeries []models.Surgery) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range surgeries {
		record := []string{
			s.Date, s.PatientName, s.Protocol, s.Age, s.Operation,
			s.Professor, s.Resident, s.Phone, s.Urine, s.Anesthesia, s.Note,
			yesNo(s.IsSecondRoom), yesNo(s.IsRemaining), yesNo(s.IsMDP), yesNo(s.IsKG),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func yesNo(b bool) string {
	if b {
		return "Evet"
	}
	return "Hayır"
}

// FormatDayShareText renders a day's case list as the plain-text message
// shared in the clinic's group chat.
func FormatDayShareText(surgeries []models.Surgery, date string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📅 *%s - EGE ÜROLOJİ*\n--------------------------------\n", utils.FormatDateDisplay(date))

	for i, s := range surgeries {
		var badges strings.Builder
		if s.IsRemaining {
			badges.WriteString("🔴 ")
		}
		if s.IsSecondRoom {
			badges.WriteString("[2. SALON] ")
		}
		if s.IsMDP {
			badges.WriteString("[MDP] ")
		}
		if s.IsKG {
			badges.WriteString("[KG] ")
		}

		suffix := ""
		if s.Age != "" {
			suffix += fmt.Sprintf(" (%s)", s.Age)
		}
		if s.Protocol != "" {
			suffix += fmt.Sprintf(" (#%s)", s.Protocol)
		}

		fmt.Fprintf(&b, "\n%d. %s%s%s\n   🔪 %s\n   👨‍⚕️ %s\n",
			i+1, badges.String(), s.PatientName, suffix, s.Operation, s.Professor)
	}

	plan := "?"
	if len(surgeries) > 0 && surgeries[0].Resident != "" {
		plan = surgeries[0].Resident
	}
	fmt.Fprintf(&b, "\n--------------------------------\nPlan: %s", plan)

	return b.String()
}
