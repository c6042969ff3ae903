package models

import "time"

// Urine culture labels are the clinic's fixed vocabulary.
const (
	UrineSterile      = "Steril"
	UrineGrowth       = "Üremeli"
	UrineContaminated = "Kontamine"
	UrineUnknown      = "Bilinmiyor"
)

// Surgery represents the surgeries table.
// One scheduled surgical case tied to a calendar day.
type Surgery struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Date        string `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	PatientName string `gorm:"size:120;not null" json:"patientName"`
	Protocol    string `gorm:"size:50" json:"protocol"`
	Phone       string `gorm:"size:30" json:"phone"`
	Operation   string `gorm:"type:text;not null" json:"operation"`
	Professor   string `gorm:"size:120" json:"professor"`
	Resident    string `gorm:"size:120" json:"resident"`
	Urine       string `gorm:"size:20;default:'Steril'" json:"urine"`
	Anesthesia  string `gorm:"size:120" json:"anesthesia"`
	Age         string `gorm:"size:10" json:"age"`
	Note        string `gorm:"type:text" json:"note"`

	// Independent tags, never exclusive
	IsSecondRoom bool `gorm:"default:false" json:"isSecondRoom"`
	IsRemaining  bool `gorm:"default:false" json:"isRemaining"`
	IsMDP        bool `gorm:"column:is_mdp;default:false" json:"isMDP"`
	IsKG         bool `gorm:"column:is_kg;default:false" json:"isKG"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName specifies the table name for Surgery model
func (Surgery) TableName() string {
	return "surgeries"
}
