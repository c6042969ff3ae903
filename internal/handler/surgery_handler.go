package handler

import (
	"io"
	"net/http"
	"time"

	"surgery-schedule-backend/internal/models"
	"surgery-schedule-backend/internal/service"
	"surgery-schedule-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SurgeryHandler struct {
	surgeryService *service.SurgeryService
}

func NewSurgeryHandler(surgeryService *service.SurgeryService) *SurgeryHandler {
	return &SurgeryHandler{
		surgeryService: surgeryService,
	}
}

// CreateSurgery adds a new case; the store assigns its identifier
func (h *SurgeryHandler) CreateSurgery(c *gin.Context) {
	var surgery models.Surgery
	if err := c.ShouldBindJSON(&surgery); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	surgery.ID = ""

	if err := h.surgeryService.Create(&surgery); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, surgery)
}

// UpdateSurgeryRequest carries a partial patch; absent fields stay untouched
type UpdateSurgeryRequest struct {
	Date         *string `json:"date"`
	PatientName  *string `json:"patientName"`
	Protocol     *string `json:"protocol"`
	Phone        *string `json:"phone"`
	Operation    *string `json:"operation"`
	Professor    *string `json:"professor"`
	Resident     *string `json:"resident"`
	Urine        *string `json:"urine"`
	Anesthesia   *string `json:"anesthesia"`
	Age          *string `json:"age"`
	Note         *string `json:"note"`
	IsSecondRoom *bool   `json:"isSecondRoom"`
	IsRemaining  *bool   `json:"isRemaining"`
	IsMDP        *bool   `json:"isMDP"`
	IsKG         *bool   `json:"isKG"`
}

func (r *UpdateSurgeryRequest) updates() map[string]interface{} {
	updates := make(map[string]interface{})

	if r.Date != nil {
		updates["date"] = *r.Date
	}
	if r.PatientName != nil {
		updates["patient_name"] = *r.PatientName
	}
	if r.Protocol != nil {
		updates["protocol"] = *r.Protocol
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.Operation != nil {
		updates["operation"] = *r.Operation
	}
	if r.Professor != nil {
		updates["professor"] = *r.Professor
	}
	if r.Resident != nil {
		updates["resident"] = *r.Resident
	}
	if r.Urine != nil {
		updates["urine"] = *r.Urine
	}
	if r.Anesthesia != nil {
		updates["anesthesia"] = *r.Anesthesia
	}
	if r.Age != nil {
		updates["age"] = *r.Age
	}
	if r.Note != nil {
		updates["note"] = *r.Note
	}
	if r.IsSecondRoom != nil {
		updates["is_second_room"] = *r.IsSecondRoom
	}
	if r.IsRemaining != nil {
		updates["is_remaining"] = *r.IsRemaining
	}
	if r.IsMDP != nil {
		updates["is_mdp"] = *r.IsMDP
	}
	if r.IsKG != nil {
		updates["is_kg"] = *r.IsKG
	}

	return updates
}

// UpdateSurgery applies a partial patch to a case
func (h *SurgeryHandler) UpdateSurgery(c *gin.Context) {
	var req UpdateSurgeryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.surgeryService.Update(c.Param("id"), req.updates()); err != nil {
		if err.Error() == "surgery not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Surgery updated successfully")
}

// DeleteSurgery removes a case
func (h *SurgeryHandler) DeleteSurgery(c *gin.Context) {
	if err := h.surgeryService.Delete(c.Param("id")); err != nil {
		if err.Error() == "surgery not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete surgery")
		}
		return
	}

	utils.MessageResponse(c, "Surgery deleted successfully")
}

// filtersFromQuery reads the filter query parameters shared by the list and
// export endpoints.
func filtersFromQuery(c *gin.Context) service.Filters {
	return service.Filters{
		Search:    c.Query("search"),
		Professor: c.Query("professor"),
		Operation: c.Query("operation"),
		Resident:  c.Query("resident"),
		Room:      service.ParseRoomFilter(c.Query("room")),
		Remaining: service.ParseTriState(c.Query("remaining")),
		MDP:       service.ParseTriState(c.Query("mdp")),
		KG:        service.ParseTriState(c.Query("kg")),
	}
}

func hasFilterParams(c *gin.Context) bool {
	for _, key := range []string{"search", "professor", "operation", "resident", "room", "remaining", "mdp", "kg"} {
		if c.Query(key) != "" {
			return true
		}
	}
	return false
}

// ListSurgeries evaluates the compound filter and returns the ordered
// result with summary stats.
func (h *SurgeryHandler) ListSurgeries(c *gin.Context) {
	filtered := service.FilterSurgeries(h.surgeryService.All(), filtersFromQuery(c))
	today := utils.FormatDate(time.Now())

	utils.SuccessResponse(c, gin.H{
		"surgeries": filtered,
		"count":     len(filtered),
		"stats":     service.BuildListStats(filtered, today),
	})
}

// GetFilterOptions returns the distinct dropdown values
func (h *SurgeryHandler) GetFilterOptions(c *gin.Context) {
	utils.SuccessResponse(c, service.BuildFilterOptions(h.surgeryService.All()))
}

// ExportCSV streams the (optionally filtered) case list as a CSV download
func (h *SurgeryHandler) ExportCSV(c *gin.Context) {
	filtered := service.FilterSurgeries(h.surgeryService.All(), filtersFromQuery(c))

	filename := "tum_liste.csv"
	if hasFilterParams(c) {
		filename = "filtreli_liste.csv"
	}
	utils.AttachmentHeaders(c, filename, "text/csv; charset=utf-8")

	if err := service.ExportCSV(c.Writer, filtered); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to export CSV")
	}
}

// StreamSurgeries pushes full snapshots over SSE whenever the collection
// changes. The subscription is released when the client disconnects.
func (h *SurgeryHandler) StreamSurgeries(c *gin.Context) {
	snapshots := make(chan []models.Surgery, 4)
	unsubscribe := h.surgeryService.Subscribe(func(surgeries []models.Surgery) {
		select {
		case snapshots <- surgeries:
		default:
			// slow client; the next snapshot supersedes this one anyway
		}
	})
	defer unsubscribe()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case surgeries := <-snapshots:
			c.SSEvent("surgeries", surgeries)
			return true
		}
	})
}
