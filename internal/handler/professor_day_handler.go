package handler

import (
	"net/http"

	"surgery-schedule-backend/internal/service"
	"surgery-schedule-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ProfessorDayHandler struct {
	professorDayService *service.ProfessorDayService
}

func NewProfessorDayHandler(professorDayService *service.ProfessorDayService) *ProfessorDayHandler {
	return &ProfessorDayHandler{
		professorDayService: professorDayService,
	}
}

type SetProfessorDayRequest struct {
	ProfessorName string `json:"professorName"`
}

// SetProfessorDay upserts the professor of the day; an empty name clears it
func (h *ProfessorDayHandler) SetProfessorDay(c *gin.Context) {
	var req SetProfessorDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.professorDayService.Set(c.Param("date"), req.ProfessorName); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.MessageResponse(c, "Professor of the day saved")
}

// GetProfessorDays returns all professor-of-day records
func (h *ProfessorDayHandler) GetProfessorDays(c *gin.Context) {
	days, err := h.professorDayService.GetAll()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch professor days")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"days":  days,
		"count": len(days),
	})
}
