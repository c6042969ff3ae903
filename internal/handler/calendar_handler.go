package handler

import (
	"net/http"
	"strconv"
	"time"

	"surgery-schedule-backend/internal/service"
	"surgery-schedule-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	surgeryService      *service.SurgeryService
	assignmentService   *service.AssignmentService
	professorDayService *service.ProfessorDayService
}

func NewCalendarHandler(
	surgeryService *service.SurgeryService,
	assignmentService *service.AssignmentService,
	professorDayService *service.ProfessorDayService,
) *CalendarHandler {
	return &CalendarHandler{
		surgeryService:      surgeryService,
		assignmentService:   assignmentService,
		professorDayService: professorDayService,
	}
}

// GetMonth returns the month grid with per-day counts and severity tiers
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid year")
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid month, expected 1-12")
		return
	}

	view := service.BuildMonthView(h.surgeryService.All(), year, month, time.Now())
	utils.SuccessResponse(c, view)
}

// GetDay returns a day's case bucket with the professor of the day
func (h *CalendarHandler) GetDay(c *gin.Context) {
	date := c.Param("date")
	if _, err := utils.ParseDate(date); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	surgeries := h.surgeryService.OnDate(date)
	professor, err := h.professorDayService.Get(date)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch professor of the day")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"date":           date,
		"display":        utils.FormatDateDisplay(date),
		"professorOfDay": professor,
		"surgeries":      surgeries,
		"count":          len(surgeries),
	})
}

// GetDayRooms partitions a day's cases into the three rooms plus unassigned
func (h *CalendarHandler) GetDayRooms(c *gin.Context) {
	date := c.Param("date")
	if _, err := utils.ParseDate(date); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	partition := h.assignmentService.Partition(h.surgeryService.OnDate(date))
	utils.SuccessResponse(c, gin.H{
		"date":       date,
		"room1":      partition.Rooms[0],
		"room2":      partition.Rooms[1],
		"room3":      partition.Rooms[2],
		"unassigned": partition.Unassigned,
	})
}

// GetDayShareText renders a day's list as plain text for the group chat
func (h *CalendarHandler) GetDayShareText(c *gin.Context) {
	date := c.Param("date")
	if _, err := utils.ParseDate(date); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	surgeries := h.surgeryService.OnDate(date)
	if len(surgeries) == 0 {
		utils.ErrorResponse(c, http.StatusNotFound, "No surgeries on this date")
		return
	}

	c.String(http.StatusOK, service.FormatDayShareText(surgeries, date))
}
