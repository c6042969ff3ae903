package handler

import (
	"net/http"

	"surgery-schedule-backend/internal/service"
	"surgery-schedule-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

type ToggleAssignmentRequest struct {
	SurgeryID string `json:"surgeryId" binding:"required"`
	Room      int    `json:"room" binding:"required,min=1,max=3"`
}

// ToggleAssignment assigns a case to a room or removes it when already there
func (h *AssignmentHandler) ToggleAssignment(c *gin.Context) {
	var req ToggleAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request. Room must be 1, 2 or 3")
		return
	}

	assigned, err := h.assignmentService.Toggle(req.SurgeryID, req.Room)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"surgeryId": req.SurgeryID,
		"room":      req.Room,
		"assigned":  assigned,
	})
}

// UnassignSurgery clears a case's room; unknown ids are a no-op
func (h *AssignmentHandler) UnassignSurgery(c *gin.Context) {
	if err := h.assignmentService.Unassign(c.Param("id")); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.MessageResponse(c, "Room assignment removed")
}
