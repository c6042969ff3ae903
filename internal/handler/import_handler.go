package handler

import (
	"net/http"

	"surgery-schedule-backend/internal/service"
	"surgery-schedule-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	importService *service.ImportService
}

func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// ImportWorkbook accepts an Excel workbook upload plus the Monday anchor
// date and bulk-creates the week's cases. Responds with the added count;
// skipped rows are reflected only in a lower total.
func (h *ImportHandler) ImportWorkbook(c *gin.Context) {
	anchorDate := c.PostForm("anchor_date")
	if anchorDate == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "anchor_date is required (Monday of the week, YYYY-MM-DD)")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Excel file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	added, err := h.importService.ImportWorkbook(file, anchorDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"added": added,
	})
}
