package handlers

import (
	"fmt"

	"ncd-clinic-server/internal/middleware"
	"ncd-clinic-server/internal/service"
	"ncd-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ImportHandler handles bulk patient uploads.
type ImportHandler struct {
	Imports *service.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(imports *service.ImportService) *ImportHandler {
	return &ImportHandler{Imports: imports}
}

// UploadPatients accepts a multipart .xlsx file, reads the first sheet
// (first row = headers) and feeds the rows through the import pipeline.
func (h *ImportHandler) UploadPatients(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "File is required: "+err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequest(c, "Failed to open uploaded file: "+err.Error())
		return
	}
	defer file.Close()

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		utils.BadRequest(c, "Invalid Excel file: "+err.Error())
		return
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		utils.BadRequest(c, "Workbook has no sheets")
		return
	}

	cells, err := workbook.GetRows(sheet)
	if err != nil {
		utils.BadRequest(c, "Failed to read sheet: "+err.Error())
		return
	}
	if len(cells) < 2 {
		utils.Success(c, "Uploaded 0 patients", gin.H{"count": 0})
		return
	}

	headers := cells[0]
	rows := make([]service.ImportRow, 0, len(cells)-1)
	for _, raw := range cells[1:] {
		row := make(service.ImportRow, len(headers))
		for i, header := range headers {
			if i < len(raw) {
				row[header] = raw[i]
			}
		}
		rows = append(rows, row)
	}

	count, err := h.Imports.ImportPatients(caller, rows)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, fmt.Sprintf("Uploaded %d patients", count), gin.H{"count": count})
}
