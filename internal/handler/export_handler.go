package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poolboard/poolboard-api/internal/service"
	"github.com/poolboard/poolboard-api/pkg/response"
)

// ExportHandler serves printable day-schedule downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs handler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Day godoc
// @Summary Export one day of the schedule
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param slug path string true "Facility slug"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /facility/{slug}/export/{date} [get]
func (h *ExportHandler) Day(c *gin.Context) {
	payload, contentType, filename, err := h.exports.DaySchedule(c.Param("slug"), c.Param("date"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, payload)
}
