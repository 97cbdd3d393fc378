package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/poolboard/poolboard-api/internal/service"
	appErrors "github.com/poolboard/poolboard-api/pkg/errors"
	"github.com/poolboard/poolboard-api/pkg/response"
)

// EditorHandler exposes the pending-copy editing workflow.
type EditorHandler struct {
	editor *service.EditorService
}

// NewEditorHandler constructs handler.
func NewEditorHandler(editor *service.EditorService) *EditorHandler {
	return &EditorHandler{editor: editor}
}

// Pending godoc
// @Summary Pending (unsaved) schedules for a facility
// @Tags Editor
// @Produce json
// @Param slug path string true "Facility slug"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/pending [get]
func (h *EditorHandler) Pending(c *gin.Context) {
	schedules, err := h.editor.Pending(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedules)
}

// AddEntry godoc
// @Summary Add a schedule entry to the pending copy
// @Tags Editor
// @Accept json
// @Produce json
// @Param slug path string true "Facility slug"
// @Param payload body service.EntryRequest true "Entry payload"
// @Success 201 {object} response.Envelope
// @Router /facility/{slug}/entries [post]
func (h *EditorHandler) AddEntry(c *gin.Context) {
	var req service.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.editor.AddEntry(c.Param("slug"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// UpdateEntry godoc
// @Summary Replace a pending schedule entry
// @Tags Editor
// @Accept json
// @Produce json
// @Param slug path string true "Facility slug"
// @Param date path string true "Current date of the entry"
// @Param index path int true "Entry index within the date"
// @Param payload body service.EntryRequest true "Entry payload"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/entries/{date}/{index} [put]
func (h *EditorHandler) UpdateEntry(c *gin.Context) {
	index, err := entryIndex(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.editor.UpdateEntry(c.Param("slug"), c.Param("date"), index, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry)
}

// DeleteEntry godoc
// @Summary Delete a pending schedule entry
// @Tags Editor
// @Produce json
// @Param slug path string true "Facility slug"
// @Param date path string true "Date of the entry"
// @Param index path int true "Entry index within the date"
// @Success 204 {object} nil
// @Router /facility/{slug}/entries/{date}/{index} [delete]
func (h *EditorHandler) DeleteEntry(c *gin.Context) {
	index, err := entryIndex(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.editor.DeleteEntry(c.Param("slug"), c.Param("date"), index); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ClearDay godoc
// @Summary Remove all pending entries for a date
// @Tags Editor
// @Produce json
// @Param slug path string true "Facility slug"
// @Param date path string true "Date to clear"
// @Success 204 {object} nil
// @Router /facility/{slug}/days/{date} [delete]
func (h *EditorHandler) ClearDay(c *gin.Context) {
	if err := h.editor.ClearDay(c.Param("slug"), c.Param("date")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Import godoc
// @Summary Import schedules into the pending copy
// @Description Replaces the pending schedules with the uploaded document's schedules key. The pending copy is untouched when the upload is invalid.
// @Tags Editor
// @Accept json
// @Produce json
// @Param slug path string true "Facility slug"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/import [post]
func (h *EditorHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "failed to read request body"))
		return
	}
	if err := h.editor.Import(c.Param("slug"), raw); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "schedules imported"})
}

// Save godoc
// @Summary Commit the pending copy to disk
// @Tags Editor
// @Produce json
// @Param slug path string true "Facility slug"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/save [post]
func (h *EditorHandler) Save(c *gin.Context) {
	if err := h.editor.Save(c.Param("slug")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "schedule saved"})
}

// Discard godoc
// @Summary Discard the pending copy
// @Tags Editor
// @Produce json
// @Param slug path string true "Facility slug"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/discard [post]
func (h *EditorHandler) Discard(c *gin.Context) {
	h.editor.Discard(c.Param("slug"))
	response.JSON(c, http.StatusOK, gin.H{"message": "pending changes discarded"})
}

// Export godoc
// @Summary Download the document with pending schedules applied
// @Tags Editor
// @Produce json
// @Param slug path string true "Facility slug"
// @Success 200 {object} models.ScheduleDocument
// @Router /facility/{slug}/export [get]
func (h *EditorHandler) Export(c *gin.Context) {
	doc, err := h.editor.ExportDocument(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-schedule.json", c.Param("slug")))
	c.JSON(http.StatusOK, doc)
}

func entryIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "index must be an integer")
	}
	return index, nil
}
