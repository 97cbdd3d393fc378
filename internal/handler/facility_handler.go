package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poolboard/poolboard-api/internal/service"
	appErrors "github.com/poolboard/poolboard-api/pkg/errors"
	"github.com/poolboard/poolboard-api/pkg/response"
)

// FacilityHandler serves facility documents and the raw save endpoint.
type FacilityHandler struct {
	facilities *service.FacilityService
}

// NewFacilityHandler constructs handler.
func NewFacilityHandler(svc *service.FacilityService) *FacilityHandler {
	return &FacilityHandler{facilities: svc}
}

// List godoc
// @Summary List available facilities
// @Tags Facilities
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /facilities [get]
func (h *FacilityHandler) List(c *gin.Context) {
	facilities, err := h.facilities.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, facilities)
}

// Get godoc
// @Summary Get a facility schedule document
// @Description Returns the raw schedule document; the viewer consumes it directly.
// @Tags Facilities
// @Produce json
// @Param slug path string true "Facility slug"
// @Success 200 {object} models.ScheduleDocument
// @Router /facility/{slug} [get]
func (h *FacilityHandler) Get(c *gin.Context) {
	doc, err := h.facilities.Document(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	// The viewer expects the bare document, not the envelope.
	c.JSON(http.StatusOK, doc)
}

// SaveRaw godoc
// @Summary Save a facility schedule document
// @Description Persists the posted document verbatim after a JSON validity check; rotates timestamped backups.
// @Tags Facilities
// @Accept json
// @Produce json
// @Param slug path string true "Facility slug"
// @Success 200 {object} response.Envelope
// @Router /save-facility/{slug} [post]
func (h *FacilityHandler) SaveRaw(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "failed to read request body"))
		return
	}
	if err := h.facilities.SaveRaw(c.Param("slug"), raw); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "schedule saved"})
}
