package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/poolboard/poolboard-api/internal/dto"
	"github.com/poolboard/poolboard-api/internal/models"
	"github.com/poolboard/poolboard-api/internal/service"
	appErrors "github.com/poolboard/poolboard-api/pkg/errors"
	"github.com/poolboard/poolboard-api/pkg/response"
)

// AvailabilityHandler serves the upcoming-availability list view.
type AvailabilityHandler struct {
	facilities   *service.FacilityService
	availability *service.AvailabilityService
	defaultDays  int
}

// NewAvailabilityHandler constructs handler.
func NewAvailabilityHandler(facilities *service.FacilityService, availability *service.AvailabilityService, defaultDays int) *AvailabilityHandler {
	if defaultDays <= 0 {
		defaultDays = 7
	}
	return &AvailabilityHandler{facilities: facilities, availability: availability, defaultDays: defaultDays}
}

// Upcoming godoc
// @Summary Upcoming availability windows for an activity
// @Description Walks the lookahead horizon, merges overlapping slots into windows per day and reports the next occurrence.
// @Tags Availability
// @Produce json
// @Param slug path string true "Facility slug"
// @Param activity path string true "Activity id"
// @Param days query int false "Lookahead days"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/availability/{activity} [get]
func (h *AvailabilityHandler) Upcoming(c *gin.Context) {
	activityID := c.Param("activity")

	days := h.defaultDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "days must be a positive integer"))
			return
		}
		days = parsed
	}

	store, err := h.facilities.Store(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	payload := dto.AvailabilityResponse{}
	if activity, ok := store.Activity(activityID); ok {
		payload.Activity = &activity
	}
	payload.Days, payload.Next = h.availability.Upcoming(store, activityID, days)
	if payload.Days == nil {
		payload.Days = []models.DayAvailability{}
	}

	response.JSON(c, http.StatusOK, payload)
}
