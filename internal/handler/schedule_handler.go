package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/poolboard/poolboard-api/internal/dto"
	"github.com/poolboard/poolboard-api/internal/models"
	"github.com/poolboard/poolboard-api/internal/service"
	appErrors "github.com/poolboard/poolboard-api/pkg/errors"
	"github.com/poolboard/poolboard-api/pkg/response"
	"github.com/poolboard/poolboard-api/pkg/timeutil"
)

// ScheduleHandler serves point-in-time and day-level schedule queries.
type ScheduleHandler struct {
	facilities *service.FacilityService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(facilities *service.FacilityService) *ScheduleHandler {
	return &ScheduleHandler{facilities: facilities}
}

// ForDate godoc
// @Summary Schedule entries for a date
// @Tags Schedule
// @Produce json
// @Param slug path string true "Facility slug"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/schedule/{date} [get]
func (h *ScheduleHandler) ForDate(c *gin.Context) {
	store, err := h.facilities.Store(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	entries := store.ScheduleForDate(c.Param("date"))
	if entries == nil {
		entries = []models.ScheduleEntry{}
	}
	response.JSON(c, http.StatusOK, entries)
}

// Dates godoc
// @Summary Dates that have schedule entries
// @Tags Schedule
// @Produce json
// @Param slug path string true "Facility slug"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/dates [get]
func (h *ScheduleHandler) Dates(c *gin.Context) {
	store, err := h.facilities.Store(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, store.AvailableDates())
}

// LaneStatus godoc
// @Summary Activity occupying a lane at an instant
// @Description Returns the occupying entry with its resolved activity, or null when the lane is free.
// @Tags Schedule
// @Produce json
// @Param slug path string true "Facility slug"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param section query string true "Pool section id"
// @Param lane query string true "Lane identifier"
// @Param time query string true "Clock time (HH:MM) or minutes since midnight"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/lane-status [get]
func (h *ScheduleHandler) LaneStatus(c *gin.Context) {
	date, section, lane, err := laneQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	minutes, err := timeParam(c, "time")
	if err != nil {
		response.Error(c, err)
		return
	}

	store, err := h.facilities.Store(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, store.LaneStatus(date, section, lane, minutes))
}

// LaneSchedule godoc
// @Summary Full-day schedule for one lane
// @Tags Schedule
// @Produce json
// @Param slug path string true "Facility slug"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param section query string true "Pool section id"
// @Param lane query string true "Lane identifier"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/lane-schedule [get]
func (h *ScheduleHandler) LaneSchedule(c *gin.Context) {
	date, section, lane, err := laneQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	store, err := h.facilities.Store(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	statuses := store.LaneSchedule(date, section, lane)
	if statuses == nil {
		statuses = []models.LaneStatus{}
	}
	response.JSON(c, http.StatusOK, statuses)
}

// ActivitiesAt godoc
// @Summary Activities running at an instant
// @Tags Schedule
// @Produce json
// @Param slug path string true "Facility slug"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Clock time (HH:MM) or minutes since midnight"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/activities-at [get]
func (h *ScheduleHandler) ActivitiesAt(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date query parameter is required"))
		return
	}
	minutes, err := timeParam(c, "time")
	if err != nil {
		response.Error(c, err)
		return
	}

	store, err := h.facilities.Store(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	activities := store.ActivitiesAtTime(date, minutes)
	if activities == nil {
		activities = []models.Activity{}
	}
	response.JSON(c, http.StatusOK, activities)
}

// Hours godoc
// @Summary Opening hours for a date
// @Tags Schedule
// @Produce json
// @Param slug path string true "Facility slug"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/hours [get]
func (h *ScheduleHandler) Hours(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date query parameter is required"))
		return
	}

	store, err := h.facilities.Store(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.HoursResponse{Date: date, Hours: store.PoolHours(date)})
}

// Open godoc
// @Summary Whether the pool is open at an instant
// @Tags Schedule
// @Produce json
// @Param slug path string true "Facility slug"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Clock time (HH:MM) or minutes since midnight"
// @Success 200 {object} response.Envelope
// @Router /facility/{slug}/open [get]
func (h *ScheduleHandler) Open(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date query parameter is required"))
		return
	}
	minutes, err := timeParam(c, "time")
	if err != nil {
		response.Error(c, err)
		return
	}

	store, err := h.facilities.Store(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.OpenResponse{Date: date, Time: minutes, Open: store.IsPoolOpen(date, minutes)})
}

func laneQuery(c *gin.Context) (date, section string, lane models.Lane, err error) {
	date = c.Query("date")
	section = c.Query("section")
	laneParam := c.Query("lane")
	if date == "" || section == "" || laneParam == "" {
		return "", "", "", appErrors.Clone(appErrors.ErrValidation, "date, section and lane query parameters are required")
	}
	return date, section, models.Lane(laneParam), nil
}

// timeParam reads a time query value given either as HH:MM or as raw minutes
// since midnight.
func timeParam(c *gin.Context, name string) (int, error) {
	value := c.Query(name)
	if value == "" {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+" query parameter is required")
	}
	if strings.Contains(value, ":") {
		return timeutil.TimeToMinutes(value), nil
	}
	minutes, err := strconv.Atoi(value)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+" must be HH:MM or minutes since midnight")
	}
	return minutes, nil
}
