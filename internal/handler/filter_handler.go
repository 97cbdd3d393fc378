package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poolboard/poolboard-api/internal/dto"
	"github.com/poolboard/poolboard-api/internal/models"
	"github.com/poolboard/poolboard-api/internal/service"
	appErrors "github.com/poolboard/poolboard-api/pkg/errors"
	"github.com/poolboard/poolboard-api/pkg/response"
)

// FilterHandler replays client filter selections server-side. The endpoint is
// stateless; the client resubmits its full toggle sequence each time.
type FilterHandler struct {
	facilities *service.FacilityService
}

// NewFilterHandler constructs handler.
func NewFilterHandler(facilities *service.FacilityService) *FilterHandler {
	return &FilterHandler{facilities: facilities}
}

// Evaluate godoc
// @Summary Evaluate a filter selection sequence
// @Description Replays the posted toggles against the facility document and returns the resolved criteria plus matching entries for the optional date.
// @Tags Filters
// @Accept json
// @Produce json
// @Param payload body dto.FilterEvaluateRequest true "Selection sequence"
// @Success 200 {object} response.Envelope
// @Router /filters/evaluate [post]
func (h *FilterHandler) Evaluate(c *gin.Context) {
	var req dto.FilterEvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	store, err := h.facilities.Store(req.Facility)
	if err != nil {
		response.Error(c, err)
		return
	}

	filters := service.NewFilterSet()
	for _, toggle := range req.Toggles {
		switch toggle.Type {
		case dto.FilterToggleActivity:
			filters.ToggleActivity(store, toggle.ID)
		case dto.FilterToggleCategory:
			filters.ToggleCategory(store, toggle.ID)
		case dto.FilterToggleQuick:
			filters.EnableQuickMode(store)
		case dto.FilterToggleClear:
			filters.Clear()
		default:
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown filter toggle type %q", toggle.Type)))
			return
		}
	}

	payload := dto.FilterEvaluateResponse{
		Criteria:            filters.Active(),
		QuickMode:           filters.QuickMode(),
		MatchingActivityIDs: filters.MatchingActivityIDs(),
	}
	if payload.Criteria == nil {
		payload.Criteria = []models.FilterCriterion{}
	}
	if payload.MatchingActivityIDs == nil {
		payload.MatchingActivityIDs = []string{}
	}

	if req.Date != "" {
		for _, entry := range store.ScheduleForDate(req.Date) {
			if filters.Matches(entry.Activity) {
				payload.Entries = append(payload.Entries, entry)
			}
		}
	}

	response.JSON(c, http.StatusOK, payload)
}
