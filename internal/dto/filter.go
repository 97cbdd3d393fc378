package dto

import "github.com/poolboard/poolboard-api/internal/models"

// Filter toggle actions accepted by the evaluation endpoint.
const (
	FilterToggleActivity = "activity"
	FilterToggleCategory = "category"
	FilterToggleQuick    = "quick"
	FilterToggleClear    = "clear"
)

// FilterToggle is one step of the client's selection sequence.
type FilterToggle struct {
	Type string `json:"type" binding:"required"`
	ID   string `json:"id"`
}

// FilterEvaluateRequest replays a selection sequence against a facility
// document. The client owns the filter state; the server is stateless.
type FilterEvaluateRequest struct {
	Facility string         `json:"facility"`
	Date     string         `json:"date"`
	Toggles  []FilterToggle `json:"toggles"`
}

// FilterEvaluateResponse echoes the resolved criteria plus, when a date was
// supplied, the schedule entries that pass them.
type FilterEvaluateResponse struct {
	Criteria            []models.FilterCriterion `json:"criteria"`
	QuickMode           bool                     `json:"quickMode"`
	MatchingActivityIDs []string                 `json:"matchingActivityIds"`
	Entries             []models.ScheduleEntry   `json:"entries,omitempty"`
}
