package dto

import "github.com/poolboard/poolboard-api/internal/models"

// AvailabilityResponse is the payload for the upcoming-availability endpoint.
type AvailabilityResponse struct {
	Activity *models.Activity         `json:"activity"`
	Days     []models.DayAvailability `json:"days"`
	Next     *models.NextSlot         `json:"next,omitempty"`
}
