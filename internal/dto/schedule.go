package dto

import "github.com/poolboard/poolboard-api/internal/models"

// HoursResponse reports the resolved opening hours for one date.
type HoursResponse struct {
	Date  string            `json:"date"`
	Hours *models.PoolHours `json:"hours"`
}

// OpenResponse reports whether the pool is open at an instant.
type OpenResponse struct {
	Date string `json:"date"`
	Time int    `json:"time"`
	Open bool   `json:"open"`
}
