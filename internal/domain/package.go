package domain

import (
	"time"

	"github.com/google/uuid"
)

type TourPackage struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"durationDays"`
	MaxPax       int       `json:"maxPax"`
	Destinations []string  `json:"destinations"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type TourPackagePatch struct {
	Name         *string
	Description  *string
	Price        *float64
	DurationDays *int
	MaxPax       *int
	Destinations []string
}
