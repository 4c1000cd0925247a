package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service is a bookable service in the business catalog.
// Price is stored in minor currency units.
type Service struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	Name            string
	DurationMinutes int64
	Price           int64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Barber is a staff member providing services
type Barber struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	DisplayName string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
