package domain

import "time"

type AvailabilityStatus string

const (
	Available AvailabilityStatus = "available"
	Booked    AvailabilityStatus = "booked"
	Blocked   AvailabilityStatus = "blocked"
)

// AvailabilityRecord is a per-date status row. At most one row exists per
// (accommodation, date); the absence of a row means the date is available.
// BookingID backlinks the booking that occupied the date when Status is
// Booked.
type AvailabilityRecord struct {
	ID              int64
	AccommodationID int64
	Date            time.Time
	Status          AvailabilityStatus
	BookingID       *int64
	Note            *string
	CreatedAt       time.Time
}
