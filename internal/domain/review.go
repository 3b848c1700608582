package domain

import "time"

// Review is tied to a completed booking. Rating is 1..5.
type Review struct {
	ID              int64
	BookingID       int64
	AccommodationID int64
	GuestName       string
	Rating          int
	Comment         *string
	HostResponse    *string
	IsPublished     bool
	CreatedAt       time.Time
}

type Region struct {
	ID                 int64
	Name               string
	Slug               string
	Description        *string
	ImageURL           *string
	AccommodationCount int
	IsActive           bool
}

type ConfigEntry struct {
	Key         string
	Value       string
	Description *string
}
