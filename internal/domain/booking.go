package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ValidBookingStatus reports whether s is one of the five booking states.
// The workflow does not restrict which state follows which; the host is
// authoritative for their own bookings.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingRejected, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking carries an immutable pricing snapshot captured at creation time;
// later price changes on the accommodation do not affect it.
type Booking struct {
	ID              int64
	AccommodationID int64
	HostID          int64 // denormalized owner at creation time

	GuestName    string
	GuestEmail   string
	GuestPhone   *string
	GuestMessage *string

	CheckIn        time.Time // calendar date, UTC midnight
	CheckOut       time.Time
	NumberOfGuests int

	PricePerNight  string
	NumberOfNights int
	CleaningFee    string
	TotalPrice     string
	Currency       string

	Status    BookingStatus
	HostNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingView attaches the listing's title and slug for host-facing lists.
type BookingView struct {
	Booking
	AccommodationTitle string
	AccommodationSlug  string
}

type HostStats struct {
	TotalRevenue      string
	PendingRequests   int64
	ConfirmedBookings int64
}

// Date truncates t to its UTC calendar day.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights counts the nights in [checkIn, checkOut). Inputs are calendar
// dates; a same-day pair yields zero.
func Nights(checkIn, checkOut time.Time) int {
	return int(Date(checkOut).Sub(Date(checkIn)) / (24 * time.Hour))
}

// StayDates enumerates every occupied date of a stay. The checkout day is
// not occupied.
func StayDates(checkIn, checkOut time.Time) []time.Time {
	var out []time.Time
	for d := Date(checkIn); d.Before(Date(checkOut)); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// OccupyRecords builds the booked ledger rows for a confirmed booking, one
// per night of the stay, each backlinking the booking. b.ID must be set.
func OccupyRecords(b Booking) []AvailabilityRecord {
	note := fmt.Sprintf("Booking #%d", b.ID)
	var out []AvailabilityRecord
	for _, d := range StayDates(b.CheckIn, b.CheckOut) {
		id := b.ID
		out = append(out, AvailabilityRecord{
			AccommodationID: b.AccommodationID,
			Date:            d,
			Status:          Booked,
			BookingID:       &id,
			Note:            &note,
		})
	}
	return out
}
