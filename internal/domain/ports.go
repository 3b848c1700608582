package domain

import (
	"context"
	"time"
)

type AccommodationRepository interface {
	// Write paths
	CreateAccommodation(ctx context.Context, a Accommodation) (int64, error)
	UpdateAccommodation(ctx context.Context, id int64, p AccommodationPatch) error
	IncrementViews(ctx context.Context, id int64) error
	SetAmenities(ctx context.Context, accommodationID int64, amenityIDs []int64) error
	AddImage(ctx context.Context, img Image) (int64, error)
	DeleteImage(ctx context.Context, id int64) error
	SetMainImage(ctx context.Context, accommodationID, imageID int64) error

	// Read paths
	GetAccommodationByID(ctx context.Context, id int64) (Accommodation, error)
	GetAccommodationBySlug(ctx context.Context, slug string) (Accommodation, error)
	ListByHost(ctx context.Context, hostID int64) ([]Accommodation, error)
	SearchPublished(ctx context.Context, q SearchQuery) ([]Accommodation, error)
	ListFeatured(ctx context.Context, limit int) ([]Accommodation, error)
	ListImages(ctx context.Context, accommodationID int64) ([]Image, error)
	ListImagesFor(ctx context.Context, accommodationIDs []int64) (map[int64][]Image, error)
	GetImage(ctx context.Context, id int64) (Image, error)
	ListAccommodationAmenities(ctx context.Context, accommodationID int64) ([]Amenity, error)
}

type BookingRepository interface {
	// CreateBooking checks the stay window against the availability ledger
	// and inserts the row within one serializable transaction; it returns
	// ErrConflict when any date in [CheckIn, CheckOut) is booked or blocked.
	CreateBooking(ctx context.Context, b Booking) (int64, error)

	// SetBookingStatus updates status and host notes; when occupy is
	// non-empty the records are upserted in the same transaction.
	SetBookingStatus(ctx context.Context, id int64, status BookingStatus, hostNotes *string, occupy []AvailabilityRecord) error

	GetBookingByID(ctx context.Context, id int64) (Booking, error)
	ListBookingsByHost(ctx context.Context, hostID int64, status *BookingStatus) ([]BookingView, error)
	UpcomingCheckIns(ctx context.Context, hostID int64, from, to time.Time) ([]BookingView, error)
	ListExpiredConfirmed(ctx context.Context, asOf time.Time) ([]int64, error)
	HostStats(ctx context.Context, hostID int64) (HostStats, error)
}

type AvailabilityRepository interface {
	IsRangeAvailable(ctx context.Context, accommodationID int64, checkIn, checkOut time.Time) (bool, error)
	BlockDates(ctx context.Context, accommodationID int64, dates []time.Time, note *string) error
	UnblockDates(ctx context.Context, accommodationID int64, dates []time.Time) error
	GetAvailability(ctx context.Context, accommodationID int64, start, end time.Time) ([]AvailabilityRecord, error)
}

type CatalogRepository interface {
	ListAmenities(ctx context.Context) ([]Amenity, error)
	SeedAmenities(ctx context.Context, items []Amenity) (int, error)
	ListReviews(ctx context.Context, accommodationID int64) ([]Review, error)
	CreateReview(ctx context.Context, r Review) (int64, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	ListRegions(ctx context.Context) ([]Region, error)
	CreateRegion(ctx context.Context, r Region) (int64, error)
	GetConfig(ctx context.Context) (map[string]string, error)
	SetConfig(ctx context.Context, e ConfigEntry) error
	EnsureConfigDefaults(ctx context.Context, defaults []ConfigEntry) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
