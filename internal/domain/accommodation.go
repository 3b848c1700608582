package domain

import "time"

// Accommodation is a host-owned listing. Money columns (PricePerNight,
// WeekendPrice, CleaningFee) travel as fixed-point decimal strings, never
// floats.
type Accommodation struct {
	ID     int64
	HostID int64

	Title            string
	Slug             string
	Description      *string
	ShortDescription *string
	Type             string // apartment|house|room|villa|cabin|other

	Street      *string
	HouseNumber *string
	City        *string
	PostalCode  *string
	Country     *string
	Region      *string
	Latitude    *string
	Longitude   *string

	MaxGuests int
	Bedrooms  int
	Beds      int
	Bathrooms int

	PricePerNight string
	WeekendPrice  *string
	CleaningFee   string

	MinNights    int
	MaxNights    int
	CheckInTime  string // local time-of-day, "15:00"
	CheckOutTime string
	HouseRules   *string

	InstantBooking bool
	IsActive       bool
	IsPublished    bool

	ViewCount     int64
	BookingCount  int64
	AverageRating *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Visible reports whether the listing appears in public search and detail
// lookups. Both flags must be set.
func (a Accommodation) Visible() bool { return a.IsActive && a.IsPublished }

type Image struct {
	ID              int64
	AccommodationID int64
	URL             string
	FileKey         *string
	Caption         *string
	SortOrder       int
	IsMain          bool
	CreatedAt       time.Time
}

type Amenity struct {
	ID       int64
	Name     string
	Icon     *string
	Category string
}

// AccommodationPatch is a partial update; nil fields are left untouched.
type AccommodationPatch struct {
	Title            *string
	Description      *string
	ShortDescription *string
	Type             *string
	Street           *string
	HouseNumber      *string
	City             *string
	PostalCode       *string
	Country          *string
	Region           *string
	Latitude         *string
	Longitude        *string
	MaxGuests        *int
	Bedrooms         *int
	Beds             *int
	Bathrooms        *int
	PricePerNight    *string
	WeekendPrice     *string
	CleaningFee      *string
	MinNights        *int
	MaxNights        *int
	CheckInTime      *string
	CheckOutTime     *string
	HouseRules       *string
	InstantBooking   *bool
	IsPublished      *bool
	IsActive         *bool
}

type SearchSort string

const (
	SortPriceAsc  SearchSort = "price_asc"
	SortPriceDesc SearchSort = "price_desc"
	SortRating    SearchSort = "rating"
	SortNewest    SearchSort = "newest"
)

// SearchQuery filters the public listing index. Only published+active rows
// are ever returned.
type SearchQuery struct {
	City       *string
	Region     *string
	MinPrice   *string
	MaxPrice   *string
	MinGuests  *int
	AmenityIDs []int64
	SortBy     SearchSort
	Limit      int
	Offset     int
}

// AccommodationView is a listing plus its image rows, the shape returned by
// search and host-listing reads.
type AccommodationView struct {
	Accommodation
	Images []Image
}

// AccommodationDetail is the full public detail page payload.
type AccommodationDetail struct {
	Accommodation
	Images    []Image
	Amenities []Amenity
	Reviews   []Review
	Host      *HostSummary
}

type HostSummary struct {
	ID        int64
	Name      *string
	AvatarURL *string
	Bio       *string
}
