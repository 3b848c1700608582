package httpserver

import (
	"time"

	"fewo_booking/internal/domain"
)

// Wire shapes for the JSON API. Money fields stay decimal strings; dates in
// bookings and the ledger render as "2006-01-02".

type accommodationDTO struct {
	ID               int64   `json:"id"`
	HostID           int64   `json:"hostId"`
	Title            string  `json:"title"`
	Slug             string  `json:"slug"`
	Description      *string `json:"description,omitempty"`
	ShortDescription *string `json:"shortDescription,omitempty"`
	Type             string  `json:"type"`

	Street      *string `json:"street,omitempty"`
	HouseNumber *string `json:"houseNumber,omitempty"`
	City        *string `json:"city,omitempty"`
	PostalCode  *string `json:"postalCode,omitempty"`
	Country     *string `json:"country,omitempty"`
	Region      *string `json:"region,omitempty"`
	Latitude    *string `json:"latitude,omitempty"`
	Longitude   *string `json:"longitude,omitempty"`

	MaxGuests int `json:"maxGuests"`
	Bedrooms  int `json:"bedrooms"`
	Beds      int `json:"beds"`
	Bathrooms int `json:"bathrooms"`

	PricePerNight string  `json:"pricePerNight"`
	WeekendPrice  *string `json:"weekendPrice,omitempty"`
	CleaningFee   string  `json:"cleaningFee"`

	MinNights    int     `json:"minNights"`
	MaxNights    int     `json:"maxNights"`
	CheckInTime  string  `json:"checkInTime"`
	CheckOutTime string  `json:"checkOutTime"`
	HouseRules   *string `json:"houseRules,omitempty"`

	InstantBooking bool `json:"instantBooking"`
	IsActive       bool `json:"isActive"`
	IsPublished    bool `json:"isPublished"`

	ViewCount     int64   `json:"viewCount"`
	BookingCount  int64   `json:"bookingCount"`
	AverageRating *string `json:"averageRating,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Images    []imageDTO   `json:"images,omitempty"`
	Amenities []amenityDTO `json:"amenities,omitempty"`
	Reviews   []reviewDTO  `json:"reviews,omitempty"`
	Host      *hostDTO     `json:"host,omitempty"`
}

type imageDTO struct {
	ID        int64   `json:"id"`
	URL       string  `json:"url"`
	Caption   *string `json:"caption,omitempty"`
	SortOrder int     `json:"sortOrder"`
	IsMain    bool    `json:"isMain"`
}

type amenityDTO struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Icon     *string `json:"icon,omitempty"`
	Category string  `json:"category"`
}

type reviewDTO struct {
	ID           int64     `json:"id"`
	GuestName    string    `json:"guestName"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	HostResponse *string   `json:"hostResponse,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type hostDTO struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

type bookingDTO struct {
	ID              int64   `json:"id"`
	AccommodationID int64   `json:"accommodationId"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      *string `json:"guestPhone,omitempty"`
	GuestMessage    *string `json:"guestMessage,omitempty"`

	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	NumberOfGuests int    `json:"numberOfGuests"`

	PricePerNight  string `json:"pricePerNight"`
	NumberOfNights int    `json:"numberOfNights"`
	CleaningFee    string `json:"cleaningFee"`
	TotalPrice     string `json:"totalPrice"`
	Currency       string `json:"currency"`

	Status    string  `json:"status"`
	HostNotes *string `json:"hostNotes,omitempty"`

	AccommodationTitle string `json:"accommodationTitle,omitempty"`
	AccommodationSlug  string `json:"accommodationSlug,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

type availabilityDTO struct {
	Date      string  `json:"date"`
	Status    string  `json:"status"`
	BookingID *int64  `json:"bookingId,omitempty"`
	Note      *string `json:"note,omitempty"`
}

func toAccommodationDTO(a domain.Accommodation) accommodationDTO {
	return accommodationDTO{
		ID: a.ID, HostID: a.HostID,
		Title: a.Title, Slug: a.Slug,
		Description: a.Description, ShortDescription: a.ShortDescription, Type: a.Type,
		Street: a.Street, HouseNumber: a.HouseNumber, City: a.City, PostalCode: a.PostalCode,
		Country: a.Country, Region: a.Region, Latitude: a.Latitude, Longitude: a.Longitude,
		MaxGuests: a.MaxGuests, Bedrooms: a.Bedrooms, Beds: a.Beds, Bathrooms: a.Bathrooms,
		PricePerNight: a.PricePerNight, WeekendPrice: a.WeekendPrice, CleaningFee: a.CleaningFee,
		MinNights: a.MinNights, MaxNights: a.MaxNights,
		CheckInTime: a.CheckInTime, CheckOutTime: a.CheckOutTime, HouseRules: a.HouseRules,
		InstantBooking: a.InstantBooking, IsActive: a.IsActive, IsPublished: a.IsPublished,
		ViewCount: a.ViewCount, BookingCount: a.BookingCount, AverageRating: a.AverageRating,
		CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt,
	}
}

func toImageDTOs(imgs []domain.Image) []imageDTO {
	out := make([]imageDTO, 0, len(imgs))
	for _, i := range imgs {
		out = append(out, imageDTO{ID: i.ID, URL: i.URL, Caption: i.Caption, SortOrder: i.SortOrder, IsMain: i.IsMain})
	}
	return out
}

func toAmenityDTOs(as []domain.Amenity) []amenityDTO {
	out := make([]amenityDTO, 0, len(as))
	for _, a := range as {
		out = append(out, amenityDTO{ID: a.ID, Name: a.Name, Icon: a.Icon, Category: a.Category})
	}
	return out
}

func toReviewDTOs(rs []domain.Review) []reviewDTO {
	out := make([]reviewDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, reviewDTO{ID: r.ID, GuestName: r.GuestName, Rating: r.Rating, Comment: r.Comment, HostResponse: r.HostResponse, CreatedAt: r.CreatedAt})
	}
	return out
}

func toViewDTOs(vs []domain.AccommodationView) []accommodationDTO {
	out := make([]accommodationDTO, 0, len(vs))
	for _, v := range vs {
		d := toAccommodationDTO(v.Accommodation)
		d.Images = toImageDTOs(v.Images)
		out = append(out, d)
	}
	return out
}

func toDetailDTO(d domain.AccommodationDetail) accommodationDTO {
	out := toAccommodationDTO(d.Accommodation)
	out.Images = toImageDTOs(d.Images)
	out.Amenities = toAmenityDTOs(d.Amenities)
	out.Reviews = toReviewDTOs(d.Reviews)
	if d.Host != nil {
		out.Host = &hostDTO{ID: d.Host.ID, Name: d.Host.Name, AvatarURL: d.Host.AvatarURL, Bio: d.Host.Bio}
	}
	return out
}

func toBookingDTO(b domain.Booking) bookingDTO {
	return bookingDTO{
		ID: b.ID, AccommodationID: b.AccommodationID,
		GuestName: b.GuestName, GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone, GuestMessage: b.GuestMessage,
		CheckIn:  b.CheckIn.Format(dateLayout),
		CheckOut: b.CheckOut.Format(dateLayout),
		NumberOfGuests: b.NumberOfGuests,
		PricePerNight:  b.PricePerNight, NumberOfNights: b.NumberOfNights,
		CleaningFee: b.CleaningFee, TotalPrice: b.TotalPrice, Currency: b.Currency,
		Status: string(b.Status), HostNotes: b.HostNotes,
		CreatedAt: b.CreatedAt,
	}
}

func toBookingViewDTOs(vs []domain.BookingView) []bookingDTO {
	out := make([]bookingDTO, 0, len(vs))
	for _, v := range vs {
		d := toBookingDTO(v.Booking)
		d.AccommodationTitle = v.AccommodationTitle
		d.AccommodationSlug = v.AccommodationSlug
		out = append(out, d)
	}
	return out
}

func toAvailabilityDTOs(recs []domain.AvailabilityRecord) []availabilityDTO {
	out := make([]availabilityDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, availabilityDTO{
			Date:      rec.Date.Format(dateLayout),
			Status:    string(rec.Status),
			BookingID: rec.BookingID,
			Note:      rec.Note,
		})
	}
	return out
}
