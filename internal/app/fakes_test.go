package app_test

import (
	"context"
	"fmt"
	"time"

	"fewo_booking/internal/domain"
)

// ---- fakes ----

func ptr[T any](v T) *T { return &v }

func dayKey(accID int64, d time.Time) string {
	return fmt.Sprintf("%d|%s", accID, d.Format("2006-01-02"))
}

// fakeStore implements the repository ports in memory. Occupied dates are
// keyed by (accommodation, day) like the unique index in the real store.
type fakeStore struct {
	nextID int64

	accs     map[int64]domain.Accommodation
	images   map[int64]domain.Image
	amenSets map[int64][]int64

	bookings map[int64]domain.Booking
	occupied map[string]domain.AvailabilityRecord

	amenities []domain.Amenity
	reviews   []domain.Review
	users     map[int64]domain.User
	regions   []domain.Region
	config    map[string]string

	lastOccupy []domain.AvailabilityRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accs:     map[int64]domain.Accommodation{},
		images:   map[int64]domain.Image{},
		amenSets: map[int64][]int64{},
		bookings: map[int64]domain.Booking{},
		occupied: map[string]domain.AvailabilityRecord{},
		users:    map[int64]domain.User{},
		config:   map[string]string{},
	}
}

func (f *fakeStore) id() int64 { f.nextID++; return f.nextID }

// ---- AccommodationRepository ----

func (f *fakeStore) CreateAccommodation(ctx context.Context, a domain.Accommodation) (int64, error) {
	a.ID = f.id()
	f.accs[a.ID] = a
	return a.ID, nil
}

func (f *fakeStore) UpdateAccommodation(ctx context.Context, id int64, p domain.AccommodationPatch) error {
	a, ok := f.accs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.PricePerNight != nil {
		a.PricePerNight = *p.PricePerNight
	}
	if p.IsPublished != nil {
		a.IsPublished = *p.IsPublished
	}
	f.accs[id] = a
	return nil
}

func (f *fakeStore) IncrementViews(ctx context.Context, id int64) error {
	a, ok := f.accs[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.ViewCount++
	f.accs[id] = a
	return nil
}

func (f *fakeStore) SetAmenities(ctx context.Context, accommodationID int64, amenityIDs []int64) error {
	f.amenSets[accommodationID] = amenityIDs
	return nil
}

func (f *fakeStore) AddImage(ctx context.Context, img domain.Image) (int64, error) {
	img.ID = f.id()
	f.images[img.ID] = img
	return img.ID, nil
}

func (f *fakeStore) DeleteImage(ctx context.Context, id int64) error {
	delete(f.images, id)
	return nil
}

func (f *fakeStore) SetMainImage(ctx context.Context, accommodationID, imageID int64) error {
	for id, img := range f.images {
		if img.AccommodationID == accommodationID {
			img.IsMain = id == imageID
			f.images[id] = img
		}
	}
	return nil
}

func (f *fakeStore) GetAccommodationByID(ctx context.Context, id int64) (domain.Accommodation, error) {
	a, ok := f.accs[id]
	if !ok {
		return domain.Accommodation{}, domain.ErrNotFound
	}
	return a, nil
}

func (f *fakeStore) GetAccommodationBySlug(ctx context.Context, slug string) (domain.Accommodation, error) {
	for _, a := range f.accs {
		if a.Slug == slug {
			return a, nil
		}
	}
	return domain.Accommodation{}, domain.ErrNotFound
}

func (f *fakeStore) ListByHost(ctx context.Context, hostID int64) ([]domain.Accommodation, error) {
	var out []domain.Accommodation
	for _, a := range f.accs {
		if a.HostID == hostID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) SearchPublished(ctx context.Context, q domain.SearchQuery) ([]domain.Accommodation, error) {
	var out []domain.Accommodation
	for _, a := range f.accs {
		if a.Visible() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) ListFeatured(ctx context.Context, limit int) ([]domain.Accommodation, error) {
	return f.SearchPublished(ctx, domain.SearchQuery{})
}

func (f *fakeStore) ListImages(ctx context.Context, accommodationID int64) ([]domain.Image, error) {
	var out []domain.Image
	for _, img := range f.images {
		if img.AccommodationID == accommodationID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeStore) ListImagesFor(ctx context.Context, accommodationIDs []int64) (map[int64][]domain.Image, error) {
	out := map[int64][]domain.Image{}
	for _, id := range accommodationIDs {
		imgs, _ := f.ListImages(ctx, id)
		if len(imgs) > 0 {
			out[id] = imgs
		}
	}
	return out, nil
}

func (f *fakeStore) GetImage(ctx context.Context, id int64) (domain.Image, error) {
	img, ok := f.images[id]
	if !ok {
		return domain.Image{}, domain.ErrNotFound
	}
	return img, nil
}

func (f *fakeStore) ListAccommodationAmenities(ctx context.Context, accommodationID int64) ([]domain.Amenity, error) {
	var out []domain.Amenity
	for _, id := range f.amenSets[accommodationID] {
		for _, am := range f.amenities {
			if am.ID == id {
				out = append(out, am)
			}
		}
	}
	return out, nil
}

// ---- BookingRepository ----

func (f *fakeStore) CreateBooking(ctx context.Context, b domain.Booking) (int64, error) {
	for _, d := range domain.StayDates(b.CheckIn, b.CheckOut) {
		if _, taken := f.occupied[dayKey(b.AccommodationID, d)]; taken {
			return 0, domain.ErrConflict
		}
	}
	b.ID = f.id()
	f.bookings[b.ID] = b
	// A confirmed (instant) booking occupies its stay dates at creation,
	// like the real store does inside the same transaction.
	if b.Status == domain.BookingConfirmed {
		for _, rec := range domain.OccupyRecords(b) {
			f.occupied[dayKey(rec.AccommodationID, rec.Date)] = rec
		}
	}
	return b.ID, nil
}

func (f *fakeStore) SetBookingStatus(ctx context.Context, id int64, status domain.BookingStatus, hostNotes *string, occupy []domain.AvailabilityRecord) error {
	b, ok := f.bookings[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Status = status
	if hostNotes != nil {
		b.HostNotes = hostNotes
	}
	f.bookings[id] = b
	f.lastOccupy = occupy
	for _, rec := range occupy {
		f.occupied[dayKey(rec.AccommodationID, rec.Date)] = rec
	}
	return nil
}

func (f *fakeStore) GetBookingByID(ctx context.Context, id int64) (domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, nil
}

func (f *fakeStore) ListBookingsByHost(ctx context.Context, hostID int64, status *domain.BookingStatus) ([]domain.BookingView, error) {
	var out []domain.BookingView
	for _, b := range f.bookings {
		if b.HostID != hostID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, domain.BookingView{Booking: b})
	}
	return out, nil
}

func (f *fakeStore) UpcomingCheckIns(ctx context.Context, hostID int64, from, to time.Time) ([]domain.BookingView, error) {
	var out []domain.BookingView
	for _, b := range f.bookings {
		if b.HostID == hostID && b.Status == domain.BookingConfirmed &&
			!b.CheckIn.Before(from) && !b.CheckIn.After(to) {
			out = append(out, domain.BookingView{Booking: b})
		}
	}
	return out, nil
}

func (f *fakeStore) ListExpiredConfirmed(ctx context.Context, asOf time.Time) ([]int64, error) {
	var out []int64
	for _, b := range f.bookings {
		if b.Status == domain.BookingConfirmed && !b.CheckOut.After(asOf) {
			out = append(out, b.ID)
		}
	}
	return out, nil
}

func (f *fakeStore) HostStats(ctx context.Context, hostID int64) (domain.HostStats, error) {
	st := domain.HostStats{TotalRevenue: "0"}
	for _, b := range f.bookings {
		if b.HostID != hostID {
			continue
		}
		switch b.Status {
		case domain.BookingPending:
			st.PendingRequests++
		case domain.BookingConfirmed:
			st.ConfirmedBookings++
		}
	}
	return st, nil
}

// ---- AvailabilityRepository ----

func (f *fakeStore) IsRangeAvailable(ctx context.Context, accommodationID int64, checkIn, checkOut time.Time) (bool, error) {
	for _, d := range domain.StayDates(checkIn, checkOut) {
		if _, taken := f.occupied[dayKey(accommodationID, d)]; taken {
			return false, nil
		}
	}
	return true, nil
}

func (f *fakeStore) BlockDates(ctx context.Context, accommodationID int64, dates []time.Time, note *string) error {
	for _, d := range dates {
		f.occupied[dayKey(accommodationID, d)] = domain.AvailabilityRecord{
			AccommodationID: accommodationID,
			Date:            domain.Date(d),
			Status:          domain.Blocked,
			Note:            note,
		}
	}
	return nil
}

func (f *fakeStore) UnblockDates(ctx context.Context, accommodationID int64, dates []time.Time) error {
	for _, d := range dates {
		k := dayKey(accommodationID, d)
		if rec, ok := f.occupied[k]; ok && rec.Status == domain.Blocked {
			delete(f.occupied, k)
		}
	}
	return nil
}

func (f *fakeStore) GetAvailability(ctx context.Context, accommodationID int64, start, end time.Time) ([]domain.AvailabilityRecord, error) {
	var out []domain.AvailabilityRecord
	for d := domain.Date(start); !d.After(domain.Date(end)); d = d.AddDate(0, 0, 1) {
		if rec, ok := f.occupied[dayKey(accommodationID, d)]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// ---- CatalogRepository ----

func (f *fakeStore) ListAmenities(ctx context.Context) ([]domain.Amenity, error) {
	return f.amenities, nil
}

func (f *fakeStore) SeedAmenities(ctx context.Context, items []domain.Amenity) (int, error) {
	if len(f.amenities) > 0 {
		return 0, nil
	}
	for _, am := range items {
		am.ID = f.id()
		f.amenities = append(f.amenities, am)
	}
	return len(items), nil
}

func (f *fakeStore) ListReviews(ctx context.Context, accommodationID int64) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range f.reviews {
		if rv.AccommodationID == accommodationID && rv.IsPublished {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateReview(ctx context.Context, rv domain.Review) (int64, error) {
	rv.ID = f.id()
	f.reviews = append(f.reviews, rv)
	return rv.ID, nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) ListRegions(ctx context.Context) ([]domain.Region, error) {
	return f.regions, nil
}

func (f *fakeStore) CreateRegion(ctx context.Context, rg domain.Region) (int64, error) {
	rg.ID = f.id()
	f.regions = append(f.regions, rg)
	return rg.ID, nil
}

func (f *fakeStore) GetConfig(ctx context.Context) (map[string]string, error) {
	out := map[string]string{}
	for k, v := range f.config {
		out[k] = v
	}
	return out, nil
}

func (f *fakeStore) SetConfig(ctx context.Context, e domain.ConfigEntry) error {
	f.config[e.Key] = e.Value
	return nil
}

func (f *fakeStore) EnsureConfigDefaults(ctx context.Context, defaults []domain.ConfigEntry) error {
	for _, e := range defaults {
		if _, ok := f.config[e.Key]; !ok {
			f.config[e.Key] = e.Value
		}
	}
	return nil
}

// ---- cache fake ----

type fakeCache struct {
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.AccommodationDetail:
		*d = v.(domain.AccommodationDetail)
	case *[]domain.Amenity:
		*d = v.([]domain.Amenity)
	case *map[string]string:
		*d = v.(map[string]string)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}
