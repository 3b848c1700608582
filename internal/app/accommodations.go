package app

import (
	"context"
	"fmt"
	"time"

	"fewo_booking/internal/domain"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
	featuredLimit      = 8
)

type AccommodationService struct {
	repo     domain.AccommodationRepository
	catalog  domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewAccommodationService(r domain.AccommodationRepository, c domain.CatalogRepository, cache domain.Cache, ttl time.Duration) *AccommodationService {
	return &AccommodationService{repo: r, catalog: c, cache: cache, cacheTTL: ttl}
}

// AccommodationInput carries the host-supplied fields of a new listing.
// Slug, ownership and publication state are assigned server-side.
type AccommodationInput struct {
	Title            string
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
	PricePerNight    string
	WeekendPrice     *string
	CleaningFee      *string
	MinNights        *int
	MaxNights        *int
	CheckInTime      *string
	CheckOutTime     *string
	HouseRules       *string
	InstantBooking   *bool
}

func orInt(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func orStr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func (s *AccommodationService) Create(ctx context.Context, ident domain.Identity, in AccommodationInput) (int64, string, error) {
	if len(in.Title) < 5 {
		return 0, "", fmt.Errorf("%w: title must be at least 5 characters", domain.ErrInvalid)
	}
	if !validAmount(in.PricePerNight) {
		return 0, "", fmt.Errorf("%w: price per night %q", domain.ErrInvalid, in.PricePerNight)
	}
	if err := validOptionalAmount(in.WeekendPrice); err != nil {
		return 0, "", err
	}
	if err := validOptionalAmount(in.CleaningFee); err != nil {
		return 0, "", err
	}
	minN, maxN := orInt(in.MinNights, 1), orInt(in.MaxNights, 30)
	if minN < 1 || minN > maxN {
		return 0, "", fmt.Errorf("%w: min nights %d, max nights %d", domain.ErrInvalid, minN, maxN)
	}

	a := domain.Accommodation{
		HostID:           ident.UserID,
		Title:            in.Title,
		Slug:             makeSlug(in.Title),
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Type:             orStr(in.Type, "apartment"),
		Street:           in.Street,
		HouseNumber:      in.HouseNumber,
		City:             in.City,
		PostalCode:       in.PostalCode,
		Country:          in.Country,
		Region:           in.Region,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		MaxGuests:        orInt(in.MaxGuests, 2),
		Bedrooms:         orInt(in.Bedrooms, 1),
		Beds:             orInt(in.Beds, 1),
		Bathrooms:        orInt(in.Bathrooms, 1),
		PricePerNight:    in.PricePerNight,
		WeekendPrice:     in.WeekendPrice,
		CleaningFee:      orStr(in.CleaningFee, "0"),
		MinNights:        minN,
		MaxNights:        maxN,
		CheckInTime:      orStr(in.CheckInTime, "15:00"),
		CheckOutTime:     orStr(in.CheckOutTime, "11:00"),
		HouseRules:       in.HouseRules,
		InstantBooking:   in.InstantBooking != nil && *in.InstantBooking,
		IsActive:         true,
		IsPublished:      false, // drafts go live via an explicit update
	}
	id, err := s.repo.CreateAccommodation(ctx, a)
	if err != nil {
		return 0, "", err
	}
	return id, a.Slug, nil
}

// requireOwned loads the listing and enforces owner-or-admin.
func (s *AccommodationService) requireOwned(ctx context.Context, ident domain.Identity, id int64) (domain.Accommodation, error) {
	a, err := s.repo.GetAccommodationByID(ctx, id)
	if err != nil {
		return domain.Accommodation{}, err
	}
	if !ident.CanManage(a.HostID) {
		return domain.Accommodation{}, domain.ErrForbidden
	}
	return a, nil
}

func (s *AccommodationService) Update(ctx context.Context, ident domain.Identity, id int64, p domain.AccommodationPatch) error {
	a, err := s.requireOwned(ctx, ident, id)
	if err != nil {
		return err
	}
	if p.Title != nil && len(*p.Title) < 5 {
		return fmt.Errorf("%w: title must be at least 5 characters", domain.ErrInvalid)
	}
	for _, amt := range []*string{p.PricePerNight, p.WeekendPrice, p.CleaningFee} {
		if err := validOptionalAmount(amt); err != nil {
			return err
		}
	}
	minN := a.MinNights
	if p.MinNights != nil {
		minN = *p.MinNights
	}
	maxN := a.MaxNights
	if p.MaxNights != nil {
		maxN = *p.MaxNights
	}
	if minN < 1 || minN > maxN {
		return fmt.Errorf("%w: min nights %d, max nights %d", domain.ErrInvalid, minN, maxN)
	}
	if err := s.repo.UpdateAccommodation(ctx, id, p); err != nil {
		return err
	}
	s.invalidateDetail(ctx, a.Slug)
	return nil
}

func (s *AccommodationService) SetAmenities(ctx context.Context, ident domain.Identity, id int64, amenityIDs []int64) error {
	a, err := s.requireOwned(ctx, ident, id)
	if err != nil {
		return err
	}
	if err := s.repo.SetAmenities(ctx, id, amenityIDs); err != nil {
		return err
	}
	s.invalidateDetail(ctx, a.Slug)
	return nil
}

func (s *AccommodationService) Search(ctx context.Context, q domain.SearchQuery) ([]domain.AccommodationView, error) {
	if q.Limit <= 0 {
		q.Limit = defaultSearchLimit
	}
	if q.Limit > maxSearchLimit {
		q.Limit = maxSearchLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	accs, err := s.repo.SearchPublished(ctx, q)
	if err != nil {
		return nil, err
	}
	return s.withImages(ctx, accs)
}

func (s *AccommodationService) Featured(ctx context.Context) ([]domain.AccommodationView, error) {
	accs, err := s.repo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	return s.withImages(ctx, accs)
}

func (s *AccommodationService) HostAccommodations(ctx context.Context, ident domain.Identity) ([]domain.AccommodationView, error) {
	accs, err := s.repo.ListByHost(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	return s.withImages(ctx, accs)
}

func (s *AccommodationService) withImages(ctx context.Context, accs []domain.Accommodation) ([]domain.AccommodationView, error) {
	ids := make([]int64, 0, len(accs))
	for _, a := range accs {
		ids = append(ids, a.ID)
	}
	imgs, err := s.repo.ListImagesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AccommodationView, 0, len(accs))
	for _, a := range accs {
		out = append(out, domain.AccommodationView{Accommodation: a, Images: imgs[a.ID]})
	}
	return out, nil
}

// BySlug returns the full detail payload and bumps the view counter. The
// counter write happens on cache hits too; the cached payload may lag it by
// up to the TTL.
func (s *AccommodationService) BySlug(ctx context.Context, slug string) (domain.AccommodationDetail, error) {
	key := detailKey(slug)

	var d domain.AccommodationDetail
	if ok, _ := s.cache.Get(ctx, key, &d); ok {
		_ = s.repo.IncrementViews(ctx, d.ID)
		return d, nil
	}

	a, err := s.repo.GetAccommodationBySlug(ctx, slug)
	if err != nil {
		return domain.AccommodationDetail{}, err
	}
	if err := s.repo.IncrementViews(ctx, a.ID); err != nil {
		return domain.AccommodationDetail{}, err
	}

	images, err := s.repo.ListImages(ctx, a.ID)
	if err != nil {
		return domain.AccommodationDetail{}, err
	}
	amenities, err := s.repo.ListAccommodationAmenities(ctx, a.ID)
	if err != nil {
		return domain.AccommodationDetail{}, err
	}
	reviews, err := s.catalog.ListReviews(ctx, a.ID)
	if err != nil {
		return domain.AccommodationDetail{}, err
	}

	d = domain.AccommodationDetail{Accommodation: a, Images: images, Amenities: amenities, Reviews: reviews}
	if host, err := s.catalog.GetUserByID(ctx, a.HostID); err == nil {
		d.Host = &domain.HostSummary{ID: host.ID, Name: host.Name, AvatarURL: host.AvatarURL, Bio: host.Bio}
	}

	_ = s.cache.Set(ctx, key, d, int(s.cacheTTL.Seconds()))
	return d, nil
}

// ---- images ----

func (s *AccommodationService) AddImage(ctx context.Context, ident domain.Identity, img domain.Image) (int64, error) {
	a, err := s.requireOwned(ctx, ident, img.AccommodationID)
	if err != nil {
		return 0, err
	}
	if img.URL == "" {
		return 0, fmt.Errorf("%w: image url required", domain.ErrInvalid)
	}
	id, err := s.repo.AddImage(ctx, img)
	if err != nil {
		return 0, err
	}
	s.invalidateDetail(ctx, a.Slug)
	return id, nil
}

func (s *AccommodationService) DeleteImage(ctx context.Context, ident domain.Identity, imageID int64) error {
	img, err := s.repo.GetImage(ctx, imageID)
	if err != nil {
		return err
	}
	a, err := s.requireOwned(ctx, ident, img.AccommodationID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteImage(ctx, imageID); err != nil {
		return err
	}
	s.invalidateDetail(ctx, a.Slug)
	return nil
}

func (s *AccommodationService) SetMainImage(ctx context.Context, ident domain.Identity, accommodationID, imageID int64) error {
	a, err := s.requireOwned(ctx, ident, accommodationID)
	if err != nil {
		return err
	}
	if err := s.repo.SetMainImage(ctx, accommodationID, imageID); err != nil {
		return err
	}
	s.invalidateDetail(ctx, a.Slug)
	return nil
}

func detailKey(slug string) string { return "acc:slug:" + slug }

func (s *AccommodationService) invalidateDetail(ctx context.Context, slug string) {
	_ = s.cache.Del(ctx, detailKey(slug))
}
