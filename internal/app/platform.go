package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fewo_booking/internal/domain"
)

const (
	configCacheKey    = "platform:config"
	amenitiesCacheKey = "platform:amenities"
)

// ConfigService serves the platform key/value settings. Reads are
// cache-aside; writes are admin-only and drop the cached copy.
type ConfigService struct {
	repo     domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewConfigService(repo domain.CatalogRepository, cache domain.Cache, ttl time.Duration) *ConfigService {
	return &ConfigService{repo: repo, cache: cache, cacheTTL: ttl}
}

func (s *ConfigService) Get(ctx context.Context) (map[string]string, error) {
	var cfg map[string]string
	if ok, _ := s.cache.Get(ctx, configCacheKey, &cfg); ok {
		return cfg, nil
	}
	cfg, err := s.repo.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, configCacheKey, cfg, int(s.cacheTTL.Seconds()))
	return cfg, nil
}

func (s *ConfigService) Set(ctx context.Context, ident domain.Identity, key, value string, description *string) error {
	if !ident.IsAdmin() {
		return domain.ErrForbidden
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: config key required", domain.ErrInvalid)
	}
	if err := s.repo.SetConfig(ctx, domain.ConfigEntry{Key: key, Value: value, Description: description}); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, configCacheKey)
	return nil
}

// EnsureDefaults inserts any missing well-known keys; existing values win.
func (s *ConfigService) EnsureDefaults(ctx context.Context) error {
	return s.repo.EnsureConfigDefaults(ctx, defaultConfig)
}

// CatalogService covers the shared reference data: the amenity catalog,
// regions and guest reviews.
type CatalogService struct {
	repo     domain.CatalogRepository
	bookings domain.BookingRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCatalogService(repo domain.CatalogRepository, bookings domain.BookingRepository, cache domain.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{repo: repo, bookings: bookings, cache: cache, cacheTTL: ttl}
}

func (s *CatalogService) Amenities(ctx context.Context) ([]domain.Amenity, error) {
	var out []domain.Amenity
	if ok, _ := s.cache.Get(ctx, amenitiesCacheKey, &out); ok {
		return out, nil
	}
	out, err := s.repo.ListAmenities(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, amenitiesCacheKey, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

// SeedAmenities loads the stock catalog into an empty table and reports how
// many rows were written. A non-empty table is left alone.
func (s *CatalogService) SeedAmenities(ctx context.Context) (int, error) {
	n, err := s.repo.SeedAmenities(ctx, defaultAmenities)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		_ = s.cache.Del(ctx, amenitiesCacheKey)
	}
	return n, nil
}

func (s *CatalogService) Regions(ctx context.Context) ([]domain.Region, error) {
	return s.repo.ListRegions(ctx)
}

func (s *CatalogService) CreateRegion(ctx context.Context, ident domain.Identity, r domain.Region) (int64, error) {
	if !ident.IsAdmin() {
		return 0, domain.ErrForbidden
	}
	if strings.TrimSpace(r.Name) == "" {
		return 0, fmt.Errorf("%w: region name required", domain.ErrInvalid)
	}
	if r.Slug == "" {
		r.Slug = makeSlug(r.Name)
	}
	return s.repo.CreateRegion(ctx, r)
}

func (s *CatalogService) Reviews(ctx context.Context, accommodationID int64) ([]domain.Review, error) {
	return s.repo.ListReviews(ctx, accommodationID)
}

// CreateReview accepts a review only for a completed stay at the listing it
// targets. Reviews start unpublished.
func (s *CatalogService) CreateReview(ctx context.Context, r domain.Review) (int64, error) {
	if r.Rating < 1 || r.Rating > 5 {
		return 0, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalid)
	}
	if len(strings.TrimSpace(r.GuestName)) < 2 {
		return 0, fmt.Errorf("%w: guest name required", domain.ErrInvalid)
	}
	b, err := s.bookings.GetBookingByID(ctx, r.BookingID)
	if err != nil {
		return 0, err
	}
	if b.AccommodationID != r.AccommodationID {
		return 0, fmt.Errorf("%w: booking belongs to a different accommodation", domain.ErrInvalid)
	}
	if b.Status != domain.BookingCompleted {
		return 0, fmt.Errorf("%w: only completed stays can be reviewed", domain.ErrInvalid)
	}
	r.IsPublished = false
	return s.repo.CreateReview(ctx, r)
}
