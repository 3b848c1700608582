package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fewo_booking/internal/app"
	"fewo_booking/internal/domain"
)

func TestConfig_DefaultsAndAdminWrite(t *testing.T) {
	f := newFakeStore()
	cache := &fakeCache{}
	svc := app.NewConfigService(f, cache, time.Minute)
	ctx := context.Background()

	if err := svc.EnsureDefaults(ctx); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}
	cfg, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cfg["platform_name"] != "FeWo Booking" || cfg["currency"] != "EUR" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	host := domain.Identity{UserID: 7, Role: domain.RoleHost}
	if err := svc.Set(ctx, host, "platform_name", "Other", nil); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-admin write: expected forbidden, got %v", err)
	}

	admin := domain.Identity{UserID: 1, Role: domain.RoleAdmin}
	if err := svc.Set(ctx, admin, "platform_name", "Küstenglück", nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// Defaults never clobber an explicit value.
	if err := svc.EnsureDefaults(ctx); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}
	cfg, _ = svc.Get(ctx)
	if cfg["platform_name"] != "Küstenglück" {
		t.Fatalf("default overwrote explicit value: %+v", cfg)
	}
}

func TestSeedAmenities_OnlyOnEmptyCatalog(t *testing.T) {
	f := newFakeStore()
	svc := app.NewCatalogService(f, f, &fakeCache{}, time.Minute)
	ctx := context.Background()

	n, err := svc.SeedAmenities(ctx)
	if err != nil {
		t.Fatalf("SeedAmenities: %v", err)
	}
	if n == 0 {
		t.Fatal("expected seeded rows")
	}
	again, err := svc.SeedAmenities(ctx)
	if err != nil {
		t.Fatalf("SeedAmenities (again): %v", err)
	}
	if again != 0 {
		t.Fatalf("non-empty catalog must not be reseeded, got %d", again)
	}
}

func TestCreateReview_RequiresCompletedStay(t *testing.T) {
	f := newFakeStore()
	svc := app.NewCatalogService(f, f, &fakeCache{}, time.Minute)
	bookings := app.NewBookingService(f, f)
	ctx := context.Background()

	accID := seedListing(f, 7, false)
	res, err := bookings.Create(ctx, request(accID))
	if err != nil {
		t.Fatalf("Create booking: %v", err)
	}

	review := domain.Review{
		BookingID:       res.ID,
		AccommodationID: accID,
		GuestName:       "Anna Schmidt",
		Rating:          5,
	}

	if _, err := svc.CreateReview(ctx, review); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("pending stay: expected invalid, got %v", err)
	}

	if err := bookings.UpdateStatus(ctx, domain.System(), res.ID, domain.BookingCompleted, nil); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	bad := review
	bad.Rating = 6
	if _, err := svc.CreateReview(ctx, bad); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("rating 6: expected invalid, got %v", err)
	}
	bad = review
	bad.AccommodationID = accID + 1
	if _, err := svc.CreateReview(ctx, bad); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("wrong listing: expected invalid, got %v", err)
	}

	id, err := svc.CreateReview(ctx, review)
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if id == 0 {
		t.Fatal("missing id")
	}
	for _, rv := range f.reviews {
		if rv.ID == id && rv.IsPublished {
			t.Fatal("new reviews must start unpublished")
		}
	}
}

func TestCreateRegion_AdminOnlyWithSlug(t *testing.T) {
	f := newFakeStore()
	svc := app.NewCatalogService(f, f, &fakeCache{}, time.Minute)
	ctx := context.Background()

	host := domain.Identity{UserID: 7, Role: domain.RoleHost}
	if _, err := svc.CreateRegion(ctx, host, domain.Region{Name: "Ostsee"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	admin := domain.Identity{UserID: 1, Role: domain.RoleAdmin}
	id, err := svc.CreateRegion(ctx, admin, domain.Region{Name: "Lüneburger Heide"})
	if err != nil {
		t.Fatalf("CreateRegion: %v", err)
	}
	for _, rg := range f.regions {
		if rg.ID == id && rg.Slug == "" {
			t.Fatal("expected generated slug")
		}
	}
}
