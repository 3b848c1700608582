package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fewo_booking/internal/app"
	"fewo_booking/internal/domain"
)

func TestCreateAccommodation_DefaultsAndSlug(t *testing.T) {
	f := newFakeStore()
	cache := &fakeCache{}
	svc := app.NewAccommodationService(f, f, cache, 10*time.Minute)
	host := domain.Identity{UserID: 7, Role: domain.RoleHost}

	id, slug, err := svc.Create(context.Background(), host, app.AccommodationInput{
		Title:         "Strandhaus Müller",
		PricePerNight: "89.00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(slug, "strandhaus-mueller-") {
		t.Fatalf("unexpected slug %q", slug)
	}

	a := f.accs[id]
	if a.Type != "apartment" || a.MaxGuests != 2 || a.CleaningFee != "0" {
		t.Fatalf("unexpected defaults: %+v", a)
	}
	if a.CheckInTime != "15:00" || a.CheckOutTime != "11:00" {
		t.Fatalf("unexpected check-in/out defaults: %+v", a)
	}
	if a.IsPublished {
		t.Fatal("new listings must start as drafts")
	}
	if !a.IsActive {
		t.Fatal("new listings must start active")
	}
}

func TestCreateAccommodation_Validation(t *testing.T) {
	f := newFakeStore()
	svc := app.NewAccommodationService(f, f, &fakeCache{}, time.Minute)
	host := domain.Identity{UserID: 7, Role: domain.RoleHost}
	ctx := context.Background()

	if _, _, err := svc.Create(ctx, host, app.AccommodationInput{Title: "Hut", PricePerNight: "50"}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("short title: expected invalid, got %v", err)
	}
	if _, _, err := svc.Create(ctx, host, app.AccommodationInput{Title: "Strandhaus", PricePerNight: "-5"}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("negative price: expected invalid, got %v", err)
	}
	five := 5
	two := 2
	if _, _, err := svc.Create(ctx, host, app.AccommodationInput{
		Title: "Strandhaus", PricePerNight: "50", MinNights: &five, MaxNights: &two,
	}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("min>max nights: expected invalid, got %v", err)
	}
}

func TestUpdateAccommodation_OwnershipAndCache(t *testing.T) {
	f := newFakeStore()
	cache := &fakeCache{}
	svc := app.NewAccommodationService(f, f, cache, time.Minute)
	ctx := context.Background()
	host := domain.Identity{UserID: 7, Role: domain.RoleHost}

	id, slug, err := svc.Create(ctx, host, app.AccommodationInput{Title: "Bergchalet Tirol", PricePerNight: "140"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	other := domain.Identity{UserID: 8, Role: domain.RoleHost}
	published := true
	if err := svc.Update(ctx, other, id, domain.AccommodationPatch{IsPublished: &published}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign update: expected forbidden, got %v", err)
	}

	if err := svc.Update(ctx, host, id, domain.AccommodationPatch{IsPublished: &published}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !f.accs[id].IsPublished {
		t.Fatal("patch not applied")
	}

	wantKey := "acc:slug:" + slug
	found := false
	for _, k := range cache.dels {
		if k == wantKey {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected cache invalidation of %s, got %v", wantKey, cache.dels)
	}
}

func TestBySlug_CacheHitStillCountsView(t *testing.T) {
	f := newFakeStore()
	cache := &fakeCache{}
	svc := app.NewAccommodationService(f, f, cache, time.Minute)
	ctx := context.Background()

	accID := seedListing(f, 7, false)
	slug := f.accs[accID].Slug

	// Miss populates the cache and bumps the counter.
	if _, err := svc.BySlug(ctx, slug); err != nil {
		t.Fatalf("BySlug: %v", err)
	}
	// Hit serves the cached payload but still bumps the counter.
	if _, err := svc.BySlug(ctx, slug); err != nil {
		t.Fatalf("BySlug (cached): %v", err)
	}
	if got := f.accs[accID].ViewCount; got != 2 {
		t.Fatalf("expected 2 views, got %d", got)
	}
	if _, ok := cache.store["acc:slug:"+slug]; !ok {
		t.Fatal("detail payload not cached")
	}
}

func TestSearch_AttachesImages(t *testing.T) {
	f := newFakeStore()
	svc := app.NewAccommodationService(f, f, &fakeCache{}, time.Minute)
	ctx := context.Background()

	accID := seedListing(f, 7, false)
	_, _ = f.AddImage(ctx, domain.Image{AccommodationID: accID, URL: "https://img.example/1.jpg", IsMain: true})

	out, err := svc.Search(ctx, domain.SearchQuery{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(out) != 1 || len(out[0].Images) != 1 {
		t.Fatalf("expected one listing with one image, got %+v", out)
	}
}
