package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fewo_booking/internal/app"
	"fewo_booking/internal/domain"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func seedListing(f *fakeStore, hostID int64, instant bool) int64 {
	id, _ := f.CreateAccommodation(context.Background(), domain.Accommodation{
		HostID:         hostID,
		Title:          "Strandhaus am Meer",
		Slug:           "strandhaus-am-meer-abc123",
		Type:           "house",
		MaxGuests:      4,
		PricePerNight:  "100.00",
		CleaningFee:    "50.00",
		InstantBooking: instant,
		IsActive:       true,
		IsPublished:    true,
	})
	return id
}

func request(accID int64) app.BookingRequest {
	return app.BookingRequest{
		AccommodationID: accID,
		GuestName:       "Anna Schmidt",
		GuestEmail:      "anna@example.com",
		CheckIn:         day("2026-03-01"),
		CheckOut:        day("2026-03-05"),
		NumberOfGuests:  2,
	}
}

func TestCreateBooking_PricingSnapshot(t *testing.T) {
	f := newFakeStore()
	accID := seedListing(f, 7, false)
	svc := app.NewBookingService(f, f)

	res, err := svc.Create(context.Background(), request(accID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Status != domain.BookingPending {
		t.Fatalf("expected pending, got %s", res.Status)
	}

	b := f.bookings[res.ID]
	if b.NumberOfNights != 4 {
		t.Fatalf("expected 4 nights, got %d", b.NumberOfNights)
	}
	// 100.00 * 4 + 50.00
	if b.TotalPrice != "450.00" {
		t.Fatalf("expected total 450.00, got %s", b.TotalPrice)
	}
	if b.PricePerNight != "100.00" || b.CleaningFee != "50.00" || b.Currency != "EUR" {
		t.Fatalf("unexpected snapshot: %+v", b)
	}
}

func TestCreateBooking_InstantConfirms(t *testing.T) {
	f := newFakeStore()
	accID := seedListing(f, 7, true)
	svc := app.NewBookingService(f, f)

	res, err := svc.Create(context.Background(), request(accID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Status != domain.BookingConfirmed {
		t.Fatalf("expected confirmed, got %s", res.Status)
	}
}

func TestCreateBooking_InstantReservesStayDates(t *testing.T) {
	f := newFakeStore()
	accID := seedListing(f, 7, true)
	svc := app.NewBookingService(f, f)
	ctx := context.Background()

	res, err := svc.Create(ctx, request(accID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Status != domain.BookingConfirmed {
		t.Fatalf("expected confirmed, got %s", res.Status)
	}

	// Every night lands in the ledger immediately, backlinking the booking.
	for _, d := range []string{"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04"} {
		rec, taken := f.occupied[dayKey(accID, day(d))]
		if !taken {
			t.Fatalf("date %s not occupied", d)
		}
		if rec.Status != domain.Booked || rec.BookingID == nil || *rec.BookingID != res.ID {
			t.Fatalf("unexpected ledger row for %s: %+v", d, rec)
		}
	}
	if _, taken := f.occupied[dayKey(accID, day("2026-03-05"))]; taken {
		t.Fatal("checkout day must stay free")
	}

	// An overlapping second instant request conflicts instead of also
	// confirming.
	second := request(accID)
	second.GuestName = "Bernd Fischer"
	second.CheckIn = day("2026-03-04")
	second.CheckOut = day("2026-03-06")
	if _, err := svc.Create(ctx, second); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(f.bookings) != 1 {
		t.Fatalf("expected a single booking, have %d", len(f.bookings))
	}
}

func TestCreateBooking_ConflictLeavesNoRow(t *testing.T) {
	f := newFakeStore()
	accID := seedListing(f, 7, false)
	// 2026-03-03 falls inside the requested stay window.
	_ = f.BlockDates(context.Background(), accID, []time.Time{day("2026-03-03")}, nil)
	svc := app.NewBookingService(f, f)

	_, err := svc.Create(context.Background(), request(accID))
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(f.bookings) != 0 {
		t.Fatalf("conflicting request must not persist a booking: %+v", f.bookings)
	}
}

func TestCreateBooking_CheckoutDayIsFree(t *testing.T) {
	f := newFakeStore()
	accID := seedListing(f, 7, false)
	// Occupied exactly on the checkout day; the stay ends that morning.
	_ = f.BlockDates(context.Background(), accID, []time.Time{day("2026-03-05")}, nil)
	svc := app.NewBookingService(f, f)

	if _, err := svc.Create(context.Background(), request(accID)); err != nil {
		t.Fatalf("checkout-day overlap must not conflict: %v", err)
	}
}

func TestCreateBooking_Validation(t *testing.T) {
	f := newFakeStore()
	accID := seedListing(f, 7, false)
	svc := app.NewBookingService(f, f)
	ctx := context.Background()

	bad := request(accID)
	bad.GuestEmail = "not-an-email"
	if _, err := svc.Create(ctx, bad); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("bad email: expected invalid, got %v", err)
	}

	bad = request(accID)
	bad.CheckOut = bad.CheckIn
	if _, err := svc.Create(ctx, bad); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("zero nights: expected invalid, got %v", err)
	}

	bad = request(accID)
	bad.NumberOfGuests = 5 // listing sleeps 4
	if _, err := svc.Create(ctx, bad); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("guest cap: expected invalid, got %v", err)
	}

	bad = request(accID)
	bad.AccommodationID = 9999
	if _, err := svc.Create(ctx, bad); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing listing: expected not found, got %v", err)
	}
}

func TestUpdateStatus_ConfirmMarksStayDates(t *testing.T) {
	f := newFakeStore()
	accID := seedListing(f, 7, false)
	svc := app.NewBookingService(f, f)
	ctx := context.Background()

	res, err := svc.Create(ctx, request(accID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	host := domain.Identity{UserID: 7, Role: domain.RoleHost}
	if err := svc.UpdateStatus(ctx, host, res.ID, domain.BookingConfirmed, ptr("Willkommen!")); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	// Four nights occupied, checkout day untouched.
	if len(f.lastOccupy) != 4 {
		t.Fatalf("expected 4 occupied dates, got %d", len(f.lastOccupy))
	}
	for _, rec := range f.lastOccupy {
		if rec.Status != domain.Booked {
			t.Fatalf("expected booked, got %s", rec.Status)
		}
		if rec.BookingID == nil || *rec.BookingID != res.ID {
			t.Fatalf("missing booking backlink: %+v", rec)
		}
	}
	if _, taken := f.occupied[dayKey(accID, day("2026-03-05"))]; taken {
		t.Fatal("checkout day must stay free")
	}
	if f.bookings[res.ID].Status != domain.BookingConfirmed {
		t.Fatalf("status not persisted: %+v", f.bookings[res.ID])
	}
}

func TestUpdateStatus_RejectLeavesLedgerAlone(t *testing.T) {
	f := newFakeStore()
	accID := seedListing(f, 7, false)
	svc := app.NewBookingService(f, f)
	ctx := context.Background()

	res, _ := svc.Create(ctx, request(accID))
	host := domain.Identity{UserID: 7, Role: domain.RoleHost}
	if err := svc.UpdateStatus(ctx, host, res.ID, domain.BookingRejected, nil); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if len(f.occupied) != 0 {
		t.Fatalf("rejection must not touch the ledger: %+v", f.occupied)
	}
}

func TestUpdateStatus_OwnershipEnforced(t *testing.T) {
	f := newFakeStore()
	accID := seedListing(f, 7, false)
	svc := app.NewBookingService(f, f)
	ctx := context.Background()

	res, _ := svc.Create(ctx, request(accID))

	other := domain.Identity{UserID: 8, Role: domain.RoleHost}
	if err := svc.UpdateStatus(ctx, other, res.ID, domain.BookingConfirmed, nil); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	// Admins may act on any booking.
	if err := svc.UpdateStatus(ctx, domain.System(), res.ID, domain.BookingConfirmed, nil); err != nil {
		t.Fatalf("admin update: %v", err)
	}

	if err := svc.UpdateStatus(ctx, domain.System(), res.ID, "teleported", nil); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("unknown status: expected invalid, got %v", err)
	}
}

func TestByID_HidesForeignBookings(t *testing.T) {
	f := newFakeStore()
	accID := seedListing(f, 7, false)
	svc := app.NewBookingService(f, f)
	ctx := context.Background()

	res, _ := svc.Create(ctx, request(accID))

	other := domain.Identity{UserID: 8, Role: domain.RoleHost}
	if _, err := svc.ByID(ctx, other, res.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign booking must read as not found, got %v", err)
	}

	owner := domain.Identity{UserID: 7, Role: domain.RoleHost}
	d, err := svc.ByID(ctx, owner, res.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if d.Accommodation.ID != accID {
		t.Fatalf("expected listing %d, got %+v", accID, d.Accommodation)
	}
}
