package app_test

import (
	"context"
	"testing"

	"fewo_booking/internal/app"
	"fewo_booking/internal/domain"
)

func TestHostStats_CountsAndNormalizedRevenue(t *testing.T) {
	f := newFakeStore()
	accID := seedListing(f, 7, false)
	bookings := app.NewBookingService(f, f)
	svc := app.NewStatsService(f)
	ctx := context.Background()

	// One pending, one confirmed.
	if _, err := bookings.Create(ctx, request(accID)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	second := request(accID)
	second.CheckIn = day("2026-05-01")
	second.CheckOut = day("2026-05-03")
	res, err := bookings.Create(ctx, second)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := bookings.UpdateStatus(ctx, domain.System(), res.ID, domain.BookingConfirmed, nil); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	st, err := svc.HostStats(ctx, domain.Identity{UserID: 7, Role: domain.RoleHost})
	if err != nil {
		t.Fatalf("HostStats: %v", err)
	}
	if st.PendingRequests != 1 || st.ConfirmedBookings != 1 {
		t.Fatalf("unexpected counts: %+v", st)
	}
	// Aggregates come back bare from SQL; the service pads to two places.
	if st.TotalRevenue != "0.00" {
		t.Fatalf("expected 0.00, got %s", st.TotalRevenue)
	}
}
