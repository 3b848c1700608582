package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fewo_booking/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveBookingCreated("pending")
	observability.ObserveBookingConflict()

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "fewo_http_requests_total") {
		t.Fatalf("expected fewo_http_requests_total in output")
	}
	if !strings.Contains(out, "fewo_bookings_created_total") {
		t.Fatalf("expected fewo_bookings_created_total in output")
	}
	if !strings.Contains(out, "fewo_booking_conflicts_total") {
		t.Fatalf("expected fewo_booking_conflicts_total in output")
	}
}
