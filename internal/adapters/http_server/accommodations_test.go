package httpserver

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAccommodationPatchBody_Decode(t *testing.T) {
	r := httptest.NewRequest("PATCH", "/v1/host/accommodations/1",
		strings.NewReader(`{"isPublished":true,"pricePerNight":"120.00","maxGuests":6}`))
	var body accommodationPatchBody
	if err := decodeBody(r, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := body.patch()
	if p.IsPublished == nil || !*p.IsPublished {
		t.Fatalf("isPublished not mapped: %+v", p)
	}
	if p.PricePerNight == nil || *p.PricePerNight != "120.00" {
		t.Fatalf("pricePerNight not mapped: %+v", p)
	}
	if p.MaxGuests == nil || *p.MaxGuests != 6 {
		t.Fatalf("maxGuests not mapped: %+v", p)
	}
	if p.Title != nil || p.IsActive != nil {
		t.Fatalf("absent fields must stay nil: %+v", p)
	}

	// Unknown keys are rejected like every other wire body.
	r = httptest.NewRequest("PATCH", "/v1/host/accommodations/1",
		strings.NewReader(`{"slug":"nope"}`))
	if err := decodeBody(r, &body); err == nil {
		t.Fatal("unknown field must be rejected")
	}
}
