package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fewo_booking/internal/domain"
)

func (h *Handlers) getConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Config.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, cfg)
}

func (h *Handlers) setConfig(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireAdmin(ident); err != nil {
		writeError(w, err)
		return
	}
	var body struct {
		Value       string  `json:"value"`
		Description *string `json:"description"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Config.Set(r.Context(), ident, chi.URLParam(r, "key"), body.Value, body.Description); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// initPlatform writes the default config keys and seeds the amenity catalog.
// Idempotent; existing rows are left alone.
func (h *Handlers) initPlatform(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireAdmin(ident); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Config.EnsureDefaults(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	seeded, err := h.Catalog.SeedAmenities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"amenitiesSeeded": seeded})
}

func (h *Handlers) listAmenities(w http.ResponseWriter, r *http.Request) {
	out, err := h.Catalog.Amenities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, toAmenityDTOs(out))
}

func (h *Handlers) listRegions(w http.ResponseWriter, r *http.Request) {
	out, err := h.Catalog.Regions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	type regionDTO struct {
		ID                 int64   `json:"id"`
		Name               string  `json:"name"`
		Slug               string  `json:"slug"`
		Description        *string `json:"description,omitempty"`
		ImageURL           *string `json:"imageUrl,omitempty"`
		AccommodationCount int     `json:"accommodationCount"`
	}
	dtos := make([]regionDTO, 0, len(out))
	for _, reg := range out {
		dtos = append(dtos, regionDTO{
			ID: reg.ID, Name: reg.Name, Slug: reg.Slug,
			Description: reg.Description, ImageURL: reg.ImageURL,
			AccommodationCount: reg.AccommodationCount,
		})
	}
	writeCached(w, r, dtos)
}

func (h *Handlers) createRegion(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireAdmin(ident); err != nil {
		writeError(w, err)
		return
	}
	var body struct {
		Name        string  `json:"name"`
		Slug        string  `json:"slug"`
		Description *string `json:"description"`
		ImageURL    *string `json:"imageUrl"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	id, err := h.Catalog.CreateRegion(r.Context(), ident, domain.Region{
		Name: body.Name, Slug: body.Slug,
		Description: body.Description, ImageURL: body.ImageURL,
		IsActive: true,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		BookingID       int64   `json:"bookingId"`
		AccommodationID int64   `json:"accommodationId"`
		GuestName       string  `json:"guestName"`
		Rating          int     `json:"rating"`
		Comment         *string `json:"comment"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	id, err := h.Catalog.CreateReview(r.Context(), domain.Review{
		BookingID:       body.BookingID,
		AccommodationID: body.AccommodationID,
		GuestName:       body.GuestName,
		Rating:          body.Rating,
		Comment:         body.Comment,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}
