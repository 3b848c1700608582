package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"fewo_booking/internal/app"
	"fewo_booking/internal/domain"
)

func queryInt(r *http.Request, name string) *int {
	if s := r.URL.Query().Get(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return &v
		}
	}
	return nil
}

func queryStr(r *http.Request, name string) *string {
	if s := r.URL.Query().Get(name); s != "" {
		return &s
	}
	return nil
}

func (h *Handlers) searchAccommodations(w http.ResponseWriter, r *http.Request) {
	q := domain.SearchQuery{
		City:      queryStr(r, "city"),
		Region:    queryStr(r, "region"),
		MinPrice:  queryStr(r, "min_price"),
		MaxPrice:  queryStr(r, "max_price"),
		MinGuests: queryInt(r, "min_guests"),
		SortBy:    domain.SearchSort(r.URL.Query().Get("sort_by")),
	}
	if ids := r.URL.Query().Get("amenity_ids"); ids != "" {
		for _, part := range strings.Split(ids, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				writeProblem(w, http.StatusBadRequest, "Invalid Request", "amenity_ids must be a comma-separated list of ids")
				return
			}
			q.AmenityIDs = append(q.AmenityIDs, id)
		}
	}
	if v := queryInt(r, "limit"); v != nil {
		q.Limit = *v
	}
	if v := queryInt(r, "offset"); v != nil {
		q.Offset = *v
	}

	out, err := h.Acc.Search(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, toViewDTOs(out))
}

func (h *Handlers) featuredAccommodations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Acc.Featured(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, toViewDTOs(out))
}

func (h *Handlers) accommodationBySlug(w http.ResponseWriter, r *http.Request) {
	d, err := h.Acc.BySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, toDetailDTO(d))
}

type accommodationCreateBody struct {
	Title            string  `json:"title"`
	Description      *string `json:"description"`
	ShortDescription *string `json:"shortDescription"`
	Type             *string `json:"type"`
	Street           *string `json:"street"`
	HouseNumber      *string `json:"houseNumber"`
	City             *string `json:"city"`
	PostalCode       *string `json:"postalCode"`
	Country          *string `json:"country"`
	Region           *string `json:"region"`
	Latitude         *string `json:"latitude"`
	Longitude        *string `json:"longitude"`
	MaxGuests        *int    `json:"maxGuests"`
	Bedrooms         *int    `json:"bedrooms"`
	Beds             *int    `json:"beds"`
	Bathrooms        *int    `json:"bathrooms"`
	PricePerNight    string  `json:"pricePerNight"`
	WeekendPrice     *string `json:"weekendPrice"`
	CleaningFee      *string `json:"cleaningFee"`
	MinNights        *int    `json:"minNights"`
	MaxNights        *int    `json:"maxNights"`
	CheckInTime      *string `json:"checkInTime"`
	CheckOutTime     *string `json:"checkOutTime"`
	HouseRules       *string `json:"houseRules"`
	InstantBooking   *bool   `json:"instantBooking"`
}

func (h *Handlers) createAccommodation(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireHost(ident); err != nil {
		writeError(w, err)
		return
	}
	var body accommodationCreateBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	id, slug, err := h.Acc.Create(r.Context(), ident, app.AccommodationInput{
		Title: body.Title, Description: body.Description, ShortDescription: body.ShortDescription,
		Type: body.Type, Street: body.Street, HouseNumber: body.HouseNumber, City: body.City,
		PostalCode: body.PostalCode, Country: body.Country, Region: body.Region,
		Latitude: body.Latitude, Longitude: body.Longitude,
		MaxGuests: body.MaxGuests, Bedrooms: body.Bedrooms, Beds: body.Beds, Bathrooms: body.Bathrooms,
		PricePerNight: body.PricePerNight, WeekendPrice: body.WeekendPrice, CleaningFee: body.CleaningFee,
		MinNights: body.MinNights, MaxNights: body.MaxNights,
		CheckInTime: body.CheckInTime, CheckOutTime: body.CheckOutTime,
		HouseRules: body.HouseRules, InstantBooking: body.InstantBooking,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id, "slug": slug})
}

type accommodationPatchBody struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	ShortDescription *string `json:"shortDescription"`
	Type             *string `json:"type"`
	Street           *string `json:"street"`
	HouseNumber      *string `json:"houseNumber"`
	City             *string `json:"city"`
	PostalCode       *string `json:"postalCode"`
	Country          *string `json:"country"`
	Region           *string `json:"region"`
	Latitude         *string `json:"latitude"`
	Longitude        *string `json:"longitude"`
	MaxGuests        *int    `json:"maxGuests"`
	Bedrooms         *int    `json:"bedrooms"`
	Beds             *int    `json:"beds"`
	Bathrooms        *int    `json:"bathrooms"`
	PricePerNight    *string `json:"pricePerNight"`
	WeekendPrice     *string `json:"weekendPrice"`
	CleaningFee      *string `json:"cleaningFee"`
	MinNights        *int    `json:"minNights"`
	MaxNights        *int    `json:"maxNights"`
	CheckInTime      *string `json:"checkInTime"`
	CheckOutTime     *string `json:"checkOutTime"`
	HouseRules       *string `json:"houseRules"`
	InstantBooking   *bool   `json:"instantBooking"`
	IsPublished      *bool   `json:"isPublished"`
	IsActive         *bool   `json:"isActive"`
}

func (b accommodationPatchBody) patch() domain.AccommodationPatch {
	return domain.AccommodationPatch{
		Title: b.Title, Description: b.Description, ShortDescription: b.ShortDescription,
		Type: b.Type, Street: b.Street, HouseNumber: b.HouseNumber, City: b.City,
		PostalCode: b.PostalCode, Country: b.Country, Region: b.Region,
		Latitude: b.Latitude, Longitude: b.Longitude,
		MaxGuests: b.MaxGuests, Bedrooms: b.Bedrooms, Beds: b.Beds, Bathrooms: b.Bathrooms,
		PricePerNight: b.PricePerNight, WeekendPrice: b.WeekendPrice, CleaningFee: b.CleaningFee,
		MinNights: b.MinNights, MaxNights: b.MaxNights,
		CheckInTime: b.CheckInTime, CheckOutTime: b.CheckOutTime,
		HouseRules: b.HouseRules, InstantBooking: b.InstantBooking,
		IsPublished: b.IsPublished, IsActive: b.IsActive,
	}
}

func (h *Handlers) updateAccommodation(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireHost(ident); err != nil {
		writeError(w, err)
		return
	}
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var body accommodationPatchBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Acc.Update(r.Context(), ident, id, body.patch()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) hostAccommodations(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireHost(ident); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.Acc.HostAccommodations(r.Context(), ident)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewDTOs(out))
}

func (h *Handlers) setAmenities(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireHost(ident); err != nil {
		writeError(w, err)
		return
	}
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var body struct {
		AmenityIDs []int64 `json:"amenityIds"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Acc.SetAmenities(r.Context(), ident, id, body.AmenityIDs); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) addImage(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireHost(ident); err != nil {
		writeError(w, err)
		return
	}
	accID, err := urlID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var body struct {
		URL       string  `json:"url"`
		Caption   *string `json:"caption"`
		SortOrder int     `json:"sortOrder"`
		IsMain    bool    `json:"isMain"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	id, err := h.Acc.AddImage(r.Context(), ident, domain.Image{
		AccommodationID: accID,
		URL:             body.URL,
		Caption:         body.Caption,
		SortOrder:       body.SortOrder,
		IsMain:          body.IsMain,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *Handlers) deleteImage(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireHost(ident); err != nil {
		writeError(w, err)
		return
	}
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Acc.DeleteImage(r.Context(), ident, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) setMainImage(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireHost(ident); err != nil {
		writeError(w, err)
		return
	}
	accID, err := urlID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	imageID, err := urlID(r, "imageID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Acc.SetMainImage(r.Context(), ident, accID, imageID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
