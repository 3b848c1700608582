package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"fewo_booking/internal/adapters/observability"
	"fewo_booking/internal/app"
	"fewo_booking/internal/domain"
)

type bookingCreateBody struct {
	AccommodationID int64   `json:"accommodationId"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      *string `json:"guestPhone"`
	GuestMessage    *string `json:"guestMessage"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	NumberOfGuests  int     `json:"numberOfGuests"`
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var body bookingCreateBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	checkIn, err := parseDate(body.CheckIn)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "checkIn must be YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(body.CheckOut)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "checkOut must be YYYY-MM-DD")
		return
	}

	res, err := h.Bookings.Create(r.Context(), app.BookingRequest{
		AccommodationID: body.AccommodationID,
		GuestName:       body.GuestName,
		GuestEmail:      body.GuestEmail,
		GuestPhone:      body.GuestPhone,
		GuestMessage:    body.GuestMessage,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumberOfGuests:  body.NumberOfGuests,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			observability.ObserveBookingConflict()
		}
		writeError(w, err)
		return
	}
	observability.ObserveBookingCreated(string(res.Status))
	writeJSON(w, http.StatusCreated, map[string]any{"id": res.ID, "status": res.Status})
}

func (h *Handlers) hostBookings(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireHost(ident); err != nil {
		writeError(w, err)
		return
	}
	var status *domain.BookingStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.BookingStatus(s)
		status = &st
	}
	out, err := h.Bookings.HostBookings(r.Context(), ident, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingViewDTOs(out))
}

func (h *Handlers) bookingByID(w http.ResponseWriter, r *http.Request) {
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
	d, err := h.Bookings.ByID(r.Context(), ident, id)
	if err != nil {
		writeError(w, err)
		return
	}
	out := toBookingDTO(d.Booking)
	out.AccommodationTitle = d.Accommodation.Title
	out.AccommodationSlug = d.Accommodation.Slug
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
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
		Status    string  `json:"status"`
		HostNotes *string `json:"hostNotes"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Bookings.UpdateStatus(r.Context(), ident, id, domain.BookingStatus(body.Status), body.HostNotes); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) upcomingCheckIns(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireHost(ident); err != nil {
		writeError(w, err)
		return
	}
	days := 0
	if s := r.URL.Query().Get("days"); s != "" {
		d, err := strconv.Atoi(s)
		if err != nil || d < 0 || d > 365 {
			writeProblem(w, http.StatusBadRequest, "Invalid Request", "days must be an integer between 0 and 365")
			return
		}
		days = d
	}
	out, err := h.Bookings.UpcomingCheckIns(r.Context(), ident, days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingViewDTOs(out))
}

func (h *Handlers) hostStats(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireHost(ident); err != nil {
		writeError(w, err)
		return
	}
	st, err := h.Stats.HostStats(r.Context(), ident)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"totalRevenue":      st.TotalRevenue,
		"pendingRequests":   st.PendingRequests,
		"confirmedBookings": st.ConfirmedBookings,
	})
}
