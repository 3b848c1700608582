package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"fewo_booking/internal/domain"
)

func queryID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalid
	}
	return id, nil
}

func (h *Handlers) getAvailability(w http.ResponseWriter, r *http.Request) {
	accID, err := queryID(r, "accommodation_id")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "accommodation_id is required")
		return
	}
	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "start must be YYYY-MM-DD")
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "end must be YYYY-MM-DD")
		return
	}
	recs, err := h.Availability.Get(r.Context(), accID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, toAvailabilityDTOs(recs))
}

func (h *Handlers) checkAvailability(w http.ResponseWriter, r *http.Request) {
	accID, err := queryID(r, "accommodation_id")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "accommodation_id is required")
		return
	}
	checkIn, err := parseDate(r.URL.Query().Get("check_in"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(r.URL.Query().Get("check_out"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "check_out must be YYYY-MM-DD")
		return
	}
	ok, err := h.Availability.Check(r.Context(), accID, checkIn, checkOut)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"available": ok})
}

type datesBody struct {
	AccommodationID int64    `json:"accommodationId"`
	Dates           []string `json:"dates"`
	Note            *string  `json:"note"`
}

func (b datesBody) parsedDates() ([]time.Time, error) {
	out := make([]time.Time, 0, len(b.Dates))
	for _, s := range b.Dates {
		d, err := parseDate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (h *Handlers) blockDates(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireHost(ident); err != nil {
		writeError(w, err)
		return
	}
	var body datesBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	dates, err := body.parsedDates()
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "dates must be YYYY-MM-DD")
		return
	}
	if err := h.Availability.Block(r.Context(), ident, body.AccommodationID, dates, body.Note); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) unblockDates(w http.ResponseWriter, r *http.Request) {
	ident := callerIdentity(r)
	if err := requireHost(ident); err != nil {
		writeError(w, err)
		return
	}
	var body datesBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	dates, err := body.parsedDates()
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "dates must be YYYY-MM-DD")
		return
	}
	if err := h.Availability.Unblock(r.Context(), ident, body.AccommodationID, dates); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
