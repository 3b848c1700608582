package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"fewo_booking/internal/app"
)

type Server struct{ mux *chi.Mux }

func New() *Server {
	m := chi.NewRouter()

	// All middlewares go here, before any routes are added.
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(15 * time.Second))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}

// Handlers bundles the services behind the route tree. Every protected
// handler starts with its own capability check; there is no role middleware.
type Handlers struct {
	Acc          *app.AccommodationService
	Bookings     *app.BookingService
	Availability *app.AvailabilityService
	Config       *app.ConfigService
	Catalog      *app.CatalogService
	Stats        *app.StatsService

	// BookingRPS bounds public booking creation per remote IP.
	BookingRPS float64
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	// Public catalog
	s.mux.Get("/v1/accommodations", h.searchAccommodations)
	s.mux.Get("/v1/accommodations/featured", h.featuredAccommodations)
	s.mux.Get("/v1/accommodations/{slug}", h.accommodationBySlug)
	s.mux.Get("/v1/amenities", h.listAmenities)
	s.mux.Get("/v1/regions", h.listRegions)
	s.mux.Get("/v1/config", h.getConfig)

	// Public availability
	s.mux.Get("/v1/availability", h.getAvailability)
	s.mux.Get("/v1/availability/check", h.checkAvailability)

	// Public booking + reviews
	rps := h.BookingRPS
	if rps <= 0 {
		rps = 2
	}
	s.mux.With(RateLimit(rps, int(rps)*2)).Post("/v1/bookings", h.createBooking)
	s.mux.Post("/v1/reviews", h.createReview)

	// Host surface
	s.mux.Route("/v1/host", func(r chi.Router) {
		r.Get("/accommodations", h.hostAccommodations)
		r.Post("/accommodations", h.createAccommodation)
		r.Patch("/accommodations/{id}", h.updateAccommodation)
		r.Put("/accommodations/{id}/amenities", h.setAmenities)
		r.Post("/accommodations/{id}/images", h.addImage)
		r.Put("/accommodations/{id}/images/{imageID}/main", h.setMainImage)
		r.Delete("/images/{id}", h.deleteImage)

		r.Get("/bookings", h.hostBookings)
		r.Get("/bookings/upcoming", h.upcomingCheckIns)
		r.Get("/bookings/{id}", h.bookingByID)
		r.Post("/bookings/{id}/status", h.updateBookingStatus)

		r.Post("/availability/block", h.blockDates)
		r.Post("/availability/unblock", h.unblockDates)

		r.Get("/dashboard/stats", h.hostStats)
	})

	// Admin surface
	s.mux.Put("/v1/config/{key}", h.setConfig)
	s.mux.Post("/v1/admin/config/init", h.initPlatform)
	s.mux.Post("/v1/admin/regions", h.createRegion)
}
