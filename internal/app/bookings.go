package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fewo_booking/internal/domain"
)

const defaultCheckInWindowDays = 14

type BookingService struct {
	acc  domain.AccommodationRepository
	repo domain.BookingRepository
	now  func() time.Time
}

func NewBookingService(acc domain.AccommodationRepository, repo domain.BookingRepository) *BookingService {
	return &BookingService{acc: acc, repo: repo, now: time.Now}
}

// BookingRequest is the guest-facing input. Dates are calendar days; the
// checkout day is not occupied.
type BookingRequest struct {
	AccommodationID int64
	GuestName       string
	GuestEmail      string
	GuestPhone      *string
	GuestMessage    *string
	CheckIn         time.Time
	CheckOut        time.Time
	NumberOfGuests  int
}

type BookingResult struct {
	ID     int64
	Status domain.BookingStatus
}

// Create validates the request, snapshots pricing from the listing and
// inserts the booking. Instant-booking listings confirm immediately and
// occupy their stay dates at creation; all others start pending. The
// availability check, the insert and the ledger write share one transaction
// in the repository, so overlapping concurrent requests cannot both succeed.
func (s *BookingService) Create(ctx context.Context, in BookingRequest) (BookingResult, error) {
	if len(strings.TrimSpace(in.GuestName)) < 2 {
		return BookingResult{}, fmt.Errorf("%w: guest name required", domain.ErrInvalid)
	}
	if !strings.Contains(in.GuestEmail, "@") {
		return BookingResult{}, fmt.Errorf("%w: guest email %q", domain.ErrInvalid, in.GuestEmail)
	}
	if in.NumberOfGuests < 1 {
		return BookingResult{}, fmt.Errorf("%w: number of guests must be at least 1", domain.ErrInvalid)
	}
	checkIn, checkOut := domain.Date(in.CheckIn), domain.Date(in.CheckOut)
	nights := domain.Nights(checkIn, checkOut)
	if nights < 1 {
		return BookingResult{}, fmt.Errorf("%w: check-out must be after check-in", domain.ErrInvalid)
	}

	a, err := s.acc.GetAccommodationByID(ctx, in.AccommodationID)
	if err != nil {
		return BookingResult{}, err
	}
	if in.NumberOfGuests > a.MaxGuests {
		return BookingResult{}, fmt.Errorf("%w: %d guests exceed the maximum of %d", domain.ErrInvalid, in.NumberOfGuests, a.MaxGuests)
	}

	total, err := quote(a.PricePerNight, a.CleaningFee, nights)
	if err != nil {
		return BookingResult{}, err
	}

	status := domain.BookingPending
	if a.InstantBooking {
		status = domain.BookingConfirmed
	}

	id, err := s.repo.CreateBooking(ctx, domain.Booking{
		AccommodationID: a.ID,
		HostID:          a.HostID,
		GuestName:       strings.TrimSpace(in.GuestName),
		GuestEmail:      in.GuestEmail,
		GuestPhone:      in.GuestPhone,
		GuestMessage:    in.GuestMessage,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumberOfGuests:  in.NumberOfGuests,
		PricePerNight:   a.PricePerNight,
		NumberOfNights:  nights,
		CleaningFee:     a.CleaningFee,
		TotalPrice:      total,
		Currency:        "EUR",
		Status:          status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return BookingResult{}, fmt.Errorf("%w: dates not available", domain.ErrConflict)
		}
		return BookingResult{}, err
	}
	return BookingResult{ID: id, Status: status}, nil
}

// UpdateStatus moves a booking to the target status. On confirmation every
// date of the stay window is marked booked with a backlink to the booking,
// in the same transaction as the status write. Rejection and cancellation
// leave the ledger untouched.
func (s *BookingService) UpdateStatus(ctx context.Context, ident domain.Identity, id int64, status domain.BookingStatus, hostNotes *string) error {
	if !domain.ValidBookingStatus(status) {
		return fmt.Errorf("%w: status %q", domain.ErrInvalid, status)
	}
	b, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return err
	}
	if !ident.CanManage(b.HostID) {
		return domain.ErrForbidden
	}

	var occupy []domain.AvailabilityRecord
	if status == domain.BookingConfirmed {
		occupy = domain.OccupyRecords(b)
	}
	return s.repo.SetBookingStatus(ctx, id, status, hostNotes, occupy)
}

func (s *BookingService) HostBookings(ctx context.Context, ident domain.Identity, status *domain.BookingStatus) ([]domain.BookingView, error) {
	if status != nil && !domain.ValidBookingStatus(*status) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalid, *status)
	}
	return s.repo.ListBookingsByHost(ctx, ident.UserID, status)
}

// BookingDetail pairs a booking with its listing for the host detail page.
type BookingDetail struct {
	Booking       domain.Booking
	Accommodation domain.Accommodation
}

// ByID returns ErrNotFound for bookings the caller does not own, so the
// endpoint does not leak which IDs exist.
func (s *BookingService) ByID(ctx context.Context, ident domain.Identity, id int64) (BookingDetail, error) {
	b, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return BookingDetail{}, err
	}
	if !ident.CanManage(b.HostID) {
		return BookingDetail{}, domain.ErrNotFound
	}
	a, err := s.acc.GetAccommodationByID(ctx, b.AccommodationID)
	if err != nil {
		return BookingDetail{}, err
	}
	return BookingDetail{Booking: b, Accommodation: a}, nil
}

func (s *BookingService) UpcomingCheckIns(ctx context.Context, ident domain.Identity, withinDays int) ([]domain.BookingView, error) {
	if withinDays <= 0 {
		withinDays = defaultCheckInWindowDays
	}
	from := domain.Date(s.now())
	return s.repo.UpcomingCheckIns(ctx, ident.UserID, from, from.AddDate(0, 0, withinDays))
}

// ExpiredConfirmed lists confirmed bookings whose checkout has passed; the
// sweeper completes them.
func (s *BookingService) ExpiredConfirmed(ctx context.Context, asOf time.Time) ([]int64, error) {
	return s.repo.ListExpiredConfirmed(ctx, domain.Date(asOf))
}
