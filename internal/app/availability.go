package app

import (
	"context"
	"fmt"
	"time"

	"fewo_booking/internal/domain"
)

const maxBatchDates = 366

type AvailabilityService struct {
	acc  domain.AccommodationRepository
	repo domain.AvailabilityRepository
}

func NewAvailabilityService(acc domain.AccommodationRepository, repo domain.AvailabilityRepository) *AvailabilityService {
	return &AvailabilityService{acc: acc, repo: repo}
}

// Get lists the status-bearing rows in [start, end], ascending; dates with
// no row are available.
func (s *AvailabilityService) Get(ctx context.Context, accommodationID int64, start, end time.Time) ([]domain.AvailabilityRecord, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end before start", domain.ErrInvalid)
	}
	return s.repo.GetAvailability(ctx, accommodationID, start, end)
}

// Check reports whether the stay window [checkIn, checkOut) is free.
func (s *AvailabilityService) Check(ctx context.Context, accommodationID int64, checkIn, checkOut time.Time) (bool, error) {
	if domain.Nights(checkIn, checkOut) < 1 {
		return false, fmt.Errorf("%w: check-out must be after check-in", domain.ErrInvalid)
	}
	return s.repo.IsRangeAvailable(ctx, accommodationID, checkIn, checkOut)
}

func (s *AvailabilityService) requireOwned(ctx context.Context, ident domain.Identity, accommodationID int64) error {
	a, err := s.acc.GetAccommodationByID(ctx, accommodationID)
	if err != nil {
		return err
	}
	if !ident.CanManage(a.HostID) {
		return domain.ErrForbidden
	}
	return nil
}

// Block upserts a blocked row per date in one batch. An existing row is
// overwritten whatever its prior status.
func (s *AvailabilityService) Block(ctx context.Context, ident domain.Identity, accommodationID int64, dates []time.Time, note *string) error {
	if len(dates) == 0 || len(dates) > maxBatchDates {
		return fmt.Errorf("%w: between 1 and %d dates per call", domain.ErrInvalid, maxBatchDates)
	}
	if err := s.requireOwned(ctx, ident, accommodationID); err != nil {
		return err
	}
	return s.repo.BlockDates(ctx, accommodationID, dates, note)
}

func (s *AvailabilityService) Unblock(ctx context.Context, ident domain.Identity, accommodationID int64, dates []time.Time) error {
	if len(dates) == 0 || len(dates) > maxBatchDates {
		return fmt.Errorf("%w: between 1 and %d dates per call", domain.ErrInvalid, maxBatchDates)
	}
	if err := s.requireOwned(ctx, ident, accommodationID); err != nil {
		return err
	}
	return s.repo.UnblockDates(ctx, accommodationID, dates)
}
