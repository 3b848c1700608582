package app

import (
	"context"

	"fewo_booking/internal/domain"
)

// StatsService recomputes host rollups per call; nothing is cached.
type StatsService struct {
	repo domain.BookingRepository
}

func NewStatsService(repo domain.BookingRepository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) HostStats(ctx context.Context, ident domain.Identity) (domain.HostStats, error) {
	st, err := s.repo.HostStats(ctx, ident.UserID)
	if err != nil {
		return domain.HostStats{}, err
	}
	st.TotalRevenue = normalizeAmount(st.TotalRevenue)
	return st, nil
}
