package service

import (
	"ContinuumLoot/internal/repo"
	"context"
)

// RaidService — чтение рейдов и рейдовых дней.
type RaidService struct {
	raids repo.RaidRepository
}

func NewRaidService(raids repo.RaidRepository) *RaidService {
	return &RaidService{raids: raids}
}

func (s *RaidService) List(ctx context.Context) ([]RaidDTO, error) {
	raids, err := s.raids.ListRaids(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RaidDTO, 0, len(raids))
	for i := range raids {
		out = append(out, RaidToDTO(&raids[i]))
	}
	return out, nil
}

func (s *RaidService) ListDays(ctx context.Context) ([]RaidDayDTO, error) {
	days, err := s.raids.ListRaidDays(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RaidDayDTO, 0, len(days))
	for i := range days {
		out = append(out, RaidDayToDTO(&days[i]))
	}
	return out, nil
}
