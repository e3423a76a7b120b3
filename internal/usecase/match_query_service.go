package usecase

import (
	"context"
	"fmt"

	"github.com/rakhafdl/goalstore/internal/domain/match"
)

type MatchQueryService struct {
	matchRepo match.Repository
}

func NewMatchQueryService(matchRepo match.Repository) *MatchQueryService {
	return &MatchQueryService{matchRepo: matchRepo}
}

// ListMatches returns matches satisfying the filter, each carrying its
// stats and odds rows when they exist.
func (s *MatchQueryService) ListMatches(ctx context.Context, filter match.Filter) ([]match.WithDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchQueryService.ListMatches")
	defer span.End()

	items, err := s.matchRepo.ListByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return items, nil
}
