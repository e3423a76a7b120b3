package usecase

import (
	"context"
	"fmt"

	"github.com/rakhafdl/goalstore/internal/domain/fixture"
	"github.com/rakhafdl/goalstore/internal/domain/prediction"
)

type FixtureQueryService struct {
	fixtureRepo    fixture.Repository
	predictionRepo prediction.Repository
}

func NewFixtureQueryService(fixtureRepo fixture.Repository, predictionRepo prediction.Repository) *FixtureQueryService {
	return &FixtureQueryService{
		fixtureRepo:    fixtureRepo,
		predictionRepo: predictionRepo,
	}
}

// ListFixtureIDsWithoutPredictions returns ids of fixtures that have
// no prediction row yet. With zero stored predictions every fixture id
// comes back.
func (s *FixtureQueryService) ListFixtureIDsWithoutPredictions(ctx context.Context) ([]int64, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureQueryService.ListFixtureIDsWithoutPredictions")
	defer span.End()

	predicted, err := s.predictionRepo.ListFixtureIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list predicted fixture ids: %w", err)
	}

	ids, err := s.fixtureRepo.ListIDsExcluding(ctx, predicted)
	if err != nil {
		return nil, fmt.Errorf("list fixtures without predictions: %w", err)
	}

	return ids, nil
}
