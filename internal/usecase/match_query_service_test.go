package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rakhafdl/goalstore/internal/domain/match"
	"github.com/stretchr/testify/require"
)

type matchListerStub struct {
	items  []match.WithDetails
	err    error
	filter match.Filter
}

func (s *matchListerStub) Exists(context.Context, int64) (bool, error) { return false, nil }

func (s *matchListerStub) CreateWithDetails(context.Context, match.Match, *match.Stats, *match.Odds) error {
	return nil
}

func (s *matchListerStub) ListByFilter(_ context.Context, filter match.Filter) ([]match.WithDetails, error) {
	s.filter = filter
	return s.items, s.err
}

func TestMatchQueryService_ListMatches(t *testing.T) {
	t.Parallel()

	season := "2024/2025"
	goals := 2
	repo := &matchListerStub{
		items: []match.WithDetails{
			{
				Match: match.Match{ID: 7, HomeTeamID: 1, AwayTeamID: 2, Season: &season},
				Stats: &match.Stats{MatchID: 7, HomeGoals: &goals},
			},
		},
	}
	service := NewMatchQueryService(repo)

	got, err := service.ListMatches(context.Background(), match.Filter{Season: &season})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(7), got[0].Match.ID)
	require.NotNil(t, got[0].Stats)
	require.Nil(t, got[0].Odds)
	require.NotNil(t, repo.filter.Season)
	require.Equal(t, season, *repo.filter.Season)
}

func TestMatchQueryService_ListMatchesRepositoryError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("connection reset")
	service := NewMatchQueryService(&matchListerStub{err: repoErr})

	_, err := service.ListMatches(context.Background(), match.Filter{})
	require.ErrorIs(t, err, repoErr)
}
