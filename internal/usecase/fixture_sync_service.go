package usecase

import (
	"context"
	"fmt"

	"github.com/rakhafdl/goalstore/internal/domain/fixture"
)

type FixtureSyncService struct {
	fixtureRepo fixture.Repository
}

func NewFixtureSyncService(fixtureRepo fixture.Repository) *FixtureSyncService {
	return &FixtureSyncService{fixtureRepo: fixtureRepo}
}

// SaveFixtures flattens every nested provider record and writes the
// batch as one upsert. Absent nested blocks map to null columns. A
// record without a fixture id cannot be keyed and rejects the batch.
func (s *FixtureSyncService) SaveFixtures(ctx context.Context, fixtures []ExternalFixture) error {
	ctx, span := startUsecaseSpan(ctx, "FixtureSyncService.SaveFixtures")
	defer span.End()

	if len(fixtures) == 0 {
		return nil
	}

	rows := make([]fixture.Fixture, 0, len(fixtures))
	for i, item := range fixtures {
		if item.Fixture == nil || item.Fixture.ID == nil || *item.Fixture.ID == 0 {
			return fmt.Errorf("%w: fixture record %d has no fixture id", ErrInvalidInput, i)
		}
		rows = append(rows, mapExternalFixture(item))
	}

	if err := s.fixtureRepo.UpsertBatch(ctx, rows); err != nil {
		return fmt.Errorf("save fixtures: %w", err)
	}

	return nil
}

func mapExternalFixture(item ExternalFixture) fixture.Fixture {
	var row fixture.Fixture

	core := item.Fixture
	row.FixtureID = *core.ID
	row.Referee = core.Referee
	row.Timezone = core.Timezone
	row.FixtureDate = core.Date
	row.Timestamp = core.Timestamp
	if core.Periods != nil {
		row.FirstPeriodStart = core.Periods.First
		row.SecondPeriodStart = core.Periods.Second
	}
	if core.Venue != nil {
		row.VenueID = core.Venue.ID
		row.VenueName = core.Venue.Name
		row.VenueCity = core.Venue.City
	}
	if core.Status != nil {
		row.StatusLong = core.Status.Long
		row.StatusShort = core.Status.Short
		row.StatusElapsed = core.Status.Elapsed
	}

	if item.League != nil {
		row.LeagueID = item.League.ID
		row.LeagueName = item.League.Name
		row.LeagueCountry = item.League.Country
		row.LeagueLogo = item.League.Logo
		row.LeagueFlag = item.League.Flag
		row.LeagueSeason = item.League.Season
		row.LeagueRound = item.League.Round
	}

	if item.Teams != nil {
		if home := item.Teams.Home; home != nil {
			row.HomeTeamID = home.ID
			row.HomeTeamName = home.Name
			row.HomeTeamLogo = home.Logo
			row.HomeTeamWinner = home.Winner
		}
		if away := item.Teams.Away; away != nil {
			row.AwayTeamID = away.ID
			row.AwayTeamName = away.Name
			row.AwayTeamLogo = away.Logo
			row.AwayTeamWinner = away.Winner
		}
	}

	if item.Goals != nil {
		row.HomeGoals = item.Goals.Home
		row.AwayGoals = item.Goals.Away
	}
	if item.Score != nil {
		if item.Score.Halftime != nil {
			row.HalftimeScoreHome = item.Score.Halftime.Home
			row.HalftimeScoreAway = item.Score.Halftime.Away
		}
		if item.Score.Fulltime != nil {
			row.FulltimeScoreHome = item.Score.Fulltime.Home
			row.FulltimeScoreAway = item.Score.Fulltime.Away
		}
		if item.Score.Extratime != nil {
			row.ExtraTimeScoreHome = item.Score.Extratime.Home
			row.ExtraTimeScoreAway = item.Score.Extratime.Away
		}
		if item.Score.Penalty != nil {
			row.PenaltyScoreHome = item.Score.Penalty.Home
			row.PenaltyScoreAway = item.Score.Penalty.Away
		}
	}

	return row
}
