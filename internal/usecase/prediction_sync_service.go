package usecase

import (
	"context"
	"fmt"

	"github.com/rakhafdl/goalstore/internal/domain/prediction"
)

type PredictionSyncService struct {
	predictionRepo prediction.Repository
}

func NewPredictionSyncService(predictionRepo prediction.Repository) *PredictionSyncService {
	return &PredictionSyncService{predictionRepo: predictionRepo}
}

// SavePredictions flattens every forecast and writes the batch as one
// upsert keyed by fixture id, refreshing every non-key column.
func (s *PredictionSyncService) SavePredictions(ctx context.Context, predictions []ExternalPrediction) error {
	ctx, span := startUsecaseSpan(ctx, "PredictionSyncService.SavePredictions")
	defer span.End()

	if len(predictions) == 0 {
		return nil
	}

	rows := make([]prediction.Prediction, 0, len(predictions))
	for i, item := range predictions {
		if item.FixtureID == 0 {
			return fmt.Errorf("%w: prediction record %d has no fixture id", ErrInvalidInput, i)
		}
		rows = append(rows, mapExternalPrediction(item))
	}

	if err := s.predictionRepo.UpsertBatch(ctx, rows); err != nil {
		return fmt.Errorf("save predictions: %w", err)
	}

	return nil
}

func mapExternalPrediction(item ExternalPrediction) prediction.Prediction {
	row := prediction.Prediction{FixtureID: item.FixtureID}

	if block := item.Predictions; block != nil {
		if block.Winner != nil {
			row.WinnerID = block.Winner.ID
			row.WinnerName = block.Winner.Name
			row.WinnerComment = block.Winner.Comment
		}
		row.WinOrDraw = block.WinOrDraw
		row.UnderOver = block.UnderOver
		if block.Goals != nil {
			row.GoalsHome = block.Goals.Home
			row.GoalsAway = block.Goals.Away
		}
		row.Advice = block.Advice
		if block.Percent != nil {
			row.PercentHome = block.Percent.Home
			row.PercentDraw = block.Percent.Draw
			row.PercentAway = block.Percent.Away
		}
	}

	if item.League != nil {
		row.LeagueID = item.League.ID
		row.LeagueName = item.League.Name
		row.LeagueCountry = item.League.Country
		row.LeagueLogo = item.League.Logo
		row.LeagueFlag = item.League.Flag
		row.LeagueSeason = item.League.Season
	}

	if item.Teams != nil {
		if home := item.Teams.Home; home != nil {
			row.HomeTeamID = home.ID
			row.HomeTeamName = home.Name
			row.HomeTeamLogo = home.Logo
			if home.Last5 != nil {
				row.HomeLast5Form = home.Last5.Form
				row.HomeLast5Att = home.Last5.Att
				row.HomeLast5Def = home.Last5.Def
				if home.Last5.Goals != nil {
					if home.Last5.Goals.For != nil {
						row.HomeGoalsForTotal = home.Last5.Goals.For.Total
					}
					if home.Last5.Goals.Against != nil {
						row.HomeGoalsAgainstTotal = home.Last5.Goals.Against.Total
					}
				}
			}
		}
		if away := item.Teams.Away; away != nil {
			row.AwayTeamID = away.ID
			row.AwayTeamName = away.Name
			row.AwayTeamLogo = away.Logo
			if away.Last5 != nil {
				row.AwayLast5Form = away.Last5.Form
				row.AwayLast5Att = away.Last5.Att
				row.AwayLast5Def = away.Last5.Def
				if away.Last5.Goals != nil {
					if away.Last5.Goals.For != nil {
						row.AwayGoalsForTotal = away.Last5.Goals.For.Total
					}
					if away.Last5.Goals.Against != nil {
						row.AwayGoalsAgainstTotal = away.Last5.Goals.Against.Total
					}
				}
			}
		}
	}

	if cmp := item.Comparison; cmp != nil {
		if cmp.Form != nil {
			row.ComparisonFormHome = cmp.Form.Home
			row.ComparisonFormAway = cmp.Form.Away
		}
		if cmp.Att != nil {
			row.ComparisonAttHome = cmp.Att.Home
			row.ComparisonAttAway = cmp.Att.Away
		}
		if cmp.Def != nil {
			row.ComparisonDefHome = cmp.Def.Home
			row.ComparisonDefAway = cmp.Def.Away
		}
		if cmp.PoissonDistribution != nil {
			row.ComparisonPoissonHome = cmp.PoissonDistribution.Home
			row.ComparisonPoissonAway = cmp.PoissonDistribution.Away
		}
		if cmp.H2H != nil {
			row.ComparisonHeadToHeadHome = cmp.H2H.Home
			row.ComparisonHeadToHeadAway = cmp.H2H.Away
		}
	}

	return row
}
