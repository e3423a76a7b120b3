package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rakhafdl/goalstore/internal/domain/team"
)

type TeamSyncService struct {
	teamRepo team.Repository
}

func NewTeamSyncService(teamRepo team.Repository) *TeamSyncService {
	return &TeamSyncService{teamRepo: teamRepo}
}

// SaveLeagueTeams maps every provider record to a team row and writes
// the whole batch as one upsert. On conflict every column except the
// id is refreshed, so re-submitting a season listing reconciles stored
// rows with the provider.
func (s *TeamSyncService) SaveLeagueTeams(ctx context.Context, teams []ExternalTeam) error {
	ctx, span := startUsecaseSpan(ctx, "TeamSyncService.SaveLeagueTeams")
	defer span.End()

	if len(teams) == 0 {
		return nil
	}

	rows := make([]team.Team, 0, len(teams))
	for _, item := range teams {
		rows = append(rows, mapExternalTeam(item))
	}

	if err := s.teamRepo.UpsertBatch(ctx, rows); err != nil {
		return fmt.Errorf("save league teams: %w", err)
	}

	return nil
}

func mapExternalTeam(item ExternalTeam) team.Team {
	row := team.Team{
		ID:          item.Team.ID,
		Name:        item.Team.Name,
		EnglishName: item.Team.Name,
		Country:     item.Team.Country,
		Image:       item.Team.Logo,
		URL:         item.Team.Website,
		FullName:    item.Team.FullName,
		AltNames:    item.Team.AlternativeNames,
		Risk:        item.Risk,
	}

	if item.Team.Name != nil {
		clean := team.CleanName(*item.Team.Name)
		row.CleanName = &clean
	}
	if item.Team.Founded != nil {
		founded := strconv.Itoa(*item.Team.Founded)
		row.Founded = &founded
	}
	if item.Team.Website != nil && *item.Team.Website != "" {
		row.OfficialSites = []string{*item.Team.Website}
	}
	if item.Season != nil {
		if item.Season.Current != nil {
			current := strconv.Itoa(*item.Season.Current)
			row.Season = &current
			row.SeasonClean = &current
		}
		row.SeasonFormat = item.Season.Format
	}
	if item.Statistics != nil {
		row.TablePosition = item.Statistics.Rank
		row.PerformanceRank = item.Statistics.PerformanceRank
	}
	if item.League != nil {
		row.CompetitionID = item.League.ID
	}

	return row
}
