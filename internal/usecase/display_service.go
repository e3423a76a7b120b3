package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rakhafdl/goalstore/internal/domain/team"
	"github.com/rakhafdl/goalstore/internal/platform/cache"
)

// DisplayMatchRow is one element of the legacy display feed. The four
// tournament grouping fields are always null placeholders the feed
// consumer expects to find. Name and Logo are null for teams stored
// without a clean name.
type DisplayMatchRow struct {
	UEFAEuroQualifiersGroup   *string `json:"uefa_euro_qualifiers_group"`
	UEFAEuroQualifiersTable   *string `json:"uefa_euro_qualifiers_table"`
	UEFAEuroChampionshipGroup *string `json:"uefa_euro_championship_group"`
	UEFAEuroChampionshipTable *string `json:"uefa_euro_championship_table"`
	Name                      *string `json:"name"`
	Logo                      *string `json:"logo"`
}

// The feed content is identical regardless of the date and league
// inputs, so a single cache entry serves every gated call.
const displayMatchesCacheKey = "display:matches"

type DisplayService struct {
	teamRepo team.Repository
	cache    *cache.Store
}

// NewDisplayService accepts a nil cache, in which case every call hits
// storage.
func NewDisplayService(teamRepo team.Repository, cacheStore *cache.Store) *DisplayService {
	return &DisplayService{
		teamRepo: teamRepo,
		cache:    cacheStore,
	}
}

// ListMatchesForJSON reproduces the legacy JSON feed: a blank date or
// league name short-circuits to an empty result; otherwise every
// stored team is returned ordered by clean name descending, with the
// clean name doubling as both display name and logo. The date and
// league inputs only gate the call — they do not filter the rows.
func (s *DisplayService) ListMatchesForJSON(ctx context.Context, date, leagueName string) ([]DisplayMatchRow, error) {
	ctx, span := startUsecaseSpan(ctx, "DisplayService.ListMatchesForJSON")
	defer span.End()

	if strings.TrimSpace(date) == "" || strings.TrimSpace(leagueName) == "" {
		return []DisplayMatchRow{}, nil
	}

	if s.cache == nil {
		return s.loadRows(ctx)
	}

	value, err := s.cache.GetOrLoad(ctx, displayMatchesCacheKey, func(ctx context.Context) (any, error) {
		return s.loadRows(ctx)
	})
	if err != nil {
		return nil, err
	}

	rows, ok := value.([]DisplayMatchRow)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T", value)
	}
	return rows, nil
}

func (s *DisplayService) loadRows(ctx context.Context) ([]DisplayMatchRow, error) {
	names, err := s.teamRepo.ListCleanNamesDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team clean names: %w", err)
	}

	rows := make([]DisplayMatchRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, DisplayMatchRow{Name: name, Logo: name})
	}
	return rows, nil
}
