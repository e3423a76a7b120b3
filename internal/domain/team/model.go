package team

import "strings"

// Team is one club row as persisted from a provider season payload.
// Pointer fields are nullable columns; absent provider values stay NULL.
type Team struct {
	ID              int64
	Name            *string
	CleanName       *string
	EnglishName     *string
	Country         *string
	Founded         *string
	Image           *string
	Season          *string
	SeasonClean     *string
	URL             *string
	TablePosition   *int
	PerformanceRank *int
	Risk            *int
	SeasonFormat    *string
	CompetitionID   *int64
	FullName        *string
	AltNames        []string
	OfficialSites   []string
}

// CleanName lowercases the name and strips every character outside
// [a-z0-9]. "AFC Ajax" becomes "afcajax". The result is stable under
// re-application.
func CleanName(name string) string {
	lowered := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
