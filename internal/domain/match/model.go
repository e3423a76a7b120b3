package match

// Match is one completed-or-scheduled game row. Match rows are
// write-once: a persisted match is never updated by ingestion.
type Match struct {
	ID            int64
	HomeTeamID    int64
	AwayTeamID    int64
	Season        *string
	Status        *string
	DateUnix      *int64
	CompetitionID *int64
	StadiumName   *string
	Attendance    *int
	RefereeID     *int64
}

// Stats holds per-match statistics, present only when the provider
// reported a home goal count for the match.
type Stats struct {
	MatchID           int64
	HomeGoals         *int
	AwayGoals         *int
	HomeCorners       *int
	AwayCorners       *int
	HomeShotsOnTarget *int
	AwayShotsOnTarget *int
	HomePossession    *int
	AwayPossession    *int
	HomeXG            *float64
	AwayXG            *float64
}

// Odds holds pre-match betting odds, present only when the provider
// reported a full-time home-win price for the match.
type Odds struct {
	MatchID int64
	FTHome  *float64
	FTDraw  *float64
	FTAway  *float64
	BTTSYes *float64
	BTTSNo  *float64
	Over25  *float64
	Under25 *float64
}

// WithDetails is a match with its optional stats and odds attached.
// Stats and Odds are nil when the match has none.
type WithDetails struct {
	Match Match
	Stats *Stats
	Odds  *Odds
}

// Filter narrows match listings. Nil fields are not applied.
type Filter struct {
	Season        *string
	Status        *string
	CompetitionID *int64
	HomeTeamID    *int64
	AwayTeamID    *int64
	DateUnixFrom  *int64
	DateUnixTo    *int64
}

// BatchResult reports what happened to each record of a match
// submission. A storage fault stops the batch; records after the
// failing one are untouched and Err carries the cause.
type BatchResult struct {
	Created            int
	SkippedExisting    int
	SkippedInvalid     int
	SkippedMissingTeam int
	Err                error
}

// Processed is the number of records the batch consumed before
// stopping.
func (r BatchResult) Processed() int {
	return r.Created + r.SkippedExisting + r.SkippedInvalid + r.SkippedMissingTeam
}
