package scout

// Telemetry reports facts at two redundant granularities: game-level
// cumulative summaries and per-round segments. Which level feeds which
// statistic is a single table here, consulted by the analyzers, so the
// reconciliation rule cannot drift between them.

// Source is the telemetry level a statistic is read from.
type Source int

const (
	// GameAuthoritative: game-level totals win; segment tallies fill in
	// only for (game, player) pairs whose game entry reports nothing.
	// Never both for the same game, or kills double-count.
	GameAuthoritative Source = iota
	// SegmentOnly: the fact exists only at round granularity.
	SegmentOnly
	// RosterUnion: identity only; both levels contribute names.
	RosterUnion
)

// Stat enumerates the accumulated statistics with a granularity choice.
type Stat int

const (
	StatWeaponKills Stat = iota
	StatSideKills
	StatRoundDamage
	StatPistolEconomy
	StatObjectives
	StatSeriesRoster
)

var statSources = map[Stat]Source{
	StatWeaponKills:   GameAuthoritative,
	StatSideKills:     SegmentOnly,
	StatRoundDamage:   SegmentOnly,
	StatPistolEconomy: SegmentOnly,
	StatObjectives:    SegmentOnly,
	StatSeriesRoster:  RosterUnion,
}

// SourceOf returns the telemetry level that feeds stat.
func SourceOf(stat Stat) Source {
	return statSources[stat]
}

// PistolSegment is the segment sequence number treated as a pistol round.
// Only the first half's pistol is detectable this way; the second half
// restarts at a title-specific offset the provider does not expose.
const PistolSegment = 1
