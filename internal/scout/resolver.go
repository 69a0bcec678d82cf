// Package scout implements the match-telemetry aggregation pipeline: pure
// reducers that turn a batch of raw series records into ranked scouting
// statistics. Analyzers share one traversal (Walker) and one team-identity
// rule (BelongsToTeam) so filtering bugs cannot diverge between them.
package scout

import "strings"

// BelongsToTeam reports whether a roster-level team name refers to the
// scouted team. Provider names are inconsistently suffixed ("MIBR (1)",
// "MIBR GC"), so an exact compare misses real records; a name that equals,
// extends, or contains the scouted name counts as a match. One team's name
// being a substring of another's ("G2" vs "G2 Academy") produces a false
// positive; the provider offers no stable roster-level id to do better with.
func BelongsToTeam(observed, scouted string) bool {
	if observed == "" || scouted == "" {
		return false
	}
	return observed == scouted ||
		strings.HasPrefix(observed, scouted) ||
		strings.Contains(observed, scouted)
}
