package scout

import (
	"iter"

	"github.com/pable/gridscout/internal/model"
)

// GameRow is one roster entry at game granularity.
type GameRow struct {
	Series *model.SeriesRecord
	Game   *model.Game
	Team   *model.GameTeam
	Player *model.GamePlayer
}

// SegmentTeamRow is one team snapshot at round granularity, for analyses
// that count rounds independent of players.
type SegmentTeamRow struct {
	Series  *model.SeriesRecord
	Game    *model.Game
	Segment *model.Segment
	Team    *model.SegmentTeam
}

// SegmentRow is one roster entry at round granularity.
type SegmentRow struct {
	Series  *model.SeriesRecord
	Game    *model.Game
	Segment *model.Segment
	Team    *model.SegmentTeam
	Player  *model.SegmentPlayer
}

// Walker yields roster rows for one side of a series batch. Every analyzer
// traverses through it so that series filtering, missing-field skips and
// team selection are written exactly once. Sequences are lazy and
// restartable; ranging twice walks the batch twice.
type Walker struct {
	Team  string      // scouted team name
	Scope model.Scope // which side the walk visits
}

// selected returns the indexes of the team names the walk should visit.
// Scouted scope visits every resolving name. Opponent scope requires exactly
// two teams of which exactly one resolves; the other is the opponent.
// Anything else (neither or both resolving, not two teams) selects nothing.
func (w *Walker) selected(names []string) []int {
	if w.Scope == model.ScopeOpponent {
		if len(names) != 2 {
			return nil
		}
		first := BelongsToTeam(names[0], w.Team)
		second := BelongsToTeam(names[1], w.Team)
		if first == second {
			return nil
		}
		if first {
			return []int{1}
		}
		return []int{0}
	}
	var idx []int
	for i, n := range names {
		if BelongsToTeam(n, w.Team) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Games yields (series, game, team, player) rows at game granularity for
// supported series, restricted to the walker's scope.
func (w *Walker) Games(batch []model.SeriesRecord) iter.Seq[GameRow] {
	return func(yield func(GameRow) bool) {
		for si := range batch {
			s := &batch[si]
			if !SupportedSeries(s) {
				continue
			}
			for gi := range s.State.Games {
				g := &s.State.Games[gi]
				names := make([]string, len(g.Teams))
				for ti := range g.Teams {
					names[ti] = g.Teams[ti].Name
				}
				for _, ti := range w.selected(names) {
					t := &g.Teams[ti]
					for pi := range t.Players {
						if !yield(GameRow{Series: s, Game: g, Team: t, Player: &t.Players[pi]}) {
							return
						}
					}
				}
			}
		}
	}
}

// SegmentTeams yields (series, game, segment, team) rows at round
// granularity, one per selected team per segment.
func (w *Walker) SegmentTeams(batch []model.SeriesRecord) iter.Seq[SegmentTeamRow] {
	return func(yield func(SegmentTeamRow) bool) {
		for si := range batch {
			s := &batch[si]
			if !SupportedSeries(s) {
				continue
			}
			for gi := range s.State.Games {
				g := &s.State.Games[gi]
				for segi := range g.Segments {
					seg := &g.Segments[segi]
					names := make([]string, len(seg.Teams))
					for ti := range seg.Teams {
						names[ti] = seg.Teams[ti].Name
					}
					for _, ti := range w.selected(names) {
						row := SegmentTeamRow{Series: s, Game: g, Segment: seg, Team: &seg.Teams[ti]}
						if !yield(row) {
							return
						}
					}
				}
			}
		}
	}
}

// Segments yields (series, game, segment, team, player) rows at round
// granularity, one per player on each selected segment team.
func (w *Walker) Segments(batch []model.SeriesRecord) iter.Seq[SegmentRow] {
	return func(yield func(SegmentRow) bool) {
		for tr := range w.SegmentTeams(batch) {
			for pi := range tr.Team.Players {
				row := SegmentRow{
					Series:  tr.Series,
					Game:    tr.Game,
					Segment: tr.Segment,
					Team:    tr.Team,
					Player:  &tr.Team.Players[pi],
				}
				if !yield(row) {
					return
				}
			}
		}
	}
}
