package scout

import (
	"sort"

	"github.com/pable/gridscout/internal/model"
)

// AnalyzeThreats ranks the characters opposing teams fielded against the
// scouted team by how much they produced. Kills and damage come from round
// segments, credited to the character the player ran for that game; the
// result answers which enemy characters are worth banning or picking away.
func AnalyzeThreats(batch []model.SeriesRecord, team string) []model.CharacterThreat {
	w := &Walker{Team: team, Scope: model.ScopeOpponent}

	type gameKey struct {
		seriesID string
		gameSeq  int
	}

	// Opponent rosters per game: player → character, players in encounter
	// order so aggregation below is deterministic.
	var gameOrder []gameKey
	rosters := make(map[gameKey]map[string]string)
	rosterOrder := make(map[gameKey][]string)
	for row := range w.Games(batch) {
		if row.Player.Name == "" || row.Player.Character == nil || row.Player.Character.Name == "" {
			continue
		}
		gk := gameKey{row.Series.ID, row.Game.SequenceNumber}
		roster := rosters[gk]
		if roster == nil {
			roster = make(map[string]string)
			rosters[gk] = roster
			gameOrder = append(gameOrder, gk)
		}
		if _, seen := roster[row.Player.Name]; !seen {
			rosterOrder[gk] = append(rosterOrder[gk], row.Player.Name)
		}
		roster[row.Player.Name] = row.Player.Character.Name
	}

	// Rounds per game: one per segment that includes the opponent team,
	// independent of player.
	rounds := make(map[gameKey]int)
	for tr := range w.SegmentTeams(batch) {
		rounds[gameKey{tr.Series.ID, tr.Game.SequenceNumber}]++
	}

	// Kills and damage dealt per (game, player) from segment rows.
	kills := make(map[gamePlayerKey]int)
	damage := make(map[gamePlayerKey]int)
	for row := range w.Segments(batch) {
		if row.Player.Name == "" {
			continue
		}
		key := gamePlayerKey{row.Series.ID, row.Game.SequenceNumber, row.Player.Name}
		kills[key] += row.Player.Kills
		if row.Player.DamageDealt != nil {
			damage[key] += *row.Player.DamageDealt
		}
	}

	// ---- Roll up per character. ----
	accums := make(map[string]*model.CharacterThreat)
	var charOrder []string
	get := func(character string) *model.CharacterThreat {
		if t, ok := accums[character]; ok {
			return t
		}
		t := &model.CharacterThreat{Character: character}
		accums[character] = t
		charOrder = append(charOrder, character)
		return t
	}

	for _, gk := range gameOrder {
		seen := make(map[string]bool)
		for _, player := range rosterOrder[gk] {
			character := rosters[gk][player]
			t := get(character)
			key := gamePlayerKey{gk.seriesID, gk.gameSeq, player}
			t.Kills += kills[key]
			t.Damage += damage[key]
			// Games and rounds count once per game the character showed
			// up in, not once per player running it.
			if !seen[character] {
				seen[character] = true
				t.GamesPlayed++
				t.Rounds += rounds[gk]
			}
		}
	}

	out := make([]model.CharacterThreat, 0, len(charOrder))
	for _, c := range charOrder {
		out = append(out, *accums[c])
	}
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := out[i].AvgKillsPerGame(), out[j].AvgKillsPerGame()
		if ki != kj {
			return ki > kj
		}
		di, dj := out[i].AvgDamagePerRound(), out[j].AvgDamagePerRound()
		if di != dj {
			return di > dj
		}
		return out[i].Character < out[j].Character
	})
	return out
}
