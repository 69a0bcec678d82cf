package scout

import (
	"sort"

	"github.com/pable/gridscout/internal/model"
)

// AnalyzeMapCharacters reports which characters the scouted team fields on
// each map. A player contributes one increment per game they play the
// character on (never per round), so the counts read as "times fielded".
func AnalyzeMapCharacters(batch []model.SeriesRecord, team string) []model.MapCharacterUsage {
	w := &Walker{Team: team, Scope: model.ScopeScouted}

	type charTally struct {
		counts map[string]int
		order  []string
	}
	byMap := make(map[string]*charTally)

	for row := range w.Games(batch) {
		if row.Game.Map == nil || row.Game.Map.Name == "" {
			continue
		}
		if row.Player.Character == nil || row.Player.Character.Name == "" {
			continue
		}
		tally := byMap[row.Game.Map.Name]
		if tally == nil {
			tally = &charTally{counts: make(map[string]int)}
			byMap[row.Game.Map.Name] = tally
		}
		name := row.Player.Character.Name
		if _, seen := tally.counts[name]; !seen {
			tally.order = append(tally.order, name)
		}
		tally.counts[name]++
	}

	out := make([]model.MapCharacterUsage, 0, len(byMap))
	for mapName, tally := range byMap {
		pos := make(map[string]int, len(tally.order))
		for i, c := range tally.order {
			pos[c] = i
		}
		chars := make([]model.CharacterCount, 0, len(tally.order))
		for _, c := range tally.order {
			chars = append(chars, model.CharacterCount{Character: c, Count: tally.counts[c]})
		}
		sort.SliceStable(chars, func(i, j int) bool {
			if chars[i].Count != chars[j].Count {
				return chars[i].Count > chars[j].Count
			}
			return pos[chars[i].Character] < pos[chars[j].Character]
		})
		out = append(out, model.MapCharacterUsage{Map: mapName, Characters: chars})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Map < out[j].Map })
	return out
}
