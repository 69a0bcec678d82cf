package scout

import (
	"sort"

	"github.com/pable/gridscout/internal/model"
)

// Draft action types as reported on the wire.
const (
	draftBan  = "ban"
	draftPick = "pick"
)

// AnalyzeDraft tallies the scouted team's map bans and picks across the
// batch. Draft actions carry a drafter id rather than a name, so the match
// is on the team's numeric id. Actions drafted by a neutral/broadcast
// entity, or lacking a drafter or draftable, contribute nothing.
func AnalyzeDraft(batch []model.SeriesRecord, teamID string) model.DraftSummary {
	bans := make(map[string]int)
	picks := make(map[string]int)
	var banOrder, pickOrder []string

	summary := model.DraftSummary{}
	for si := range batch {
		s := &batch[si]
		if !SupportedSeries(s) {
			continue
		}
		for _, da := range s.State.DraftActions {
			if da.Drafter == nil || da.Drafter.ID != teamID {
				continue
			}
			if da.Draftable == nil || da.Draftable.Name == "" {
				continue
			}
			switch da.Type {
			case draftBan:
				if _, seen := bans[da.Draftable.Name]; !seen {
					banOrder = append(banOrder, da.Draftable.Name)
				}
				bans[da.Draftable.Name]++
			case draftPick:
				if _, seen := picks[da.Draftable.Name]; !seen {
					pickOrder = append(pickOrder, da.Draftable.Name)
				}
				picks[da.Draftable.Name]++
			default:
				continue
			}
			summary.TotalActions++
		}
	}

	summary.Bans = rankMaps(bans, banOrder, false)
	summary.Picks = rankMaps(picks, pickOrder, false)
	summary.MostBanned = topN(summary.Bans, 5)
	summary.MostPicked = topN(summary.Picks, 5)
	summary.LeastBanned = topN(rankMaps(bans, banOrder, true), 5)
	return summary
}

// rankMaps orders a map tally by count; the map seen first wins ties.
// Ascending order ranks least-banned maps among those banned at least once.
func rankMaps(counts map[string]int, order []string, ascending bool) []model.MapCount {
	pos := make(map[string]int, len(order))
	for i, m := range order {
		pos[m] = i
	}
	out := make([]model.MapCount, 0, len(order))
	for _, m := range order {
		out = append(out, model.MapCount{Map: m, Count: counts[m]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			if ascending {
				return out[i].Count < out[j].Count
			}
			return out[i].Count > out[j].Count
		}
		return pos[out[i].Map] < pos[out[j].Map]
	})
	return out
}

func topN(ranked []model.MapCount, n int) []model.MapCount {
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
