package scout

import (
	"sort"

	"github.com/pable/gridscout/internal/model"
)

// gamePlayerKey identifies one (game, player) pair across the batch.
type gamePlayerKey struct {
	seriesID string
	gameSeq  int
	player   string
}

// weaponAccum collects one player's raw tallies before ranking.
type weaponAccum struct {
	series map[string]struct{} // distinct series the player appeared in

	kills map[string]int // weapon → kills
	order []string       // weapons in encounter order, for tie-breaking

	attackKills, attackRounds   int
	defenseKills, defenseRounds int

	damageDealt, damageTaken int
	roundsSeen               int

	headshots, assistsGiven, assistsReceived int
	pistolRounds, pistolArmorBuys            int
	orbCaptures                              int
}

func (a *weaponAccum) addWeapon(weapon string, count int) {
	if weapon == "" || count <= 0 {
		return
	}
	if _, seen := a.kills[weapon]; !seen {
		a.order = append(a.order, weapon)
	}
	a.kills[weapon] += count
}

// AnalyzeWeapons computes per-player weapon preference and round-rate stats
// for the scouted team across the batch.
func AnalyzeWeapons(batch []model.SeriesRecord, team string) []model.PlayerWeaponProfile {
	w := &Walker{Team: team, Scope: model.ScopeScouted}

	accums := make(map[string]*weaponAccum)
	var names []string // players in encounter order
	get := func(player string) *weaponAccum {
		if a, ok := accums[player]; ok {
			return a
		}
		a := &weaponAccum{
			series: make(map[string]struct{}),
			kills:  make(map[string]int),
		}
		accums[player] = a
		names = append(names, player)
		return a
	}

	// ---- Pass 1: series-played roster, unioned over both granularities. ----
	for row := range w.Games(batch) {
		if row.Player.Name == "" {
			continue
		}
		get(row.Player.Name).series[row.Series.ID] = struct{}{}
	}
	for row := range w.Segments(batch) {
		if row.Player.Name == "" {
			continue
		}
		get(row.Player.Name).series[row.Series.ID] = struct{}{}
	}

	// ---- Pass 2: weapon kills, game level authoritative. ----
	covered := make(map[gamePlayerKey]bool)
	for row := range w.Games(batch) {
		if row.Player.Name == "" || len(row.Player.WeaponKills) == 0 {
			continue
		}
		acc := get(row.Player.Name)
		for _, wk := range row.Player.WeaponKills {
			acc.addWeapon(wk.WeaponName, wk.Count)
		}
		covered[gamePlayerKey{row.Series.ID, row.Game.SequenceNumber, row.Player.Name}] = true
	}
	// Segment tallies fill in only where the game roster reported nothing.
	if SourceOf(StatWeaponKills) == GameAuthoritative {
		for row := range w.Segments(batch) {
			if row.Player.Name == "" {
				continue
			}
			key := gamePlayerKey{row.Series.ID, row.Game.SequenceNumber, row.Player.Name}
			if covered[key] {
				continue
			}
			acc := get(row.Player.Name)
			for _, wk := range row.Player.WeaponKills {
				acc.addWeapon(wk.WeaponName, wk.Count)
			}
		}
	}

	// ---- Pass 3: round-scoped telemetry. ----
	for row := range w.Segments(batch) {
		if row.Player.Name == "" {
			continue
		}
		acc := get(row.Player.Name)

		switch row.Team.Side {
		case model.SideAttacker:
			acc.attackRounds++
			acc.attackKills += row.Player.Kills
		case model.SideDefender:
			acc.defenseRounds++
			acc.defenseKills += row.Player.Kills
		}

		if !row.Player.HasRoundTelemetry() {
			continue
		}
		acc.roundsSeen++
		acc.damageDealt += *row.Player.DamageDealt
		if row.Player.DamageTaken != nil {
			acc.damageTaken += *row.Player.DamageTaken
		}
		acc.headshots += *row.Player.Headshots
		acc.assistsGiven += row.Player.KillAssistsGiven
		acc.assistsReceived += row.Player.KillAssistsReceived

		if row.Segment.SequenceNumber == PistolSegment {
			acc.pistolRounds++
			if row.Player.CurrentArmor > 0 {
				acc.pistolArmorBuys++
			}
		}
		for _, obj := range row.Player.Objectives {
			if obj.Type == model.ObjectiveUltimateOrb {
				acc.orbCaptures += obj.CompletionCount
			}
		}
	}

	// ---- Roll up into profiles. ----
	var out []model.PlayerWeaponProfile
	for _, name := range names {
		acc := accums[name]
		weapons := rankWeapons(acc.kills, acc.order)
		total := 0
		for _, wc := range weapons {
			total += wc.Kills
		}
		if total == 0 {
			continue
		}
		top := weapons
		if len(top) > 3 {
			top = top[:3]
		}
		out = append(out, model.PlayerWeaponProfile{
			Player:          name,
			SeriesPlayed:    len(acc.series),
			TotalKills:      total,
			Weapons:         weapons,
			TopWeapons:      top,
			AttackKills:     acc.attackKills,
			AttackRounds:    acc.attackRounds,
			DefenseKills:    acc.defenseKills,
			DefenseRounds:   acc.defenseRounds,
			DamageDealt:     acc.damageDealt,
			DamageTaken:     acc.damageTaken,
			RoundsSeen:      acc.roundsSeen,
			Headshots:       acc.headshots,
			AssistsGiven:    acc.assistsGiven,
			AssistsReceived: acc.assistsReceived,
			PistolRounds:    acc.pistolRounds,
			PistolArmorBuys: acc.pistolArmorBuys,
			OrbCaptures:     acc.orbCaptures,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalKills != out[j].TotalKills {
			return out[i].TotalKills > out[j].TotalKills
		}
		return out[i].Player < out[j].Player
	})
	return out
}

// rankWeapons orders a weapon tally by kills descending; the weapon seen
// first wins ties.
func rankWeapons(kills map[string]int, order []string) []model.WeaponCount {
	pos := make(map[string]int, len(order))
	for i, w := range order {
		pos[w] = i
	}
	out := make([]model.WeaponCount, 0, len(order))
	for _, w := range order {
		out = append(out, model.WeaponCount{Weapon: w, Kills: kills[w]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kills != out[j].Kills {
			return out[i].Kills > out[j].Kills
		}
		return pos[out[i].Weapon] < pos[out[j].Weapon]
	})
	return out
}
