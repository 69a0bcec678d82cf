// Package report renders analyzer results as tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/gridscout/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintReportHeader prints the one-line run summary above the tables.
func PrintReportHeader(w io.Writer, r *model.ScoutReport) {
	fmt.Fprintf(w, "\nTeam: %s (id %s)  |  Window: last %d days (since %s)  |  Series: %d analyzed, %d skipped\n",
		r.Team, r.TeamID, r.Days, r.Window, r.SeriesAnalyzed, r.SeriesSkipped)
	if len(r.Opponents) > 0 {
		fmt.Fprintf(w, "Opponents faced: %s\n", strings.Join(r.Opponents, ", "))
	}
	fmt.Fprintln(w)
}

// PrintWeaponTable prints the per-player weapon preference table.
func PrintWeaponTable(w io.Writer, profiles []model.PlayerWeaponProfile) {
	table := newTable(w)
	table.Header("PLAYER", "SERIES", "K", "TOP WEAPONS", "ATK_KPR", "DEF_KPR",
		"ADR", "DMG_TAKEN/R", "HS", "AST", "ARMOR_BUY%", "ORBS")

	for i := range profiles {
		p := &profiles[i]

		var tops []string
		for _, wc := range p.TopWeapons {
			tops = append(tops, fmt.Sprintf("%s (%d)", wc.Weapon, wc.Kills))
		}
		topStr := "—"
		if len(tops) > 0 {
			topStr = strings.Join(tops, ", ")
		}

		atk := "—"
		if p.AttackRounds > 0 {
			atk = fmt.Sprintf("%.2f", p.AttackKillsPerRound())
		}
		def := "—"
		if p.DefenseRounds > 0 {
			def = fmt.Sprintf("%.2f", p.DefenseKillsPerRound())
		}
		adr, taken := "—", "—"
		if p.RoundsSeen > 0 {
			adr = fmt.Sprintf("%.1f", p.DamagePerRound())
			taken = fmt.Sprintf("%.1f", p.DamageTakenPerRound())
		}
		armor := "—"
		if p.PistolRounds > 0 {
			armor = fmt.Sprintf("%.0f%%", p.ArmorBuyRate())
		}

		table.Append(
			p.Player,
			strconv.Itoa(p.SeriesPlayed),
			strconv.Itoa(p.TotalKills),
			topStr,
			atk,
			def,
			adr,
			taken,
			strconv.Itoa(p.Headshots),
			strconv.Itoa(p.AssistsGiven),
			armor,
			strconv.Itoa(p.OrbCaptures),
		)
	}
	table.Render()
}

// PrintDraftSummary prints the map ban/pick tendency tables.
func PrintDraftSummary(w io.Writer, d model.DraftSummary) {
	fmt.Fprintf(w, "Draft actions: %d  (%d maps banned, %d maps picked)\n",
		d.TotalActions, len(d.Bans), len(d.Picks))
	if fav := d.LeastFavoriteMap(); fav != "" {
		fmt.Fprintf(w, "Least favorite map (most banned): %s\n", fav)
	}
	fmt.Fprintln(w)

	printMapCounts(w, "MOST BANNED", d.MostBanned)
	printMapCounts(w, "MOST PICKED", d.MostPicked)
	printMapCounts(w, "LEAST BANNED", d.LeastBanned)
}

func printMapCounts(w io.Writer, label string, counts []model.MapCount) {
	if len(counts) == 0 {
		return
	}
	table := newTable(w)
	table.Header(label, "COUNT")
	for _, mc := range counts {
		table.Append(mc.Map, strconv.Itoa(mc.Count))
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintMapAgentTables prints one agent-usage table per map.
func PrintMapAgentTables(w io.Writer, usage []model.MapCharacterUsage) {
	for _, mu := range usage {
		fmt.Fprintf(w, "--- %s ---\n", mu.Map)
		table := newTable(w)
		table.Header("AGENT", "GAMES")
		for _, cc := range mu.Characters {
			table.Append(cc.Character, strconv.Itoa(cc.Count))
		}
		table.Render()
		fmt.Fprintln(w)
	}
}

// PrintThreatTable prints opponent characters ranked by output.
func PrintThreatTable(w io.Writer, threats []model.CharacterThreat) {
	table := newTable(w)
	table.Header("AGENT", "GAMES", "ROUNDS", "K", "AVG_K/GAME", "AVG_DMG/R")
	for i := range threats {
		t := &threats[i]
		table.Append(
			t.Character,
			strconv.Itoa(t.GamesPlayed),
			strconv.Itoa(t.Rounds),
			strconv.Itoa(t.Kills),
			fmt.Sprintf("%.2f", t.AvgKillsPerGame()),
			fmt.Sprintf("%.1f", t.AvgDamagePerRound()),
		)
	}
	table.Render()
}

// PrintTeamTable prints team search results.
func PrintTeamTable(w io.Writer, teams []model.Team) {
	table := newTable(w)
	table.Header("ID", "NAME")
	for _, t := range teams {
		table.Append(t.ID, t.Name)
	}
	table.Render()
}

// PrintSeriesTable prints a series listing, marking which records carry
// telemetry.
func PrintSeriesTable(w io.Writer, records []model.SeriesRecord) {
	table := newTable(w)
	table.Header("ID", "DATE", "TITLE", "TEAMS", "FORMAT", "WINNER", "STATE")
	for i := range records {
		s := &records[i]

		date := s.StartTime
		if len(date) > 10 {
			date = date[:10]
		}
		title := "—"
		if s.Title != nil && s.Title.NameShortened != "" {
			title = s.Title.NameShortened
		}

		var names []string
		for _, ref := range s.Teams {
			if ref.BaseInfo != nil && ref.BaseInfo.Name != "" {
				names = append(names, ref.BaseInfo.Name)
			}
		}
		teams := "—"
		if len(names) > 0 {
			teams = strings.Join(names, " vs ")
		}

		format, winner, state := "—", "—", "—"
		if s.State != nil {
			state = "yes"
			if s.State.Format != "" {
				format = s.State.Format
			}
			for _, t := range s.State.Teams {
				if t.Won {
					winner = t.Name
					break
				}
			}
		}
		table.Append(s.ID, date, title, teams, format, winner, state)
	}
	table.Render()
}

// PrintReport renders the full scout report.
func PrintReport(w io.Writer, r *model.ScoutReport) {
	PrintReportHeader(w, r)

	fmt.Fprintln(w, "== Weapon preference ==")
	if len(r.Weapons) == 0 {
		fmt.Fprintln(w, "no player kill data in window")
	} else {
		PrintWeaponTable(w, r.Weapons)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "== Map draft tendencies ==")
	if r.Draft.TotalActions == 0 {
		fmt.Fprintln(w, "no draft actions in window")
	} else {
		PrintDraftSummary(w, r.Draft)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "== Agents per map ==")
	if len(r.Maps) == 0 {
		fmt.Fprintln(w, "no agent data in window")
	} else {
		PrintMapAgentTables(w, r.Maps)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "== Opponent agent threat ==")
	if len(r.Threats) == 0 {
		fmt.Fprintln(w, "no opponent data in window")
	} else {
		PrintThreatTable(w, r.Threats)
	}
}
