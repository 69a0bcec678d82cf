package scout

import (
	"testing"

	"github.com/pable/gridscout/internal/model"
)

func twoTeamGame(seq int) model.Game {
	return makeGame(seq, "lotus",
		[]model.GameTeam{
			gameTeam("MIBR (1)", gamePlayer("aspas", "raze")),
			gameTeam("NRG", gamePlayer("s0m", "omen")),
		},
		makeSegment(1,
			segTeam("MIBR (1)", model.SideAttacker, segPlayer("aspas", 1)),
			segTeam("NRG", model.SideDefender, segPlayer("s0m", 0)),
		),
	)
}

func TestWalkerScoutedScope(t *testing.T) {
	batch := []model.SeriesRecord{makeSeries("s1", twoTeamGame(1))}
	w := &Walker{Team: "MIBR", Scope: model.ScopeScouted}

	var players []string
	for row := range w.Games(batch) {
		players = append(players, row.Player.Name)
	}
	if len(players) != 1 || players[0] != "aspas" {
		t.Errorf("scouted game rows = %v, want [aspas]", players)
	}

	players = nil
	for row := range w.Segments(batch) {
		players = append(players, row.Player.Name)
		if row.Team.Side != model.SideAttacker {
			t.Errorf("scouted segment side = %q, want attacker", row.Team.Side)
		}
	}
	if len(players) != 1 || players[0] != "aspas" {
		t.Errorf("scouted segment rows = %v, want [aspas]", players)
	}
}

func TestWalkerOpponentScope(t *testing.T) {
	batch := []model.SeriesRecord{makeSeries("s1", twoTeamGame(1))}
	w := &Walker{Team: "MIBR", Scope: model.ScopeOpponent}

	var players []string
	for row := range w.Games(batch) {
		players = append(players, row.Player.Name)
		if row.Team.Name != "NRG" {
			t.Errorf("opponent team = %q, want NRG", row.Team.Name)
		}
	}
	if len(players) != 1 || players[0] != "s0m" {
		t.Errorf("opponent game rows = %v, want [s0m]", players)
	}
}

func TestWalkerOpponentScopeSkipsAmbiguousGames(t *testing.T) {
	// Neither team resolves.
	neither := makeGame(1, "bind", []model.GameTeam{
		gameTeam("LOUD", gamePlayer("cauanzin", "fade")),
		gameTeam("NRG", gamePlayer("s0m", "omen")),
	})
	// Both teams resolve (substring false positive case).
	both := makeGame(2, "bind", []model.GameTeam{
		gameTeam("G2", gamePlayer("leaf", "jett")),
		gameTeam("G2 Academy", gamePlayer("academy1", "sova")),
	})
	// Not exactly two teams.
	three := makeGame(3, "bind", []model.GameTeam{
		gameTeam("MIBR", gamePlayer("aspas", "raze")),
		gameTeam("NRG", gamePlayer("s0m", "omen")),
		gameTeam("Broadcast", gamePlayer("observer", "")),
	})

	batch := []model.SeriesRecord{makeSeries("s1", neither, three)}
	w := &Walker{Team: "MIBR", Scope: model.ScopeOpponent}
	for row := range w.Games(batch) {
		t.Errorf("expected no opponent rows, got player %q", row.Player.Name)
	}

	g2Batch := []model.SeriesRecord{makeSeries("s2", both)}
	w = &Walker{Team: "G2", Scope: model.ScopeOpponent}
	for row := range w.Games(g2Batch) {
		t.Errorf("expected no opponent rows when both teams resolve, got %q", row.Player.Name)
	}
}

func TestWalkerSkipsUnsupportedSeries(t *testing.T) {
	noState := makeSeries("s1", twoTeamGame(1))
	noState.State = nil
	wrongTitle := makeSeries("s2", twoTeamGame(1))
	wrongTitle.Title = &model.Title{Name: "Counter-Strike 2", NameShortened: "cs2"}

	batch := []model.SeriesRecord{noState, wrongTitle, makeSeries("s3", twoTeamGame(1))}
	w := &Walker{Team: "MIBR", Scope: model.ScopeScouted}

	count := 0
	for row := range w.Games(batch) {
		count++
		if row.Series.ID != "s3" {
			t.Errorf("row from series %q, want only s3", row.Series.ID)
		}
	}
	if count != 1 {
		t.Errorf("game rows = %d, want 1", count)
	}
}

// The sequences are restartable views, not one-shot consumers.
func TestWalkerSequencesRestart(t *testing.T) {
	batch := []model.SeriesRecord{makeSeries("s1", twoTeamGame(1))}
	w := &Walker{Team: "MIBR", Scope: model.ScopeScouted}

	seq := w.Segments(batch)
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != second || first == 0 {
		t.Errorf("restarted walk yielded %d rows, first walk %d", second, first)
	}
}

func TestWalkerSegmentTeamsCountsPerSegment(t *testing.T) {
	game := makeGame(1, "lotus",
		[]model.GameTeam{
			gameTeam("MIBR", gamePlayer("aspas", "raze")),
			gameTeam("NRG", gamePlayer("s0m", "omen")),
		},
		makeSegment(1,
			segTeam("MIBR", model.SideAttacker, segPlayer("aspas", 0)),
			segTeam("NRG", model.SideDefender, segPlayer("s0m", 0)),
		),
		makeSegment(2,
			segTeam("MIBR", model.SideAttacker, segPlayer("aspas", 0)),
			segTeam("NRG", model.SideDefender, segPlayer("s0m", 0)),
		),
	)
	batch := []model.SeriesRecord{makeSeries("s1", game)}

	w := &Walker{Team: "MIBR", Scope: model.ScopeOpponent}
	rounds := 0
	for tr := range w.SegmentTeams(batch) {
		rounds++
		if tr.Team.Name != "NRG" {
			t.Errorf("opponent segment team = %q, want NRG", tr.Team.Name)
		}
	}
	if rounds != 2 {
		t.Errorf("opponent segment-team rows = %d, want 2", rounds)
	}
}
