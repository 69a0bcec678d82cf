package scout

import (
	"math"
	"testing"

	"github.com/pable/gridscout/internal/model"
)

func findThreat(t *testing.T, threats []model.CharacterThreat, character string) model.CharacterThreat {
	t.Helper()
	for _, th := range threats {
		if th.Character == character {
			return th
		}
	}
	t.Fatalf("no threat entry for %q in %v", character, threats)
	return model.CharacterThreat{}
}

func TestAnalyzeThreatsAggregatesOpponents(t *testing.T) {
	game := makeGame(1, "lotus",
		[]model.GameTeam{
			gameTeam("MIBR", gamePlayer("aspas", "raze")),
			gameTeam("NRG",
				gamePlayer("s0m", "omen"),
				gamePlayer("ethan", "sova"),
			),
		},
		makeSegment(1,
			segTeam("MIBR", model.SideAttacker, segPlayer("aspas", 1)),
			segTeam("NRG", model.SideDefender,
				telPlayer("s0m", 2, 160, 0, 1),
				telPlayer("ethan", 0, 40, 0, 0),
			),
		),
		makeSegment(2,
			segTeam("MIBR", model.SideAttacker, segPlayer("aspas", 0)),
			segTeam("NRG", model.SideDefender,
				telPlayer("s0m", 1, 80, 0, 0),
				telPlayer("ethan", 1, 60, 0, 0),
			),
		),
	)
	batch := []model.SeriesRecord{makeSeries("s1", game)}

	threats := AnalyzeThreats(batch, "MIBR")
	if len(threats) != 2 {
		t.Fatalf("threats = %d entries, want 2", len(threats))
	}

	omen := findThreat(t, threats, "omen")
	if omen.GamesPlayed != 1 || omen.Rounds != 2 {
		t.Errorf("omen games/rounds = %d/%d, want 1/2", omen.GamesPlayed, omen.Rounds)
	}
	if omen.Kills != 3 || omen.Damage != 240 {
		t.Errorf("omen kills/damage = %d/%d, want 3/240", omen.Kills, omen.Damage)
	}
	if got := omen.AvgKillsPerGame(); got != 3.0 {
		t.Errorf("omen AvgKillsPerGame = %v, want 3.0", got)
	}
	if got := omen.AvgDamagePerRound(); math.Abs(got-120.0) > 1e-9 {
		t.Errorf("omen AvgDamagePerRound = %v, want 120.0", got)
	}

	// omen (3 kills/game) outranks sova (1 kill/game).
	if threats[0].Character != "omen" || threats[1].Character != "sova" {
		t.Errorf("order = [%s %s], want [omen sova]", threats[0].Character, threats[1].Character)
	}
}

// Two opponent players on the same character in one game share the game and
// round credit, not double it.
func TestAnalyzeThreatsCreditsCharacterOncePerGame(t *testing.T) {
	game := makeGame(1, "bind",
		[]model.GameTeam{
			gameTeam("MIBR", gamePlayer("aspas", "raze")),
			gameTeam("NRG",
				gamePlayer("s0m", "omen"),
				gamePlayer("ethan", "omen"),
			),
		},
		makeSegment(1,
			segTeam("MIBR", model.SideAttacker, segPlayer("aspas", 0)),
			segTeam("NRG", model.SideDefender,
				telPlayer("s0m", 2, 100, 0, 0),
				telPlayer("ethan", 1, 50, 0, 0),
			),
		),
	)
	batch := []model.SeriesRecord{makeSeries("s1", game)}

	omen := findThreat(t, AnalyzeThreats(batch, "MIBR"), "omen")
	if omen.GamesPlayed != 1 || omen.Rounds != 1 {
		t.Errorf("games/rounds = %d/%d, want 1/1 for shared character", omen.GamesPlayed, omen.Rounds)
	}
	if omen.Kills != 3 || omen.Damage != 150 {
		t.Errorf("kills/damage = %d/%d, want 3/150 summed over both players", omen.Kills, omen.Damage)
	}
}

func TestAnalyzeThreatsRosterOnlyCharacter(t *testing.T) {
	// Opponent fielded a character but no segment telemetry survived.
	game := makeGame(1, "haven", []model.GameTeam{
		gameTeam("MIBR", gamePlayer("aspas", "raze")),
		gameTeam("NRG", gamePlayer("s0m", "omen")),
	})
	batch := []model.SeriesRecord{makeSeries("s1", game)}

	omen := findThreat(t, AnalyzeThreats(batch, "MIBR"), "omen")
	if omen.GamesPlayed != 1 || omen.Rounds != 0 || omen.Kills != 0 {
		t.Errorf("roster-only threat = %+v, want 1 game, 0 rounds, 0 kills", omen)
	}
	if got := omen.AvgDamagePerRound(); got != 0 {
		t.Errorf("AvgDamagePerRound = %v, want 0 with a defined denominator", got)
	}
}

func TestAnalyzeThreatsIgnoresScoutedSide(t *testing.T) {
	game := makeGame(1, "ascent",
		[]model.GameTeam{
			gameTeam("MIBR", gamePlayer("aspas", "raze")),
			gameTeam("NRG", gamePlayer("s0m", "omen")),
		},
		makeSegment(1,
			segTeam("MIBR", model.SideAttacker, telPlayer("aspas", 4, 400, 0, 2)),
			segTeam("NRG", model.SideDefender, telPlayer("s0m", 0, 10, 0, 0)),
		),
	)
	batch := []model.SeriesRecord{makeSeries("s1", game)}

	for _, th := range AnalyzeThreats(batch, "MIBR") {
		if th.Character == "raze" {
			t.Errorf("scouted team's character leaked into threats: %+v", th)
		}
	}
}
