package scout

import (
	"reflect"
	"testing"

	"github.com/pable/gridscout/internal/model"
)

func TestAnalyzeMapCharactersCountsPerGame(t *testing.T) {
	lotus1 := makeGame(1, "lotus", []model.GameTeam{
		gameTeam("MIBR",
			gamePlayer("aspas", "raze"),
			gamePlayer("frz", "omen"),
		),
		gameTeam("NRG", gamePlayer("s0m", "astra")),
	})
	lotus2 := makeGame(1, "lotus", []model.GameTeam{
		gameTeam("MIBR",
			gamePlayer("aspas", "raze"),
			gamePlayer("frz", "viper"),
		),
	})
	bind := makeGame(2, "bind", []model.GameTeam{
		gameTeam("MIBR", gamePlayer("aspas", "raze")),
	})

	batch := []model.SeriesRecord{makeSeries("s1", lotus1, bind), makeSeries("s2", lotus2)}

	usage := AnalyzeMapCharacters(batch, "MIBR")
	want := []model.MapCharacterUsage{
		{Map: "bind", Characters: []model.CharacterCount{{Character: "raze", Count: 1}}},
		{Map: "lotus", Characters: []model.CharacterCount{
			{Character: "raze", Count: 2},
			{Character: "omen", Count: 1}, // 1-count tie: first seen wins
			{Character: "viper", Count: 1},
		}},
	}
	if !reflect.DeepEqual(usage, want) {
		t.Errorf("usage = %v, want %v", usage, want)
	}
}

func TestAnalyzeMapCharactersSkipsIncompleteRows(t *testing.T) {
	noMap := makeGame(1, "", []model.GameTeam{
		gameTeam("MIBR", gamePlayer("aspas", "raze")),
	})
	noChar := makeGame(2, "haven", []model.GameTeam{
		gameTeam("MIBR", gamePlayer("aspas", "")),
	})
	batch := []model.SeriesRecord{makeSeries("s1", noMap, noChar)}

	if got := AnalyzeMapCharacters(batch, "MIBR"); len(got) != 0 {
		t.Errorf("usage = %v, want none for rows missing map or character", got)
	}
}
