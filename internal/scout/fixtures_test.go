package scout

import (
	"github.com/pable/gridscout/internal/model"
)

// Fixture builders shared by the analyzer tests.

func intp(n int) *int { return &n }

func valTitle() *model.Title {
	return &model.Title{Name: "Valorant", NameShortened: "val"}
}

// makeSeries builds a supported series with a valid state.
func makeSeries(id string, games ...model.Game) model.SeriesRecord {
	return model.SeriesRecord{
		ID:    id,
		Title: valTitle(),
		State: &model.SeriesState{
			Valid:     true,
			UpdatedAt: "2025-08-09T01:08:24.737Z",
			Games:     games,
		},
	}
}

func makeGame(seq int, mapName string, teams []model.GameTeam, segments ...model.Segment) model.Game {
	g := model.Game{SequenceNumber: seq, Teams: teams, Segments: segments}
	if mapName != "" {
		g.Map = &model.GameMap{Name: mapName}
	}
	return g
}

func gameTeam(name string, players ...model.GamePlayer) model.GameTeam {
	return model.GameTeam{Name: name, Players: players}
}

func gamePlayer(name, character string, weapons ...model.WeaponKill) model.GamePlayer {
	p := model.GamePlayer{Name: name, WeaponKills: weapons}
	if character != "" {
		p.Character = &model.Character{Name: character}
	}
	return p
}

func makeSegment(seq int, teams ...model.SegmentTeam) model.Segment {
	return model.Segment{SequenceNumber: seq, Teams: teams}
}

func segTeam(name, side string, players ...model.SegmentPlayer) model.SegmentTeam {
	return model.SegmentTeam{Name: name, Side: side, Players: players}
}

// segPlayer is a roster-only row: no round telemetry recorded.
func segPlayer(name string, kills int, weapons ...model.WeaponKill) model.SegmentPlayer {
	return model.SegmentPlayer{Name: name, Kills: kills, WeaponKills: weapons}
}

// telPlayer carries full round telemetry.
func telPlayer(name string, kills, dealt, taken, headshots int) model.SegmentPlayer {
	return model.SegmentPlayer{
		Name:        name,
		Kills:       kills,
		DamageDealt: intp(dealt),
		DamageTaken: intp(taken),
		Headshots:   intp(headshots),
	}
}
