package scout

import (
	"testing"

	"github.com/pable/gridscout/internal/model"
)

func TestSupportedSeries(t *testing.T) {
	valid := makeSeries("s1")

	noState := valid
	noState.State = nil

	noTitle := makeSeries("s2")
	noTitle.Title = nil

	noCode := makeSeries("s3")
	noCode.Title = &model.Title{Name: "Valorant"}

	otherTitle := makeSeries("s4")
	otherTitle.Title = &model.Title{Name: "Counter-Strike 2", NameShortened: "cs2"}

	upperCode := makeSeries("s5")
	upperCode.Title = &model.Title{Name: "Valorant", NameShortened: "VAL"}

	cases := []struct {
		name   string
		series *model.SeriesRecord
		want   bool
	}{
		{"supported", &valid, true},
		{"nil series", nil, false},
		{"missing state", &noState, false},
		{"missing title", &noTitle, false},
		{"missing short-code", &noCode, false},
		{"other title", &otherTitle, false},
		{"short-code case-insensitive", &upperCode, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SupportedSeries(tc.series); got != tc.want {
				t.Errorf("SupportedSeries = %v, want %v", got, tc.want)
			}
		})
	}
}
