package scout

import (
	"strings"

	"github.com/pable/gridscout/internal/model"
)

// TitleCode is the short-code of the one supported title. Draft, character
// and weapon shapes are title-specific; mixing titles would corrupt
// aggregates silently, so everything else is filtered out.
const TitleCode = "val"

// SupportedSeries reports whether a series carries telemetry this pipeline
// understands. Series without a state, a title, or a short-code are treated
// as unsupported/unknown, never as errors.
func SupportedSeries(s *model.SeriesRecord) bool {
	if s == nil || s.State == nil || s.Title == nil {
		return false
	}
	if s.Title.NameShortened == "" {
		return false
	}
	return strings.EqualFold(s.Title.NameShortened, TitleCode)
}
