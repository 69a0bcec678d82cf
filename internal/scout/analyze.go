package scout

import (
	"sort"

	"github.com/pable/gridscout/internal/model"
)

// BuildReport runs all four analyzers over a batch and bundles the results
// for one (team, window) run. The report holds no references into the batch.
func BuildReport(batch []model.SeriesRecord, teamName, teamID, windowStart string, days int) *model.ScoutReport {
	report := &model.ScoutReport{
		Team:   teamName,
		TeamID: teamID,
		Window: windowStart,
		Days:   days,
	}

	oppSeen := make(map[string]struct{})
	for si := range batch {
		s := &batch[si]
		if SupportedSeries(s) {
			report.SeriesAnalyzed++
		} else {
			report.SeriesSkipped++
		}
		for _, ref := range s.Teams {
			if ref.BaseInfo == nil || ref.BaseInfo.Name == "" {
				continue
			}
			if BelongsToTeam(ref.BaseInfo.Name, teamName) {
				continue
			}
			oppSeen[ref.BaseInfo.Name] = struct{}{}
		}
	}
	for name := range oppSeen {
		report.Opponents = append(report.Opponents, name)
	}
	sort.Strings(report.Opponents)

	report.Weapons = AnalyzeWeapons(batch, teamName)
	report.Draft = AnalyzeDraft(batch, teamID)
	report.Maps = AnalyzeMapCharacters(batch, teamName)
	report.Threats = AnalyzeThreats(batch, teamName)
	return report
}
