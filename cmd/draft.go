package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/gridscout/internal/report"
	"github.com/pable/gridscout/internal/scout"
)

var (
	draftTeam string
	draftDays int
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Map ban/pick tendencies, from cached telemetry",
	RunE:  runDraft,
}

func init() {
	draftCmd.Flags().StringVar(&draftTeam, "team", "", "team name (required)")
	draftCmd.Flags().IntVar(&draftDays, "days", 30, "lookback window in days")
	_ = draftCmd.MarkFlagRequired("team")
}

func runDraft(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	team, batch, err := cachedBatch(db, draftTeam, draftDays)
	if err != nil {
		return err
	}
	summary := scout.AnalyzeDraft(batch, team.ID)
	if summary.TotalActions == 0 {
		log.Info().Str("team", team.Name).Msg("no draft actions in window")
		return nil
	}
	report.PrintDraftSummary(os.Stdout, summary)
	return nil
}
