package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/gridscout/internal/report"
	"github.com/pable/gridscout/internal/scout"
)

var (
	threatsTeam string
	threatsDays int
)

var threatsCmd = &cobra.Command{
	Use:   "threats",
	Short: "Opponent agents ranked by output, from cached telemetry",
	RunE:  runThreats,
}

func init() {
	threatsCmd.Flags().StringVar(&threatsTeam, "team", "", "team name (required)")
	threatsCmd.Flags().IntVar(&threatsDays, "days", 30, "lookback window in days")
	_ = threatsCmd.MarkFlagRequired("team")
}

func runThreats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	team, batch, err := cachedBatch(db, threatsTeam, threatsDays)
	if err != nil {
		return err
	}
	threats := scout.AnalyzeThreats(batch, team.Name)
	if len(threats) == 0 {
		log.Info().Str("team", team.Name).Msg("no opponent data in window")
		return nil
	}
	report.PrintThreatTable(os.Stdout, threats)
	return nil
}
