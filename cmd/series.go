package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/gridscout/internal/report"
)

var (
	seriesTeam  string
	seriesDays  int
	seriesLimit int
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "List a team's recent series and cache their telemetry",
	RunE:  runSeries,
}

func init() {
	seriesCmd.Flags().StringVar(&seriesTeam, "team", "", "team name (required)")
	seriesCmd.Flags().IntVar(&seriesDays, "days", 30, "lookback window in days")
	seriesCmd.Flags().IntVar(&seriesLimit, "limit", 50, "maximum series to fetch")
	_ = seriesCmd.MarkFlagRequired("team")
}

func runSeries(cmd *cobra.Command, args []string) error {
	client, err := newGridClient()
	if err != nil {
		return err
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	team, err := resolveTeam(ctx, db, client, seriesTeam)
	if err != nil {
		return err
	}
	batch, err := fetchBatch(ctx, db, client, team, seriesDays, seriesLimit)
	if err != nil {
		return err
	}
	if len(batch) == 0 {
		log.Info().Str("team", team.Name).Int("days", seriesDays).Msg("no series in window")
		return nil
	}
	report.PrintSeriesTable(os.Stdout, batch)
	return nil
}
