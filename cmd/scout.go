package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/gridscout/internal/report"
	"github.com/pable/gridscout/internal/scout"
)

var (
	scoutTeam    string
	scoutDays    int
	scoutLimit   int
	scoutFresh   bool
	scoutOffline bool
)

var scoutCmd = &cobra.Command{
	Use:   "scout",
	Short: "Run the full scouting report for a team",
	Long: `Fetches the team's series in the window, caches the raw telemetry, and
renders all four analyses: weapon preference, map draft tendencies,
per-map agent usage, and opponent agent threat ranking.`,
	RunE: runScout,
}

func init() {
	scoutCmd.Flags().StringVar(&scoutTeam, "team", "", "team name (required)")
	scoutCmd.Flags().IntVar(&scoutDays, "days", 30, "lookback window in days")
	scoutCmd.Flags().IntVar(&scoutLimit, "limit", 50, "maximum series to fetch")
	scoutCmd.Flags().BoolVar(&scoutFresh, "fresh", false, "drop the team's cached series before refetching")
	scoutCmd.Flags().BoolVar(&scoutOffline, "offline", false, "use cached telemetry instead of fetching")
	_ = scoutCmd.MarkFlagRequired("team")
}

func runScout(cmd *cobra.Command, args []string) error {
	if scoutFresh && scoutOffline {
		return fmt.Errorf("--fresh and --offline are mutually exclusive")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	_, _, windowStart := window(scoutDays)

	if scoutOffline {
		team, batch, err := cachedBatch(db, scoutTeam, scoutDays)
		if err != nil {
			return err
		}
		r := scout.BuildReport(batch, team.Name, team.ID, windowStart, scoutDays)
		report.PrintReport(os.Stdout, r)
		return nil
	}

	client, err := newGridClient()
	if err != nil {
		return err
	}
	team, err := resolveTeam(ctx, db, client, scoutTeam)
	if err != nil {
		return err
	}
	if scoutFresh {
		dropped, err := db.DeleteTeamSeries(team.ID)
		if err != nil {
			return fmt.Errorf("invalidate cache: %w", err)
		}
		if err := db.UpsertTeam(*team); err != nil {
			return err
		}
		log.Info().Int64("series", dropped).Msg("cached series invalidated")
	}
	batch, err := fetchBatch(ctx, db, client, team, scoutDays, scoutLimit)
	if err != nil {
		return err
	}

	r := scout.BuildReport(batch, team.Name, team.ID, windowStart, scoutDays)
	report.PrintReport(os.Stdout, r)
	return nil
}
