package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/gridscout/internal/report"
	"github.com/pable/gridscout/internal/scout"
)

var (
	weaponsTeam string
	weaponsDays int
)

var weaponsCmd = &cobra.Command{
	Use:   "weapons",
	Short: "Weapon preference per player, from cached telemetry",
	RunE:  runWeapons,
}

func init() {
	weaponsCmd.Flags().StringVar(&weaponsTeam, "team", "", "team name (required)")
	weaponsCmd.Flags().IntVar(&weaponsDays, "days", 30, "lookback window in days")
	_ = weaponsCmd.MarkFlagRequired("team")
}

func runWeapons(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	team, batch, err := cachedBatch(db, weaponsTeam, weaponsDays)
	if err != nil {
		return err
	}
	profiles := scout.AnalyzeWeapons(batch, team.Name)
	if len(profiles) == 0 {
		log.Info().Str("team", team.Name).Msg("no player kill data in window")
		return nil
	}
	report.PrintWeaponTable(os.Stdout, profiles)
	return nil
}
