package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dropTeam   string
	dropSeries string
	dropAll    bool
	dropForce  bool
)

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete cached payloads",
	Long:  "Delete cached series payloads for one team, one series, or everything. Dropped data is refetched on the next scout.",
	Args:  cobra.NoArgs,
	RunE:  runDrop,
}

func init() {
	dropCmd.Flags().StringVar(&dropTeam, "team", "", "drop all cached series for this team")
	dropCmd.Flags().StringVar(&dropSeries, "series", "", "drop one cached series by id")
	dropCmd.Flags().BoolVar(&dropAll, "all", false, "drop the whole cache")
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation for --all")
}

func runDrop(cmd *cobra.Command, args []string) error {
	set := 0
	for _, on := range []bool{dropTeam != "", dropSeries != "", dropAll} {
		if on {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one of --team, --series, --all is required")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	switch {
	case dropTeam != "":
		team, err := db.GetTeamByName(dropTeam)
		if err != nil {
			return err
		}
		if team == nil {
			fmt.Fprintf(os.Stdout, "Team %q is not cached, nothing to drop.\n", dropTeam)
			return nil
		}
		n, err := db.DeleteTeamSeries(team.ID)
		if err != nil {
			return fmt.Errorf("drop team cache: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Dropped %s: %d series\n", team.Name, n)

	case dropSeries != "":
		found, err := db.DeleteSeries(dropSeries)
		if err != nil {
			return fmt.Errorf("drop series: %w", err)
		}
		if !found {
			fmt.Fprintf(os.Stdout, "Series %q is not cached, nothing to drop.\n", dropSeries)
			return nil
		}
		fmt.Fprintf(os.Stdout, "Dropped series %s\n", dropSeries)

	case dropAll:
		if !dropForce {
			fmt.Fprintf(os.Stderr, "This will empty the cache at: %s\n", dbPath)
			fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
			return nil
		}
		if err := db.DeleteAll(); err != nil {
			return fmt.Errorf("drop cache: %w", err)
		}
		fmt.Fprintln(os.Stdout, "Cache emptied.")
	}
	return nil
}
