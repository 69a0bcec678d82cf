package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached teams and their series counts",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	teams, err := db.ListTeams()
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}
	if len(teams) == 0 {
		fmt.Fprintln(os.Stdout, "No teams cached yet. Run 'gridscout scout --team <name>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-24s  %7s  %10s  %s\n",
		"ID", "NAME", "SERIES", "WITH_STATE", "FETCHED")
	fmt.Fprintf(os.Stdout, "%-10s  %-24s  %7s  %10s  %s\n",
		"──────────", "────────────────────────", "───────", "──────────", "───────────────────")
	for _, t := range teams {
		fmt.Fprintf(os.Stdout, "%-10s  %-24s  %7d  %10d  %s\n",
			t.ID, t.Name, t.SeriesCount, t.WithState, t.FetchedAt)
	}
	return nil
}
