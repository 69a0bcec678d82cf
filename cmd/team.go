package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/gridscout/internal/report"
)

var teamLimit int

var teamCmd = &cobra.Command{
	Use:   "team <name>",
	Short: "Search GRID teams by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeam,
}

func init() {
	teamCmd.Flags().IntVar(&teamLimit, "limit", 10, "maximum results")
}

func runTeam(cmd *cobra.Command, args []string) error {
	client, err := newGridClient()
	if err != nil {
		return err
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	teams, err := client.SearchTeams(cmd.Context(), args[0], teamLimit)
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		log.Info().Str("query", args[0]).Msg("no teams found")
		return nil
	}
	for _, t := range teams {
		if err := db.UpsertTeam(t); err != nil {
			return err
		}
	}
	report.PrintTeamTable(os.Stdout, teams)
	return nil
}
