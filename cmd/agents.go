package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/gridscout/internal/report"
	"github.com/pable/gridscout/internal/scout"
)

var (
	agentsTeam string
	agentsDays int
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Agent usage per map, from cached telemetry",
	RunE:  runAgents,
}

func init() {
	agentsCmd.Flags().StringVar(&agentsTeam, "team", "", "team name (required)")
	agentsCmd.Flags().IntVar(&agentsDays, "days", 30, "lookback window in days")
	_ = agentsCmd.MarkFlagRequired("team")
}

func runAgents(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	team, batch, err := cachedBatch(db, agentsTeam, agentsDays)
	if err != nil {
		return err
	}
	usage := scout.AnalyzeMapCharacters(batch, team.Name)
	if len(usage) == 0 {
		log.Info().Str("team", team.Name).Msg("no agent data in window")
		return nil
	}
	report.PrintMapAgentTables(os.Stdout, usage)
	return nil
}
