package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pable/gridscout/internal/config"
)

var (
	dbPath     string
	apiKeyFlag string
	verbose    bool

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gridscout",
	Short: "Valorant esports scouting from GRID match data",
	Long: `Fetch a team's recent series from the GRID esports data platform and
reduce the telemetry into scouting statistics: weapon preference, map
ban/pick tendencies, per-map agent usage, and which opponent agents are
statistically most dangerous.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		// Tables go to stdout; logs stay on stderr.
		log = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)

		cfg = config.Load()
		if apiKeyFlag != "" {
			cfg.APIKey = apiKeyFlag
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".gridscout", "scout.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite payload cache")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "GRID API key (overrides environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(scoutCmd)
	rootCmd.AddCommand(weaponsCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(threatsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(shellCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
