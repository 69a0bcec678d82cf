package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/gridscout/internal/grid"
	"github.com/pable/gridscout/internal/model"
	"github.com/pable/gridscout/internal/report"
	"github.com/pable/gridscout/internal/scout"
	"github.com/pable/gridscout/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive scouting session",
	Long:  "Open a persistent session sharing one cache handle and one result memo. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

// shellState is the per-session context: one DB handle, one memo, a lazily
// built GRID client, and the adjustable window parameters.
type shellState struct {
	db     *storage.DB
	memo   *scout.Memo
	client *grid.Client
	days   int
	limit  int
}

func (s *shellState) getClient() (*grid.Client, error) {
	if s.client != nil {
		return s.client, nil
	}
	client, err := newGridClient()
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

func runShell(cmd *cobra.Command, _ []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	memo := scout.NewMemo(10 * time.Minute)
	defer memo.Close()

	state := &shellState{db: db, memo: memo, days: 30, limit: 50}
	ctx := cmd.Context()

	cGreeting.Println("gridscout shell")
	cMuted.Printf("window: %d days, limit: %d series — type 'help' or 'exit'\n", state.days, state.limit)
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("gridscout")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		command, args := tokens[0], tokens[1:]
		// Team names may contain spaces.
		rest := strings.TrimSpace(strings.TrimPrefix(line, command))

		switch command {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "days":
			shellSetInt(&state.days, args, "days")
		case "limit":
			shellSetInt(&state.limit, args, "limit")
		case "list":
			shellList(state)
		case "teams":
			if rest == "" {
				cError.Fprintln(os.Stderr, "usage: teams <query>")
				continue
			}
			shellTeams(ctx, state, rest)
		case "series":
			if rest == "" {
				cError.Fprintln(os.Stderr, "usage: series <team>")
				continue
			}
			shellSeries(state, rest)
		case "scout":
			if rest == "" {
				cError.Fprintln(os.Stderr, "usage: scout <team>")
				continue
			}
			shellScout(ctx, state, rest, false)
		case "fresh":
			if rest == "" {
				cError.Fprintln(os.Stderr, "usage: fresh <team>")
				continue
			}
			shellScout(ctx, state, rest, true)
		case "weapons", "draft", "agents", "threats":
			if rest == "" {
				cError.Fprintf(os.Stderr, "usage: %s <team>\n", command)
				continue
			}
			shellView(state, command, rest)
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q — type 'help'\n", command)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"teams <query>", "search GRID teams by name"},
		{"scout <team>", "full scouting report (memoized)"},
		{"fresh <team>", "invalidate memo and cache, refetch, re-scout"},
		{"weapons <team>", "weapon preference per player"},
		{"draft <team>", "map ban/pick tendencies"},
		{"agents <team>", "agent usage per map"},
		{"threats <team>", "opponent agents ranked by output"},
		{"series <team>", "list the team's cached series"},
		{"days <n>", "set the lookback window"},
		{"limit <n>", "set the series fetch limit"},
		{"list", "cached teams and series counts"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-18s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

func shellSetInt(target *int, args []string, name string) {
	if len(args) != 1 {
		cError.Fprintf(os.Stderr, "usage: %s <n>\n", name)
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		cError.Fprintf(os.Stderr, "%s must be a positive integer\n", name)
		return
	}
	*target = n
	cMuted.Printf("%s = %d\n", name, n)
}

func shellList(s *shellState) {
	teams, err := s.db.ListTeams()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(teams) == 0 {
		cMuted.Println("No teams cached yet.")
		return
	}
	cHeader.Fprintf(os.Stdout, "%-10s  %-24s  %7s  %10s\n", "ID", "NAME", "SERIES", "WITH_STATE")
	for _, t := range teams {
		fmt.Fprintf(os.Stdout, "%-10s  %-24s  %7d  %10d\n", t.ID, t.Name, t.SeriesCount, t.WithState)
	}
}

func shellTeams(ctx context.Context, s *shellState, query string) {
	client, err := s.getClient()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	teams, err := client.SearchTeams(ctx, query, 10)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(teams) == 0 {
		cMuted.Printf("No teams match %q.\n", query)
		return
	}
	for _, t := range teams {
		if err := s.db.UpsertTeam(t); err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
	}
	report.PrintTeamTable(os.Stdout, teams)
}

func shellSeries(s *shellState, name string) {
	team, batch, err := s.cachedBatch(name)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	cHeader.Fprintf(os.Stdout, "--- %s: %d series ---\n", team.Name, len(batch))
	report.PrintSeriesTable(os.Stdout, batch)
}

// shellScout renders a full report. Cached telemetry is used when present;
// a memo hit skips recomputation entirely. fresh invalidates both layers
// and refetches.
func shellScout(ctx context.Context, s *shellState, name string, fresh bool) {
	var client *grid.Client
	if fresh {
		var err error
		client, err = s.getClient()
		if err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
	}

	team, err := resolveTeam(ctx, s.db, s.client, name)
	if err != nil {
		// Not cached; resolving needs the network.
		client, cerr := s.getClient()
		if cerr != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", cerr)
			return
		}
		team, err = resolveTeam(ctx, s.db, client, name)
		if err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
	}
	_, _, windowStart := window(s.days)

	if fresh {
		s.memo.InvalidateTeam(team.Name)
		if _, err := s.db.DeleteTeamSeries(team.ID); err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		if err := s.db.UpsertTeam(*team); err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
	}

	batch, err := loadBatch(s.db, team, s.days)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(batch) == 0 {
		client, err = s.getClient()
		if err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		batch, err = fetchBatch(ctx, s.db, client, team, s.days, s.limit)
		if err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
	}

	key := s.memo.Key(team.Name, windowStart, batch)
	if r := s.memo.Get(key); r != nil {
		cMuted.Println("(memoized result)")
		report.PrintReport(os.Stdout, r)
		return
	}
	r := scout.BuildReport(batch, team.Name, team.ID, windowStart, s.days)
	s.memo.Set(key, r)
	report.PrintReport(os.Stdout, r)
}

func shellView(s *shellState, view, name string) {
	team, batch, err := s.cachedBatch(name)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	switch view {
	case "weapons":
		report.PrintWeaponTable(os.Stdout, scout.AnalyzeWeapons(batch, team.Name))
	case "draft":
		report.PrintDraftSummary(os.Stdout, scout.AnalyzeDraft(batch, team.ID))
	case "agents":
		report.PrintMapAgentTables(os.Stdout, scout.AnalyzeMapCharacters(batch, team.Name))
	case "threats":
		report.PrintThreatTable(os.Stdout, scout.AnalyzeThreats(batch, team.Name))
	}
}

func (s *shellState) cachedBatch(name string) (*model.Team, []model.SeriesRecord, error) {
	return cachedBatch(s.db, name, s.days)
}
