package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pable/gridscout/internal/grid"
	"github.com/pable/gridscout/internal/model"
	"github.com/pable/gridscout/internal/storage"
)

// fetchWorkers bounds the series-state fan-out.
const fetchWorkers = 8

// openDB opens the payload cache, creating its directory on first use.
func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// newGridClient builds a GRID client, failing early when no API key is
// available. Offline commands never call this.
func newGridClient() (*grid.Client, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	return grid.NewClient(cfg, log), nil
}

// resolveTeam finds a team by name, preferring the cache over a network
// search. A search hit is cached for the next run.
func resolveTeam(ctx context.Context, db *storage.DB, client *grid.Client, name string) (*model.Team, error) {
	cached, err := db.GetTeamByName(name)
	if err != nil {
		return nil, fmt.Errorf("lookup cached team: %w", err)
	}
	if cached != nil {
		log.Debug().Str("team", cached.Name).Str("id", cached.ID).Msg("team resolved from cache")
		return cached, nil
	}
	if client == nil {
		return nil, fmt.Errorf("team %q not in cache; run an online command first", name)
	}

	teams, err := client.SearchTeams(ctx, name, 5)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("no GRID team matches %q", name)
	}
	// Prefer an exact name hit over the first contains-match.
	team := teams[0]
	for _, t := range teams {
		if t.Name == name {
			team = t
			break
		}
	}
	if err := db.UpsertTeam(team); err != nil {
		return nil, fmt.Errorf("cache team: %w", err)
	}
	log.Info().Str("team", team.Name).Str("id", team.ID).Msg("team resolved from GRID")
	return &team, nil
}

// window returns the lookback bounds and the window-start label for a
// --days value.
func window(days int) (since, until time.Time, label string) {
	until = time.Now().UTC()
	since = until.AddDate(0, 0, -days)
	return since, until, since.Format("2006-01-02")
}

// fetchBatch lists the team's series in the window, fan-out-fetches their
// states, and caches the raw payloads. Per-series failures are logged and
// leave that record without a state; the analyzers skip it.
func fetchBatch(ctx context.Context, db *storage.DB, client *grid.Client, team *model.Team, days, limit int) ([]model.SeriesRecord, error) {
	since, until, _ := window(days)
	records, err := client.TeamSeries(ctx, team.ID, since, until, limit)
	if err != nil {
		return nil, err
	}
	log.Info().Int("series", len(records)).Str("team", team.Name).Msg("series listed")

	results := client.FetchStates(ctx, records, fetchWorkers)
	fetched := 0
	for i, res := range results {
		if res.Err != nil {
			log.Warn().Str("series", res.ID).Err(res.Err).Msg("series state fetch failed")
			continue
		}
		if res.State == nil {
			log.Warn().Str("series", res.ID).Msg("series state unavailable")
			continue
		}
		records[i].State = res.State
		fetched++
	}
	log.Info().Int("with_state", fetched).Int("total", len(records)).Msg("series states fetched")

	if err := db.UpsertTeam(*team); err != nil {
		return nil, fmt.Errorf("cache team: %w", err)
	}
	if err := db.UpsertSeriesBatch(team.ID, records); err != nil {
		return nil, fmt.Errorf("cache series: %w", err)
	}
	return records, nil
}

// loadBatch reads the team's cached series for the window.
func loadBatch(db *storage.DB, team *model.Team, days int) ([]model.SeriesRecord, error) {
	since, _, _ := window(days)
	records, skipped, err := db.SeriesSince(team.ID, since.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("load cached series: %w", err)
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("cached payloads failed to decode")
	}
	return records, nil
}

// cachedBatch resolves a team and its batch from the cache only, for the
// offline single-analyzer view commands.
func cachedBatch(db *storage.DB, name string, days int) (*model.Team, []model.SeriesRecord, error) {
	team, err := db.GetTeamByName(name)
	if err != nil {
		return nil, nil, fmt.Errorf("lookup cached team: %w", err)
	}
	if team == nil {
		return nil, nil, fmt.Errorf("team %q not in cache; run 'gridscout scout --team %q' first", name, name)
	}
	batch, err := loadBatch(db, team, days)
	if err != nil {
		return nil, nil, err
	}
	if len(batch) == 0 {
		return nil, nil, fmt.Errorf("no cached series for %q in the last %d days", name, days)
	}
	return team, batch, nil
}
