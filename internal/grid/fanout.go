package grid

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pable/gridscout/internal/model"
)

// StateResult is one series' fetch outcome. State is nil when the series
// could not be resolved (absent) or when Err is set.
type StateResult struct {
	ID    string
	State *model.SeriesState
	Err   error
}

// FetchStates fetches the series state for every record concurrently, at
// most workers in flight. Every id gets its own result slot; a failed or
// absent fetch never aborts the rest of the batch.
func (c *Client) FetchStates(ctx context.Context, records []model.SeriesRecord, workers int) []StateResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]StateResult, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range records {
		g.Go(func() error {
			state, err := c.SeriesState(ctx, records[i].ID)
			results[i] = StateResult{ID: records[i].ID, State: state, Err: err}
			// Per-id failures are reported in the slot, never to the group.
			return nil
		})
	}
	g.Wait()
	return results
}
