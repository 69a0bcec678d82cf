// Package grid is a client for the GRID esports GraphQL APIs: team search
// and series listings from central data, and completed-series telemetry
// from the series-state feed.
package grid

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/pable/gridscout/internal/config"
	"github.com/pable/gridscout/internal/model"
)

const (
	maxAttempts = 3
	retryPause  = 500 * time.Millisecond
)

type Client struct {
	apiKey     string
	centralURL string
	stateURL   string
	timeout    time.Duration
	http       *fasthttp.Client
	log        zerolog.Logger
}

func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		centralURL: cfg.CentralURL,
		stateURL:   cfg.StateURL,
		timeout:    cfg.HTTPTimeout,
		http: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         cfg.HTTPTimeout,
			WriteTimeout:        cfg.HTTPTimeout,
			MaxIdleConnDuration: time.Minute,
		},
		log: log,
	}
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type gqlError struct {
	Message string `json:"message"`
}

// post executes a GraphQL request and decodes the data envelope into out.
// Transport failures and 5xx responses are retried up to maxAttempts;
// GraphQL-level errors are not, they indicate a bad query or key.
func (c *Client) post(ctx context.Context, url, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryPause):
			}
			c.log.Debug().Int("attempt", attempt).Str("url", url).Msg("retrying request")
		}

		status, respBody, err := c.do(ctx, url, body)
		if err != nil {
			lastErr = err
			continue
		}
		if status >= 500 {
			lastErr = fmt.Errorf("POST %s: HTTP %d", url, status)
			continue
		}
		if status != fasthttp.StatusOK {
			return fmt.Errorf("POST %s: HTTP %d", url, status)
		}

		var env gqlEnvelope
		if err := json.Unmarshal(respBody, &env); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		if len(env.Errors) > 0 {
			return fmt.Errorf("graphql: %s", env.Errors[0].Message)
		}
		if out == nil {
			return nil
		}
		return json.Unmarshal(env.Data, out)
	}
	return fmt.Errorf("POST %s after %d attempts: %w", url, maxAttempts, lastErr)
}

func (c *Client) do(ctx context.Context, url string, body []byte) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	req.SetBody(body)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, resp, deadline)
	} else {
		err = c.http.DoTimeout(req, resp, c.timeout)
	}
	if err != nil {
		return 0, nil, fmt.Errorf("POST %s: %w", url, err)
	}
	// The response object goes back to the pool, copy out of it.
	return resp.StatusCode(), append([]byte(nil), resp.Body()...), nil
}

// SearchTeams finds central-data teams whose name contains name.
func (c *Client) SearchTeams(ctx context.Context, name string, limit int) ([]model.Team, error) {
	var data struct {
		Teams struct {
			Edges []struct {
				Node model.Team `json:"node"`
			} `json:"edges"`
		} `json:"teams"`
	}
	vars := map[string]any{"name": name, "limit": limit}
	if err := c.post(ctx, c.centralURL, searchTeamsQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("search teams %q: %w", name, err)
	}
	teams := make([]model.Team, 0, len(data.Teams.Edges))
	for _, e := range data.Teams.Edges {
		teams = append(teams, e.Node)
	}
	return teams, nil
}

// TeamSeries lists a team's esports series scheduled inside [since, until],
// newest first. The returned records carry no series state yet.
func (c *Client) TeamSeries(ctx context.Context, teamID string, since, until time.Time, limit int) ([]model.SeriesRecord, error) {
	var data struct {
		AllSeries struct {
			Edges []struct {
				Node model.SeriesRecord `json:"node"`
			} `json:"edges"`
		} `json:"allSeries"`
	}
	vars := map[string]any{
		"teamId": teamID,
		"since":  since.UTC().Format(time.RFC3339),
		"until":  until.UTC().Format(time.RFC3339),
		"limit":  limit,
	}
	if err := c.post(ctx, c.centralURL, teamSeriesQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("list series for team %s: %w", teamID, err)
	}
	records := make([]model.SeriesRecord, 0, len(data.AllSeries.Edges))
	for _, e := range data.AllSeries.Edges {
		records = append(records, e.Node)
	}
	return records, nil
}

// SeriesState fetches the completed-series telemetry for one series. A null
// seriesState on the wire means the series could not be resolved; that is
// reported as (nil, nil), not an error.
func (c *Client) SeriesState(ctx context.Context, id string) (*model.SeriesState, error) {
	var data struct {
		SeriesState *model.SeriesState `json:"seriesState"`
	}
	if err := c.post(ctx, c.stateURL, seriesStateQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, fmt.Errorf("series state %s: %w", id, err)
	}
	return data.SeriesState, nil
}
