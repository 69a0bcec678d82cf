package grid

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pable/gridscout/internal/config"
	"github.com/pable/gridscout/internal/model"
)

func testClient(url string) *Client {
	return NewClient(&config.Config{
		APIKey:      "test-key",
		CentralURL:  url,
		StateURL:    url,
		HTTPTimeout: 5 * time.Second,
	}, zerolog.Nop())
}

func decodeRequest(t *testing.T, r *http.Request) gqlRequest {
	t.Helper()
	var req gqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	return req
}

func TestSearchTeams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("X-API-Key = %q, want test-key", got)
		}
		req := decodeRequest(t, r)
		if !strings.Contains(req.Query, "teams") {
			t.Errorf("unexpected query: %s", req.Query)
		}
		if req.Variables["name"] != "MIBR" {
			t.Errorf("name variable = %v, want MIBR", req.Variables["name"])
		}
		fmt.Fprint(w, `{"data":{"teams":{"edges":[
			{"node":{"id":"42","name":"MIBR"}},
			{"node":{"id":"99","name":"MIBR Academy"}}
		]}}}`)
	}))
	defer srv.Close()

	teams, err := testClient(srv.URL).SearchTeams(context.Background(), "MIBR", 10)
	if err != nil {
		t.Fatalf("SearchTeams: %v", err)
	}
	if len(teams) != 2 || teams[0].ID != "42" || teams[1].Name != "MIBR Academy" {
		t.Errorf("teams = %+v", teams)
	}
}

func TestTeamSeriesWindowVariables(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		if req.Variables["teamId"] != "42" {
			t.Errorf("teamId = %v, want 42", req.Variables["teamId"])
		}
		if req.Variables["since"] != "2025-07-30T00:00:00Z" {
			t.Errorf("since = %v", req.Variables["since"])
		}
		fmt.Fprint(w, `{"data":{"allSeries":{"edges":[
			{"node":{"id":"s1","startTimeScheduled":"2025-08-08T17:00:00Z",
			 "title":{"name":"Valorant","nameShortened":"val"},
			 "teams":[{"baseInfo":{"id":"42","name":"MIBR"}}]}}
		]}}}`)
	}))
	defer srv.Close()

	since := time.Date(2025, 7, 30, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC)
	records, err := testClient(srv.URL).TeamSeries(context.Background(), "42", since, until, 50)
	if err != nil {
		t.Fatalf("TeamSeries: %v", err)
	}
	if len(records) != 1 || records[0].ID != "s1" || records[0].Title.NameShortened != "val" {
		t.Errorf("records = %+v", records)
	}
	if records[0].State != nil {
		t.Errorf("listing record carries state: %+v", records[0].State)
	}
}

func TestSeriesStateNullIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"seriesState":null}}`)
	}))
	defer srv.Close()

	state, err := testClient(srv.URL).SeriesState(context.Background(), "s1")
	if err != nil {
		t.Fatalf("SeriesState: %v", err)
	}
	if state != nil {
		t.Errorf("state = %+v, want nil for a null payload", state)
	}
}

func TestGraphQLErrorIsFatal(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		fmt.Fprint(w, `{"data":null,"errors":[{"message":"forbidden"}]}`)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).SeriesState(context.Background(), "s1")
	if err == nil || !strings.Contains(err.Error(), "forbidden") {
		t.Fatalf("err = %v, want graphql forbidden", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("graphql error was retried %d times", n)
	}
}

func TestServerErrorsAreRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"data":{"seriesState":{"valid":true,"finished":true}}}`)
	}))
	defer srv.Close()

	state, err := testClient(srv.URL).SeriesState(context.Background(), "s1")
	if err != nil {
		t.Fatalf("SeriesState after retries: %v", err)
	}
	if state == nil || !state.Finished {
		t.Errorf("state = %+v, want finished", state)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("calls = %d, want 3", n)
	}
}

func TestClientErrorIsFatal(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).SeriesState(context.Background(), "s1")
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("err = %v, want HTTP 401", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("4xx was retried %d times", n)
	}
}

func TestFetchStatesKeepsPerSeriesOutcomes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		switch req.Variables["id"] {
		case "good":
			fmt.Fprint(w, `{"data":{"seriesState":{"valid":true,"finished":true,"updatedAt":"2025-08-09T01:08:24.737Z"}}}`)
		case "absent":
			fmt.Fprint(w, `{"data":{"seriesState":null}}`)
		default:
			fmt.Fprint(w, `{"data":null,"errors":[{"message":"not allowed"}]}`)
		}
	}))
	defer srv.Close()

	records := []model.SeriesRecord{{ID: "good"}, {ID: "absent"}, {ID: "denied"}}
	results := testClient(srv.URL).FetchStates(context.Background(), records, 2)
	if len(results) != 3 {
		t.Fatalf("results = %d slots, want 3", len(results))
	}

	byID := make(map[string]StateResult, len(results))
	for _, res := range results {
		byID[res.ID] = res
	}
	if res := byID["good"]; res.Err != nil || res.State == nil || !res.State.Finished {
		t.Errorf("good = %+v, want a finished state", res)
	}
	if res := byID["absent"]; res.Err != nil || res.State != nil {
		t.Errorf("absent = %+v, want nil state, nil err", res)
	}
	if res := byID["denied"]; res.Err == nil || res.State != nil {
		t.Errorf("denied = %+v, want an error slot", res)
	}
}
