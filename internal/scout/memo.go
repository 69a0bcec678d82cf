package scout

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pable/gridscout/internal/model"
)

// Memo is an in-process TTL cache of scout reports, keyed by a fingerprint
// of (team, window, batch identity). Analyzers are pure and their inputs
// immutable, so a hit can be returned without recomputation. Invalidation
// is explicit: a fresh scout calls InvalidateTeam before refetching.
type Memo struct {
	items  sync.Map
	ttl    time.Duration
	ticker *time.Ticker
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type memoItem struct {
	report  *model.ScoutReport
	expires time.Time
}

// NewMemo creates a memo whose entries live for ttl.
func NewMemo(ttl time.Duration) *Memo {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Memo{
		ttl:    ttl,
		ticker: time.NewTicker(time.Minute),
		ctx:    ctx,
		cancel: cancel,
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		for {
			select {
			case <-m.ticker.C:
				m.sweep()
			case <-m.ctx.Done():
				return
			}
		}
	}()
	return m
}

// Close stops the cleanup goroutine.
func (m *Memo) Close() {
	m.cancel()
	m.ticker.Stop()
	m.wg.Wait()
}

func (m *Memo) sweep() {
	now := time.Now()
	m.items.Range(func(key, value any) bool {
		if now.After(value.(*memoItem).expires) {
			m.items.Delete(key)
		}
		return true
	})
}

// Key builds the cache key for a (team, window, batch) triple. The batch
// identity is an FNV-1a hash over the sorted (series id, state updatedAt)
// pairs, so a re-fetch that changed any series state produces a new key.
func (m *Memo) Key(team, window string, batch []model.SeriesRecord) string {
	pairs := make([]string, 0, len(batch))
	for i := range batch {
		updated := ""
		if batch[i].State != nil {
			updated = batch[i].State.UpdatedAt
		}
		pairs = append(pairs, batch[i].ID+"@"+updated)
	}
	sort.Strings(pairs)

	h := fnv.New64a()
	for _, p := range pairs {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%s|%s|%016x", team, window, h.Sum64())
}

// Get returns the cached report for key, or nil on a miss.
func (m *Memo) Get(key string) *model.ScoutReport {
	value, ok := m.items.Load(key)
	if !ok {
		return nil
	}
	item := value.(*memoItem)
	if time.Now().After(item.expires) {
		m.items.Delete(key)
		return nil
	}
	return item.report
}

// Set stores a report under key.
func (m *Memo) Set(key string, report *model.ScoutReport) {
	m.items.Store(key, &memoItem{report: report, expires: time.Now().Add(m.ttl)})
}

// InvalidateTeam drops every cached entry belonging to team.
func (m *Memo) InvalidateTeam(team string) {
	prefix := team + "|"
	m.items.Range(func(key, _ any) bool {
		if strings.HasPrefix(key.(string), prefix) {
			m.items.Delete(key)
		}
		return true
	})
}
