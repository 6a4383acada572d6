package adapter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSearcher records queries and answers from a fixed table.
type countingSearcher struct {
	mu      sync.Mutex
	queries []string
	results []models.DirectoryRecord
	err     error
}

func (s *countingSearcher) Search(_ context.Context, query string) ([]models.DirectoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	return s.results, s.err
}

func (s *countingSearcher) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.queries))
	copy(out, s.queries)
	return out
}

// gatedSearcher blocks each lookup until release is closed.
type gatedSearcher struct {
	release chan struct{}
	results []models.DirectoryRecord
}

func (s *gatedSearcher) Search(_ context.Context, _ string) ([]models.DirectoryRecord, error) {
	<-s.release
	return s.results, nil
}

func newTestSearch(searcher DirectorySearcher) *IncrementalSearch {
	s := NewIncrementalSearch(searcher, nil, logger.Nop())
	s.debounce = 5 * time.Millisecond
	return s
}

func waitForState(t *testing.T, s *IncrementalSearch, want SearchState) SearchSnapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		return s.Snapshot().State == want
	}, time.Second, time.Millisecond)
	return s.Snapshot()
}

func TestIncrementalSearch_ShortQueryStaysIdle(t *testing.T) {
	searcher := &countingSearcher{}
	s := newTestSearch(searcher)

	s.SetQuery(context.Background(), "c")
	assert.Equal(t, SearchIdle, s.Snapshot().State)

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, searcher.calls(), "single-rune query never reaches the searcher")
}

func TestIncrementalSearch_TrimsBeforeCounting(t *testing.T) {
	searcher := &countingSearcher{}
	s := newTestSearch(searcher)

	s.SetQuery(context.Background(), "  c  ")
	assert.Equal(t, SearchIdle, s.Snapshot().State)
}

func TestIncrementalSearch_DebounceCollapsesKeystrokes(t *testing.T) {
	searcher := &countingSearcher{results: []models.DirectoryRecord{{ID: 1, Name: "Cleveland Clinic"}}}
	s := newTestSearch(searcher)

	ctx := context.Background()
	s.SetQuery(ctx, "cl")
	s.SetQuery(ctx, "cle")
	s.SetQuery(ctx, "clev")

	waitForState(t, s, SearchResultsShown)
	assert.Equal(t, []string{"clev"}, searcher.calls(), "only the final query runs")
}

func TestIncrementalSearch_NoResults(t *testing.T) {
	s := newTestSearch(&countingSearcher{})

	s.SetQuery(context.Background(), "zz")
	snap := waitForState(t, s, SearchNoResults)
	assert.Empty(t, snap.Results)
}

func TestIncrementalSearch_ErrorDegradesToNoResults(t *testing.T) {
	s := newTestSearch(&countingSearcher{err: errors.New("connection refused")})

	s.SetQuery(context.Background(), "cle")
	waitForState(t, s, SearchNoResults)
}

func TestIncrementalSearch_StaleResultDiscarded(t *testing.T) {
	gate := &gatedSearcher{
		release: make(chan struct{}),
		results: []models.DirectoryRecord{{ID: 1, Name: "Old Query Hit"}},
	}
	s := newTestSearch(gate)

	ctx := context.Background()
	s.SetQuery(ctx, "old")
	waitForState(t, s, SearchInFlight)

	// A new keystroke arrives while the first lookup is still running,
	// then shrinks the query below the minimum so nothing else runs.
	s.SetQuery(ctx, "o")
	close(gate.release)

	time.Sleep(20 * time.Millisecond)
	snap := s.Snapshot()
	assert.Equal(t, SearchIdle, snap.State, "stale response must not resurface")
	assert.Empty(t, snap.Results)
}

func TestIncrementalSearch_SelectFillsForm(t *testing.T) {
	searcher := &countingSearcher{results: []models.DirectoryRecord{{
		ID:    7,
		Name:  "Cleveland Clinic",
		Addr:  "9500 Euclid Ave",
		City:  "Cleveland",
		State: "OH",
		Phone: "555-0100",
	}}}
	s := newTestSearch(searcher)

	s.SetQuery(context.Background(), "cle")
	waitForState(t, s, SearchResultsShown)

	form, ok := s.Select(0)
	require.True(t, ok)
	assert.True(t, form.AutoFilled)
	assert.Equal(t, int64(7), form.DirectoryID)
	assert.Equal(t, "Cleveland Clinic", form.Name)
	assert.Equal(t, "9500 Euclid Ave", form.Addr)
	assert.Equal(t, "OH", form.State)

	snap := s.Snapshot()
	assert.Equal(t, SearchIdle, snap.State, "selection closes the result list")
	assert.Empty(t, snap.Results)
}

func TestIncrementalSearch_SelectOutOfRange(t *testing.T) {
	s := newTestSearch(&countingSearcher{results: []models.DirectoryRecord{{ID: 1, Name: "A"}}})

	s.SetQuery(context.Background(), "aa")
	waitForState(t, s, SearchResultsShown)

	_, ok := s.Select(5)
	assert.False(t, ok)
	assert.Equal(t, SearchResultsShown, s.Snapshot().State)
}

func TestIncrementalSearch_StopCancelsPendingLookup(t *testing.T) {
	searcher := &countingSearcher{}
	s := newTestSearch(searcher)

	s.SetQuery(context.Background(), "cle")
	s.Stop()

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, searcher.calls())
}
