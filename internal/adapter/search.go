// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jacob Marr

package adapter

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/models"
)

// defaultDebounce is how long the search waits after the last keystroke
// before querying the directory.
const defaultDebounce = 300 * time.Millisecond

// minQueryRunes mirrors the server-side minimum: shorter queries never
// leave the client.
const minQueryRunes = 2

// SearchState is the phase of one incremental search box.
type SearchState int

const (
	// SearchIdle: query too short, nothing pending or shown.
	SearchIdle SearchState = iota

	// SearchDebouncing: waiting out the keystroke window.
	SearchDebouncing

	// SearchInFlight: debounce elapsed, lookup running.
	SearchInFlight

	// SearchResultsShown: lookup finished with at least one match.
	SearchResultsShown

	// SearchNoResults: lookup finished with no matches.
	SearchNoResults
)

// SearchSnapshot is an immutable view of the search box for rendering.
type SearchSnapshot struct {
	State   SearchState
	Query   string
	Results []models.DirectoryRecord
}

// ProviderForm is the editable form state a directory selection fills in.
// AutoFilled marks the form as sourced from the directory so the UI can
// show the provenance; the user edits freely afterwards.
type ProviderForm struct {
	DirectoryID int64
	Name        string
	Type        string
	Addr        string
	City        string
	State       string
	Zip         string
	Phone       string
	Fax         string
	Email       string
	Notes       string
	AutoFilled  bool
}

// IncrementalSearch debounces keystrokes against a [DirectorySearcher]
// and suppresses stale responses: every SetQuery bumps a sequence number,
// and a lookup that returns under an old number is discarded so fast
// typing can never show results for an earlier query.
type IncrementalSearch struct {
	searcher DirectorySearcher
	debounce time.Duration
	notify   func(SearchSnapshot)

	logger *logger.Logger

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	state   SearchState
	query   string
	results []models.DirectoryRecord
}

// NewIncrementalSearch constructs a search box over searcher. notify, if
// non-nil, is called with a fresh snapshot on every state change; it runs
// outside the internal lock and may call back into the search.
func NewIncrementalSearch(searcher DirectorySearcher, notify func(SearchSnapshot), logger *logger.Logger) *IncrementalSearch {
	return &IncrementalSearch{
		searcher: searcher,
		debounce: defaultDebounce,
		notify:   notify,
		logger:   logger,
	}
}

// SetQuery records a keystroke. A trimmed query shorter than two runes
// clears the box back to idle; anything longer restarts the debounce
// window. Either way any pending or in-flight lookup is invalidated.
func (s *IncrementalSearch) SetQuery(ctx context.Context, query string) {
	query = trimQuery(query)

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.query = query
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if utf8.RuneCountInString(query) < minQueryRunes {
		s.state = SearchIdle
		s.results = nil
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.publish(snap)
		return
	}

	s.state = SearchDebouncing
	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(ctx, seq, query)
	})
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

func (s *IncrementalSearch) run(ctx context.Context, seq uint64, query string) {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return
	}
	s.state = SearchInFlight
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)

	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		s.logger.Warn().Err(err).Str("query", query).Msg("directory search failed")
		results = nil
	}

	s.mu.Lock()
	if seq != s.seq {
		// A newer keystroke superseded this lookup while it ran.
		s.mu.Unlock()
		return
	}
	s.results = results
	if len(results) > 0 {
		s.state = SearchResultsShown
	} else {
		s.state = SearchNoResults
	}
	snap = s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

// Snapshot returns the current state for rendering.
func (s *IncrementalSearch) Snapshot() SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Select picks the result at index, returning a form pre-filled from the
// directory record, and resets the box to idle. Reports false when no
// such result is shown.
func (s *IncrementalSearch) Select(index int) (ProviderForm, bool) {
	s.mu.Lock()
	if s.state != SearchResultsShown || index < 0 || index >= len(s.results) {
		s.mu.Unlock()
		return ProviderForm{}, false
	}

	rec := s.results[index]
	s.seq++
	s.state = SearchIdle
	s.query = ""
	s.results = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)

	return ProviderForm{
		DirectoryID: rec.ID,
		Name:        rec.Name,
		Type:        rec.Type,
		Addr:        rec.Addr,
		City:        rec.City,
		State:       rec.State,
		Zip:         rec.Zip,
		Phone:       rec.Phone,
		Fax:         rec.Fax,
		Email:       rec.Email,
		Notes:       rec.Notes,
		AutoFilled:  true,
	}, true
}

// Stop invalidates any pending or in-flight lookup. The box stays usable;
// the next SetQuery starts fresh.
func (s *IncrementalSearch) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *IncrementalSearch) snapshotLocked() SearchSnapshot {
	results := make([]models.DirectoryRecord, len(s.results))
	copy(results, s.results)
	return SearchSnapshot{State: s.state, Query: s.query, Results: results}
}

func (s *IncrementalSearch) publish(snap SearchSnapshot) {
	if s.notify != nil {
		s.notify(snap)
	}
}

func trimQuery(q string) string {
	return strings.TrimSpace(q)
}
