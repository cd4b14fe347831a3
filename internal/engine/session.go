// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"sync"

	"github.com/pdiddy/listing-engine/internal/cite"
	"github.com/pdiddy/listing-engine/internal/debounce"
	"github.com/pdiddy/listing-engine/pkg/types"
)

// Session wires one page's filter state to the engine. Query changes
// arrive through the debouncer; category, sort, and view changes apply
// immediately. Every membership- or order-affecting change recomputes
// the visible set and tally synchronously, so a reader never observes
// a stale count against a fresh projection. The session also tracks
// the single active citation request.
//
// The store is read-only for the life of the session. The mutex exists
// only because the debounce timer fires on a timer goroutine; all
// other transitions are sequential user events.
type Session struct {
	mu sync.Mutex

	store      []types.Record
	categories map[string]bool
	counter    Counter
	input      *debounce.Input

	state    types.FilterState
	visible  []types.Record
	tally    Tally
	citation *cite.Request
}

// NewSession builds a session over an immutable record store. cfg
// supplies the initial sort key and the debounce window; zero values
// use the defaults.
func NewSession(store []types.Record, counter Counter, cfg types.EngineConfig) *Session {
	state := types.NewFilterState()
	if cfg.DefaultSort != "" {
		state.Sort = cfg.DefaultSort
	}

	s := &Session{
		store:      store,
		categories: Categories(store),
		counter:    counter,
		state:      Normalize(state),
	}
	s.input = debounce.NewInput(cfg.DebounceWindow, s.applyQuery)
	s.recompute()
	return s
}

// Close cancels any pending query emission.
func (s *Session) Close() {
	s.input.Stop()
}

// Type forwards a raw keystroke to the debouncer. The filter state
// only changes once the quiescence window elapses.
func (s *Session) Type(raw string) {
	s.input.Type(raw)
}

// ClearQuery bypasses the debounce window and resets the query
// immediately.
func (s *Session) ClearQuery() {
	s.input.Clear()
}

// SubmitQuery flushes any pending keystroke through the debouncer
// without waiting for the window.
func (s *Session) SubmitQuery() {
	s.input.Flush()
}

func (s *Session) applyQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Query = q
	s.recompute()
}

// SetCategory activates a facet tab. A category not present in the
// store falls back to CategoryAll: a stale tab identifier must not
// silently filter everything out.
func (s *Session) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if category != types.CategoryAll && !s.categories[category] {
		category = types.CategoryAll
	}
	s.state.Category = category
	s.recompute()
}

// SetSort changes the sort key. Unknown keys fall back to the default
// ordering via Normalize.
func (s *Session) SetSort(key types.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sort = key
	s.state = Normalize(s.state)
	s.recompute()
}

// SetView changes the layout mode. Membership and order are
// unaffected, so no recomputation happens.
func (s *Session) SetView(view types.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.View = view
	s.state = Normalize(s.state)
}

// recompute rebuilds the projection and tally from scratch. Callers
// hold the mutex.
func (s *Session) recompute() {
	s.visible = Project(s.store, s.state)
	s.tally = s.counter.Count(s.visible)
}

// State returns a copy of the current filter state.
func (s *Session) State() types.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Visible returns a copy of the current projection, in display order.
func (s *Session) Visible() []types.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Record, len(s.visible))
	copy(out, s.visible)
	return out
}

// Tally returns the count and label for the current projection.
func (s *Session) Tally() Tally {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tally
}

// OpenCitation starts a citation request for the record and renders
// it. Any previously open request is replaced: only one citation
// dialog exists at a time.
func (s *Session) OpenCitation(recordID string, style types.CitationStyle) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := cite.Request{RecordID: recordID, Style: cite.NormalizeStyle(style)}
	text, err := req.Render(s.store)
	if err != nil {
		return "", err
	}
	s.citation = &req
	return text, nil
}

// RestyleCitation re-renders the open citation request in a different
// style. The underlying record is unchanged, so repeated style
// switches are order-independent.
func (s *Session) RestyleCitation(style types.CitationStyle) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.citation == nil {
		return "", fmt.Errorf("no open citation request")
	}
	s.citation.Style = cite.NormalizeStyle(style)
	return s.citation.Render(s.store)
}

// CloseCitation discards the open citation request, if any.
func (s *Session) CloseCitation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.citation = nil
}
