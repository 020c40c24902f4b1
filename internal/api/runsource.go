package api

import (
	"sync"

	"github.com/spirewatch/spire-companion/internal/run"
)

// RunSource holds the current run snapshot behind a lock so the HTTP
// handlers, the file watcher, and the hub broadcaster share one view.
type RunSource struct {
	mu sync.RWMutex
	st *run.State
}

// NewRunSource creates an empty source.
func NewRunSource() *RunSource {
	return &RunSource{}
}

// Current returns the current state and whether one is loaded. The returned
// pointer is shared; treat it as read-only.
func (s *RunSource) Current() (*run.State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st, s.st != nil
}

// Set replaces the current state.
func (s *RunSource) Set(st *run.State) {
	s.mu.Lock()
	s.st = st
	s.mu.Unlock()
}

// Clear drops the current state.
func (s *RunSource) Clear() {
	s.Set(nil)
}
