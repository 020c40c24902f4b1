// Package handlers implements the HTTP handlers for the advisory API.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/spirewatch/spire-companion/internal/advisor"
	"github.com/spirewatch/spire-companion/internal/api/response"
	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// ErrNoRun is returned when an endpoint needs a run and none is loaded.
var ErrNoRun = errors.New("no run in progress")

// StateSource supplies the current run snapshot.
type StateSource interface {
	Current() (*run.State, bool)
}

// RunHandler handles run-state API requests.
type RunHandler struct {
	catalog *gamedata.Catalog
	source  StateSource
}

// NewRunHandler creates a new RunHandler.
func NewRunHandler(catalog *gamedata.Catalog, source StateSource) *RunHandler {
	return &RunHandler{catalog: catalog, source: source}
}

// GetRun returns the current run state.
func (h *RunHandler) GetRun(w http.ResponseWriter, _ *http.Request) {
	st, ok := h.source.Current()
	if !ok {
		response.NotFound(w, ErrNoRun)
		return
	}
	response.Success(w, st)
}

// GetHealth returns the deck health report for the current run.
func (h *RunHandler) GetHealth(w http.ResponseWriter, _ *http.Request) {
	st, ok := h.source.Current()
	if !ok {
		response.NotFound(w, ErrNoRun)
		return
	}
	response.Success(w, advisor.AnalyzeHealth(h.catalog, st))
}

// GetArchetypes returns the detected builds for the current run.
func (h *RunHandler) GetArchetypes(w http.ResponseWriter, _ *http.Request) {
	st, ok := h.source.Current()
	if !ok {
		response.NotFound(w, ErrNoRun)
		return
	}

	matches := advisor.DetectArchetypes(h.catalog, st.Deck, st.Character)
	if matches == nil {
		matches = []advisor.ArchetypeMatch{}
	}
	response.Success(w, matches)
}

// DecodeRunState parses a run state from a request body and validates the
// fields the engine depends on.
func DecodeRunState(r *http.Request) (*run.State, error) {
	var st run.State
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		return nil, fmt.Errorf("decode run state: %w", err)
	}
	if st.ID == "" {
		return nil, fmt.Errorf("run state missing id")
	}
	if st.Character == "" {
		return nil, fmt.Errorf("run state missing character")
	}
	if st.MaxHP <= 0 {
		return nil, fmt.Errorf("run state max HP must be positive")
	}
	return &st, nil
}
