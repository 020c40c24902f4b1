package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spirewatch/spire-companion/internal/advisor"
	"github.com/spirewatch/spire-companion/internal/api/response"
	"github.com/spirewatch/spire-companion/internal/gamedata"
)

// AdviceHandler handles advisory API requests. Every endpoint reads the
// current run, runs one evaluator, and returns its report; the evaluators
// themselves never fail, so errors here are all about missing runs and bad
// request bodies.
type AdviceHandler struct {
	catalog *gamedata.Catalog
	source  StateSource
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(catalog *gamedata.Catalog, source StateSource) *AdviceHandler {
	return &AdviceHandler{catalog: catalog, source: source}
}

// EvaluateCard rates a candidate card against the current deck.
func (h *AdviceHandler) EvaluateCard(w http.ResponseWriter, r *http.Request) {
	st, ok := h.source.Current()
	if !ok {
		response.NotFound(w, ErrNoRun)
		return
	}
	cardID := chi.URLParam(r, "cardID")
	response.Success(w, advisor.EvaluateCard(h.catalog, cardID, st.Deck, st.Relics))
}

// EvaluateRelic rates a candidate relic.
func (h *AdviceHandler) EvaluateRelic(w http.ResponseWriter, r *http.Request) {
	st, ok := h.source.Current()
	if !ok {
		response.NotFound(w, ErrNoRun)
		return
	}
	response.Success(w, advisor.EvaluateRelic(h.catalog, chi.URLParam(r, "relicID"), st.Deck))
}

// EvaluateBossRelic rates a boss relic offer.
func (h *AdviceHandler) EvaluateBossRelic(w http.ResponseWriter, r *http.Request) {
	st, ok := h.source.Current()
	if !ok {
		response.NotFound(w, ErrNoRun)
		return
	}
	response.Success(w, advisor.EvaluateBossRelic(h.catalog, chi.URLParam(r, "relicID"), st))
}

// AssessCombat reports readiness against a monster.
func (h *AdviceHandler) AssessCombat(w http.ResponseWriter, r *http.Request) {
	st, ok := h.source.Current()
	if !ok {
		response.NotFound(w, ErrNoRun)
		return
	}
	response.Success(w, advisor.AssessCombat(h.catalog, chi.URLParam(r, "monsterID"), st))
}

// PrepareForBoss returns the act boss checklist.
func (h *AdviceHandler) PrepareForBoss(w http.ResponseWriter, _ *http.Request) {
	st, ok := h.source.Current()
	if !ok {
		response.NotFound(w, ErrNoRun)
		return
	}
	response.Success(w, advisor.PrepareForBoss(h.catalog, st))
}

// AdviseEvent ranks an event's choices.
func (h *AdviceHandler) AdviseEvent(w http.ResponseWriter, r *http.Request) {
	st, ok := h.source.Current()
	if !ok {
		response.NotFound(w, ErrNoRun)
		return
	}
	response.Success(w, advisor.AdviseEvent(h.catalog, chi.URLParam(r, "eventID"), st))
}

// AdviseRemoval ranks the deck as removal candidates.
func (h *AdviceHandler) AdviseRemoval(w http.ResponseWriter, _ *http.Request) {
	st, ok := h.source.Current()
	if !ok {
		response.NotFound(w, ErrNoRun)
		return
	}
	response.Success(w, advisor.AdviseRemoval(h.catalog, st))
}

// pathRequest is the body for AdvisePath.
type pathRequest struct {
	Nodes []advisor.NodeType `json:"nodes"`
}

// AdvisePath ranks a set of reachable map nodes.
func (h *AdviceHandler) AdvisePath(w http.ResponseWriter, r *http.Request) {
	st, ok := h.source.Current()
	if !ok {
		response.NotFound(w, ErrNoRun)
		return
	}

	var req pathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, fmt.Errorf("decode path request: %w", err))
		return
	}
	if len(req.Nodes) == 0 {
		response.BadRequest(w, fmt.Errorf("path request needs at least one node"))
		return
	}

	response.Success(w, advisor.AdvisePath(h.catalog, req.Nodes, st))
}

// AdviseBlessings rates the starting bonuses for the current character.
func (h *AdviceHandler) AdviseBlessings(w http.ResponseWriter, _ *http.Request) {
	st, ok := h.source.Current()
	if !ok {
		response.NotFound(w, ErrNoRun)
		return
	}
	response.Success(w, advisor.AdviseBlessings(h.catalog, st))
}
