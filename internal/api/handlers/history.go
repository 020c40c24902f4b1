package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/spirewatch/spire-companion/internal/api/response"
	"github.com/spirewatch/spire-companion/internal/storage"
	"github.com/spirewatch/spire-companion/internal/storage/repository"
)

// ErrNoStore is returned when history endpoints are hit on a server
// running without a database.
var ErrNoStore = errors.New("run history is not enabled")

const defaultRunListLimit = 50

// HistoryHandler serves stored run history. The store may be nil when the
// server runs without persistence; every endpoint then answers 503.
type HistoryHandler struct {
	store *storage.Service
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(store *storage.Service) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// ListRuns returns recent runs, optionally filtered by character.
func (h *HistoryHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		response.ServiceUnavailable(w, ErrNoStore)
		return
	}

	limit := defaultRunListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	if character := r.URL.Query().Get("character"); character != "" {
		runs, err := h.store.Runs.ListByCharacter(r.Context(), character, limit)
		if err != nil {
			response.InternalError(w, err)
			return
		}
		response.Success(w, runs)
		return
	}

	runs, err := h.store.Runs.List(r.Context(), limit)
	if err != nil {
		response.InternalError(w, err)
		return
	}
	response.Success(w, runs)
}

// GetRun returns a stored run by id.
func (h *HistoryHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		response.ServiceUnavailable(w, ErrNoStore)
		return
	}

	id := chi.URLParam(r, "runID")
	rec, err := h.store.Runs.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, fmt.Errorf("unknown run %q", id))
			return
		}
		response.InternalError(w, err)
		return
	}
	response.Success(w, rec)
}

// ListAdvice returns the advice recorded for a run, optionally filtered by
// kind.
func (h *HistoryHandler) ListAdvice(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		response.ServiceUnavailable(w, ErrNoStore)
		return
	}

	id := chi.URLParam(r, "runID")
	if _, err := h.store.Runs.Get(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, fmt.Errorf("unknown run %q", id))
			return
		}
		response.InternalError(w, err)
		return
	}

	if kind := r.URL.Query().Get("kind"); kind != "" {
		records, err := h.store.Advice.ListByKind(r.Context(), id, kind)
		if err != nil {
			response.InternalError(w, err)
			return
		}
		response.Success(w, records)
		return
	}

	records, err := h.store.Advice.ListByRun(r.Context(), id)
	if err != nil {
		response.InternalError(w, err)
		return
	}
	response.Success(w, records)
}
