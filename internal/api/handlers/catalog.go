package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spirewatch/spire-companion/internal/api/response"
	"github.com/spirewatch/spire-companion/internal/gamedata"
)

// CatalogHandler serves the static game data.
type CatalogHandler struct {
	catalog *gamedata.Catalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *gamedata.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetCard returns a card by id.
func (h *CatalogHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cardID")
	card, ok := h.catalog.Card(id)
	if !ok {
		response.NotFound(w, fmt.Errorf("unknown card %q", id))
		return
	}
	response.Success(w, card)
}

// GetRelic returns a relic by id.
func (h *CatalogHandler) GetRelic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "relicID")
	relic, ok := h.catalog.Relic(id)
	if !ok {
		response.NotFound(w, fmt.Errorf("unknown relic %q", id))
		return
	}
	response.Success(w, relic)
}

// ListMonsters returns every monster in the catalog.
func (h *CatalogHandler) ListMonsters(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, h.catalog.Monsters())
}

// GetMonster returns a monster by id.
func (h *CatalogHandler) GetMonster(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "monsterID")
	monster, ok := h.catalog.Monster(id)
	if !ok {
		response.NotFound(w, fmt.Errorf("unknown monster %q", id))
		return
	}
	response.Success(w, monster)
}

// GetEvent returns an event by id.
func (h *CatalogHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "eventID")
	event, ok := h.catalog.Event(id)
	if !ok {
		response.NotFound(w, fmt.Errorf("unknown event %q", id))
		return
	}
	response.Success(w, event)
}
