package advisor

import (
	"fmt"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// deckOf builds a deck from card ids with deterministic instance ids.
func deckOf(ids ...string) []run.CardInstance {
	deck := make([]run.CardInstance, 0, len(ids))
	for i, id := range ids {
		deck = append(deck, run.CardInstance{
			InstanceID: fmt.Sprintf("inst-%03d", i),
			CardID:     id,
		})
	}
	return deck
}

// ironcladStarter is the canonical 10-card starting deck.
func ironcladStarter() []run.CardInstance {
	return deckOf(
		"strike_r", "strike_r", "strike_r", "strike_r", "strike_r",
		"defend_r", "defend_r", "defend_r", "defend_r", "bash",
	)
}

// testState builds a healthy early-act-one Ironclad run around a deck.
func testState(deck []run.CardInstance) *run.State {
	return &run.State{
		ID:        "test-run",
		Character: gamedata.Ironclad,
		Deck:      deck,
		Floor:     5,
		CurrentHP: 70,
		MaxHP:     80,
		Gold:      99,
	}
}
