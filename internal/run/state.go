// Package run defines the RunState snapshot the advisory engine evaluates.
// The engine treats a snapshot as read-only; the mutation helpers here exist
// for the CLI and API layers, which re-invoke evaluators after every change.
package run

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/spirewatch/spire-companion/internal/gamedata"
)

// CardInstance is one copy of a card in a deck. Copies of the same card are
// distinguished by InstanceID, never deduplicated.
type CardInstance struct {
	InstanceID string `json:"instanceId"`
	CardID     string `json:"cardId"`
	Upgraded   bool   `json:"upgraded,omitempty"`
}

// State is a snapshot of an in-progress run.
type State struct {
	ID             string              `json:"id"`
	Character      gamedata.Character  `json:"character"`
	Deck           []CardInstance      `json:"deck"`
	Relics         []string            `json:"relics"`
	Potions        []string            `json:"potions"`
	Floor          int                 `json:"floor"`
	AscensionLevel int                 `json:"ascensionLevel"`
	CurrentHP      int                 `json:"currentHp"`
	MaxHP          int                 `json:"maxHp"`
	Gold           int                 `json:"gold"`
	NextBossID     string              `json:"nextBossId,omitempty"`
}

// NewState creates an empty run for a character at floor 1.
func NewState(ch gamedata.Character, maxHP int) *State {
	return &State{
		ID:        uuid.NewString(),
		Character: ch,
		Floor:     1,
		CurrentHP: maxHP,
		MaxHP:     maxHP,
	}
}

// Act returns the act the run is currently in.
func (s *State) Act() int {
	return ActForFloor(s.Floor)
}

// HPRatio returns current HP as a fraction of max HP, or 0 for a 0 max.
func (s *State) HPRatio() float64 {
	if s.MaxHP <= 0 {
		return 0
	}
	return float64(s.CurrentHP) / float64(s.MaxHP)
}

// AddCard appends a new instance of a card to the deck.
func (s *State) AddCard(cardID string) CardInstance {
	inst := CardInstance{InstanceID: uuid.NewString(), CardID: cardID}
	s.Deck = append(s.Deck, inst)
	return inst
}

// RemoveCard removes the instance with the given id. It reports whether an
// instance was removed.
func (s *State) RemoveCard(instanceID string) bool {
	for i, inst := range s.Deck {
		if inst.InstanceID == instanceID {
			s.Deck = append(s.Deck[:i], s.Deck[i+1:]...)
			return true
		}
	}
	return false
}

// UpgradeCard marks the instance with the given id as upgraded.
func (s *State) UpgradeCard(instanceID string) bool {
	for i := range s.Deck {
		if s.Deck[i].InstanceID == instanceID {
			s.Deck[i].Upgraded = true
			return true
		}
	}
	return false
}

// AddRelic appends a relic id.
func (s *State) AddRelic(relicID string) {
	s.Relics = append(s.Relics, relicID)
}

// AddPotion appends a potion id.
func (s *State) AddPotion(potionID string) {
	s.Potions = append(s.Potions, potionID)
}

// HasRelic reports whether the run carries a relic.
func (s *State) HasRelic(relicID string) bool {
	for _, id := range s.Relics {
		if id == relicID {
			return true
		}
	}
	return false
}

// StarterDeck returns the canonical starting deck for a character. Unknown
// characters get an empty deck.
func StarterDeck(ch gamedata.Character) []CardInstance {
	var ids []string
	switch ch {
	case gamedata.Ironclad:
		ids = []string{"strike_r", "strike_r", "strike_r", "strike_r", "strike_r", "defend_r", "defend_r", "defend_r", "defend_r", "bash"}
	case gamedata.Silent:
		ids = []string{"strike_g", "strike_g", "strike_g", "strike_g", "strike_g", "defend_g", "defend_g", "defend_g", "defend_g", "defend_g", "survivor", "neutralize"}
	case gamedata.Defect:
		ids = []string{"strike_b", "strike_b", "strike_b", "strike_b", "defend_b", "defend_b", "defend_b", "defend_b", "zap", "dualcast"}
	case gamedata.Watcher:
		ids = []string{"strike_p", "strike_p", "strike_p", "strike_p", "defend_p", "defend_p", "defend_p", "defend_p", "eruption", "vigilance"}
	}
	deck := make([]CardInstance, 0, len(ids))
	for _, id := range ids {
		deck = append(deck, CardInstance{InstanceID: uuid.NewString(), CardID: id})
	}
	return deck
}

// LoadFile reads a run state snapshot from a JSON file.
func LoadFile(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run state: %w", err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode run state: %w", err)
	}
	return &st, nil
}

// SaveFile writes a run state snapshot to a JSON file.
func (s *State) SaveFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode run state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write run state: %w", err)
	}
	return nil
}
