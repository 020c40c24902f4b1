package advisor

import (
	"sort"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// RemovalPriority ranks how urgently a card should leave the deck.
type RemovalPriority int

const (
	MustRemove RemovalPriority = iota
	ShouldRemove
	Keep
)

func (p RemovalPriority) String() string {
	switch p {
	case MustRemove:
		return "must-remove"
	case ShouldRemove:
		return "should-remove"
	default:
		return "keep"
	}
}

// MarshalText renders the priority for JSON output.
func (p RemovalPriority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// RemovalCandidate is one card considered for removal at a shop or event.
type RemovalCandidate struct {
	InstanceID string          `json:"instanceId"`
	CardID     string          `json:"cardId"`
	Name       string          `json:"name"`
	Priority   RemovalPriority `json:"priority"`
	Reason     string          `json:"reason"`
}

// AdviseRemoval ranks every card in the deck as a removal target, most
// urgent first. Curses and statuses always lead; basics follow once the
// deck has outgrown them.
func AdviseRemoval(cat *gamedata.Catalog, st *run.State) []RemovalCandidate {
	comp := Analyze(st.Deck, cat)

	candidates := make([]RemovalCandidate, 0, len(st.Deck))
	for _, inst := range st.Deck {
		priority, reason := removalVerdict(cat, inst, comp)
		candidates = append(candidates, RemovalCandidate{
			InstanceID: inst.InstanceID,
			CardID:     inst.CardID,
			Name:       displayName(cat, inst.CardID),
			Priority:   priority,
			Reason:     reason,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority < candidates[j].Priority
		}
		return candidates[i].Name < candidates[j].Name
	})
	return candidates
}

func removalVerdict(cat *gamedata.Catalog, inst run.CardInstance, comp Composition) (RemovalPriority, string) {
	card, known := cat.Card(inst.CardID)
	if !known {
		return Keep, "Unrecognized card; leaving it alone"
	}

	switch card.Type {
	case gamedata.TypeCurse:
		return MustRemove, "Curses are pure dead weight"
	case gamedata.TypeStatus:
		return MustRemove, "Statuses clog every draw they appear in"
	}

	if card.HasTag("basic") {
		if comp.Size > SmallDeckSize {
			return ShouldRemove, "Basic cards dilute a deck this size"
		}
		return Keep, "Basics still carry their weight in a small deck"
	}

	if card.Tier <= LowTierCeiling {
		if comp.CardCopies[card.ID] >= DuplicateCopies {
			return ShouldRemove, "Extra copies of a weak card add little"
		}
		if !hasActiveSynergy(card, comp) {
			return ShouldRemove, "Weak card with nothing in the deck to play off"
		}
	}

	return Keep, "Pulling its weight"
}

// hasActiveSynergy reports whether any of the card's synergy partners is
// already in the deck.
func hasActiveSynergy(card gamedata.Card, comp Composition) bool {
	for _, syn := range card.Synergies {
		if comp.Contains(syn) {
			return true
		}
	}
	return false
}
