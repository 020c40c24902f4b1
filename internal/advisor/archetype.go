package advisor

import (
	"sort"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// keyCardWeight is how much heavier a key card counts than a recommended
// card when scoring archetype strength.
const keyCardWeight = 3

// ArchetypeMatch is one detected build with its confidence.
type ArchetypeMatch struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Strength           int      `json:"strength"` // 0-100
	KeyCardsPresent    []string `json:"keyCardsPresent"`
	RecommendedPresent []string `json:"recommendedPresent,omitempty"`
	MissingKeyCards    []string `json:"missingKeyCards,omitempty"`
}

// DetectArchetypes pattern-matches the deck against the character's archetype
// definitions and returns qualifying builds ranked by strength. The first
// element is the "detected build" for summary contexts; an empty deck always
// yields an empty list.
func DetectArchetypes(cat *gamedata.Catalog, deck []run.CardInstance, ch gamedata.Character) []ArchetypeMatch {
	if len(deck) == 0 {
		return nil
	}

	comp := Analyze(deck, cat)

	var matches []ArchetypeMatch
	for _, def := range cat.ArchetypesFor(ch) {
		match, ok := scoreArchetype(def, comp)
		if ok {
			matches = append(matches, match)
		}
	}

	// Rank by strength, then key-card count, then name, so identical decks
	// always produce identical orderings.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Strength != matches[j].Strength {
			return matches[i].Strength > matches[j].Strength
		}
		if len(matches[i].KeyCardsPresent) != len(matches[j].KeyCardsPresent) {
			return len(matches[i].KeyCardsPresent) > len(matches[j].KeyCardsPresent)
		}
		return matches[i].Name < matches[j].Name
	})

	return matches
}

// PrimaryArchetype returns the strongest detected build, if any.
func PrimaryArchetype(cat *gamedata.Catalog, deck []run.CardInstance, ch gamedata.Character) (ArchetypeMatch, bool) {
	matches := DetectArchetypes(cat, deck, ch)
	if len(matches) == 0 {
		return ArchetypeMatch{}, false
	}
	return matches[0], true
}

// scoreArchetype computes one definition's strength. Presence is counted per
// distinct card id; copies signal commitment elsewhere, not here.
func scoreArchetype(def gamedata.ArchetypeDef, comp Composition) (ArchetypeMatch, bool) {
	match := ArchetypeMatch{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
	}

	for _, id := range def.KeyCards {
		if comp.Contains(id) {
			match.KeyCardsPresent = append(match.KeyCardsPresent, id)
		} else {
			match.MissingKeyCards = append(match.MissingKeyCards, id)
		}
	}
	for _, id := range def.RecommendedCards {
		if comp.Contains(id) {
			match.RecommendedPresent = append(match.RecommendedPresent, id)
		}
	}

	threshold := def.Threshold
	if threshold <= 0 {
		threshold = 1
	}
	if len(match.KeyCardsPresent) < threshold {
		return ArchetypeMatch{}, false
	}

	raw := keyCardWeight*len(match.KeyCardsPresent) + len(match.RecommendedPresent)
	max := keyCardWeight*len(def.KeyCards) + len(def.RecommendedCards)
	if max == 0 {
		return ArchetypeMatch{}, false
	}
	match.Strength = clampScore(raw * 100 / max)

	return match, true
}
