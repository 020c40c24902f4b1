package advisor

import (
	"fmt"
	"sort"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// CardEvaluation is the engine's advice for a single candidate card.
type CardEvaluation struct {
	CardID        string   `json:"cardId"`
	Name          string   `json:"name"`
	Rating        float64  `json:"rating"` // 0-5
	Priority      Priority `json:"priority"`
	PrimaryReason string   `json:"primaryReason"`
	Reasons       []string `json:"reasons"`
}

// scoredReason pairs a reason string with the weight of the factor that
// produced it, so the dominant factor surfaces as the primary reason.
type scoredReason struct {
	text   string
	weight float64
}

// EvaluateCard scores a candidate card against the current deck and relics.
// It works identically whether the card is offered in a combat reward, a
// shop, or a boss reward. The relic list may be nil.
func EvaluateCard(cat *gamedata.Catalog, cardID string, deck []run.CardInstance, relicIDs []string) CardEvaluation {
	comp := Analyze(deck, cat)
	return evaluateCardWith(cat, cardID, comp, relicIDs)
}

func evaluateCardWith(cat *gamedata.Catalog, cardID string, comp Composition, relicIDs []string) CardEvaluation {
	card, known := cat.Card(cardID)

	var reasons []scoredReason
	var rating float64

	if known {
		rating = float64(card.Tier)
		reasons = append(reasons, scoredReason{
			text:   fmt.Sprintf("%s is rated tier %d for %s", card.Name, card.Tier, card.Character),
			weight: rating,
		})
	} else {
		rating = NeutralCardTier
		card.ID = cardID
		card.Name = cardID
		reasons = append(reasons, scoredReason{
			text:   fmt.Sprintf("No data for %s; treating it as an average card", cardID),
			weight: rating,
		})
	}

	relicSet := make(map[string]bool, len(relicIDs))
	for _, id := range relicIDs {
		relicSet[id] = true
	}

	// Synergy bonuses with diminishing returns after the first couple of
	// active matches.
	matches := 0
	for _, syn := range card.Synergies {
		inDeck := comp.Contains(syn)
		inRelics := relicSet[syn]
		if !inDeck && !inRelics {
			continue
		}
		matches++
		bonus := SynergyBonus
		if matches > SynergyFullMatches {
			bonus = SynergyTailBonus
		}
		rating += bonus
		reasons = append(reasons, scoredReason{
			text:   fmt.Sprintf("Synergizes with %s already in your %s", displayName(cat, syn), sourceWord(inDeck)),
			weight: bonus,
		})
	}

	for _, anti := range card.AntiSynergies {
		if !comp.Contains(anti) && !relicSet[anti] {
			continue
		}
		rating -= AntiSynergyPenalty
		reasons = append(reasons, scoredReason{
			text:   fmt.Sprintf("Works against %s in your deck", displayName(cat, anti)),
			weight: -AntiSynergyPenalty,
		})
	}

	// Powers are strongest while the deck is lean enough to draw them early.
	if card.Type == gamedata.TypePower {
		if adj := powerSizeAdjustment(comp.Size); adj > 0 {
			rating += adj
			reasons = append(reasons, scoredReason{
				text:   "Powers shine in a small deck; you will draw it early",
				weight: adj,
			})
		} else if adj < 0 {
			rating += adj
			reasons = append(reasons, scoredReason{
				text:   fmt.Sprintf("Your %d-card deck will bury this power too often", comp.Size),
				weight: adj,
			})
		}
	}

	// A third copy of a mediocre card dilutes more than it adds.
	if known && card.Tier <= LowTierCeiling && comp.CardCopies[card.ID] >= DuplicateCopies {
		rating -= DuplicatePenalty
		reasons = append(reasons, scoredReason{
			text:   fmt.Sprintf("You already have %d copies of %s", comp.CardCopies[card.ID], card.Name),
			weight: -DuplicatePenalty,
		})
	}

	rating = clampRating(rating)
	priority := priorityForRating(rating)

	// Curses and statuses are never picks, whatever their arithmetic says.
	if card.Type == gamedata.TypeCurse || card.Type == gamedata.TypeStatus {
		if rating > CurseRatingCap {
			rating = CurseRatingCap
		}
		priority = Skip
		reasons = append(reasons, scoredReason{
			text:   fmt.Sprintf("%s is dead weight in your deck; never take it by choice", card.Name),
			weight: -MaxRating,
		})
	}

	return CardEvaluation{
		CardID:        cardID,
		Name:          card.Name,
		Rating:        rating,
		Priority:      priority,
		PrimaryReason: primaryReason(reasons),
		Reasons:       reasonTexts(reasons),
	}
}

// powerSizeAdjustment ramps the power-card deck-size adjustment one
// PowerSizeStep per card outside the small/large band, capped at
// PowerEarlyBonus either way.
func powerSizeAdjustment(size int) float64 {
	switch {
	case size < SmallDeckSize:
		bonus := PowerSizeStep * float64(SmallDeckSize-size)
		if bonus > PowerEarlyBonus {
			bonus = PowerEarlyBonus
		}
		return bonus
	case size > LargeDeckSize:
		penalty := PowerSizeStep * float64(size-LargeDeckSize)
		if penalty > PowerEarlyBonus {
			penalty = PowerEarlyBonus
		}
		return -penalty
	default:
		return 0
	}
}

// primaryReason returns the reason behind the largest-magnitude factor.
// Ties keep the earliest factor, so output is stable across calls.
func primaryReason(reasons []scoredReason) string {
	if len(reasons) == 0 {
		return ""
	}
	best := 0
	for i, r := range reasons {
		if abs(r.weight) > abs(reasons[best].weight) {
			best = i
		}
	}
	return reasons[best].text
}

// reasonTexts orders reasons by descending factor magnitude, stable on ties.
func reasonTexts(reasons []scoredReason) []string {
	sorted := make([]scoredReason, len(reasons))
	copy(sorted, reasons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return abs(sorted[i].weight) > abs(sorted[j].weight)
	})
	texts := make([]string, len(sorted))
	for i, r := range sorted {
		texts[i] = r.text
	}
	return texts
}

func displayName(cat *gamedata.Catalog, id string) string {
	if card, ok := cat.Card(id); ok {
		return card.Name
	}
	if relic, ok := cat.Relic(id); ok {
		return relic.Name
	}
	return id
}

func sourceWord(inDeck bool) string {
	if inDeck {
		return "deck"
	}
	return "relics"
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
