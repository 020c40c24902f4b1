package advisor

import (
	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// Composition summarizes a deck for the evaluators. It is recomputed in full
// on every call; decks are small enough that incremental state isn't worth
// the bookkeeping.
type Composition struct {
	Size        int
	TypeCounts  map[gamedata.CardType]int
	AverageCost float64
	TagCounts   map[string]int

	// CardCopies maps card id to copy count for synergy lookups. Duplicates
	// are counted, not deduplicated.
	CardCopies map[string]int

	AttackCount  int
	BlockCards   int
	DrawCards    int
	ScalingCards int
	AOECards     int
	CurseCount   int
	StatusCount  int
	BasicCount   int

	// CheapCount is the number of playable cards costing 0 or 1 energy.
	CheapCount int
}

// Analyze computes a composition summary over a deck. Unknown card ids are
// counted toward size and copies but contribute nothing else.
func Analyze(deck []run.CardInstance, cat *gamedata.Catalog) Composition {
	comp := Composition{
		TypeCounts: make(map[gamedata.CardType]int),
		TagCounts:  make(map[string]int),
		CardCopies: make(map[string]int),
	}

	totalCost := 0
	costed := 0

	for _, inst := range deck {
		comp.Size++
		comp.CardCopies[inst.CardID]++

		card, ok := cat.Card(inst.CardID)
		if !ok {
			continue
		}

		comp.TypeCounts[card.Type]++
		switch card.Type {
		case gamedata.TypeAttack:
			comp.AttackCount++
		case gamedata.TypeCurse:
			comp.CurseCount++
		case gamedata.TypeStatus:
			comp.StatusCount++
		}

		for _, tag := range card.Tags {
			comp.TagCounts[tag]++
		}
		if card.HasTag("block") {
			comp.BlockCards++
		}
		if card.HasTag("draw") {
			comp.DrawCards++
		}
		if card.HasTag("scaling") {
			comp.ScalingCards++
		}
		if card.HasTag("aoe") {
			comp.AOECards++
		}
		if card.HasTag("basic") {
			comp.BasicCount++
		}

		// Cost -1 is an X cost, -2 unplayable; only fixed costs shape the curve.
		if card.Cost >= 0 {
			totalCost += card.Cost
			costed++
			if card.Cost <= 1 {
				comp.CheapCount++
			}
		}
	}

	if costed > 0 {
		comp.AverageCost = float64(totalCost) / float64(costed)
	}

	return comp
}

// Contains reports whether at least one copy of a card id is in the deck.
func (c Composition) Contains(cardID string) bool {
	return c.CardCopies[cardID] > 0
}

// CheapRatio returns the fraction of the deck costing at most 1 energy.
func (c Composition) CheapRatio() float64 {
	if c.Size == 0 {
		return 0
	}
	return float64(c.CheapCount) / float64(c.Size)
}
