package advisor

import (
	"fmt"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// bossRelicRule decides a priority and reason for one specific boss relic.
// Each rule is independent so it can be tested in isolation.
type bossRelicRule func(comp Composition, st *run.State) (Priority, string)

// bossRelicRules maps boss relic identifiers to their dedicated rules. Boss
// relics carry trade-offs too large for the generic grade-plus-synergy
// formula, so each mapped relic gets bespoke composition checks. Unmapped
// boss relics fall back to a neutral situational verdict.
var bossRelicRules = map[string]bossRelicRule{
	"velvet_choker": func(comp Composition, st *run.State) (Priority, string) {
		if comp.CheapRatio() > CheapCardRatio {
			return Skip, fmt.Sprintf("Over %d%% of your deck costs 0-1; the 6-card cap will choke your turns", int(CheapCardRatio*100))
		}
		return GoodPick, "Your deck plays few cards per turn, so the energy is nearly free"
	},
	"snecko_eye": func(comp Composition, st *run.State) (Priority, string) {
		if comp.AverageCost >= HighAverageCost && comp.DrawCards <= 2 {
			return MustPick, "Your curve is expensive and your draw is thin; cost scramble plus 2 draw is a huge win"
		}
		if comp.AverageCost >= HighAverageCost {
			return GoodPick, "An expensive curve makes the cost scramble profitable on average"
		}
		if comp.CheapRatio() > CheapCardRatio {
			return Skip, "A deck of 0-1 cost cards has everything to lose from randomized costs"
		}
		return SituationalPick, "Cost scramble is close to even for a mid-cost deck; take it for the draw if you lack card flow"
	},
	"runic_dome": func(comp Composition, st *run.State) (Priority, string) {
		if comp.BlockCards*3 < comp.Size {
			return Skip, "You already block rarely; losing intents makes every attack turn a gamble"
		}
		return SituationalPick, "Playable if you block proactively, but you will eat surprise hits"
	},
	"coffee_dripper": func(comp Composition, st *run.State) (Priority, string) {
		if st.HPRatio() < CautionHPRatio {
			return SituationalPick, "You are too hurt to give up resting; only take it with healing elsewhere"
		}
		return GoodPick, "Energy for rest sites is a strong trade while your HP is healthy"
	},
	"fusion_hammer": func(comp Composition, st *run.State) (Priority, string) {
		if comp.Size >= LargeDeckSize {
			return SituationalPick, "A big deck still wants many upgrades; losing the smith hurts"
		}
		return GoodPick, "A lean deck runs out of key upgrades quickly, so the smith costs little"
	},
	"philosophers_stone": func(comp Composition, st *run.State) (Priority, string) {
		if comp.BlockCards*4 < comp.Size {
			return Skip, "Enemy Strength punishes a deck this light on block"
		}
		return SituationalPick, "The energy is real, but every fight starts harder; you can absorb it"
	},
	"cursed_key": func(comp Composition, st *run.State) (Priority, string) {
		if comp.CurseCount > 0 {
			return SituationalPick, "More curses on top of the ones you carry compounds the problem"
		}
		return GoodPick, "Energy now, curses only if you open chests; you control the downside"
	},
	"ectoplasm": func(comp Composition, st *run.State) (Priority, string) {
		if st.Act() >= 2 {
			return Skip, "Too little run left for the energy to repay all the lost gold"
		}
		if st.Gold >= 200 {
			return SituationalPick, "A large current purse softens the gold freeze, barely"
		}
		return Skip, "No gold means no shops, no removals, and no potions for two acts"
	},
	"sozu": func(comp Composition, st *run.State) (Priority, string) {
		if len(st.Potions) > 0 {
			return GoodPick, "You keep the potions you hold; the energy is worth the future ones"
		}
		return GoodPick, "Potions are a luxury; a permanent energy is not"
	},
	"busted_crown": func(comp Composition, st *run.State) (Priority, string) {
		if comp.Size <= SmallDeckSize {
			return GoodPick, "A tight deck wants few new cards anyway; the choice tax barely bites"
		}
		return SituationalPick, "Fewer card choices makes fixing this deck's gaps harder"
	},
	"pandoras_box": func(comp Composition, st *run.State) (Priority, string) {
		if comp.BasicCount >= 8 {
			return MustPick, fmt.Sprintf("Transforming %d Strikes and Defends is a whole new deck for free", comp.BasicCount)
		}
		if comp.BasicCount >= 5 {
			return GoodPick, "A solid pile of basics to convert into real cards"
		}
		return SituationalPick, "Few basics left to transform; the value is modest"
	},
	"astrolabe": func(comp Composition, st *run.State) (Priority, string) {
		return GoodPick, "Three random transforms plus upgrades is reliable value in any deck"
	},
	"black_star": func(comp Composition, st *run.State) (Priority, string) {
		if st.HPRatio() >= HealthyHPRatio {
			return GoodPick, "You are healthy enough to hunt elites for double relics"
		}
		return SituationalPick, "Double elite relics only pay if you can actually fight elites"
	},
	"sacred_bark": func(comp Composition, st *run.State) (Priority, string) {
		if len(st.Potions) >= 2 {
			return GoodPick, "Doubling the potions you already hold is immediate value"
		}
		return SituationalPick, "Strong with a full belt, mediocre with an empty one"
	},
	"tiny_house": func(comp Composition, st *run.State) (Priority, string) {
		return Skip, "A grab bag of small bonuses is the weakest thing a boss can offer"
	},
	"calling_bell": func(comp Composition, st *run.State) (Priority, string) {
		return Skip, "The permanent curse outweighs three random relics more often than not"
	},
	"empty_cage": func(comp Composition, st *run.State) (Priority, string) {
		if comp.CurseCount+comp.BasicCount >= 2 {
			return GoodPick, "Two removals with obvious targets tightens the deck immediately"
		}
		return SituationalPick, "Removal is good, but your deck has few obvious cuts"
	},
	"runic_pyramid": func(comp Composition, st *run.State) (Priority, string) {
		return MustPick, "Keeping your hand every turn is among the strongest effects in the game"
	},
	"black_blood":         starterUpgradeRule("Burning Blood"),
	"ring_of_the_serpent": starterUpgradeRule("Ring of the Snake"),
	"frozen_core":         starterUpgradeRule("Cracked Core"),
	"holy_water":          starterUpgradeRule("Pure Water"),
}

func starterUpgradeRule(starter string) bossRelicRule {
	return func(comp Composition, st *run.State) (Priority, string) {
		return GoodPick, fmt.Sprintf("A strict upgrade over %s with no drawback", starter)
	}
}

// EvaluateBossRelic scores a boss relic via its per-identifier rule. Relics
// without a mapped rule get the mandatory neutral fallback, never an error.
func EvaluateBossRelic(cat *gamedata.Catalog, relicID string, st *run.State) RelicEvaluation {
	comp := Analyze(st.Deck, cat)

	name := relicID
	if relic, ok := cat.Relic(relicID); ok {
		name = relic.Name
	}

	rule, ok := bossRelicRules[relicID]
	if !ok {
		return RelicEvaluation{
			RelicID:  relicID,
			Name:     name,
			Rating:   neutralRelicRating,
			Priority: SituationalPick,
			Reason:   fmt.Sprintf("No specific guidance for %s; weigh its drawback against your deck yourself", name),
		}
	}

	priority, reason := rule(comp, st)
	return RelicEvaluation{
		RelicID:  relicID,
		Name:     name,
		Rating:   ratingForPriority(priority),
		Priority: priority,
		Reason:   reason,
	}
}

// ratingForPriority maps a bucket back to a representative rating so boss
// relic advice carries a number consistent with the shared breakpoints.
func ratingForPriority(p Priority) float64 {
	switch p {
	case MustPick:
		return 4.5
	case GoodPick:
		return 3.5
	case SituationalPick:
		return 2.5
	default:
		return 1.0
	}
}
