package advisor

import (
	"fmt"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// RelicEvaluation is the engine's advice for a candidate relic.
type RelicEvaluation struct {
	RelicID         string   `json:"relicId"`
	Name            string   `json:"name"`
	Rating          float64  `json:"rating"` // 0-5
	Priority        Priority `json:"priority"`
	Reason          string   `json:"reason"`
	ActiveSynergies []string `json:"activeSynergies,omitempty"`
	AntiSynergies   []string `json:"antiSynergies,omitempty"`
}

// gradeRatings converts a relic's letter grade to the 0-5 rating scale the
// breakpoints operate on.
var gradeRatings = map[string]float64{
	"S": 5.0,
	"A": 4.2,
	"B": 3.4,
	"C": 2.6,
	"D": 1.8,
	"F": 1.0,
}

// neutralRelicRating is the base for unknown relics and unknown grades.
const neutralRelicRating = 2.5

// EvaluateRelic scores a candidate relic against the current deck. It mirrors
// the card evaluator's synergy accumulation but starts from the relic's
// letter grade.
func EvaluateRelic(cat *gamedata.Catalog, relicID string, deck []run.CardInstance) RelicEvaluation {
	comp := Analyze(deck, cat)
	relic, known := cat.Relic(relicID)

	if !known {
		return RelicEvaluation{
			RelicID:  relicID,
			Name:     relicID,
			Rating:   neutralRelicRating,
			Priority: SituationalPick,
			Reason:   fmt.Sprintf("No data for %s; take it if nothing else appeals", relicID),
		}
	}

	rating := relic.Rating
	if rating == 0 {
		var ok bool
		rating, ok = gradeRatings[relic.Grade]
		if !ok {
			rating = neutralRelicRating
		}
	}

	eval := RelicEvaluation{
		RelicID: relicID,
		Name:    relic.Name,
	}

	matches := 0
	for _, syn := range relic.Synergies {
		if !comp.Contains(syn) {
			continue
		}
		matches++
		if matches <= SynergyFullMatches {
			rating += SynergyBonus
		} else {
			rating += SynergyTailBonus
		}
		eval.ActiveSynergies = append(eval.ActiveSynergies, displayName(cat, syn))
	}

	for _, anti := range relic.AntiSynergies {
		if !comp.Contains(anti) {
			continue
		}
		rating -= AntiSynergyPenalty
		eval.AntiSynergies = append(eval.AntiSynergies, displayName(cat, anti))
	}

	eval.Rating = clampRating(rating)
	eval.Priority = priorityForRating(eval.Rating)
	eval.Reason = relicReason(relic, eval)
	return eval
}

func relicReason(relic gamedata.Relic, eval RelicEvaluation) string {
	switch {
	case len(eval.AntiSynergies) > 0 && eval.Priority >= SituationalPick:
		return fmt.Sprintf("%s undercuts %s in your deck", relic.Name, eval.AntiSynergies[0])
	case len(eval.ActiveSynergies) >= SynergyFullMatches:
		return fmt.Sprintf("%s feeds your %s package", relic.Name, eval.ActiveSynergies[0])
	case len(eval.ActiveSynergies) == 1:
		return fmt.Sprintf("%s works well with %s", relic.Name, eval.ActiveSynergies[0])
	case eval.Priority == MustPick:
		return fmt.Sprintf("%s is a premium relic in nearly any deck", relic.Name)
	case eval.Priority == Skip:
		return fmt.Sprintf("%s rarely earns its slot", relic.Name)
	default:
		return fmt.Sprintf("%s is a solid generic pickup", relic.Name)
	}
}
