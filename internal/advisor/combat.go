package advisor

import (
	"fmt"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// CombatReport is the engine's readiness assessment for a specific encounter.
type CombatReport struct {
	MonsterID       string   `json:"monsterId"`
	MonsterName     string   `json:"monsterName"`
	Verdict         Verdict  `json:"verdict"`
	Strengths       []string `json:"strengths,omitempty"`
	Weaknesses      []string `json:"weaknesses,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	PotionTips      []string `json:"potionTips,omitempty"`
	TacticalTips    []string `json:"tacticalTips,omitempty"`
}

// tacticalNotes holds hard-coded strategy tips keyed by monster identifier.
// Monsters without an entry fall back to the catalog's strategy text.
var tacticalNotes = map[string][]string{
	"gremlin_nob": {
		"Play attacks, not skills; every skill feeds Enrage",
		"If you must block, do it turn one before Enrage stacks",
	},
	"lagavulin": {
		"He sleeps three turns; use them to set up powers and scaling",
		"Waking him early with chip damage wastes your free turns",
	},
	"three_sentries": {
		"Kill the middle sentry first to break the stun rotation",
		"AOE turns this from a slog into a cleanup",
	},
	"the_guardian": {
		"Count damage into Mode Shift; stop attacking into Sharp Hide",
		"Bank block for Fierce Bash; it hits for more than 30",
	},
	"hexaghost": {
		"Turn 2's Divider scales with your current HP; entering hurt is safer than it looks",
		"Burns pile up late; win before your deck clogs",
	},
	"slime_boss": {
		"Burst through the split threshold so the halves spawn small",
		"Keep AOE in hand for the post-split board",
	},
	"time_eater": {
		"Every card played feeds Time Warp; fewer, bigger plays win",
		"Plan for the mid-fight heal; don't spend potions before it",
	},
	"awakened_one": {
		"Play powers before entering this fight, never during it",
		"Phase two is a pure race; keep burst for the revive",
	},
	"giant_head": {
		"It Is Time grows without limit; you must win before turn 8",
	},
	"nemesis": {
		"Hold big attacks for non-Intangible turns; use chip hits otherwise",
	},
	"reptomancer": {
		"Daggers must die the turn they spawn or they explode on you",
	},
	"corrupt_heart": {
		"Beat of Death taxes every card; efficient turns beat long ones",
		"The status flood arrives turn one; draw and exhaust answers shine",
	},
}

// AssessCombat scores the current kit against one monster's stat block.
// Unknown monster identifiers get a generic assessment rather than an error.
func AssessCombat(cat *gamedata.Catalog, monsterID string, st *run.State) CombatReport {
	monster, known := cat.Monster(monsterID)
	if !known {
		monster = gamedata.Monster{
			ID:   monsterID,
			Name: monsterID,
			Requirements: gamedata.DeckRequirements{
				DamagePerTurn: 10,
				BlockPerTurn:  8,
			},
		}
	}

	comp := Analyze(st.Deck, cat)
	report := CombatReport{
		MonsterID:   monster.ID,
		MonsterName: monster.Name,
		Verdict:     Ready,
	}

	unmet := 0

	// Damage capability: attacks plus damage-scaling tags, roughly scaled
	// per card, against the monster's declared demand.
	damage := estimateDamagePerTurn(comp)
	if damage >= monster.Requirements.DamagePerTurn {
		report.Strengths = append(report.Strengths,
			fmt.Sprintf("Enough damage (~%d/turn) to meet %s's pace", damage, monster.Name))
	} else {
		unmet++
		report.Weaknesses = append(report.Weaknesses,
			fmt.Sprintf("Damage (~%d/turn) falls short of the ~%d this fight demands", damage, monster.Requirements.DamagePerTurn))
		report.Recommendations = append(report.Recommendations, "Add damage before taking this fight, or route around it")
	}

	block := estimateBlockPerTurn(comp)
	if monster.Requirements.BlockPerTurn > 0 {
		if comp.BlockCards == 0 {
			unmet += 2 // no mitigation at all is disqualifying, not just short
			report.Weaknesses = append(report.Weaknesses,
				fmt.Sprintf("No block cards at all against %s's attack pattern", monster.Name))
			report.Recommendations = append(report.Recommendations, "You cannot face-tank this; pick up block cards first")
		} else if block >= monster.Requirements.BlockPerTurn {
			report.Strengths = append(report.Strengths,
				fmt.Sprintf("Mitigation (~%d/turn) covers the expected hits", block))
		} else {
			unmet++
			report.Weaknesses = append(report.Weaknesses,
				fmt.Sprintf("Block (~%d/turn) is under the ~%d this pattern threatens", block, monster.Requirements.BlockPerTurn))
		}
	}

	if monster.Requirements.WantsAOE {
		if comp.AOECards > 0 {
			report.Strengths = append(report.Strengths, "AOE on hand for the multi-enemy turns")
		} else {
			unmet++
			report.Weaknesses = append(report.Weaknesses, "No AOE for a fight that spawns multiple enemies")
		}
	}

	if monster.Requirements.WantsScaling {
		if comp.ScalingCards > 0 {
			report.Strengths = append(report.Strengths, "Scaling keeps you ahead in this long fight")
		} else {
			unmet++
			report.Weaknesses = append(report.Weaknesses, "No scaling; this fight outlasts flat damage")
		}
	}

	// Verdict: unmet requirements set the floor; HP ratio can only worsen it.
	switch {
	case unmet >= 2:
		report.Verdict = Danger
	case unmet == 1:
		report.Verdict = Caution
	}

	hpRatio := st.HPRatio()
	switch {
	case hpRatio < DangerHPRatio:
		report.Verdict = Danger
		report.Weaknesses = append(report.Weaknesses,
			fmt.Sprintf("At %d/%d HP you cannot afford a bad turn", st.CurrentHP, st.MaxHP))
	case hpRatio < CautionHPRatio:
		report.Verdict = worse(report.Verdict, Caution)
		report.Weaknesses = append(report.Weaknesses, "Entering below half HP narrows your margin for error")
	}

	report.PotionTips = potionTips(cat, st, monster)

	if tips, ok := tacticalNotes[monster.ID]; ok {
		report.TacticalTips = tips
	} else if monster.Strategy != "" {
		report.TacticalTips = []string{monster.Strategy}
	} else {
		report.TacticalTips = []string{"Scout the attack pattern on turn one before committing your energy"}
	}

	return report
}

// estimateDamagePerTurn approximates sustainable damage from composition
// facts. Coarse on purpose; it feeds threshold comparisons, not simulations.
func estimateDamagePerTurn(comp Composition) int {
	if comp.Size == 0 {
		return 0
	}
	// Roughly: a third of the deck is in hand, attacks average ~8 damage.
	perTurnAttacks := float64(comp.AttackCount) / float64(comp.Size) * 5
	damage := perTurnAttacks * 8
	damage += float64(comp.TagCounts["strength"]+comp.TagCounts["poison"]+comp.TagCounts["lightning"]) * 2
	return int(damage)
}

// estimateBlockPerTurn approximates sustainable block the same way.
func estimateBlockPerTurn(comp Composition) int {
	if comp.Size == 0 {
		return 0
	}
	perTurnBlocks := float64(comp.BlockCards) / float64(comp.Size) * 5
	return int(perTurnBlocks * 7)
}

// potionTips suggests when to spend held potions for this fight.
func potionTips(cat *gamedata.Catalog, st *run.State, monster gamedata.Monster) []string {
	var tips []string
	hard := monster.Difficulty == "elite" || monster.Difficulty == "boss"
	for _, id := range st.Potions {
		potion, ok := cat.Potion(id)
		if !ok {
			continue
		}
		if hard {
			tips = append(tips, fmt.Sprintf("%s: %s", potion.Name, potion.Usage))
		}
	}
	if hard && len(tips) == 0 {
		tips = append(tips, "No potions held; consider buying one before an elite or boss")
	}
	return tips
}
