package advisor

import (
	"fmt"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// Importance ranks how badly a boss requirement needs to be satisfied.
type Importance int

const (
	Critical Importance = iota
	Important
	Recommended
)

func (i Importance) String() string {
	switch i {
	case Critical:
		return "critical"
	case Important:
		return "important"
	default:
		return "recommended"
	}
}

// MarshalText renders the importance for JSON output.
func (i Importance) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Requirement is one line of the boss preparation checklist.
type Requirement struct {
	Description string     `json:"description"`
	Importance  Importance `json:"importance"`
	Met         bool       `json:"met"`
}

// BossReport is the engine's preparation checklist for the act boss.
type BossReport struct {
	BossID          string        `json:"bossId"`
	BossName        string        `json:"bossName"`
	FloorsUntilBoss int           `json:"floorsUntilBoss"`
	Verdict         Verdict       `json:"verdict"`
	Requirements    []Requirement `json:"requirements"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

// PrepareForBoss builds a readiness checklist for the upcoming act boss.
// When the run state does not name the boss, the first boss of the act in
// identifier order stands in so output stays deterministic.
func PrepareForBoss(cat *gamedata.Catalog, st *run.State) BossReport {
	act := st.Act()
	boss := upcomingBoss(cat, st, act)

	report := BossReport{
		BossID:          boss.ID,
		BossName:        boss.Name,
		FloorsUntilBoss: run.FloorsUntilBoss(st.Floor),
	}

	comp := Analyze(st.Deck, cat)
	critical, important := 0, 0

	add := func(desc string, imp Importance, met bool, fix string) {
		report.Requirements = append(report.Requirements, Requirement{
			Description: desc,
			Importance:  imp,
			Met:         met,
		})
		if met {
			return
		}
		switch imp {
		case Critical:
			critical++
		case Important:
			important++
		}
		if fix != "" {
			report.Recommendations = append(report.Recommendations, fix)
		}
	}

	damage := estimateDamagePerTurn(comp)
	add(fmt.Sprintf("Sustain ~%d damage per turn", boss.Requirements.DamagePerTurn),
		Critical, damage >= boss.Requirements.DamagePerTurn,
		"Prioritize damage at the next few rewards")

	if boss.Requirements.BlockPerTurn > 0 {
		block := estimateBlockPerTurn(comp)
		add(fmt.Sprintf("Sustain ~%d block per turn", boss.Requirements.BlockPerTurn),
			Critical, comp.BlockCards > 0 && block >= boss.Requirements.BlockPerTurn/2,
			"Pick up mitigation; this boss punishes naked turns")
	}

	if boss.Requirements.WantsAOE {
		add("Carry area damage for the adds", Important, comp.AOECards > 0,
			"Take an AOE card before the boss floor")
	}
	if boss.Requirements.WantsScaling {
		add("Carry scaling for a long fight", Important, comp.ScalingCards > 0,
			"A single scaling card changes this matchup")
	}

	healthy := st.HPRatio() >= HealthyHPRatio
	add(fmt.Sprintf("Enter above %d%% HP", int(HealthyHPRatio*100)),
		Important, healthy,
		restRecommendation(st))

	add("Hold at least one potion", Recommended, len(st.Potions) > 0,
		"Buy a potion if a shop comes up")

	add(fmt.Sprintf("Trim dead cards (%d curses/statuses in deck)", comp.CurseCount+comp.StatusCount),
		Recommended, comp.CurseCount+comp.StatusCount == 0,
		"Spend a removal on a curse or status before the boss")

	switch {
	case critical > 0:
		report.Verdict = Danger
	case important > 0:
		report.Verdict = Caution
	default:
		report.Verdict = Ready
	}

	// The HP verdict rule is shared with combat readiness: low health
	// escalates no matter how complete the checklist is.
	if st.HPRatio() < DangerHPRatio {
		report.Verdict = Danger
	} else if st.HPRatio() < CautionHPRatio {
		report.Verdict = worse(report.Verdict, Caution)
	}

	if report.FloorsUntilBoss <= RestUrgencyFloors && !healthy {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Only %d floors left; route through a rest site now", report.FloorsUntilBoss))
	}

	return report
}

// upcomingBoss resolves which boss the checklist targets.
func upcomingBoss(cat *gamedata.Catalog, st *run.State, act int) gamedata.Monster {
	if st.NextBossID != "" {
		if m, ok := cat.Monster(st.NextBossID); ok {
			return m
		}
	}
	if bosses := cat.BossesForAct(act); len(bosses) > 0 {
		return bosses[0]
	}
	return gamedata.Monster{
		ID:   "unknown_boss",
		Name: "Unknown Boss",
		Requirements: gamedata.DeckRequirements{
			DamagePerTurn: 15,
			BlockPerTurn:  12,
		},
	}
}

func restRecommendation(st *run.State) string {
	if st.HPRatio() >= HealthyHPRatio {
		return ""
	}
	return fmt.Sprintf("Rest before the boss; %d/%d HP is not enough cushion", st.CurrentHP, st.MaxHP)
}
