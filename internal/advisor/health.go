package advisor

import (
	"fmt"
	"sort"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// CategoryScore is one independent deck-health dimension.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"` // 0-100
	Comment  string `json:"comment"`
}

// HealthReport grades the whole deck.
type HealthReport struct {
	Grade            string          `json:"grade"` // S/A/B/C/D/F
	Score            int             `json:"score"` // 0-100
	ProjectedWinRate int             `json:"projectedWinRate"` // percent
	Categories       []CategoryScore `json:"categories"`
	CriticalIssues   []string        `json:"criticalIssues,omitempty"`
	Recommendations  []string        `json:"recommendations"`
}

// healthCategories fixes the category identities, evaluation order, and
// weights. Output ordering follows this table so identical inputs render
// identically.
var healthCategories = []struct {
	name   string
	weight int
	score  func(comp Composition, st *run.State, cat *gamedata.Catalog) (int, string)
	advice string
}{
	{"damage", DamageWeight, scoreDamage, "Add reliable attacks or a frontloaded damage package"},
	{"defense", DefenseWeight, scoreDefense, "Pick up block cards; unblocked chip damage loses runs slowly"},
	{"consistency", ConsistencyWeight, scoreConsistency, "Lower your curve or add card draw so turns line up"},
	{"scaling", ScalingWeight, scoreScaling, "Find a scaling engine before the long boss fights"},
	{"synergy", SynergyWeight, scoreSynergy, "Commit to an archetype; scattered good cards lose to a focused deck"},
}

// AnalyzeHealth computes the category scores, weighted overall score, letter
// grade, and projected win rate for the run's deck. Harder ascensions raise
// the bar each category is judged against.
func AnalyzeHealth(cat *gamedata.Catalog, st *run.State) HealthReport {
	comp := Analyze(st.Deck, cat)

	report := HealthReport{}
	weighted := 0

	for _, hc := range healthCategories {
		score, comment := hc.score(comp, st, cat)
		score = clampScore(score)
		report.Categories = append(report.Categories, CategoryScore{
			Category: hc.name,
			Score:    score,
			Comment:  comment,
		})
		weighted += score * hc.weight

		if score < CriticalCategoryScore {
			report.CriticalIssues = append(report.CriticalIssues,
				fmt.Sprintf("%s scores %d/100: %s", hc.name, score, comment))
		}
	}

	report.Score = clampScore(weighted / 100)
	report.Grade = gradeForScore(report.Score)
	report.ProjectedWinRate = projectedWinRate(report.Score)
	report.Recommendations = topRecommendations(report.Categories)

	return report
}

// gradeForScore maps the overall score to a letter grade. The breakpoints
// partition [0,100] with no gaps or overlaps.
func gradeForScore(score int) string {
	switch {
	case score >= GradeSFloor:
		return "S"
	case score >= GradeAFloor:
		return "A"
	case score >= GradeBFloor:
		return "B"
	case score >= GradeCFloor:
		return "C"
	case score >= GradeDFloor:
		return "D"
	default:
		return "F"
	}
}

// projectedWinRate is a monotone heuristic over the overall score, not a
// fitted model. It maps 0 to 5% and 100 to 90%.
func projectedWinRate(score int) int {
	return 5 + score*85/100
}

// topRecommendations returns advice for the two weakest categories. Ties are
// broken by the fixed category order, keeping output stable.
func topRecommendations(categories []CategoryScore) []string {
	idx := make([]int, len(categories))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return categories[idx[a]].Score < categories[idx[b]].Score
	})

	var recs []string
	for i := 0; i < 2 && i < len(idx); i++ {
		recs = append(recs, healthCategories[idx[i]].advice)
	}
	return recs
}

// ascensionBar scales a requirement up with ascension level. Level 0 returns
// base; level 20 returns base*1.4.
func ascensionBar(base float64, ascension int) float64 {
	return base * (1 + float64(ascension)*0.02)
}

func scoreDamage(comp Composition, st *run.State, cat *gamedata.Catalog) (int, string) {
	if comp.Size == 0 {
		return 0, "No deck to deal damage with"
	}
	ratio := float64(comp.AttackCount) / float64(comp.Size)
	needed := ascensionBar(0.35, st.AscensionLevel)

	score := int(ratio / needed * 70)
	if comp.AOECards > 0 {
		score += 15
	}
	if comp.AOECards >= 2 {
		score += 5
	}
	if comp.TagCounts["strength"] > 0 || comp.TagCounts["poison"] > 0 || comp.TagCounts["lightning"] > 0 {
		score += 10
	}

	switch {
	case score >= 80:
		return score, "Damage output looks strong, including multi-enemy fights"
	case comp.AOECards == 0:
		return score, "Single-target damage only; packs of enemies will bleed you"
	case score >= 50:
		return score, "Serviceable damage, but elites will take long fights"
	default:
		return score, "Not enough attacks to close fights before they close you"
	}
}

func scoreDefense(comp Composition, st *run.State, cat *gamedata.Catalog) (int, string) {
	if comp.Size == 0 {
		return 0, "No deck to block with"
	}
	ratio := float64(comp.BlockCards) / float64(comp.Size)
	needed := ascensionBar(0.25, st.AscensionLevel)

	score := int(ratio / needed * 80)
	if comp.TagCounts["block"] >= 5 {
		score += 10
	}

	switch {
	case score >= 80:
		return score, "Plenty of mitigation for sustained fights"
	case score >= 50:
		return score, "Enough block for normal fights; big boss turns will still hurt"
	default:
		return score, "Too little block; every fight costs HP you cannot spare"
	}
}

func scoreConsistency(comp Composition, st *run.State, cat *gamedata.Catalog) (int, string) {
	if comp.Size == 0 {
		return 0, "No deck to draw from"
	}

	score := 60

	// Curve: average cost much past ~1.7 starves turns without energy relics.
	switch {
	case comp.AverageCost <= 1.3:
		score += 15
	case comp.AverageCost <= 1.7:
		score += 5
	case comp.AverageCost >= 2.2:
		score -= 20
	}

	score += comp.DrawCards * 6
	score -= (comp.CurseCount + comp.StatusCount) * 8

	if comp.Size > 30 {
		score -= (comp.Size - 30) * 2
	}

	switch {
	case score >= 80:
		return score, "Lean curve and real card flow; the deck shows up every turn"
	case comp.CurseCount+comp.StatusCount > 0:
		return score, fmt.Sprintf("%d dead cards are diluting your draws", comp.CurseCount+comp.StatusCount)
	case comp.DrawCards == 0:
		return score, "No card draw; you are at the mercy of topdecks"
	default:
		return score, "Curve and draw are workable but not smooth"
	}
}

func scoreScaling(comp Composition, st *run.State, cat *gamedata.Catalog) (int, string) {
	base := 20
	switch comp.ScalingCards {
	case 0:
		base = 20
	case 1:
		base = 50
	case 2:
		base = 70
	default:
		base = 85 + (comp.ScalingCards-3)*5
	}

	// Later acts mean longer fights; a deck without scaling falls further
	// behind the deeper the run goes.
	if st.Act() >= 2 && comp.ScalingCards == 0 {
		base -= 10
	}

	if comp.ScalingCards == 0 {
		return base, "No scaling engine; long fights will outpace flat numbers"
	}
	return base, fmt.Sprintf("%d scaling cards give the deck a late-fight plan", comp.ScalingCards)
}

func scoreSynergy(comp Composition, st *run.State, cat *gamedata.Catalog) (int, string) {
	matches := DetectArchetypes(cat, stubDeck(comp), st.Character)
	if len(matches) == 0 {
		return 30, "No coherent archetype detected yet"
	}
	top := matches[0]
	score := 40 + top.Strength*6/10
	return score, fmt.Sprintf("Building toward %s (%d%% assembled)", top.Name, top.Strength)
}

// stubDeck reconstructs a one-instance-per-copy deck from a composition so
// synergy scoring can reuse the archetype detector without re-walking the
// original instance list.
func stubDeck(comp Composition) []run.CardInstance {
	ids := make([]string, 0, len(comp.CardCopies))
	for id := range comp.CardCopies {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var deck []run.CardInstance
	for _, id := range ids {
		for i := 0; i < comp.CardCopies[id]; i++ {
			deck = append(deck, run.CardInstance{InstanceID: fmt.Sprintf("%s#%d", id, i), CardID: id})
		}
	}
	return deck
}
