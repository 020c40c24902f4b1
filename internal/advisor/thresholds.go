package advisor

// Rating-to-priority breakpoints shared by the card, relic, and boss-relic
// evaluators. These are tuned product values; change them together or the
// cross-context consistency guarantee breaks.
const (
	MustPickRating    = 4.0
	GoodPickRating    = 3.0
	SituationalRating = 2.0

	// MaxRating and MinRating clamp every card/relic rating.
	MaxRating = 5.0
	MinRating = 0.0
)

// Card evaluator adjustment weights.
const (
	// SynergyBonus applies to each of the first SynergyFullMatches active
	// synergies; further matches earn the diminished tail bonus.
	SynergyBonus      = 0.4
	SynergyTailBonus  = 0.15
	SynergyFullMatches = 2

	AntiSynergyPenalty = 0.5

	// Power cards gain value while the deck is small and lose it once the
	// deck grows past the large threshold. The adjustment ramps in
	// PowerSizeStep increments per card, capped at PowerEarlyBonus.
	// PowerSizeStep must not exceed SynergyTailBonus: a deck growing by one
	// card along a synergy line always earns at least the tail bonus, so the
	// size adjustment alone can never lower a candidate's rating.
	PowerEarlyBonus    = 0.3
	PowerSizeStep      = 0.15
	SmallDeckSize      = 15
	LargeDeckSize      = 25

	// DuplicatePenalty applies when the deck already holds 2+ copies of a
	// low-tier card.
	DuplicatePenalty  = 0.4
	LowTierCeiling    = 2
	DuplicateCopies   = 2

	// NeutralCardTier is the base for unrecognized card identifiers.
	NeutralCardTier = 2.5

	// CurseRatingCap keeps curse and status cards below the situational
	// breakpoint regardless of authored tier.
	CurseRatingCap = 1.0
)

// HP-ratio thresholds shared by combat readiness, boss prep, event, and path
// advisors.
const (
	DangerHPRatio  = 0.25
	CautionHPRatio = 0.50
	HealthyHPRatio = 0.70
)

// Boss relic rules.
const (
	// CheapCardRatio is the fraction of the deck at cost <=1 above which
	// energy relics with play caps (Velvet Choker) stop paying off.
	CheapCardRatio = 0.60

	// HighAverageCost marks a deck that wants Snecko Eye's cost scramble.
	HighAverageCost = 1.8
)

// Deck health analyzer configuration: category weights (sum 100) and grade
// breakpoints over the 0-100 overall score.
const (
	DamageWeight      = 25
	DefenseWeight     = 25
	ConsistencyWeight = 20
	ScalingWeight     = 15
	SynergyWeight     = 15

	GradeSFloor = 90
	GradeAFloor = 80
	GradeBFloor = 65
	GradeCFloor = 50
	GradeDFloor = 35

	// CriticalCategoryScore marks a category as a critical issue.
	CriticalCategoryScore = 40
)

// Path advisor thresholds.
const (
	// EliteHealthScore is the deck-health floor for recommending elite hunts.
	EliteHealthScore = 60

	// RestUrgencyFloors is the distance to the boss at which rest sites
	// become high priority.
	RestUrgencyFloors = 3

	// ShopGoldFloor is the gold reserve below which shops rate low.
	ShopGoldFloor = 80
)

func clampRating(r float64) float64 {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
