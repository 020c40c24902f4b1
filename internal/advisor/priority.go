// Package advisor implements the rule-based advisory engine: deterministic,
// side-effect-free scoring functions over a run snapshot and the reference
// catalogs. Every evaluator is total; unknown identifiers take neutral
// fallbacks instead of failing.
package advisor

// Priority is the engine's primary recommendation bucket. Lower values are
// better picks; the ordering is total and used for tie-breaking.
type Priority int

const (
	MustPick Priority = iota
	GoodPick
	SituationalPick
	Skip
)

// String renders the card-candidate vocabulary.
func (p Priority) String() string {
	switch p {
	case MustPick:
		return "must-pick"
	case GoodPick:
		return "good-pick"
	case SituationalPick:
		return "situational"
	default:
		return "skip"
	}
}

// TakeString renders the relic-candidate vocabulary for the same ordering.
func (p Priority) TakeString() string {
	switch p {
	case MustPick:
		return "must-take"
	case GoodPick:
		return "good-take"
	case SituationalPick:
		return "situational"
	default:
		return "skip"
	}
}

// MarshalText makes the bucket render as its card-candidate string in JSON.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// priorityForRating maps a 0-5 rating onto a Priority via the shared
// breakpoints. Every component that buckets ratings goes through this.
func priorityForRating(rating float64) Priority {
	switch {
	case rating >= MustPickRating:
		return MustPick
	case rating >= GoodPickRating:
		return GoodPick
	case rating >= SituationalRating:
		return SituationalPick
	default:
		return Skip
	}
}

// Verdict is the combat-readiness outcome.
type Verdict int

const (
	Ready Verdict = iota
	Caution
	Danger
)

func (v Verdict) String() string {
	switch v {
	case Ready:
		return "ready"
	case Caution:
		return "caution"
	default:
		return "danger"
	}
}

// MarshalText renders the verdict for JSON payloads.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// worse returns the more severe of two verdicts.
func worse(a, b Verdict) Verdict {
	if a > b {
		return a
	}
	return b
}
