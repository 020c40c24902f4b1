package advisor

import (
	"testing"

	"github.com/spirewatch/spire-companion/internal/gamedata"
)

func TestEvaluateCardInflameAgainstStarter(t *testing.T) {
	cat := gamedata.Default()

	eval := EvaluateCard(cat, "inflame", ironcladStarter(), nil)

	if eval.Priority > GoodPick {
		t.Errorf("Inflame against a starter deck got %s, want at least %s",
			eval.Priority, GoodPick)
	}
	if eval.PrimaryReason == "" {
		t.Error("expected a primary reason")
	}
	if len(eval.Reasons) == 0 {
		t.Error("expected at least one reason")
	}
}

func TestEvaluateCardSynergyNeverLowersRating(t *testing.T) {
	cat := gamedata.Default()

	without := EvaluateCard(cat, "limit_break", ironcladStarter(), nil)
	with := EvaluateCard(cat, "limit_break", append(ironcladStarter(), deckOf("inflame")...), nil)

	if with.Rating < without.Rating {
		t.Errorf("adding a synergy partner lowered the rating: %.2f -> %.2f",
			without.Rating, with.Rating)
	}
}

func TestEvaluateCardSynergyHoldsAcrossLargeDeckBoundary(t *testing.T) {
	cat := gamedata.Default()

	// A 25-card deck already holding two synergy partners of the candidate.
	deck := append(ironcladStarter(), deckOf(
		"heavy_blade", "limit_break",
		"strike_r", "strike_r", "strike_r", "strike_r", "strike_r",
		"strike_r", "strike_r", "strike_r", "strike_r", "strike_r",
		"strike_r", "strike_r", "strike_r",
	)...)
	if len(deck) != LargeDeckSize {
		t.Fatalf("deck has %d cards, want %d", len(deck), LargeDeckSize)
	}

	// Adding a third synergy partner grows the deck past the large-deck
	// threshold; the power-size penalty must not outweigh the tail bonus.
	without := EvaluateCard(cat, "inflame", deck, nil)
	with := EvaluateCard(cat, "inflame", append(deck, deckOf("demon_form")...), nil)

	if with.Rating < without.Rating {
		t.Errorf("adding a synergy partner across the size boundary lowered the rating: %.2f -> %.2f",
			without.Rating, with.Rating)
	}
}

func TestEvaluateCardRelicSynergyCounts(t *testing.T) {
	cat := gamedata.Default()

	without := EvaluateCard(cat, "heavy_blade", ironcladStarter(), nil)
	with := EvaluateCard(cat, "heavy_blade", ironcladStarter(), []string{"vajra"})

	if with.Rating < without.Rating {
		t.Errorf("a synergistic relic lowered the rating: %.2f -> %.2f",
			without.Rating, with.Rating)
	}
}

func TestEvaluateCardCursesAreAlwaysSkips(t *testing.T) {
	cat := gamedata.Default()

	for _, id := range []string{"regret", "injury", "pain", "wound", "dazed", "burn"} {
		eval := EvaluateCard(cat, id, ironcladStarter(), nil)
		if eval.Priority != Skip {
			t.Errorf("%s: got priority %s, want %s", id, eval.Priority, Skip)
		}
		if eval.Rating > CurseRatingCap {
			t.Errorf("%s: rating %.2f exceeds the cap %.2f", id, eval.Rating, CurseRatingCap)
		}
	}
}

func TestEvaluateCardUnknownIDGetsNeutralFallback(t *testing.T) {
	cat := gamedata.Default()

	eval := EvaluateCard(cat, "no_such_card", ironcladStarter(), nil)

	if eval.Rating != NeutralCardTier {
		t.Errorf("got rating %.2f, want the neutral %.2f", eval.Rating, NeutralCardTier)
	}
	if eval.Priority != SituationalPick {
		t.Errorf("got priority %s, want %s", eval.Priority, SituationalPick)
	}
}

func TestEvaluateCardDuplicatePenalty(t *testing.T) {
	cat := gamedata.Default()

	// Two copies of a low-tier card already in the deck should rate a third
	// copy below a first copy.
	base := EvaluateCard(cat, "iron_wave", ironcladStarter(), nil)
	crowded := EvaluateCard(cat, "iron_wave", append(ironcladStarter(), deckOf("iron_wave", "iron_wave")...), nil)

	if crowded.Rating >= base.Rating {
		t.Errorf("third copy rated %.2f, first copy %.2f; want a penalty", crowded.Rating, base.Rating)
	}
}

func TestEvaluateCardDeterministic(t *testing.T) {
	cat := gamedata.Default()
	deck := append(ironcladStarter(), deckOf("inflame", "heavy_blade")...)

	a := EvaluateCard(cat, "limit_break", deck, []string{"vajra"})
	b := EvaluateCard(cat, "limit_break", deck, []string{"vajra"})

	if a.Rating != b.Rating || a.Priority != b.Priority || a.PrimaryReason != b.PrimaryReason {
		t.Errorf("same input produced different evaluations: %+v vs %+v", a, b)
	}
	if len(a.Reasons) != len(b.Reasons) {
		t.Fatalf("reason counts differ: %d vs %d", len(a.Reasons), len(b.Reasons))
	}
	for i := range a.Reasons {
		if a.Reasons[i] != b.Reasons[i] {
			t.Errorf("reason %d differs: %q vs %q", i, a.Reasons[i], b.Reasons[i])
		}
	}
}
