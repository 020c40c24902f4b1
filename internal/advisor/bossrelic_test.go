package advisor

import (
	"testing"

	"github.com/spirewatch/spire-companion/internal/gamedata"
)

func TestEvaluateBossRelicVelvetChokerOnCheapDeck(t *testing.T) {
	cat := gamedata.Default()
	// Nine of the starter's ten cards cost 0-1, well past the cheap cutoff.
	st := testState(ironcladStarter())

	eval := EvaluateBossRelic(cat, "velvet_choker", st)

	if eval.Priority != Skip {
		t.Errorf("got %s, want %s: %s", eval.Priority, Skip, eval.Reason)
	}
}

func TestEvaluateBossRelicSneckoEyeOnExpensiveCurve(t *testing.T) {
	cat := gamedata.Default()
	st := testState(deckOf("barricade", "demon_form", "impervious", "impervious", "bash"))

	eval := EvaluateBossRelic(cat, "snecko_eye", st)

	if eval.Priority != MustPick {
		t.Errorf("got %s, want %s: %s", eval.Priority, MustPick, eval.Reason)
	}
}

func TestEvaluateBossRelicRunicPyramid(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())

	eval := EvaluateBossRelic(cat, "runic_pyramid", st)

	if eval.Priority != MustPick {
		t.Errorf("got %s, want %s", eval.Priority, MustPick)
	}
}

func TestEvaluateBossRelicPandorasBoxByBasicCount(t *testing.T) {
	cat := gamedata.Default()

	full := testState(ironcladStarter()) // 9 basics plus Bash
	if eval := EvaluateBossRelic(cat, "pandoras_box", full); eval.Priority != MustPick {
		t.Errorf("starter deck: got %s, want %s", eval.Priority, MustPick)
	}

	thinned := testState(deckOf("strike_r", "bash", "inflame", "heavy_blade", "limit_break"))
	if eval := EvaluateBossRelic(cat, "pandoras_box", thinned); eval.Priority != SituationalPick {
		t.Errorf("thinned deck: got %s, want %s", eval.Priority, SituationalPick)
	}
}

func TestEvaluateBossRelicEctoplasmLateActs(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())
	st.Floor = 20 // act 2

	eval := EvaluateBossRelic(cat, "ectoplasm", st)

	if eval.Priority != Skip {
		t.Errorf("got %s, want %s: %s", eval.Priority, Skip, eval.Reason)
	}
}

func TestEvaluateBossRelicCoffeeDripperNeedsHP(t *testing.T) {
	cat := gamedata.Default()

	healthy := testState(ironcladStarter())
	if eval := EvaluateBossRelic(cat, "coffee_dripper", healthy); eval.Priority != GoodPick {
		t.Errorf("healthy: got %s, want %s", eval.Priority, GoodPick)
	}

	hurt := testState(ironcladStarter())
	hurt.CurrentHP = 20
	if eval := EvaluateBossRelic(cat, "coffee_dripper", hurt); eval.Priority != SituationalPick {
		t.Errorf("hurt: got %s, want %s", eval.Priority, SituationalPick)
	}
}

func TestEvaluateBossRelicUnknownFallback(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())

	eval := EvaluateBossRelic(cat, "no_such_boss_relic", st)

	if eval.Priority != SituationalPick {
		t.Errorf("got %s, want %s", eval.Priority, SituationalPick)
	}
	if eval.Reason == "" {
		t.Error("expected a reason for the fallback")
	}
	if eval.Rating != neutralRelicRating {
		t.Errorf("got rating %.2f, want %.2f", eval.Rating, neutralRelicRating)
	}
}
