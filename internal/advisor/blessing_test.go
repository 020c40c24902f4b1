package advisor

import (
	"testing"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

func TestAdviseBlessingsRemovalLeads(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())

	advice := AdviseBlessings(cat, st)

	if len(advice) == 0 {
		t.Fatal("expected blessing advice")
	}
	if advice[0].BlessingID != "neow_card_remove" {
		t.Errorf("top blessing %s, want neow_card_remove", advice[0].BlessingID)
	}
	for i := 1; i < len(advice); i++ {
		if advice[i].Rating < advice[i-1].Rating {
			t.Errorf("advice not sorted: %s (%s) after %s (%s)",
				advice[i].BlessingID, advice[i].Rating, advice[i-1].BlessingID, advice[i-1].Rating)
		}
	}
}

func TestAdviseBlessingsIroncladBossSwap(t *testing.T) {
	cat := gamedata.Default()

	ironclad := testState(ironcladStarter())
	silent := testState(ironcladStarter())
	silent.Character = gamedata.Silent

	ratingFor := func(st *run.State) ChoiceRating {
		for _, b := range AdviseBlessings(cat, st) {
			if b.BlessingID == "neow_boss_relic_swap" {
				return b.Rating
			}
		}
		t.Fatal("boss swap blessing missing")
		return Avoid
	}

	if ratingFor(ironclad) <= ratingFor(silent) {
		t.Error("losing Burning Blood should rate the swap worse for Ironclad")
	}
}

func TestAdviseBlessingsDrawbackCapsRating(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())

	for _, b := range AdviseBlessings(cat, st) {
		if b.BlessingID == "neow_cursed_gold" && b.Rating < SituationalChoice {
			t.Errorf("cursed gold rated %s despite its drawback", b.Rating)
		}
	}
}
