package advisor

import (
	"testing"

	"github.com/spirewatch/spire-companion/internal/gamedata"
)

func TestAssessCombatNoBlockNeverReady(t *testing.T) {
	cat := gamedata.Default()
	// All attacks, zero block cards, against a monster demanding heavy
	// per-turn mitigation.
	st := testState(deckOf("strike_r", "strike_r", "strike_r", "strike_r", "bash", "heavy_blade"))

	report := AssessCombat(cat, "book_of_stabbing", st)

	if report.Verdict == Ready {
		t.Errorf("zero-block deck assessed ready against book_of_stabbing: %+v", report)
	}
	if len(report.Weaknesses) == 0 {
		t.Error("expected the missing block to surface as a weakness")
	}
}

func TestAssessCombatLowHPForcesDanger(t *testing.T) {
	cat := gamedata.Default()
	st := testState(append(ironcladStarter(), deckOf("inflame", "shrug_it_off", "impervious")...))
	st.CurrentHP = 15 // under a quarter of 80

	report := AssessCombat(cat, "jaw_worm", st)

	if report.Verdict != Danger {
		t.Errorf("got %s at %d/%d HP, want %s", report.Verdict, st.CurrentHP, st.MaxHP, Danger)
	}
}

func TestAssessCombatHalfHPAtLeastCaution(t *testing.T) {
	cat := gamedata.Default()
	st := testState(append(ironcladStarter(), deckOf("inflame", "shrug_it_off", "impervious")...))
	st.CurrentHP = 35 // under half of 80

	report := AssessCombat(cat, "jaw_worm", st)

	if report.Verdict == Ready {
		t.Errorf("got %s below half HP, want at least %s", report.Verdict, Caution)
	}
}

func TestAssessCombatTacticalNotes(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())

	withNotes := AssessCombat(cat, "gremlin_nob", st)
	if len(withNotes.TacticalTips) == 0 {
		t.Error("expected dedicated tips for gremlin_nob")
	}

	generic := AssessCombat(cat, "no_such_monster", st)
	if len(generic.TacticalTips) == 0 {
		t.Error("expected a generic tip for an unknown monster")
	}
	if generic.MonsterID != "no_such_monster" {
		t.Errorf("got monster id %s, want the requested one", generic.MonsterID)
	}
}

func TestAssessCombatEliteSuggestsPotions(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())
	st.AddPotion("fire_potion")

	report := AssessCombat(cat, "lagavulin", st)

	if len(report.PotionTips) == 0 {
		t.Error("expected potion advice before an elite")
	}
}
