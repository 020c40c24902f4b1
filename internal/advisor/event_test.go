package advisor

import (
	"testing"

	"github.com/spirewatch/spire-companion/internal/gamedata"
)

func TestAdviseEventClericPurifyWithCurse(t *testing.T) {
	cat := gamedata.Default()
	st := testState(append(ironcladStarter(), deckOf("regret")...))
	st.Gold = 200

	advice := AdviseEvent(cat, "the_cleric", st)

	if advice.Best != "purify" {
		t.Errorf("best choice %s, want purify when carrying a curse", advice.Best)
	}
}

func TestAdviseEventUnaffordableChoiceDisabled(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())
	st.Gold = 10 // can afford neither cleric option

	advice := AdviseEvent(cat, "the_cleric", st)

	for _, c := range advice.Choices {
		switch c.ChoiceID {
		case "heal", "purify":
			if !c.Disabled {
				t.Errorf("%s should be disabled at %d gold", c.ChoiceID, st.Gold)
			}
			if c.Rating != Avoid {
				t.Errorf("%s: disabled choice rated %s, want %s", c.ChoiceID, c.Rating, Avoid)
			}
		}
	}
	if advice.Best != "leave" {
		t.Errorf("best choice %s, want leave when nothing is affordable", advice.Best)
	}
}

func TestAdviseEventLethalHPCostDisabled(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())
	st.CurrentHP = 5 // golden idol's hit would be fatal territory

	advice := AdviseEvent(cat, "golden_idol", st)

	for _, c := range advice.Choices {
		if c.ChoiceID == "take" && !c.Disabled {
			t.Errorf("take should be disabled at %d HP", st.CurrentHP)
		}
	}
}

func TestAdviseEventVampiresNeedsStrikes(t *testing.T) {
	cat := gamedata.Default()

	full := testState(ironcladStarter())
	advice := AdviseEvent(cat, "vampires", full)
	if advice.Best != "accept" {
		t.Errorf("with five Strikes, best is %s, want accept", advice.Best)
	}

	thinned := testState(deckOf("bash", "inflame", "heavy_blade", "limit_break", "demon_form"))
	advice = AdviseEvent(cat, "vampires", thinned)
	if advice.Best == "accept" {
		t.Error("without Strikes to trade, accept should not lead")
	}
}

func TestAdviseEventUnknownEventIsTotal(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())

	advice := AdviseEvent(cat, "no_such_event", st)

	if advice.EventID != "no_such_event" {
		t.Errorf("got event id %s, want the requested one", advice.EventID)
	}
	if len(advice.Choices) != 0 {
		t.Errorf("unknown event has no catalog choices, got %d", len(advice.Choices))
	}
}

func TestAdviseEventDeterministicOrdering(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())

	a := AdviseEvent(cat, "living_wall", st)
	b := AdviseEvent(cat, "living_wall", st)

	if a.Best != b.Best {
		t.Errorf("best choice flapped: %s vs %s", a.Best, b.Best)
	}
	for i := range a.Choices {
		if a.Choices[i] != b.Choices[i] {
			t.Errorf("choice %d differs: %+v vs %+v", i, a.Choices[i], b.Choices[i])
		}
	}
}
