package advisor

import (
	"testing"

	"github.com/spirewatch/spire-companion/internal/gamedata"
)

func TestAnalyzeStarterDeck(t *testing.T) {
	cat := gamedata.Default()

	comp := Analyze(ironcladStarter(), cat)

	if comp.Size != 10 {
		t.Errorf("size %d, want 10", comp.Size)
	}
	if comp.AttackCount != 6 {
		t.Errorf("attacks %d, want 6 (five Strikes and Bash)", comp.AttackCount)
	}
	if comp.BlockCards != 4 {
		t.Errorf("block cards %d, want 4", comp.BlockCards)
	}
	if comp.BasicCount != 9 {
		t.Errorf("basics %d, want 9", comp.BasicCount)
	}
	if comp.CardCopies["strike_r"] != 5 {
		t.Errorf("strike copies %d, want 5", comp.CardCopies["strike_r"])
	}
	if got := comp.CheapRatio(); got != 0.9 {
		t.Errorf("cheap ratio %.2f, want 0.90", got)
	}
	if !comp.Contains("bash") || comp.Contains("inflame") {
		t.Error("containment checks failed")
	}
}

func TestAnalyzeCountsUnknownCards(t *testing.T) {
	cat := gamedata.Default()

	comp := Analyze(deckOf("strike_r", "mystery_card"), cat)

	if comp.Size != 2 {
		t.Errorf("size %d, want 2; unknown cards still occupy deck slots", comp.Size)
	}
	if comp.CardCopies["mystery_card"] != 1 {
		t.Error("unknown cards should still be tracked by id")
	}
	if comp.AttackCount != 1 {
		t.Errorf("attacks %d, want 1; unknown cards contribute no type", comp.AttackCount)
	}
}

func TestAnalyzeEmptyDeck(t *testing.T) {
	cat := gamedata.Default()

	comp := Analyze(nil, cat)

	if comp.Size != 0 {
		t.Errorf("size %d, want 0", comp.Size)
	}
	if comp.CheapRatio() != 0 {
		t.Errorf("cheap ratio %f, want 0 for an empty deck", comp.CheapRatio())
	}
}
