package advisor

import (
	"testing"

	"github.com/spirewatch/spire-companion/internal/gamedata"
)

func TestEvaluateRelicGradeDrivesPriority(t *testing.T) {
	cat := gamedata.Default()
	deck := ironcladStarter()

	tests := []struct {
		relicID string
		want    Priority
	}{
		{"dead_branch", MustPick},   // grade S
		{"vajra", GoodPick},         // grade B
		{"ectoplasm", Skip},         // grade D
	}
	for _, tt := range tests {
		eval := EvaluateRelic(cat, tt.relicID, deck)
		if eval.Priority != tt.want {
			t.Errorf("%s: got %s, want %s (rating %.2f)", tt.relicID, eval.Priority, tt.want, eval.Rating)
		}
	}
}

func TestEvaluateRelicUnknownFallback(t *testing.T) {
	cat := gamedata.Default()

	eval := EvaluateRelic(cat, "no_such_relic", ironcladStarter())

	if eval.Priority != SituationalPick {
		t.Errorf("got %s, want %s", eval.Priority, SituationalPick)
	}
	if eval.Reason == "" {
		t.Error("expected a reason even for an unknown relic")
	}
}

func TestEvaluateRelicReportsActiveSynergies(t *testing.T) {
	cat := gamedata.Default()
	deck := append(ironcladStarter(), deckOf("heavy_blade")...)

	eval := EvaluateRelic(cat, "vajra", deck)

	found := false
	for _, id := range eval.ActiveSynergies {
		if id == "heavy_blade" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected heavy_blade among active synergies, got %v", eval.ActiveSynergies)
	}
}
