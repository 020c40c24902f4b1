package advisor

import (
	"testing"

	"github.com/spirewatch/spire-companion/internal/gamedata"
)

func TestPrepareForBossUsesNamedBoss(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())
	st.NextBossID = "hexaghost"

	report := PrepareForBoss(cat, st)

	if report.BossID != "hexaghost" {
		t.Errorf("got boss %s, want hexaghost", report.BossID)
	}
}

func TestPrepareForBossDefaultsDeterministically(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())

	a := PrepareForBoss(cat, st)
	b := PrepareForBoss(cat, st)

	if a.BossID == "" {
		t.Fatal("expected a boss to be chosen for act 1")
	}
	if a.BossID != b.BossID {
		t.Errorf("boss choice flapped: %s vs %s", a.BossID, b.BossID)
	}
}

func TestPrepareForBossFloorsUntilBoss(t *testing.T) {
	cat := gamedata.Default()

	tests := []struct {
		floor int
		want  int
	}{
		{1, 15},
		{15, 1},
		{17, 16},
		{34, 18},
	}
	for _, tt := range tests {
		st := testState(ironcladStarter())
		st.Floor = tt.floor
		report := PrepareForBoss(cat, st)
		if report.FloorsUntilBoss != tt.want {
			t.Errorf("floor %d: got %d floors until boss, want %d", tt.floor, report.FloorsUntilBoss, tt.want)
		}
	}
}

func TestPrepareForBossStarterDeckIsNotReady(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())

	report := PrepareForBoss(cat, st)

	if report.Verdict == Ready {
		t.Error("a bare starter deck should not be boss-ready")
	}
	if len(report.Requirements) == 0 {
		t.Fatal("expected a requirements checklist")
	}
	unmetCritical := false
	for _, req := range report.Requirements {
		if req.Importance == Critical && !req.Met {
			unmetCritical = true
		}
	}
	if unmetCritical && report.Verdict != Danger {
		t.Errorf("unmet critical requirement but verdict %s", report.Verdict)
	}
}

func TestPrepareForBossCriticalHPForcesDanger(t *testing.T) {
	cat := gamedata.Default()

	// A deck that satisfies every damage, block, and AOE requirement.
	st := testState(append(ironcladStarter(), deckOf("cleave", "inflame")...))
	st.NextBossID = "slime_boss"
	st.Potions = []string{"fire_potion"}
	st.CurrentHP = 7
	st.MaxHP = 80

	report := PrepareForBoss(cat, st)

	for _, req := range report.Requirements {
		if req.Importance == Critical && !req.Met {
			t.Fatalf("unexpected unmet critical requirement: %s", req.Description)
		}
	}
	if report.Verdict != Danger {
		t.Errorf("at %d/%d HP got verdict %s, want %s", st.CurrentHP, st.MaxHP, report.Verdict, Danger)
	}
}

func TestPrepareForBossLowHPRecommendation(t *testing.T) {
	cat := gamedata.Default()
	st := testState(ironcladStarter())
	st.CurrentHP = 30

	report := PrepareForBoss(cat, st)

	if len(report.Recommendations) == 0 {
		t.Error("expected recommendations for a hurt, underbuilt run")
	}
}
