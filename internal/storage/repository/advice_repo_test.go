package repository

import (
	"context"
	"testing"

	"github.com/spirewatch/spire-companion/internal/storage/models"
)

func TestAdviceRepositoryRecordAndList(t *testing.T) {
	db := setupTestDB(t)
	runs := NewRunRepository(db)
	advice := NewAdviceRepository(db)
	ctx := context.Background()

	if err := runs.Create(ctx, sampleRun("run-1")); err != nil {
		t.Fatalf("Create run failed: %v", err)
	}

	records := []*models.AdviceRecord{
		{RunID: "run-1", Floor: 2, Kind: "card", Subject: "inflame", Verdict: "good-pick", Detail: `{"rating":3.3}`},
		{RunID: "run-1", Floor: 3, Kind: "combat", Subject: "gremlin_nob", Verdict: "caution", Detail: "{}"},
		{RunID: "run-1", Floor: 4, Kind: "card", Subject: "regret", Verdict: "skip", Detail: "{}"},
	}
	for _, rec := range records {
		if err := advice.Record(ctx, rec); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		if rec.ID == 0 {
			t.Error("Record did not backfill the ID")
		}
	}

	all, err := advice.ListByRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("ListByRun failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
	if all[0].Subject != "inflame" || all[2].Subject != "regret" {
		t.Errorf("records out of insertion order: %v, %v", all[0].Subject, all[2].Subject)
	}

	cards, err := advice.ListByKind(ctx, "run-1", "card")
	if err != nil {
		t.Fatalf("ListByKind failed: %v", err)
	}
	if len(cards) != 2 {
		t.Errorf("got %d card records, want 2", len(cards))
	}
}

func TestAdviceRepositoryDeleteByRun(t *testing.T) {
	db := setupTestDB(t)
	runs := NewRunRepository(db)
	advice := NewAdviceRepository(db)
	ctx := context.Background()

	if err := runs.Create(ctx, sampleRun("run-1")); err != nil {
		t.Fatalf("Create run failed: %v", err)
	}
	rec := &models.AdviceRecord{RunID: "run-1", Floor: 1, Kind: "health", Verdict: "C", Detail: "{}"}
	if err := advice.Record(ctx, rec); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if err := advice.DeleteByRun(ctx, "run-1"); err != nil {
		t.Fatalf("DeleteByRun failed: %v", err)
	}

	left, err := advice.ListByRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("ListByRun failed: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("got %d records after delete, want 0", len(left))
	}
}
