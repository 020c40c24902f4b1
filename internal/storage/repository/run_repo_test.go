package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/spirewatch/spire-companion/internal/storage/models"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every pooled connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		PRAGMA foreign_keys = ON;

		CREATE TABLE runs (
			id TEXT PRIMARY KEY,
			character TEXT NOT NULL,
			ascension_level INTEGER NOT NULL DEFAULT 0,
			floor INTEGER NOT NULL DEFAULT 1,
			current_hp INTEGER NOT NULL,
			max_hp INTEGER NOT NULL,
			gold INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL DEFAULT 'in_progress',
			snapshot TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE advice_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			floor INTEGER NOT NULL,
			kind TEXT NOT NULL,
			subject TEXT NOT NULL DEFAULT '',
			verdict TEXT NOT NULL,
			detail TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
		);
	`)
	if err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}

	return db
}

func sampleRun(id string) *models.RunRecord {
	return &models.RunRecord{
		ID:        id,
		Character: "ironclad",
		Floor:     1,
		CurrentHP: 80,
		MaxHP:     80,
		Gold:      99,
		Snapshot:  `{"id":"` + id + `"}`,
	}
}

func TestRunRepositoryCreateAndGet(t *testing.T) {
	repo := NewRunRepository(setupTestDB(t))
	ctx := context.Background()

	run := sampleRun("run-1")
	if err := repo.Create(ctx, run); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if run.Outcome != models.OutcomeInProgress {
		t.Errorf("outcome defaulted to %q, want %q", run.Outcome, models.OutcomeInProgress)
	}

	got, err := repo.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Character != "ironclad" || got.MaxHP != 80 || got.Snapshot != run.Snapshot {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at not populated")
	}
}

func TestRunRepositoryGetMissing(t *testing.T) {
	repo := NewRunRepository(setupTestDB(t))

	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestRunRepositoryUpdate(t *testing.T) {
	repo := NewRunRepository(setupTestDB(t))
	ctx := context.Background()

	run := sampleRun("run-1")
	if err := repo.Create(ctx, run); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	run.Floor = 12
	run.CurrentHP = 44
	run.Gold = 250
	if err := repo.Update(ctx, run); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := repo.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Floor != 12 || got.CurrentHP != 44 || got.Gold != 250 {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := repo.Update(ctx, sampleRun("missing")); !errors.Is(err, ErrNotFound) {
		t.Errorf("updating a missing run: got %v, want ErrNotFound", err)
	}
}

func TestRunRepositorySetOutcome(t *testing.T) {
	repo := NewRunRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, sampleRun("run-1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.SetOutcome(ctx, "run-1", models.OutcomeVictory); err != nil {
		t.Fatalf("SetOutcome failed: %v", err)
	}

	got, err := repo.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Outcome != models.OutcomeVictory {
		t.Errorf("outcome %q, want %q", got.Outcome, models.OutcomeVictory)
	}
}

func TestRunRepositoryListByCharacter(t *testing.T) {
	repo := NewRunRepository(setupTestDB(t))
	ctx := context.Background()

	for _, id := range []string{"run-1", "run-2"} {
		if err := repo.Create(ctx, sampleRun(id)); err != nil {
			t.Fatalf("Create %s failed: %v", id, err)
		}
	}
	silent := sampleRun("run-3")
	silent.Character = "silent"
	if err := repo.Create(ctx, silent); err != nil {
		t.Fatalf("Create run-3 failed: %v", err)
	}

	ironclad, err := repo.ListByCharacter(ctx, "ironclad", 0)
	if err != nil {
		t.Fatalf("ListByCharacter failed: %v", err)
	}
	if len(ironclad) != 2 {
		t.Errorf("got %d ironclad runs, want 2", len(ironclad))
	}

	all, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("limit 2 returned %d runs", len(all))
	}
}

func TestRunRepositoryDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	runs := NewRunRepository(db)
	advice := NewAdviceRepository(db)
	ctx := context.Background()

	if err := runs.Create(ctx, sampleRun("run-1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	rec := &models.AdviceRecord{RunID: "run-1", Floor: 3, Kind: "card", Subject: "inflame", Verdict: "good-pick", Detail: "{}"}
	if err := advice.Record(ctx, rec); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if err := runs.Delete(ctx, "run-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	left, err := advice.ListByRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("ListByRun failed: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("advice survived run deletion: %d records", len(left))
	}
}
