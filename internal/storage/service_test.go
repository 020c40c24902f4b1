package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
	"github.com/spirewatch/spire-companion/internal/storage/models"
)

// setupTestService creates a service over an in-memory database with the
// schema applied by hand, since in-memory databases skip auto-migration.
func setupTestService(t *testing.T) *Service {
	t.Helper()

	db, err := Open(DefaultConfig(":memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Conn().Exec(`
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
			subject TEXT NOT NULL,
			verdict TEXT NOT NULL,
			detail TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
		);
	`)
	require.NoError(t, err)

	return NewService(db)
}

func sampleState() *run.State {
	st := run.NewState(gamedata.Ironclad, 80)
	st.Deck = run.StarterDeck(gamedata.Ironclad)
	st.Floor = 5
	st.Gold = 99
	return st
}

func TestSaveRunStateCreatesNewRun(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	st := sampleState()

	require.NoError(t, svc.SaveRunState(ctx, st))

	record, err := svc.Runs.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "ironclad", record.Character)
	assert.Equal(t, 5, record.Floor)
	assert.Equal(t, models.OutcomeInProgress, record.Outcome)
	assert.NotEmpty(t, record.Snapshot)
}

func TestSaveRunStateUpdatesExistingRun(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	st := sampleState()

	require.NoError(t, svc.SaveRunState(ctx, st))

	st.Floor = 12
	st.CurrentHP = 55
	st.AddCard("inflame")
	require.NoError(t, svc.SaveRunState(ctx, st))

	record, err := svc.Runs.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, record.Floor)
	assert.Equal(t, 55, record.CurrentHP)
}

func TestSaveRunStatePreservesOutcome(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	st := sampleState()

	require.NoError(t, svc.SaveRunState(ctx, st))
	require.NoError(t, svc.Runs.SetOutcome(ctx, st.ID, models.OutcomeVictory))

	// A late snapshot save must not reset a finished run to in progress.
	st.Floor = 56
	require.NoError(t, svc.SaveRunState(ctx, st))

	record, err := svc.Runs.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeVictory, record.Outcome)
	assert.Equal(t, 56, record.Floor)
}

func TestLoadRunStateRoundTrip(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	st := sampleState()
	st.AddRelic("burning_blood")

	require.NoError(t, svc.SaveRunState(ctx, st))

	loaded, err := svc.LoadRunState(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, st.ID, loaded.ID)
	assert.Equal(t, st.Character, loaded.Character)
	assert.Len(t, loaded.Deck, len(st.Deck))
	assert.Equal(t, []string{"burning_blood"}, loaded.Relics)
}

func TestRecordAdvice(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	st := sampleState()

	require.NoError(t, svc.SaveRunState(ctx, st))
	require.NoError(t, svc.RecordAdvice(ctx, st, "card", "inflame", "good-pick",
		map[string]any{"rating": 3.4}))

	records, err := svc.Advice.ListByRun(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "card", records[0].Kind)
	assert.Equal(t, "inflame", records[0].Subject)
	assert.Equal(t, st.Floor, records[0].Floor)
	assert.Contains(t, records[0].Detail, "rating")
}
