// Package repository implements data access over the storage schema.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/spirewatch/spire-companion/internal/storage/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

const timeLayout = "2006-01-02 15:04:05.999999"

// RunRepository handles database operations for tracked runs.
type RunRepository interface {
	// Create inserts a new run record.
	Create(ctx context.Context, run *models.RunRecord) error

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*models.RunRecord, error)

	// Update overwrites a run's progress fields and snapshot. Outcome is
	// owned by SetOutcome and left untouched.
	Update(ctx context.Context, run *models.RunRecord) error

	// SetOutcome marks a run finished.
	SetOutcome(ctx context.Context, id, outcome string) error

	// List retrieves runs newest first, up to limit (0 = all).
	List(ctx context.Context, limit int) ([]*models.RunRecord, error)

	// ListByCharacter retrieves a character's runs newest first.
	ListByCharacter(ctx context.Context, character string, limit int) ([]*models.RunRecord, error)

	// Delete removes a run and, via cascade, its advice.
	Delete(ctx context.Context, id string) error
}

type runRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *sql.DB) RunRepository {
	return &runRepository{db: db}
}

func (r *runRepository) Create(ctx context.Context, run *models.RunRecord) error {
	query := `
		INSERT INTO runs (id, character, ascension_level, floor, current_hp, max_hp, gold, outcome, snapshot, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	run.CreatedAt = now
	run.UpdatedAt = now
	if run.Outcome == "" {
		run.Outcome = models.OutcomeInProgress
	}

	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.Character,
		run.AscensionLevel,
		run.Floor,
		run.CurrentHP,
		run.MaxHP,
		run.Gold,
		run.Outcome,
		run.Snapshot,
		now.Format(timeLayout),
		now.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (r *runRepository) Get(ctx context.Context, id string) (*models.RunRecord, error) {
	query := `
		SELECT id, character, ascension_level, floor, current_hp, max_hp, gold, outcome, snapshot, created_at, updated_at
		FROM runs
		WHERE id = ?
	`

	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

func (r *runRepository) Update(ctx context.Context, run *models.RunRecord) error {
	query := `
		UPDATE runs
		SET floor = ?, current_hp = ?, max_hp = ?, gold = ?, ascension_level = ?, snapshot = ?, updated_at = ?
		WHERE id = ?
	`

	now := time.Now().UTC()
	run.UpdatedAt = now

	result, err := r.db.ExecContext(ctx, query,
		run.Floor,
		run.CurrentHP,
		run.MaxHP,
		run.Gold,
		run.AscensionLevel,
		run.Snapshot,
		now.Format(timeLayout),
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	return requireRowAffected(result)
}

func (r *runRepository) SetOutcome(ctx context.Context, id, outcome string) error {
	query := `UPDATE runs SET outcome = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, outcome, time.Now().UTC().Format(timeLayout), id)
	if err != nil {
		return fmt.Errorf("set outcome: %w", err)
	}
	return requireRowAffected(result)
}

func (r *runRepository) List(ctx context.Context, limit int) ([]*models.RunRecord, error) {
	query := `
		SELECT id, character, ascension_level, floor, current_hp, max_hp, gold, outcome, snapshot, created_at, updated_at
		FROM runs
		ORDER BY updated_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanRuns(rows)
}

func (r *runRepository) ListByCharacter(ctx context.Context, character string, limit int) ([]*models.RunRecord, error) {
	query := `
		SELECT id, character, ascension_level, floor, current_hp, max_hp, gold, outcome, snapshot, created_at, updated_at
		FROM runs
		WHERE character = ?
		ORDER BY updated_at DESC, id
	`
	args := []any{character}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs by character: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanRuns(rows)
}

func (r *runRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return requireRowAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*models.RunRecord, error) {
	var run models.RunRecord
	var createdAt, updatedAt string

	err := row.Scan(
		&run.ID,
		&run.Character,
		&run.AscensionLevel,
		&run.Floor,
		&run.CurrentHP,
		&run.MaxHP,
		&run.Gold,
		&run.Outcome,
		&run.Snapshot,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	run.CreatedAt = parseTime(createdAt)
	run.UpdatedAt = parseTime(updatedAt)
	return &run, nil
}

func scanRuns(rows *sql.Rows) ([]*models.RunRecord, error) {
	var runs []*models.RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

func requireRowAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// parseTime tolerates both the repository layout and SQLite's default
// CURRENT_TIMESTAMP format.
func parseTime(s string) time.Time {
	for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
