package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spirewatch/spire-companion/internal/storage/models"
)

// AdviceRepository handles database operations for the advice log.
type AdviceRepository interface {
	// Record appends a piece of advice to a run's log.
	Record(ctx context.Context, advice *models.AdviceRecord) error

	// ListByRun retrieves a run's advice oldest first.
	ListByRun(ctx context.Context, runID string) ([]*models.AdviceRecord, error)

	// ListByKind retrieves a run's advice of one kind, oldest first.
	ListByKind(ctx context.Context, runID, kind string) ([]*models.AdviceRecord, error)

	// DeleteByRun removes all advice for a run.
	DeleteByRun(ctx context.Context, runID string) error
}

type adviceRepository struct {
	db *sql.DB
}

// NewAdviceRepository creates a new advice repository.
func NewAdviceRepository(db *sql.DB) AdviceRepository {
	return &adviceRepository{db: db}
}

func (r *adviceRepository) Record(ctx context.Context, advice *models.AdviceRecord) error {
	query := `
		INSERT INTO advice_log (run_id, floor, kind, subject, verdict, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	advice.CreatedAt = now

	result, err := r.db.ExecContext(ctx, query,
		advice.RunID,
		advice.Floor,
		advice.Kind,
		advice.Subject,
		advice.Verdict,
		advice.Detail,
		now.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert advice: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	advice.ID = id
	return nil
}

func (r *adviceRepository) ListByRun(ctx context.Context, runID string) ([]*models.AdviceRecord, error) {
	query := `
		SELECT id, run_id, floor, kind, subject, verdict, detail, created_at
		FROM advice_log
		WHERE run_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("list advice: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanAdvice(rows)
}

func (r *adviceRepository) ListByKind(ctx context.Context, runID, kind string) ([]*models.AdviceRecord, error) {
	query := `
		SELECT id, run_id, floor, kind, subject, verdict, detail, created_at
		FROM advice_log
		WHERE run_id = ? AND kind = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, runID, kind)
	if err != nil {
		return nil, fmt.Errorf("list advice by kind: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanAdvice(rows)
}

func (r *adviceRepository) DeleteByRun(ctx context.Context, runID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM advice_log WHERE run_id = ?`, runID); err != nil {
		return fmt.Errorf("delete advice: %w", err)
	}
	return nil
}

func scanAdvice(rows *sql.Rows) ([]*models.AdviceRecord, error) {
	var records []*models.AdviceRecord
	for rows.Next() {
		var rec models.AdviceRecord
		var createdAt string
		err := rows.Scan(
			&rec.ID,
			&rec.RunID,
			&rec.Floor,
			&rec.Kind,
			&rec.Subject,
			&rec.Verdict,
			&rec.Detail,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan advice: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
