package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spirewatch/spire-companion/internal/run"
	"github.com/spirewatch/spire-companion/internal/storage/models"
	"github.com/spirewatch/spire-companion/internal/storage/repository"
)

// Service bundles the repositories behind run-state-shaped operations.
type Service struct {
	db     *DB
	Runs   repository.RunRepository
	Advice repository.AdviceRepository
}

// NewService creates a service over an open database.
func NewService(db *DB) *Service {
	return &Service{
		db:     db,
		Runs:   repository.NewRunRepository(db.Conn()),
		Advice: repository.NewAdviceRepository(db.Conn()),
	}
}

// Close closes the underlying database.
func (s *Service) Close() error {
	return s.db.Close()
}

// SaveRunState upserts a run snapshot. New runs are created in progress;
// existing ones get their scalar columns and snapshot refreshed.
func (s *Service) SaveRunState(ctx context.Context, st *run.State) error {
	snapshot, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal run state: %w", err)
	}

	record := &models.RunRecord{
		ID:             st.ID,
		Character:      string(st.Character),
		AscensionLevel: st.AscensionLevel,
		Floor:          st.Floor,
		CurrentHP:      st.CurrentHP,
		MaxHP:          st.MaxHP,
		Gold:           st.Gold,
		Snapshot:       string(snapshot),
	}

	err = s.Runs.Update(ctx, record)
	if errors.Is(err, repository.ErrNotFound) {
		return s.Runs.Create(ctx, record)
	}
	return err
}

// LoadRunState reads a run's snapshot back into a state.
func (s *Service) LoadRunState(ctx context.Context, id string) (*run.State, error) {
	record, err := s.Runs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var st run.State
	if err := json.Unmarshal([]byte(record.Snapshot), &st); err != nil {
		return nil, fmt.Errorf("unmarshal run snapshot: %w", err)
	}
	return &st, nil
}

// RecordAdvice logs one advice payload against a run.
func (s *Service) RecordAdvice(ctx context.Context, st *run.State, kind, subject, verdict string, payload any) error {
	detail, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal advice payload: %w", err)
	}

	return s.Advice.Record(ctx, &models.AdviceRecord{
		RunID:   st.ID,
		Floor:   st.Floor,
		Kind:    kind,
		Subject: subject,
		Verdict: verdict,
		Detail:  string(detail),
	})
}
