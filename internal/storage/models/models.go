// Package models defines the persistence records shared by the repositories.
package models

import "time"

// Run outcome values.
const (
	OutcomeInProgress = "in_progress"
	OutcomeVictory    = "victory"
	OutcomeDefeat     = "defeat"
	OutcomeAbandoned  = "abandoned"
)

// RunRecord is one tracked run. Snapshot holds the full run state as JSON so
// history survives schema-free; the scalar columns exist for querying.
type RunRecord struct {
	ID             string
	Character      string
	AscensionLevel int
	Floor          int
	CurrentHP      int
	MaxHP          int
	Gold           int
	Outcome        string
	Snapshot       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AdviceRecord is one piece of generated advice, kept for later review.
type AdviceRecord struct {
	ID        int64
	RunID     string
	Floor     int
	Kind      string // card/relic/boss-relic/combat/boss/event/removal/path/health
	Subject   string // card id, monster id, event id, ...
	Verdict   string
	Detail    string // full advice payload as JSON
	CreatedAt time.Time
}
