package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spirewatch/spire-companion/internal/advisor"
	"github.com/spirewatch/spire-companion/internal/config"
	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
	"github.com/spirewatch/spire-companion/internal/storage"
	"github.com/spirewatch/spire-companion/internal/watcher"
)

func runWatchCommand() {
	cfg := loadConfig()
	catalog := loadCatalog(cfg)

	path := *stateFile
	if path == "" {
		path = cfg.Run.StateFile
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "No run state file configured.")
		fmt.Fprintln(os.Stderr, "Use -state-file or set run.state_file in the config.")
		os.Exit(1)
	}

	debounce, err := cfg.GetWatchDebounce()
	if err != nil {
		log.Fatalf("Invalid watch debounce: %v", err)
	}

	store := openStore(cfg)
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("Error closing storage: %v", err)
			}
		}()
	}

	onState := func(st *run.State) {
		displayWatchUpdate(catalog, st)
		if store != nil {
			if err := store.SaveRunState(context.Background(), st); err != nil {
				log.Printf("Error saving run snapshot: %v", err)
			}
		}
	}

	w, err := watcher.New(path, onState,
		watcher.WithDebounce(debounce),
		watcher.WithErrorHandler(func(err error) {
			log.Printf("Watch error: %v", err)
		}))
	if err != nil {
		log.Fatalf("Error creating watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		cancel()
	}()

	fmt.Printf("Watching %s (debounce %v). Press Ctrl+C to stop.\n", path, debounce)
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Watcher stopped: %v", err)
	}
	fmt.Println("\nStopped.")
}

// openStore opens the run history database, or returns nil when persistence
// is unavailable so watching still works without it.
func openStore(cfg *config.Config) *storage.Service {
	dbPath := getDBPath(cfg)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		log.Printf("Run history disabled: %v", err)
		return nil
	}

	dbConfig := storage.DefaultConfig(dbPath)
	dbConfig.AutoMigrate = cfg.Database.AutoMigrate
	db, err := storage.Open(dbConfig)
	if err != nil {
		log.Printf("Run history disabled: %v", err)
		return nil
	}
	return storage.NewService(db)
}

// displayWatchUpdate prints a compact advisory summary for a fresh snapshot.
func displayWatchUpdate(catalog *gamedata.Catalog, st *run.State) {
	fmt.Println()
	fmt.Printf("Floor %d | %s | %d/%d HP | %d gold\n",
		st.Floor, st.Character, st.CurrentHP, st.MaxHP, st.Gold)

	report := advisor.AnalyzeHealth(catalog, st)
	fmt.Printf("Deck grade %s (%d/100), projected win rate %d%%\n",
		report.Grade, report.Score, report.ProjectedWinRate)

	if primary, ok := advisor.PrimaryArchetype(catalog, st.Deck, st.Character); ok {
		fmt.Printf("Archetype: %s (%d%%)\n", primary.Name, primary.Strength)
	}
	for _, issue := range report.CriticalIssues {
		fmt.Printf("  ! %s\n", issue)
	}
}
