// Package main provides a standalone REST API server. It serves the
// advisory endpoints over the current run state and, when a state file is
// configured, keeps that state live via the file watcher.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spirewatch/spire-companion/internal/api"
	"github.com/spirewatch/spire-companion/internal/config"
	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
	"github.com/spirewatch/spire-companion/internal/storage"
	"github.com/spirewatch/spire-companion/internal/version"
	"github.com/spirewatch/spire-companion/internal/watcher"
)

var (
	addr       = flag.String("addr", "", "Listen address (default: config server.addr)")
	dbPath     = flag.String("db-path", "", "Database path (default: ~/.spire-companion/companion.db)")
	stateFile  = flag.String("state-file", "", "Run state file to watch (default: config run.state_file)")
	catalogDir = flag.String("catalog-dir", "", "Directory of catalog JSON files (default: embedded data)")
	noStore    = flag.Bool("no-store", false, "Disable run history persistence")
)

func main() {
	flag.Parse()

	fmt.Printf("Spire Companion %s - REST API Server\n", version.GetVersion())
	fmt.Println("=================================")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	listenAddr := *addr
	if listenAddr == "" {
		listenAddr = cfg.Server.Addr
	}

	// Load the game catalog
	catalog := gamedata.Default()
	dir := *catalogDir
	if dir == "" {
		dir = cfg.Data.CatalogDir
	}
	if dir != "" {
		catalog, err = gamedata.Load(dir)
		if err != nil {
			log.Fatalf("Failed to load catalog from %s: %v", dir, err)
		}
	}
	fmt.Printf("Catalog: %d cards\n", catalog.CardCount())

	// Open run history storage
	var store *storage.Service
	if !*noStore {
		finalDBPath := *dbPath
		if finalDBPath == "" {
			finalDBPath = cfg.Database.Path
		}
		if finalDBPath == "" {
			finalDBPath, err = config.DefaultDatabasePath()
			if err != nil {
				log.Fatalf("Failed to resolve database path: %v", err)
			}
		}

		if err := os.MkdirAll(filepath.Dir(finalDBPath), 0o755); err != nil {
			log.Fatalf("Failed to create database directory: %v", err)
		}

		dbConfig := storage.DefaultConfig(finalDBPath)
		dbConfig.AutoMigrate = cfg.Database.AutoMigrate
		db, err := storage.Open(dbConfig)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("Error closing database: %v", err)
			}
		}()

		store = storage.NewService(db)
		fmt.Printf("Database: %s\n", finalDBPath)
	}

	// Create API server
	source := api.NewRunSource()
	server := api.NewServer(&api.Config{Addr: listenAddr}, catalog, source, store)
	server.Start()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Watch the run state file when one is configured
	watchPath := *stateFile
	if watchPath == "" {
		watchPath = cfg.Run.StateFile
	}
	if watchPath != "" {
		debounce, err := cfg.GetWatchDebounce()
		if err != nil {
			log.Fatalf("Invalid watch debounce: %v", err)
		}

		w, err := watcher.New(watchPath, func(st *run.State) {
			server.PublishRunState(st)
			if store != nil {
				if err := store.SaveRunState(ctx, st); err != nil {
					log.Printf("Error saving run snapshot: %v", err)
				}
			}
		},
			watcher.WithDebounce(debounce),
			watcher.WithErrorHandler(func(err error) {
				log.Printf("Watch error: %v", err)
			}))
		if err != nil {
			log.Fatalf("Failed to create watcher: %v", err)
		}

		go func() {
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("Watcher stopped: %v", err)
			}
		}()
		fmt.Printf("Watching: %s\n", watchPath)
	}

	fmt.Println()
	fmt.Printf("API server running at http://%s\n", listenAddr)
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println()
	fmt.Println("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	fmt.Println("API server stopped.")
}
