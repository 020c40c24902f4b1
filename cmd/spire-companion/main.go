package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spirewatch/spire-companion/internal/config"
	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
	"github.com/spirewatch/spire-companion/internal/storage"
	"github.com/spirewatch/spire-companion/internal/version"
)

var (
	// Application mode flags
	debugMode      = flag.Bool("debug-mode", false, "Enable verbose debug logging")
	debugModeShort = flag.Bool("d", false, "Enable debug logging (shorthand for -debug-mode)")

	// Run state configuration flags
	stateFile  = flag.String("state-file", "", "Path to the run state JSON file (overrides config)")
	catalogDir = flag.String("catalog-dir", "", "Directory of catalog JSON files (default: embedded data)")
)

// getDBPath returns the database path from environment variable, config, or
// the default location.
func getDBPath(cfg *config.Config) string {
	if dbPath := os.Getenv("SPIRE_DB_PATH"); dbPath != "" {
		return dbPath
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path
	}
	dbPath, err := config.DefaultDatabasePath()
	if err != nil {
		log.Fatalf("Error resolving database path: %v", err)
	}
	return dbPath
}

// loadCatalog loads the game catalog, preferring an explicit directory over
// the embedded data.
func loadCatalog(cfg *config.Config) *gamedata.Catalog {
	dir := *catalogDir
	if dir == "" {
		dir = cfg.Data.CatalogDir
	}
	if dir == "" {
		return gamedata.Default()
	}

	catalog, err := gamedata.Load(dir)
	if err != nil {
		log.Fatalf("Error loading catalog from %s: %v", dir, err)
	}
	return catalog
}

// loadState loads the current run state from the configured state file.
func loadState(cfg *config.Config) *run.State {
	path := *stateFile
	if path == "" {
		path = cfg.Run.StateFile
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "No run state file configured.")
		fmt.Fprintln(os.Stderr, "Use -state-file or set run.state_file in the config.")
		os.Exit(1)
	}

	st, err := run.LoadFile(path)
	if err != nil {
		log.Fatalf("Error loading run state from %s: %v", path, err)
	}
	if *debugMode {
		log.Printf("Loaded run %s: %s, floor %d, %d/%d HP",
			st.ID, st.Character, st.Floor, st.CurrentHP, st.MaxHP)
	}
	return st
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	return cfg
}

func main() {
	// Subcommand first, then flags, so "spire-companion card inflame -d" works
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}
	command := args[0]
	if err := flag.CommandLine.Parse(args[1:]); err != nil {
		os.Exit(2)
	}
	if *debugModeShort {
		*debugMode = true
	}

	switch command {
	case "health":
		runHealthCommand()
	case "archetypes":
		runArchetypesCommand()
	case "card":
		runCardCommand()
	case "relic":
		runRelicCommand()
	case "boss-relic":
		runBossRelicCommand()
	case "combat":
		runCombatCommand()
	case "boss":
		runBossCommand()
	case "event":
		runEventCommand()
	case "removal":
		runRemovalCommand()
	case "path":
		runPathCommand()
	case "blessings":
		runBlessingsCommand()
	case "watch":
		runWatchCommand()
	case "runs":
		runRunsCommand()
	case "migrate":
		runMigrationCommand()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("Spire Companion %s - Run Advisor\n", version.GetVersion())
	fmt.Println("=============================")
	fmt.Println()
	fmt.Println("Usage: spire-companion <command> [options]")
	fmt.Println()
	fmt.Println("Advice commands (read the current run state):")
	fmt.Println("  health               - Grade the current deck")
	fmt.Println("  archetypes           - Detect deck archetypes")
	fmt.Println("  card <id>            - Rate a card reward")
	fmt.Println("  relic <id>           - Rate a relic")
	fmt.Println("  boss-relic <id>      - Rate a boss relic offer")
	fmt.Println("  combat <monster-id>  - Assess readiness for a fight")
	fmt.Println("  boss                 - Preparation checklist for the act boss")
	fmt.Println("  event <id>           - Rank an event's choices")
	fmt.Println("  removal              - Rank cards for removal")
	fmt.Println("  path <node>...       - Rank reachable map nodes")
	fmt.Println("  blessings            - Rate the starting bonuses")
	fmt.Println()
	fmt.Println("Other commands:")
	fmt.Println("  watch                - Watch the state file and print advice on change")
	fmt.Println("  runs                 - Show stored run history")
	fmt.Println("  migrate              - Run database migrations (up/down/version)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  spire-companion health")
	fmt.Println("  spire-companion card inflame")
	fmt.Println("  spire-companion combat gremlin_nob")
	fmt.Println("  spire-companion path monster elite rest")
	fmt.Println("  spire-companion migrate up")
	fmt.Println()
}

// commandArg returns the positional argument a subcommand requires, exiting
// with usage when it is missing.
func commandArg(name, usage string) string {
	args := flag.CommandLine.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: spire-companion %s %s\n", name, usage)
		os.Exit(1)
	}
	return args[0]
}

func runMigrationCommand() {
	args := flag.CommandLine.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: spire-companion migrate <up|down|version>")
		os.Exit(1)
	}

	cfg := loadConfig()
	dbPath := getDBPath(cfg)

	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		log.Fatalf("Error creating database directory: %v", err)
	}

	mgr, err := storage.NewMigrationManager(dbPath)
	if err != nil {
		log.Fatalf("Error creating migration manager: %v", err)
	}
	defer func() {
		if srcErr, dbErr := mgr.Close(); srcErr != nil || dbErr != nil {
			log.Printf("Error closing migration manager: %v / %v", srcErr, dbErr)
		}
	}()

	switch args[0] {
	case "up":
		if err := mgr.Up(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("Migrations applied.")
	case "down":
		if err := mgr.Down(); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		fmt.Println("Last migration rolled back.")
	case "version":
		version, dirty, err := mgr.Version()
		if err != nil {
			log.Fatalf("Error reading migration version: %v", err)
		}
		fmt.Printf("Schema version: %d (dirty: %v)\n", version, dirty)
	default:
		fmt.Fprintf(os.Stderr, "Unknown migrate command: %s\n", args[0])
		os.Exit(1)
	}
}
