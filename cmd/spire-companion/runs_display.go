package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spirewatch/spire-companion/internal/storage/models"
)

const runListLimit = 20

func runRunsCommand() {
	cfg := loadConfig()
	store := openStore(cfg)
	if store == nil {
		log.Fatal("Run history is unavailable")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing storage: %v", err)
		}
	}()

	runs, err := store.Runs.List(context.Background(), runListLimit)
	if err != nil {
		log.Fatalf("Error listing runs: %v", err)
	}
	displayRuns(runs)
}

// displayRuns renders stored run history, most recent first.
func displayRuns(runs []*models.RunRecord) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println("\nRun History")
	fmt.Println("===========")
	fmt.Println()

	for _, r := range runs {
		fmt.Printf("%s  %-10s A%-2d floor %-3d %3d/%-3d HP  %-11s %s\n",
			r.UpdatedAt.Format("2006-01-02 15:04"),
			r.Character,
			r.AscensionLevel,
			r.Floor,
			r.CurrentHP,
			r.MaxHP,
			r.Outcome,
			r.ID)
	}
	fmt.Println()
}
