package main

import (
	"fmt"
	"strings"

	"github.com/spirewatch/spire-companion/internal/advisor"
)

func runHealthCommand() {
	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	st := loadState(cfg)

	report := advisor.AnalyzeHealth(catalog, st)
	displayHealthReport(report)
}

// displayHealthReport renders the deck grade and category breakdown.
func displayHealthReport(report advisor.HealthReport) {
	fmt.Println("\nDeck Health")
	fmt.Println("===========")
	fmt.Println()

	fmt.Printf("Grade: %s (%d/100)\n", report.Grade, report.Score)
	fmt.Printf("Projected win rate: %d%%\n", report.ProjectedWinRate)
	fmt.Println()

	fmt.Println("Categories:")
	for _, cat := range report.Categories {
		fmt.Printf("  %-12s %3d  %s\n", cat.Category, cat.Score, cat.Comment)
	}

	if len(report.CriticalIssues) > 0 {
		fmt.Println()
		fmt.Println("Critical issues:")
		for _, issue := range report.CriticalIssues {
			fmt.Printf("  ! %s\n", issue)
		}
	}

	if len(report.Recommendations) > 0 {
		fmt.Println()
		fmt.Println("Recommendations:")
		for _, rec := range report.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}

	fmt.Println()
}

func runArchetypesCommand() {
	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	st := loadState(cfg)

	matches := advisor.DetectArchetypes(catalog, st.Deck, st.Character)
	displayArchetypes(matches)
}

// displayArchetypes renders detected archetypes, strongest first.
func displayArchetypes(matches []advisor.ArchetypeMatch) {
	if len(matches) == 0 {
		fmt.Println("No archetype detected yet. Keep drafting.")
		return
	}

	fmt.Println("\nDetected Archetypes")
	fmt.Println("===================")
	fmt.Println()

	for _, m := range matches {
		fmt.Printf("%s (%d%%)\n", m.Name, m.Strength)
		fmt.Printf("  %s\n", m.Description)
		if len(m.KeyCardsPresent) > 0 {
			fmt.Printf("  Key cards:   %s\n", strings.Join(m.KeyCardsPresent, ", "))
		}
		if len(m.MissingKeyCards) > 0 {
			fmt.Printf("  Still needs: %s\n", strings.Join(m.MissingKeyCards, ", "))
		}
		fmt.Println()
	}
}
