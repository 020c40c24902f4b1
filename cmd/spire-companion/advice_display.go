package main

import (
	"fmt"
	"strings"

	"github.com/spirewatch/spire-companion/internal/advisor"
)

func runCardCommand() {
	cardID := commandArg("card", "<card-id>")
	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	st := loadState(cfg)

	eval := advisor.EvaluateCard(catalog, cardID, st.Deck, st.Relics)
	displayCardEvaluation(eval)
}

// displayCardEvaluation renders a card reward rating.
func displayCardEvaluation(eval advisor.CardEvaluation) {
	fmt.Println()
	fmt.Printf("%s: %s (%.1f/5)\n", eval.Name, strings.ToUpper(eval.Priority.String()), eval.Rating)
	fmt.Printf("  %s\n", eval.PrimaryReason)
	for _, reason := range eval.Reasons {
		if reason == eval.PrimaryReason {
			continue
		}
		fmt.Printf("  - %s\n", reason)
	}
	fmt.Println()
}

func runRelicCommand() {
	relicID := commandArg("relic", "<relic-id>")
	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	st := loadState(cfg)

	eval := advisor.EvaluateRelic(catalog, relicID, st.Deck)
	displayRelicEvaluation(eval)
}

func runBossRelicCommand() {
	relicID := commandArg("boss-relic", "<relic-id>")
	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	st := loadState(cfg)

	eval := advisor.EvaluateBossRelic(catalog, relicID, st)
	displayRelicEvaluation(eval)
}

// displayRelicEvaluation renders a relic rating with its synergy lists.
func displayRelicEvaluation(eval advisor.RelicEvaluation) {
	fmt.Println()
	fmt.Printf("%s: %s (%.1f/5)\n", eval.Name, strings.ToUpper(eval.Priority.TakeString()), eval.Rating)
	fmt.Printf("  %s\n", eval.Reason)
	if len(eval.ActiveSynergies) > 0 {
		fmt.Printf("  Synergies:      %s\n", strings.Join(eval.ActiveSynergies, ", "))
	}
	if len(eval.AntiSynergies) > 0 {
		fmt.Printf("  Anti-synergies: %s\n", strings.Join(eval.AntiSynergies, ", "))
	}
	fmt.Println()
}

func runRemovalCommand() {
	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	st := loadState(cfg)

	candidates := advisor.AdviseRemoval(catalog, st)
	displayRemovalCandidates(candidates)
}

// displayRemovalCandidates renders the deck ranked as removal targets.
func displayRemovalCandidates(candidates []advisor.RemovalCandidate) {
	if len(candidates) == 0 {
		fmt.Println("Deck is empty; nothing to remove.")
		return
	}

	fmt.Println("\nRemoval Candidates")
	fmt.Println("==================")
	fmt.Println()

	for _, c := range candidates {
		fmt.Printf("  %-14s %-20s %s\n", c.Priority.String(), c.Name, c.Reason)
	}
	fmt.Println()
}

func runBlessingsCommand() {
	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	st := loadState(cfg)

	blessings := advisor.AdviseBlessings(catalog, st)
	displayBlessings(blessings)
}

// displayBlessings renders the starting bonus ratings, best first.
func displayBlessings(blessings []advisor.BlessingAdvice) {
	fmt.Println("\nStarting Bonuses")
	fmt.Println("================")
	fmt.Println()

	for _, b := range blessings {
		fmt.Printf("  %-20s %-18s %s\n", b.Name, b.Rating.String(), b.Reason)
	}
	fmt.Println()
}
