package main

import (
	"fmt"
	"strings"

	"github.com/spirewatch/spire-companion/internal/advisor"
)

func runCombatCommand() {
	monsterID := commandArg("combat", "<monster-id>")
	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	st := loadState(cfg)

	report := advisor.AssessCombat(catalog, monsterID, st)
	displayCombatReport(report)
}

// displayCombatReport renders a fight readiness assessment.
func displayCombatReport(report advisor.CombatReport) {
	fmt.Println()
	fmt.Printf("%s: %s\n", report.MonsterName, strings.ToUpper(report.Verdict.String()))
	fmt.Println()

	if len(report.Strengths) > 0 {
		fmt.Println("Strengths:")
		for _, s := range report.Strengths {
			fmt.Printf("  + %s\n", s)
		}
	}
	if len(report.Weaknesses) > 0 {
		fmt.Println("Weaknesses:")
		for _, w := range report.Weaknesses {
			fmt.Printf("  - %s\n", w)
		}
	}
	if len(report.Recommendations) > 0 {
		fmt.Println("Recommendations:")
		for _, r := range report.Recommendations {
			fmt.Printf("  * %s\n", r)
		}
	}
	if len(report.PotionTips) > 0 {
		fmt.Println("Potions:")
		for _, p := range report.PotionTips {
			fmt.Printf("  * %s\n", p)
		}
	}
	if len(report.TacticalTips) > 0 {
		fmt.Println("Tactics:")
		for _, tip := range report.TacticalTips {
			fmt.Printf("  * %s\n", tip)
		}
	}
	fmt.Println()
}

func runBossCommand() {
	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	st := loadState(cfg)

	report := advisor.PrepareForBoss(catalog, st)
	displayBossReport(report)
}

// displayBossReport renders the act boss preparation checklist.
func displayBossReport(report advisor.BossReport) {
	fmt.Println()
	fmt.Printf("%s in %d floors: %s\n",
		report.BossName, report.FloorsUntilBoss, strings.ToUpper(report.Verdict.String()))
	fmt.Println()

	fmt.Println("Checklist:")
	for _, req := range report.Requirements {
		mark := " "
		if req.Met {
			mark = "x"
		}
		fmt.Printf("  [%s] (%s) %s\n", mark, req.Importance.String(), req.Description)
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
