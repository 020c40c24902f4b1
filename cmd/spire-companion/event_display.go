package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spirewatch/spire-companion/internal/advisor"
)

func runEventCommand() {
	eventID := commandArg("event", "<event-id>")
	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	st := loadState(cfg)

	advice := advisor.AdviseEvent(catalog, eventID, st)
	displayEventAdvice(advice)
}

// displayEventAdvice renders an event's ranked choices.
func displayEventAdvice(advice advisor.EventAdvice) {
	fmt.Println()
	fmt.Printf("%s\n", advice.EventName)
	fmt.Println()

	if len(advice.Choices) == 0 {
		fmt.Println("No choices known for this event.")
		return
	}

	for _, c := range advice.Choices {
		marker := " "
		if c.ChoiceID == advice.Best {
			marker = ">"
		}
		label := c.Label
		if c.Disabled {
			label += " (unaffordable)"
		}
		fmt.Printf("  %s %-28s %-18s %s\n", marker, label, c.Rating.String(), c.Reason)
	}
	fmt.Println()
}

func runPathCommand() {
	args := flag.CommandLine.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: spire-companion path <node>...")
		fmt.Fprintln(os.Stderr, "Nodes: monster, elite, event, shop, rest, treasure, boss")
		os.Exit(1)
	}

	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	st := loadState(cfg)

	nodes := make([]advisor.NodeType, 0, len(args))
	for _, arg := range args {
		nodes = append(nodes, advisor.NodeType(arg))
	}

	advice := advisor.AdvisePath(catalog, nodes, st)
	displayPathAdvice(advice)
}

// displayPathAdvice renders ranked map nodes, best first.
func displayPathAdvice(advice advisor.PathAdvice) {
	fmt.Println("\nPath Options")
	fmt.Println("============")
	fmt.Println()

	for _, n := range advice.Nodes {
		marker := " "
		if n.Node == advice.Best {
			marker = ">"
		}
		fmt.Printf("  %s %-10s %-9s %-10s %s\n", marker, n.Node, n.Priority.String(), n.Risk.String(), n.Reason)
	}

	if len(advice.Goals) > 0 {
		fmt.Println()
		for _, goal := range advice.Goals {
			fmt.Printf("  Goal: %s\n", goal)
		}
	}
	for _, warning := range advice.Warnings {
		fmt.Printf("  Warning: %s\n", warning)
	}
	fmt.Println()
}
