package advisor

import (
	"fmt"
	"sort"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// NodeType names the room kinds a map path can route through.
type NodeType string

const (
	NodeMonster  NodeType = "monster"
	NodeElite    NodeType = "elite"
	NodeEvent    NodeType = "event"
	NodeShop     NodeType = "shop"
	NodeRest     NodeType = "rest"
	NodeTreasure NodeType = "treasure"
	NodeBoss     NodeType = "boss"
)

// NodePriority buckets how hard a node type should be sought right now.
// Lower values are more desirable; the ordering is total.
type NodePriority int

const (
	CriticalPriority NodePriority = iota
	HighPriority
	NeutralPriority
	LowPriority
	AvoidNode
)

func (p NodePriority) String() string {
	switch p {
	case CriticalPriority:
		return "critical"
	case HighPriority:
		return "high"
	case NeutralPriority:
		return "neutral"
	case LowPriority:
		return "low"
	default:
		return "avoid"
	}
}

// MarshalText renders the priority for JSON output.
func (p NodePriority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Priority breakpoints on the 0-100 node score.
const (
	CriticalNodeScore = 75
	HighNodeScore     = 55
	NeutralNodeScore  = 40
	LowNodeScore      = 25
)

func priorityForNodeScore(score int) NodePriority {
	switch {
	case score >= CriticalNodeScore:
		return CriticalPriority
	case score >= HighNodeScore:
		return HighPriority
	case score >= NeutralNodeScore:
		return NeutralPriority
	case score >= LowNodeScore:
		return LowPriority
	default:
		return AvoidNode
	}
}

// RiskLevel grades the downside of routing into a node right now.
type RiskLevel int

const (
	Safe RiskLevel = iota
	Moderate
	Risky
	Dangerous
)

func (r RiskLevel) String() string {
	switch r {
	case Safe:
		return "safe"
	case Moderate:
		return "moderate"
	case Risky:
		return "risky"
	default:
		return "dangerous"
	}
}

// MarshalText renders the risk level for JSON output.
func (r RiskLevel) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// NodeAdvice scores one candidate node. Score is the fine-grained 0-100
// ranking value behind the priority bucket.
type NodeAdvice struct {
	Node     NodeType     `json:"node"`
	Priority NodePriority `json:"priority"`
	Score    int          `json:"score"`
	Risk     RiskLevel    `json:"risk"`
	Reason   string       `json:"reason"`
}

// PathAdvice ranks the offered nodes best first.
type PathAdvice struct {
	Best     NodeType     `json:"best"`
	Nodes    []NodeAdvice `json:"nodes"`
	Goals    []string     `json:"goals,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

// AdvisePath ranks a set of reachable node types against the run state.
// Scoring is relative within the offered set; the same node can rank first
// on one floor and last on the next.
func AdvisePath(cat *gamedata.Catalog, nodes []NodeType, st *run.State) PathAdvice {
	var advice PathAdvice
	if len(nodes) == 0 {
		return advice
	}

	health := AnalyzeHealth(cat, st)
	hpRatio := st.HPRatio()
	floorsLeft := run.FloorsUntilBoss(st.Floor)

	for _, node := range nodes {
		advice.Nodes = append(advice.Nodes, scoreNode(node, st, health, hpRatio, floorsLeft))
	}

	sort.SliceStable(advice.Nodes, func(i, j int) bool {
		if advice.Nodes[i].Score != advice.Nodes[j].Score {
			return advice.Nodes[i].Score > advice.Nodes[j].Score
		}
		return advice.Nodes[i].Node < advice.Nodes[j].Node
	})
	advice.Best = advice.Nodes[0].Node

	switch {
	case health.Score >= EliteHealthScore && hpRatio >= HealthyHPRatio:
		advice.Goals = append(advice.Goals, "Hunt elites while the deck is ahead")
	case st.Gold >= ShopGoldFloor:
		advice.Goals = append(advice.Goals, "Spend down gold at a shop")
	default:
		advice.Goals = append(advice.Goals, "Take safe fights and keep building the deck")
	}

	if hpRatio < CautionHPRatio {
		advice.Warnings = append(advice.Warnings, "Low HP is shaping this ranking; a rest or shop changes it")
	}
	if floorsLeft <= RestUrgencyFloors {
		advice.Warnings = append(advice.Warnings,
			fmt.Sprintf("%d floors to the boss; prioritize recovery over rewards", floorsLeft))
	}
	return advice
}

func scoreNode(node NodeType, st *run.State, health HealthReport, hpRatio float64, floorsLeft int) NodeAdvice {
	score, risk := 30, Moderate
	reason := "Unfamiliar room type"

	switch node {
	case NodeMonster:
		score, risk = 55, Safe
		reason = "Steady rewards at modest risk"
		if hpRatio < DangerHPRatio {
			score, risk = 30, Risky
			reason = "Even a normal fight is dicey at this HP"
		}

	case NodeElite:
		score, risk = 50, Moderate
		reason = "Relic and gold if the deck can cash the check"
		switch {
		case hpRatio < CautionHPRatio:
			score, risk = 10, Dangerous
			reason = "An elite at this HP risks the run"
		case health.Score >= EliteHealthScore && hpRatio >= HealthyHPRatio:
			score = 80
			reason = "Deck and HP are both strong; elites are where runs are won"
		case health.Score < EliteHealthScore:
			score, risk = 25, Risky
			reason = "The deck isn't ready to pay an elite's toll"
		}

	case NodeEvent:
		score, risk = 50, Moderate
		reason = "Unknown upside; events swing further than fights"

	case NodeShop:
		score, risk = 35, Safe
		reason = "Not enough gold to make a shop worthwhile"
		if st.Gold >= ShopGoldFloor {
			score = 60
			reason = fmt.Sprintf("%d gold buys a removal or a relic", st.Gold)
		}

	case NodeRest:
		score, risk = 40, Safe
		reason = "Resting now banks an upgrade instead"
		switch {
		case hpRatio < CautionHPRatio:
			score = 85
			reason = "Recover before anything else"
		case floorsLeft <= RestUrgencyFloors && hpRatio < HealthyHPRatio:
			score = 75
			reason = "Last chance to top up before the boss"
		}

	case NodeTreasure:
		score, risk = 65, Safe
		reason = "A free relic asks nothing in return"

	case NodeBoss:
		score, risk = 25, Dangerous
		reason = "The boss comes when it comes; nothing to choose here"
	}

	return NodeAdvice{
		Node:     node,
		Priority: priorityForNodeScore(score),
		Score:    score,
		Risk:     risk,
		Reason:   reason,
	}
}
