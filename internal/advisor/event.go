package advisor

import (
	"fmt"
	"sort"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// ChoiceRating orders event options from best to worst.
type ChoiceRating int

const (
	HighlyRecommended ChoiceRating = iota
	Recommend
	SituationalChoice
	Avoid
)

func (r ChoiceRating) String() string {
	switch r {
	case HighlyRecommended:
		return "highly-recommended"
	case Recommend:
		return "recommended"
	case SituationalChoice:
		return "situational"
	default:
		return "avoid"
	}
}

// MarshalText renders the rating for JSON output.
func (r ChoiceRating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ChoiceAdvice rates one option within an event.
type ChoiceAdvice struct {
	ChoiceID string       `json:"choiceId"`
	Label    string       `json:"label"`
	Rating   ChoiceRating `json:"rating"`
	Reason   string       `json:"reason"`
	Disabled bool         `json:"disabled,omitempty"`
}

// EventAdvice is the engine's ranking of an event's options.
type EventAdvice struct {
	EventID   string         `json:"eventId"`
	EventName string         `json:"eventName"`
	Best      string         `json:"best"`
	Choices   []ChoiceAdvice `json:"choices"`
}

// eventRule rates one choice of one known event against the run state.
type eventRule func(choice gamedata.EventChoice, st *run.State, comp Composition) (ChoiceRating, string)

// eventRules keys on event identifier. Events without an entry get generic
// cost-based advice.
var eventRules = map[string]eventRule{
	"the_cleric": func(c gamedata.EventChoice, st *run.State, comp Composition) (ChoiceRating, string) {
		switch c.ID {
		case "heal":
			if st.HPRatio() < CautionHPRatio {
				return HighlyRecommended, "Cheap healing when you badly need it"
			}
			return SituationalChoice, "Healing you don't need yet"
		case "purify":
			if comp.CurseCount > 0 {
				return HighlyRecommended, "Removes a curse outright"
			}
			return Recommend, "Deck thinning is almost always worth the gold"
		default:
			return Avoid, "Leaving gains nothing here"
		}
	},
	"big_fish": func(c gamedata.EventChoice, st *run.State, _ Composition) (ChoiceRating, string) {
		switch c.ID {
		case "banana":
			if st.HPRatio() < CautionHPRatio {
				return HighlyRecommended, "A third of your HP back, no strings"
			}
			return SituationalChoice, "Fine, but max HP or the relic does more"
		case "donut":
			return Recommend, "Permanent max HP compounds all run"
		default:
			return SituationalChoice, "A relic at the price of a curse; good with removal access"
		}
	},
	"golden_idol": func(c gamedata.EventChoice, st *run.State, _ Composition) (ChoiceRating, string) {
		if c.ID == "take" {
			if st.HPRatio() < DangerHPRatio {
				return SituationalChoice, "The idol pays, but you can't spare the hit right now"
			}
			return HighlyRecommended, "Gold on every future kill outvalues the one-time cost"
		}
		return Avoid, "Walking away from the idol leaves value behind"
	},
	"vampires": func(c gamedata.EventChoice, st *run.State, comp Composition) (ChoiceRating, string) {
		if c.ID == "accept" {
			if comp.BasicCount >= 4 {
				return Recommend, "Trades your basic attacks for lifesteal; strong with many Strikes"
			}
			return Avoid, "Too few Strikes left to make the trade pay"
		}
		return SituationalChoice, "Declining keeps your max HP intact"
	},
	"cursed_tome": func(c gamedata.EventChoice, st *run.State, _ Composition) (ChoiceRating, string) {
		if c.ID == "read" {
			if st.HPRatio() >= HealthyHPRatio {
				return Recommend, "The book relics are worth the chip damage at high HP"
			}
			return Avoid, "The reading costs more HP than you can spare"
		}
		return SituationalChoice, "Skipping is safe but forfeits a strong relic"
	},
	"dead_adventurer": func(c gamedata.EventChoice, st *run.State, _ Composition) (ChoiceRating, string) {
		if c.ID == "search" {
			if st.HPRatio() >= HealthyHPRatio {
				return SituationalChoice, "Gamble on loot with a rising elite chance"
			}
			return Avoid, "An ambush at this HP could end the run"
		}
		return Recommend, "Leaving dodges an elite you didn't route for"
	},
	"purifier": func(c gamedata.EventChoice, _ *run.State, comp Composition) (ChoiceRating, string) {
		if c.ID == "purge" {
			if comp.CurseCount+comp.StatusCount > 0 || comp.BasicCount > 2 {
				return HighlyRecommended, "Free removal with obvious targets in the deck"
			}
			return Recommend, "Free removal; thin something even in a tight deck"
		}
		return Avoid, "Skipping free removal"
	},
	"bonfire_spirits": func(c gamedata.EventChoice, _ *run.State, comp Composition) (ChoiceRating, string) {
		if c.ID == "offer" {
			if comp.CurseCount > 0 {
				return HighlyRecommended, "Feed them a curse and take the max HP"
			}
			return SituationalChoice, "The reward scales with the rarity you sacrifice"
		}
		return Avoid, "Offering nothing gets nothing"
	},
	"duplicator": func(c gamedata.EventChoice, _ *run.State, comp Composition) (ChoiceRating, string) {
		if c.ID == "duplicate" {
			return Recommend, "A second copy of your best card; pick the deck's engine piece"
		}
		return Avoid, "Leaving wastes the altar"
	},
	"living_wall": func(c gamedata.EventChoice, _ *run.State, comp Composition) (ChoiceRating, string) {
		switch c.ID {
		case "forget":
			if comp.CurseCount > 0 || comp.BasicCount > 2 {
				return HighlyRecommended, "Removal with a clear target"
			}
			return Recommend, "Removal is the safest of the three faces"
		case "change":
			return SituationalChoice, "Transform gambles; sensible when the deck needs a hit"
		default:
			return SituationalChoice, "An upgrade is fine if nothing needs removing"
		}
	},
	"the_divine_fountain": func(c gamedata.EventChoice, _ *run.State, comp Composition) (ChoiceRating, string) {
		if c.ID == "drink" {
			if comp.CurseCount > 0 {
				return HighlyRecommended, "Removes every curse at once"
			}
			return SituationalChoice, "Nothing to cleanse"
		}
		return SituationalChoice, "No curses means no reason to drink"
	},
}

// AdviseEvent ranks the options of an event. Choices the run cannot afford
// are marked disabled and forced to avoid. Unknown events get cost-based
// generic advice so the function stays total.
func AdviseEvent(cat *gamedata.Catalog, eventID string, st *run.State) EventAdvice {
	event, known := cat.Event(eventID)
	if !known {
		event = gamedata.Event{ID: eventID, Name: eventID}
	}

	comp := Analyze(st.Deck, cat)
	rule := eventRules[event.ID]

	advice := EventAdvice{EventID: event.ID, EventName: event.Name}
	for _, choice := range event.Choices {
		var rating ChoiceRating
		var reason string
		if rule != nil {
			rating, reason = rule(choice, st, comp)
		} else {
			rating, reason = genericChoiceRating(choice, st)
		}

		ca := ChoiceAdvice{ChoiceID: choice.ID, Label: choice.Label, Rating: rating, Reason: reason}
		if choice.GoldCost > st.Gold {
			ca.Disabled = true
			ca.Rating = Avoid
			ca.Reason = fmt.Sprintf("Costs %d gold; you have %d", choice.GoldCost, st.Gold)
		} else if choice.HPCost >= st.CurrentHP {
			ca.Disabled = true
			ca.Rating = Avoid
			ca.Reason = fmt.Sprintf("Costs %d HP; you have %d", choice.HPCost, st.CurrentHP)
		}
		advice.Choices = append(advice.Choices, ca)
	}

	if len(advice.Choices) == 0 {
		return advice
	}
	// Best option: affordable beats disabled, then lowest rating wins, ties
	// break on declaration order.
	sort.SliceStable(advice.Choices, func(i, j int) bool {
		if advice.Choices[i].Disabled != advice.Choices[j].Disabled {
			return !advice.Choices[i].Disabled
		}
		return advice.Choices[i].Rating < advice.Choices[j].Rating
	})
	advice.Best = advice.Choices[0].ChoiceID
	return advice
}

// genericChoiceRating covers events with no dedicated rule. High costs push
// toward avoidance; free options stay neutral.
func genericChoiceRating(choice gamedata.EventChoice, st *run.State) (ChoiceRating, string) {
	switch {
	case choice.MaxHPCost > 0:
		return Avoid, "Max HP losses rarely pay off without a dedicated plan"
	case choice.HPCost > 0 && st.HPRatio() < CautionHPRatio:
		return Avoid, "You cannot afford HP costs right now"
	case choice.HPCost > 0:
		return SituationalChoice, "Paying HP is fine while healthy"
	case choice.GoldCost > 0:
		return SituationalChoice, "Spending gold here competes with the next shop"
	default:
		return Recommend, "Free option with no listed downside"
	}
}
