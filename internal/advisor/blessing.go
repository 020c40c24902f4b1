package advisor

import (
	"sort"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

// BlessingAdvice rates one starting bonus.
type BlessingAdvice struct {
	BlessingID string       `json:"blessingId"`
	Name       string       `json:"name"`
	Rating     ChoiceRating `json:"rating"`
	Reason     string       `json:"reason"`
}

// blessingRatings keys on blessing identifier. Unknown blessings fall back
// to category-based advice.
var blessingRatings = map[string]func(st *run.State) (ChoiceRating, string){
	"neow_card_remove": func(*run.State) (ChoiceRating, string) {
		return HighlyRecommended, "Thinning the starter deck pays off every single floor"
	},
	"neow_transform": func(*run.State) (ChoiceRating, string) {
		return Recommend, "A gamble, but the floor is a basic you wanted gone anyway"
	},
	"neow_max_hp": func(*run.State) (ChoiceRating, string) {
		return Recommend, "Max HP is quiet value that never expires"
	},
	"neow_gold": func(*run.State) (ChoiceRating, string) {
		return Recommend, "Early gold means an early shop removal"
	},
	"neow_rare_card": func(*run.State) (ChoiceRating, string) {
		return SituationalChoice, "A rare can anchor a plan or sit dead; depends on the roll"
	},
	"neow_upgrade": func(*run.State) (ChoiceRating, string) {
		return Recommend, "A free upgrade you would have spent a rest site on"
	},
	"neow_boss_relic_swap": func(st *run.State) (ChoiceRating, string) {
		if st.Character == gamedata.Ironclad {
			return SituationalChoice, "Trading guaranteed healing for a random boss relic is a real cost"
		}
		return Recommend, "Most starter relics trade up into a boss relic"
	},
	"neow_cursed_gold": func(*run.State) (ChoiceRating, string) {
		return SituationalChoice, "Big gold, but the curse rides along until you remove it"
	},
}

// AdviseBlessings rates every starting bonus in the catalog for the current
// character, best first.
func AdviseBlessings(cat *gamedata.Catalog, st *run.State) []BlessingAdvice {
	blessings := cat.Blessings()
	advice := make([]BlessingAdvice, 0, len(blessings))
	for _, b := range blessings {
		rating, reason := rateBlessing(b, st)
		advice = append(advice, BlessingAdvice{
			BlessingID: b.ID,
			Name:       b.Name,
			Rating:     rating,
			Reason:     reason,
		})
	}
	sort.SliceStable(advice, func(i, j int) bool {
		if advice[i].Rating != advice[j].Rating {
			return advice[i].Rating < advice[j].Rating
		}
		return advice[i].Name < advice[j].Name
	})
	return advice
}

func rateBlessing(b gamedata.Blessing, st *run.State) (ChoiceRating, string) {
	if rate, ok := blessingRatings[b.ID]; ok {
		rating, reason := rate(st)
		if b.Drawback != "" && rating < SituationalChoice {
			rating = SituationalChoice
			reason = reason + "; weigh the attached drawback"
		}
		return rating, reason
	}
	switch b.Category {
	case "card":
		return SituationalChoice, "Card offers depend entirely on what shows up"
	case "hp", "gold":
		return Recommend, "Flat resources are reliable value"
	case "relic":
		return Recommend, "Relics compound over a whole run"
	case "penalty":
		return Avoid, "The downside here outweighs the listed gain"
	default:
		return SituationalChoice, "Hard to rate without more context"
	}
}
