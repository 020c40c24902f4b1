package gamedata

// Character identifies one of the playable characters, or a shared pool.
type Character string

const (
	Ironclad  Character = "ironclad"
	Silent    Character = "silent"
	Defect    Character = "defect"
	Watcher   Character = "watcher"
	Colorless Character = "colorless"
	Shared    Character = "shared"
)

// CardType categorizes a card's combat role.
type CardType string

const (
	TypeAttack CardType = "attack"
	TypeSkill  CardType = "skill"
	TypePower  CardType = "power"
	TypeStatus CardType = "status"
	TypeCurse  CardType = "curse"
)

// Card is an immutable reference record for a single card.
// A deck holds instances of cards, not Card records; duplicates are legal.
type Card struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Character     Character `json:"character"`
	Rarity        string   `json:"rarity"`
	Type          CardType `json:"type"`
	Cost          int      `json:"cost"` // -1 means X cost
	Upgraded      bool     `json:"upgraded,omitempty"`
	Description   string   `json:"description"`
	Tier          int      `json:"tier"` // hand-authored 1-5
	Synergies     []string `json:"synergies,omitempty"`
	AntiSynergies []string `json:"antiSynergies,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// HasTag reports whether the card carries a capability tag.
func (c Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Relic is an immutable reference record for a relic.
type Relic struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Tier          string    `json:"tier"` // starter/common/uncommon/rare/boss/shop/event
	Character     Character `json:"character"`
	Description   string    `json:"description"`
	Grade         string    `json:"grade"`            // S/A/B/C/D/F
	Rating        float64   `json:"rating,omitempty"` // optional numeric override
	Synergies     []string  `json:"synergies,omitempty"`
	AntiSynergies []string  `json:"antiSynergies,omitempty"`
}

// Potion is an immutable reference record for a potion.
type Potion struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rarity    string    `json:"rarity"`
	Character Character `json:"character"`
	Effect    string    `json:"effect"`
	Usage     string    `json:"usage"`
}

// MonsterAttack describes one named attack in a monster's pattern.
type MonsterAttack struct {
	Name   string `json:"name"`
	Damage int    `json:"damage"`
	Hits   int    `json:"hits"`
	Effect string `json:"effect,omitempty"`
}

// DeckRequirements declares what a deck needs to handle a monster comfortably.
type DeckRequirements struct {
	DamagePerTurn int  `json:"damagePerTurn"`
	BlockPerTurn  int  `json:"blockPerTurn"`
	WantsAOE      bool `json:"wantsAoe,omitempty"`
	WantsScaling  bool `json:"wantsScaling,omitempty"`
}

// Monster is an immutable reference record for an encounter.
type Monster struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Act          int              `json:"act"`
	HP           string           `json:"hp"` // range, e.g. "140-144"
	Difficulty   string           `json:"difficulty"` // normal/elite/boss
	Attacks      []MonsterAttack  `json:"attacks,omitempty"`
	Abilities    []string         `json:"abilities,omitempty"`
	Strategy     string           `json:"strategy,omitempty"`
	Weaknesses   []string         `json:"weaknesses,omitempty"`
	Dangers      []string         `json:"dangers,omitempty"`
	Requirements DeckRequirements `json:"requirements"`
}

// EventChoice is a single selectable option within an event.
type EventChoice struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	GoldCost  int    `json:"goldCost,omitempty"`
	HPCost    int    `json:"hpCost,omitempty"`
	MaxHPCost int    `json:"maxHpCost,omitempty"`
}

// Event is an immutable reference record for a map event.
type Event struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Act         int           `json:"act,omitempty"`
	Description string        `json:"description"`
	Choices     []EventChoice `json:"choices"`
}

// Blessing is a starting bonus offered before floor one.
type Blessing struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"` // card/gold/hp/relic/penalty
	Drawback    string `json:"drawback,omitempty"`
}

// ArchetypeDef is a named deck-building strategy with its signal cards.
type ArchetypeDef struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Character        Character `json:"character"`
	KeyCards         []string  `json:"keyCards"`
	RecommendedCards []string  `json:"recommendedCards,omitempty"`
	Threshold        int       `json:"threshold,omitempty"` // min key cards present; 0 means 1
}
