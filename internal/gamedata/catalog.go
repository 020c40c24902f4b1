// Package gamedata provides the static reference catalogs the advisory engine
// reads: cards, relics, potions, monsters, events, blessings, and archetype
// definitions. Catalogs are loaded once and never mutated; every lookup has a
// neutral fallback so evaluators stay total over unknown identifiers.
package gamedata

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

//go:embed data/*.json
var defaultDataFS embed.FS

// Catalog is the read-only reference-data handle passed into evaluators.
type Catalog struct {
	cards      map[string]Card
	relics     map[string]Relic
	potions    map[string]Potion
	monsters   map[string]Monster
	events     map[string]Event
	blessings  map[string]Blessing
	archetypes map[string]ArchetypeDef
}

// catalogFiles maps catalog sections to their JSON file names.
var catalogFiles = []string{
	"cards.json",
	"relics.json",
	"potions.json",
	"monsters.json",
	"events.json",
	"blessings.json",
	"archetypes.json",
}

// Default builds a catalog from the embedded reference data.
func Default() *Catalog {
	cat, err := load(func(name string) ([]byte, error) {
		return defaultDataFS.ReadFile("data/" + name)
	})
	if err != nil {
		// Embedded data is compiled in; a decode failure is a build defect.
		panic(fmt.Sprintf("gamedata: embedded data invalid: %v", err))
	}
	return cat
}

// Load builds a catalog from JSON files in dir. Files missing from dir fall
// back to the embedded defaults, so a data directory may override only the
// sections it cares about.
func Load(dir string) (*Catalog, error) {
	return load(func(name string) ([]byte, error) {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if os.IsNotExist(err) {
			return defaultDataFS.ReadFile("data/" + name)
		}
		return nil, err
	})
}

func load(read func(name string) ([]byte, error)) (*Catalog, error) {
	cat := &Catalog{
		cards:      make(map[string]Card),
		relics:     make(map[string]Relic),
		potions:    make(map[string]Potion),
		monsters:   make(map[string]Monster),
		events:     make(map[string]Event),
		blessings:  make(map[string]Blessing),
		archetypes: make(map[string]ArchetypeDef),
	}

	for _, name := range catalogFiles {
		data, err := read(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := cat.decodeSection(name, data); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
	}

	return cat, nil
}

func (c *Catalog) decodeSection(name string, data []byte) error {
	switch name {
	case "cards.json":
		var records []Card
		if err := json.Unmarshal(data, &records); err != nil {
			return err
		}
		for _, r := range records {
			c.cards[r.ID] = r
		}
	case "relics.json":
		var records []Relic
		if err := json.Unmarshal(data, &records); err != nil {
			return err
		}
		for _, r := range records {
			c.relics[r.ID] = r
		}
	case "potions.json":
		var records []Potion
		if err := json.Unmarshal(data, &records); err != nil {
			return err
		}
		for _, r := range records {
			c.potions[r.ID] = r
		}
	case "monsters.json":
		var records []Monster
		if err := json.Unmarshal(data, &records); err != nil {
			return err
		}
		for _, r := range records {
			c.monsters[r.ID] = r
		}
	case "events.json":
		var records []Event
		if err := json.Unmarshal(data, &records); err != nil {
			return err
		}
		for _, r := range records {
			c.events[r.ID] = r
		}
	case "blessings.json":
		var records []Blessing
		if err := json.Unmarshal(data, &records); err != nil {
			return err
		}
		for _, r := range records {
			c.blessings[r.ID] = r
		}
	case "archetypes.json":
		var records []ArchetypeDef
		if err := json.Unmarshal(data, &records); err != nil {
			return err
		}
		for _, r := range records {
			c.archetypes[r.ID] = r
		}
	default:
		return fmt.Errorf("unknown catalog section %q", name)
	}
	return nil
}

// Card looks up a card by identifier.
func (c *Catalog) Card(id string) (Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

// Relic looks up a relic by identifier.
func (c *Catalog) Relic(id string) (Relic, bool) {
	relic, ok := c.relics[id]
	return relic, ok
}

// Potion looks up a potion by identifier.
func (c *Catalog) Potion(id string) (Potion, bool) {
	potion, ok := c.potions[id]
	return potion, ok
}

// Monster looks up a monster by identifier.
func (c *Catalog) Monster(id string) (Monster, bool) {
	monster, ok := c.monsters[id]
	return monster, ok
}

// Event looks up an event by identifier.
func (c *Catalog) Event(id string) (Event, bool) {
	event, ok := c.events[id]
	return event, ok
}

// Blessing looks up a blessing by identifier.
func (c *Catalog) Blessing(id string) (Blessing, bool) {
	blessing, ok := c.blessings[id]
	return blessing, ok
}

// Archetype looks up an archetype definition by identifier.
func (c *Catalog) Archetype(id string) (ArchetypeDef, bool) {
	def, ok := c.archetypes[id]
	return def, ok
}

// ArchetypesFor returns the archetype definitions for a character, sorted by
// identifier so downstream ordering is deterministic.
func (c *Catalog) ArchetypesFor(ch Character) []ArchetypeDef {
	var defs []ArchetypeDef
	for _, def := range c.archetypes {
		if def.Character == ch || def.Character == Shared {
			defs = append(defs, def)
		}
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// BossesForAct returns bosses for an act, sorted by identifier.
func (c *Catalog) BossesForAct(act int) []Monster {
	var bosses []Monster
	for _, m := range c.monsters {
		if m.Act == act && m.Difficulty == "boss" {
			bosses = append(bosses, m)
		}
	}
	sort.Slice(bosses, func(i, j int) bool { return bosses[i].ID < bosses[j].ID })
	return bosses
}

// Monsters returns every monster, sorted by identifier.
func (c *Catalog) Monsters() []Monster {
	monsters := make([]Monster, 0, len(c.monsters))
	for _, m := range c.monsters {
		monsters = append(monsters, m)
	}
	sort.Slice(monsters, func(i, j int) bool { return monsters[i].ID < monsters[j].ID })
	return monsters
}

// Blessings returns every blessing, sorted by identifier.
func (c *Catalog) Blessings() []Blessing {
	blessings := make([]Blessing, 0, len(c.blessings))
	for _, b := range c.blessings {
		blessings = append(blessings, b)
	}
	sort.Slice(blessings, func(i, j int) bool { return blessings[i].ID < blessings[j].ID })
	return blessings
}

// CardCount returns the number of cards in the catalog.
func (c *Catalog) CardCount() int { return len(c.cards) }
