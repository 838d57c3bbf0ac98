package cards

import (
	"fmt"

	"github.com/google/uuid"
)

// idNamespace seeds the deterministic definition IDs so the same catalog
// always yields the same IDs across processes.
var idNamespace = uuid.NewMD5(uuid.NameSpaceOID, []byte("arcana/cards"))

var (
	byID   = make(map[string]*Card)
	byName = make(map[string]*Card)
)

func init() {
	for _, c := range allDefinitions() {
		c.ID = uuid.NewMD5(idNamespace, []byte(string(c.Type)+"/"+c.Name)).String()
		if _, dup := byName[c.Name]; dup {
			panic(fmt.Sprintf("duplicate card name in catalog: %q", c.Name))
		}
		byID[c.ID] = c
		byName[c.Name] = c
	}
}

func allDefinitions() []*Card {
	var all []*Card
	all = append(all, artifacts...)
	all = append(all, mages...)
	all = append(all, monuments...)
	all = append(all, magicItems...)
	all = append(all, scrolls...)
	for i := range placePairs {
		all = append(all, placePairs[i][0], placePairs[i][1])
	}
	return all
}

// ByID returns the card definition for a stable ID, or nil.
func ByID(id string) *Card {
	return byID[id]
}

// ByName returns the card definition for a display name, or nil.
func ByName(name string) *Card {
	return byName[name]
}

// All returns every card definition in the catalog.
func All() []*Card {
	return allDefinitions()
}

func copyList(src []*Card) []*Card {
	out := make([]*Card, len(src))
	copy(out, src)
	return out
}

// Artifacts returns the artifact definitions as a fresh slice safe to shuffle.
func Artifacts() []*Card { return copyList(artifacts) }

// Mages returns the mage definitions.
func Mages() []*Card { return copyList(mages) }

// Monuments returns the monument definitions.
func Monuments() []*Card { return copyList(monuments) }

// MagicItems returns the magic item definitions.
func MagicItems() []*Card { return copyList(magicItems) }

// Scrolls returns the scroll definitions.
func Scrolls() []*Card { return copyList(scrolls) }

// PlacePairs returns the double-sided place of power cards. Selecting one side
// of a pair makes the other unavailable for the game.
func PlacePairs() [][2]*Card {
	out := make([][2]*Card, len(placePairs))
	copy(out, placePairs)
	return out
}
