package cards

import (
	"testing"

	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCounts(t *testing.T) {
	assert.Len(t, Artifacts(), 40)
	assert.Len(t, Mages(), 10)
	assert.Len(t, Monuments(), 12)
	assert.Len(t, MagicItems(), 8)
	assert.Len(t, Scrolls(), 8)
	assert.Len(t, PlacePairs(), 6)
}

func TestCatalogIDsStableAndUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, c := range All() {
		require.NotEmpty(t, c.ID, "card %q has no ID", c.Name)
		if prev, dup := seen[c.ID]; dup {
			t.Fatalf("cards %q and %q share ID %s", prev, c.Name, c.ID)
		}
		seen[c.ID] = c.Name
		assert.Same(t, c, ByID(c.ID))
		assert.Same(t, c, ByName(c.Name))
	}
}

func TestCatalogReactionsAreWellFormed(t *testing.T) {
	for _, c := range All() {
		for i, ab := range c.Abilities {
			if !ab.IsReaction() {
				continue
			}
			require.NotEmpty(t, ab.Effects, "%s ability %d is a reaction without an effect", c.Name, i)
			if ab.Trigger.Event != rules.EventAttacked {
				continue
			}
			found := false
			for _, eff := range ab.Effects {
				if _, ok := eff.(IgnoreAttack); ok {
					found = true
				}
			}
			assert.True(t, found, "%s ability %d reacts to an attack without ignoring it", c.Name, i)
		}
	}
}

func TestCatalogChoiceIncomesListNonGoldTypes(t *testing.T) {
	for _, c := range All() {
		if c.Income == nil || !c.Income.IsChoice() {
			continue
		}
		require.NotEmpty(t, c.Income.Types, "%s choice income lists no types", c.Name)
		for _, ty := range c.Income.Types {
			assert.True(t, ty.IsNonGold(), "%s choice income offers %s", c.Name, ty)
		}
	}
}

func TestCatalogMonumentsCostFourGold(t *testing.T) {
	for _, m := range Monuments() {
		assert.Equal(t, essence.Cost{Gold: 4}, m.Cost, m.Name)
	}
}

func TestHasTag(t *testing.T) {
	fd := ByName("Fire Dragon")
	require.NotNil(t, fd)
	assert.True(t, fd.HasTag(TagDragon))
	assert.False(t, fd.HasTag(TagAnimal))
	assert.True(t, fd.HasTag(""), "empty tag matches everything")
}

func TestCopiedListsAreIndependent(t *testing.T) {
	a := Artifacts()
	a[0], a[1] = a[1], a[0]
	b := Artifacts()
	assert.NotEqual(t, a[0].Name, b[0].Name)
}
