package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/fixture"
)

func TestConstantRunIDs(t *testing.T) {
	g := NewConstantRunIDs("run-1")
	assert.Equal(t, "run-1", g.Generate())
	assert.Equal(t, "run-1", g.Generate())

	assert.Equal(t, "test-run-default", NewConstantRunIDs("").Generate())
}

func TestItem(t *testing.T) {
	it := Item(t, "Aged Brie", 2, 0)
	assert.Equal(t, "Aged Brie, 2, 0", it.String())
}

func TestInventory_FreshCopies(t *testing.T) {
	a := Inventory(t, fixture.ItemSpec{Name: "Widget", SellIn: 1, Quality: 5})
	b := Inventory(t, fixture.ItemSpec{Name: "Widget", SellIn: 1, Quality: 5})
	require.Len(t, a, 1)
	require.NoError(t, a[0].SetQuality(0))
	assert.Equal(t, 5, b[0].Quality())
}

func TestClassic(t *testing.T) {
	items := Classic(t)
	require.Len(t, items, 9)
	assert.Equal(t, "+5 Dexterity Vest", items[0].Name())
}
