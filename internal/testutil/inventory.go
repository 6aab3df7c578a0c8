package testutil

import (
	"testing"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/fixture"
	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/inventory"
)

// Item builds a valid item or fails the test.
func Item(t testing.TB, name string, sellIn, quality int) *inventory.Item {
	t.Helper()
	it, err := inventory.NewItem(name, sellIn, quality)
	if err != nil {
		t.Fatalf("testutil.Item(%q, %d, %d): %v", name, sellIn, quality, err)
	}
	return it
}

// Inventory builds items from specs in order or fails the test.
func Inventory(t testing.TB, specs ...fixture.ItemSpec) []*inventory.Item {
	t.Helper()
	items, err := (&fixture.Fixture{Name: "test", Items: specs}).Build()
	if err != nil {
		t.Fatalf("testutil.Inventory: %v", err)
	}
	return items
}

// Classic builds a fresh copy of the classic inventory.
func Classic(t testing.TB) []*inventory.Item {
	t.Helper()
	return Inventory(t, fixture.Default().Items...)
}
