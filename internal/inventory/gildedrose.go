package inventory

import "fmt"

// GildedRose applies the daily update rules to an ordered inventory.
type GildedRose struct {
	items []*Item
}

// New builds a GildedRose over items. The slice is used as-is: items are
// mutated in place and callers may read them back between calls.
func New(items []*Item) *GildedRose {
	return &GildedRose{items: items}
}

// Items returns the inventory in its original order.
func (g *GildedRose) Items() []*Item {
	return g.items
}

// AdvanceOneDay applies one simulated day to every item, in order.
//
// The first rule failure aborts the pass. Items processed before the failure
// keep their new state; there is no rollback.
func (g *GildedRose) AdvanceOneDay() error {
	for idx, it := range g.items {
		if err := RuleFor(Classify(it.name))(it); err != nil {
			return fmt.Errorf("item %d (%s): %w", idx, it.name, err)
		}
	}
	return nil
}

// UpdateQuality is the kata's name for AdvanceOneDay.
func (g *GildedRose) UpdateQuality() error {
	return g.AdvanceOneDay()
}
