// Package inventory implements the Gilded Rose daily update engine.
//
// The engine is a pure, synchronous, in-memory transformation. Each call to
// GildedRose.AdvanceOneDay walks the inventory in order and applies the
// update rule selected for the item's category.
//
// Categories form a closed set derived from the item name by exact match:
//
//	"Aged Brie"                                  -> AgedBrie
//	"Backstage passes to a TAFKAL80ETC concert"  -> BackstagePass
//	"Sulfuras, Hand of Ragnaros"                 -> Sulfuras
//	anything else                                -> Normal
//
// Rules are plain functions held in a lookup table keyed by Category. There
// is no rule hierarchy; adding a category means adding an enum value, a
// classifier entry, and a table entry.
//
// Quality is bounded to [0, 50] by the Item record. The record refuses a
// negative sellIn from callers (NewItem, SetSellIn), but rules advance the
// day through an internal path so past-due items can carry a negative sellIn.
//
// Nothing in this package is safe for concurrent use. Callers sharing an
// inventory must serialize calls themselves.
package inventory
