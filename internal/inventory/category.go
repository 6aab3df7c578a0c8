package inventory

import "fmt"

// Category is the closed set of item classifications.
type Category int

const (
	Normal Category = iota
	AgedBrie
	BackstagePass
	Sulfuras
)

// Item names recognised by Classify. Matching is byte-for-byte.
const (
	NameAgedBrie      = "Aged Brie"
	NameBackstagePass = "Backstage passes to a TAFKAL80ETC concert"
	NameSulfuras      = "Sulfuras, Hand of Ragnaros"
)

var categoryByName = map[string]Category{
	NameAgedBrie:      AgedBrie,
	NameBackstagePass: BackstagePass,
	NameSulfuras:      Sulfuras,
}

// Categories lists every category in declaration order.
var Categories = []Category{Normal, AgedBrie, BackstagePass, Sulfuras}

// Classify maps an item name to its category. Unknown names are Normal.
func Classify(name string) Category {
	if c, ok := categoryByName[name]; ok {
		return c
	}
	return Normal
}

// String returns the category tag.
func (c Category) String() string {
	switch c {
	case Normal:
		return "Normal"
	case AgedBrie:
		return "AgedBrie"
	case BackstagePass:
		return "BackstagePass"
	case Sulfuras:
		return "Sulfuras"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if c.String() == s {
			return c, nil
		}
	}
	return Normal, fmt.Errorf("unknown category %q", s)
}
