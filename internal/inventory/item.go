package inventory

import "fmt"

// Item is one inventory entry. The name is fixed at construction; sellIn and
// quality change once per simulated day.
type Item struct {
	name    string
	sellIn  int
	quality int
}

// NewItem validates and builds an Item.
//
// Returns an error matching ErrInvalidArgument if sellIn is negative or
// quality is outside [MinQuality, MaxQuality].
func NewItem(name string, sellIn, quality int) (*Item, error) {
	if err := checkSellIn(sellIn); err != nil {
		return nil, err
	}
	if err := checkQuality(quality); err != nil {
		return nil, err
	}
	return &Item{name: name, sellIn: sellIn, quality: quality}, nil
}

// MustItem is NewItem that panics on invalid input. Intended for fixtures
// whose values are known at compile time.
func MustItem(name string, sellIn, quality int) *Item {
	it, err := NewItem(name, sellIn, quality)
	if err != nil {
		panic(err)
	}
	return it
}

// Name returns the item name.
func (i *Item) Name() string { return i.name }

// SellIn returns the days remaining to sell. Negative once past due.
func (i *Item) SellIn() int { return i.sellIn }

// Quality returns the current quality.
func (i *Item) Quality() int { return i.quality }

// SetSellIn replaces sellIn. Negative values are rejected.
func (i *Item) SetSellIn(v int) error {
	if err := checkSellIn(v); err != nil {
		return err
	}
	i.sellIn = v
	return nil
}

// SetQuality replaces quality. Values outside [MinQuality, MaxQuality] are
// rejected and the stored value is left untouched.
func (i *Item) SetQuality(v int) error {
	if err := checkQuality(v); err != nil {
		return err
	}
	i.quality = v
	return nil
}

// Category classifies the item by name.
func (i *Item) Category() Category {
	return Classify(i.name)
}

// String renders the item as "name, sellIn, quality".
func (i *Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.name, i.sellIn, i.quality)
}

// age moves the item one day closer to its sell-by date.
// Rules use this instead of SetSellIn so sellIn may go negative.
func (i *Item) age() {
	i.sellIn--
}
