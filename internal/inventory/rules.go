package inventory

// UpdateRule advances one item by one simulated day.
type UpdateRule func(*Item) error

// Backstage pass thresholds: sellIn below these values earns extra quality.
const (
	backstageDoubleBelow = 11
	backstageTripleBelow = 6
)

// registry holds the rules for every category except Normal, which is the
// fallback applied by ruleFor.
var registry = map[Category]UpdateRule{
	AgedBrie:      updateAgedBrie,
	BackstagePass: updateBackstagePass,
	Sulfuras:      updateSulfuras,
}

// RuleFor returns the rule applied to items of category c.
func RuleFor(c Category) UpdateRule {
	if rule, ok := registry[c]; ok {
		return rule
	}
	return updateNormal
}

// updateNormal degrades quality by 1, and by 1 more once past due.
func updateNormal(it *Item) error {
	if it.quality > MinQuality {
		if err := it.SetQuality(it.quality - 1); err != nil {
			return err
		}
	}
	it.age()
	if it.sellIn < 0 && it.quality > MinQuality {
		return it.SetQuality(it.quality - 1)
	}
	return nil
}

// updateAgedBrie improves quality by 1 per day, past due or not.
func updateAgedBrie(it *Item) error {
	if it.quality < MaxQuality {
		if err := it.SetQuality(it.quality + 1); err != nil {
			return err
		}
	}
	it.age()
	return nil
}

// updateBackstagePass improves quality faster as the concert nears and drops
// it to zero once the concert has passed.
func updateBackstagePass(it *Item) error {
	if it.quality < MaxQuality {
		if err := it.SetQuality(it.quality + 1); err != nil {
			return err
		}
		if it.sellIn < backstageDoubleBelow && it.quality < MaxQuality {
			if err := it.SetQuality(it.quality + 1); err != nil {
				return err
			}
		}
		if it.sellIn < backstageTripleBelow && it.quality < MaxQuality {
			if err := it.SetQuality(it.quality + 1); err != nil {
				return err
			}
		}
	}
	it.age()
	if it.sellIn < 0 {
		return it.SetQuality(MinQuality)
	}
	return nil
}

// updateSulfuras is a no-op. Legendary items never age or degrade.
func updateSulfuras(*Item) error {
	return nil
}
