package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/fixture"
)

func TestGolden_MixedTwoDays(t *testing.T) {
	s := &Scenario{
		Name:        "golden_mixed_two_days",
		Description: "Aged Brie ripens while Sulfuras stays put",
		Inventory: []fixture.ItemSpec{
			{Name: "Aged Brie", SellIn: 2, Quality: 0},
			{Name: "Sulfuras, Hand of Ragnaros", SellIn: 0, Quality: 50},
		},
		Days:       2,
		RunID:      "test-run-golden",
		Assertions: []Assertion{{Type: AssertUnchanged, Item: intPtr(1)}},
	}

	result, err := RunWithGolden(t, s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestGolden_ConcertDay(t *testing.T) {
	s := &Scenario{
		Name:        "golden_concert_day",
		Description: "backstage pass peaks on concert day and is worthless after",
		Inventory: []fixture.ItemSpec{
			{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 1, Quality: 47},
		},
		Days:  2,
		RunID: "test-run-concert",
		Assertions: []Assertion{
			{Type: AssertQualityBounds},
			{Type: AssertFinalState, Item: intPtr(0), SellIn: intPtr(-1), Quality: intPtr(0)},
		},
	}

	result, err := RunWithGolden(t, s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestTraceSnapshot_OmitsEmptyRunID(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "snap",
		Description: "d",
		Inventory:   []fixture.ItemSpec{{Name: "Widget", SellIn: 1, Quality: 1}},
		Assertions:  []Assertion{{Type: AssertQualityBounds}},
	})
	require.NoError(t, err)

	snap := TraceSnapshot{ScenarioName: "snap", Trace: result.Trace}
	data, err := snap.MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t,
		`{"days":[{"day":0,"items":[{"name":"Widget","quality":1,"sell_in":1}]}],"scenario_name":"snap"}`,
		string(data))
}
