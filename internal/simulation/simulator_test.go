package simulation

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/inventory"
	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/testutil"
)

func smallInventory() []*inventory.Item {
	return []*inventory.Item{
		inventory.MustItem("Elixir of the Mongoose", 1, 7),
		inventory.MustItem(inventory.NameAgedBrie, 1, 49),
		inventory.MustItem(inventory.NameSulfuras, 0, 50),
	}
}

func TestSimulator_RunRecordsEveryDay(t *testing.T) {
	sim := New(smallInventory(), WithRunIDGenerator(NewFixedGenerator("run-1")))

	trace, err := sim.Run(context.Background(), 2)
	require.NoError(t, err)

	want := &Trace{
		RunID: "run-1",
		Days: []Snapshot{
			{Day: 0, Items: []ItemState{
				{"Elixir of the Mongoose", 1, 7},
				{"Aged Brie", 1, 49},
				{"Sulfuras, Hand of Ragnaros", 0, 50},
			}},
			{Day: 1, Items: []ItemState{
				{"Elixir of the Mongoose", 0, 6},
				{"Aged Brie", 0, 50},
				{"Sulfuras, Hand of Ragnaros", 0, 50},
			}},
			{Day: 2, Items: []ItemState{
				{"Elixir of the Mongoose", -1, 4},
				{"Aged Brie", -1, 50},
				{"Sulfuras, Hand of Ragnaros", 0, 50},
			}},
		},
	}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(2), sim.Day())
}

func TestSimulator_ZeroDays(t *testing.T) {
	sim := New(smallInventory(), WithRunIDGenerator(NewFixedGenerator("run-0")))

	trace, err := sim.Run(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, trace.Days, 1)

	final, ok := trace.Final()
	require.True(t, ok)
	assert.Equal(t, int64(0), final.Day)
}

func TestSimulator_ConsecutiveRunsContinue(t *testing.T) {
	sim := New(smallInventory(), WithRunIDGenerator(NewFixedGenerator("a", "b")))

	first, err := sim.Run(context.Background(), 1)
	require.NoError(t, err)
	second, err := sim.Run(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "a", first.RunID)
	assert.Equal(t, "b", second.RunID)
	assert.Equal(t, int64(1), second.Days[0].Day)
	assert.Equal(t, int64(2), second.Days[1].Day)
	assert.Equal(t, first.Days[1], second.Days[0])
}

func TestSimulator_WithClock(t *testing.T) {
	sim := New(smallInventory(), WithClock(NewClockAt(10)), WithRunIDGenerator(NewFixedGenerator("x")))

	trace, err := sim.Run(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), trace.Days[0].Day)
	assert.Equal(t, int64(11), trace.Days[1].Day)
}

func TestSimulator_DayQuota(t *testing.T) {
	sim := New(smallInventory(), WithMaxDays(3), WithRunIDGenerator(NewFixedGenerator("q")))

	trace, err := sim.Run(context.Background(), 4)
	require.Error(t, err)
	assert.Nil(t, trace)
	assert.True(t, IsQuotaError(err))
	assert.Contains(t, err.Error(), "requested 4 days exceeds max 3")
	assert.Equal(t, int64(0), sim.Day(), "no day should run past the quota check")
}

func TestSimulator_NegativeDays(t *testing.T) {
	sim := New(smallInventory())
	_, err := sim.Run(context.Background(), -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestSimulator_CancelledContext(t *testing.T) {
	sim := New(smallInventory(), WithRunIDGenerator(NewFixedGenerator("c")))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	trace, err := sim.Run(ctx, 5)
	require.Error(t, err)
	assert.True(t, IsCancelled(err))
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, trace)
	assert.Len(t, trace.Days, 1, "only the starting snapshot is recorded")
}

func TestSimulator_DefaultRunIDIsUUIDv7(t *testing.T) {
	sim := New(smallInventory())
	trace, err := sim.Run(context.Background(), 0)
	require.NoError(t, err)

	id, err := uuid.Parse(trace.RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestTrace_DigestIgnoresRunID(t *testing.T) {
	a, err := New(smallInventory()).Run(context.Background(), 5)
	require.NoError(t, err)
	b, err := New(smallInventory()).Run(context.Background(), 5)
	require.NoError(t, err)
	require.NotEqual(t, a.RunID, b.RunID)

	da, err := a.Digest()
	require.NoError(t, err)
	db, err := b.Digest()
	require.NoError(t, err)
	assert.Equal(t, da, db)

	c, err := New(smallInventory()).Run(context.Background(), 6)
	require.NoError(t, err)
	dc, err := c.Digest()
	require.NoError(t, err)
	assert.NotEqual(t, da, dc)
}

func TestTrace_WriteText(t *testing.T) {
	sim := New([]*inventory.Item{
		inventory.MustItem(inventory.NameAgedBrie, 2, 0),
		inventory.MustItem(inventory.NameSulfuras, 0, 50),
	}, WithRunIDGenerator(NewFixedGenerator("t")))

	trace, err := sim.Run(context.Background(), 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, trace.WriteText(&buf))

	want := "-------- day 0 --------\n" +
		"name, sellIn, quality\n" +
		"Aged Brie, 2, 0\n" +
		"Sulfuras, Hand of Ragnaros, 0, 50\n" +
		"\n" +
		"-------- day 1 --------\n" +
		"name, sellIn, quality\n" +
		"Aged Brie, 1, 1\n" +
		"Sulfuras, Hand of Ragnaros, 0, 50\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestTrace_FinalEmpty(t *testing.T) {
	_, ok := (&Trace{}).Final()
	assert.False(t, ok)
}

func TestSimulator_ClassicInventoryIsDeterministic(t *testing.T) {
	runIDs := testutil.NewConstantRunIDs("classic")

	first, err := New(testutil.Classic(t), WithRunIDGenerator(runIDs)).Run(context.Background(), 30)
	require.NoError(t, err)
	second, err := New(testutil.Classic(t), WithRunIDGenerator(runIDs)).Run(context.Background(), 30)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("traces differ (-first +second):\n%s", diff)
	}
	for _, snap := range first.Days {
		for _, it := range snap.Items {
			assert.GreaterOrEqual(t, it.Quality, inventory.MinQuality)
			assert.LessOrEqual(t, it.Quality, inventory.MaxQuality)
		}
	}
}
