package simulation

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/canon"
	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/inventory"
)

// ItemState is an item's observable state at the end of a day.
type ItemState struct {
	Name    string `json:"name"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

// Snapshot is the whole inventory at the end of a day. Day 0 is the
// starting state.
type Snapshot struct {
	Day   int64       `json:"day"`
	Items []ItemState `json:"items"`
}

// Trace is the ordered list of snapshots recorded by one Run.
type Trace struct {
	RunID string     `json:"run_id"`
	Days  []Snapshot `json:"days"`
}

func snapshotOf(day int64, items []*inventory.Item) Snapshot {
	states := make([]ItemState, len(items))
	for i, it := range items {
		states[i] = ItemState{Name: it.Name(), SellIn: it.SellIn(), Quality: it.Quality()}
	}
	return Snapshot{Day: day, Items: states}
}

// Final returns the last recorded snapshot, or false for an empty trace.
func (t *Trace) Final() (Snapshot, bool) {
	if len(t.Days) == 0 {
		return Snapshot{}, false
	}
	return t.Days[len(t.Days)-1], true
}

// CanonicalDays converts the snapshots to plain maps for canon.Marshal.
func (t *Trace) CanonicalDays() []any {
	days := make([]any, len(t.Days))
	for i, snap := range t.Days {
		items := make([]any, len(snap.Items))
		for j, it := range snap.Items {
			items[j] = map[string]any{
				"name":    it.Name,
				"sell_in": it.SellIn,
				"quality": it.Quality,
			}
		}
		days[i] = map[string]any{
			"day":   snap.Day,
			"items": items,
		}
	}
	return days
}

// Digest content-addresses the recorded days. The run id is excluded, so two
// runs over the same fixture and day count share a digest.
func (t *Trace) Digest() (string, error) {
	return canon.Digest(t.CanonicalDays())
}

// WriteText renders the trace in the TextTest layout:
//
//	-------- day 0 --------
//	name, sellIn, quality
//	Aged Brie, 2, 0
//
// with a blank line after each day.
func (t *Trace) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, snap := range t.Days {
		fmt.Fprintf(bw, "-------- day %d --------\n", snap.Day)
		fmt.Fprintln(bw, "name, sellIn, quality")
		for _, it := range snap.Items {
			fmt.Fprintf(bw, "%s, %d, %d\n", it.Name, it.SellIn, it.Quality)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
