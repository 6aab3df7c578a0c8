package harness

import (
	"fmt"
	"strings"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/inventory"
	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/simulation"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Day      int64
	Item     simulation.ItemState
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	if e.Item.Name != "" {
		fmt.Fprintf(&buf, "  At: day %d, %s, %d, %d\n", e.Day, e.Item.Name, e.Item.SellIn, e.Item.Quality)
	}
	return buf.String()
}

// EvaluateAssertions runs every assertion against trace and returns one
// message per failure.
func EvaluateAssertions(trace *simulation.Trace, assertions []Assertion) []string {
	var errs []string
	for i, a := range assertions {
		if err := evaluate(trace, a); err != nil {
			errs = append(errs, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return errs
}

func evaluate(trace *simulation.Trace, a Assertion) error {
	if len(trace.Days) == 0 {
		return fmt.Errorf("trace is empty")
	}

	if a.Type == AssertQualityBounds {
		return assertQualityBounds(trace)
	}

	if a.Item == nil {
		return fmt.Errorf("%s assertion requires item", a.Type)
	}
	idx := *a.Item
	if idx < 0 || idx >= len(trace.Days[0].Items) {
		return fmt.Errorf("item %d out of range (%d items)", idx, len(trace.Days[0].Items))
	}

	switch a.Type {
	case AssertUnchanged:
		return assertUnchanged(trace, idx)
	case AssertFinalState:
		return assertFinalState(trace, idx, a)
	case AssertCategory:
		return assertCategory(trace, idx, a.Category)
	case AssertQualityMonotonic:
		return assertQualityMonotonic(trace, idx, a.Direction)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func assertQualityBounds(trace *simulation.Trace) error {
	for _, snap := range trace.Days {
		for _, it := range snap.Items {
			if it.Quality < inventory.MinQuality || it.Quality > inventory.MaxQuality {
				return &AssertionError{
					Type:     AssertQualityBounds,
					Expected: fmt.Sprintf("quality within [%d, %d]", inventory.MinQuality, inventory.MaxQuality),
					Actual:   fmt.Sprintf("quality %d", it.Quality),
					Day:      snap.Day,
					Item:     it,
				}
			}
		}
	}
	return nil
}

func assertUnchanged(trace *simulation.Trace, idx int) error {
	start := trace.Days[0].Items[idx]
	for _, snap := range trace.Days[1:] {
		if it := snap.Items[idx]; it != start {
			return &AssertionError{
				Type:     AssertUnchanged,
				Expected: fmt.Sprintf("sell_in %d, quality %d on every day", start.SellIn, start.Quality),
				Actual:   fmt.Sprintf("sell_in %d, quality %d", it.SellIn, it.Quality),
				Day:      snap.Day,
				Item:     it,
			}
		}
	}
	return nil
}

func assertFinalState(trace *simulation.Trace, idx int, a Assertion) error {
	final, _ := trace.Final()
	it := final.Items[idx]
	if a.SellIn != nil && *a.SellIn != it.SellIn {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("sell_in %d", *a.SellIn),
			Actual:   fmt.Sprintf("sell_in %d", it.SellIn),
			Day:      final.Day,
			Item:     it,
		}
	}
	if a.Quality != nil && *a.Quality != it.Quality {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("quality %d", *a.Quality),
			Actual:   fmt.Sprintf("quality %d", it.Quality),
			Day:      final.Day,
			Item:     it,
		}
	}
	return nil
}

func assertCategory(trace *simulation.Trace, idx int, category string) error {
	it := trace.Days[0].Items[idx]
	got := inventory.Classify(it.Name)
	if got.String() != category {
		return &AssertionError{
			Type:     AssertCategory,
			Expected: category,
			Actual:   got.String(),
			Day:      0,
			Item:     it,
		}
	}
	return nil
}

func assertQualityMonotonic(trace *simulation.Trace, idx int, direction string) error {
	prev := trace.Days[0].Items[idx]
	for _, snap := range trace.Days[1:] {
		it := snap.Items[idx]
		if (direction == "up" && it.Quality < prev.Quality) || (direction == "down" && it.Quality > prev.Quality) {
			return &AssertionError{
				Type:     AssertQualityMonotonic,
				Expected: fmt.Sprintf("quality never moves against %q", direction),
				Actual:   fmt.Sprintf("quality %d -> %d", prev.Quality, it.Quality),
				Day:      snap.Day,
				Item:     it,
			}
		}
		prev = it
	}
	return nil
}
