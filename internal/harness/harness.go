package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/fixture"
	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/inventory"
	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/simulation"
)

// Options tune a scenario run.
type Options struct {
	// Logger receives simulation logs. Nil discards them.
	Logger *slog.Logger
}

// Run executes a scenario with a discarding logger.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithOptions(context.Background(), scenario, Options{})
}

// RunWithOptions executes a scenario and evaluates its checkpoints and
// assertions.
//
// An error is returned only when the scenario cannot be executed (bad
// fixture, invalid inventory). A run that violates an item invariant or an
// assertion yields a failed Result instead.
func RunWithOptions(ctx context.Context, scenario *Scenario, opts Options) (*Result, error) {
	items, err := buildInventory(scenario)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	runID := scenario.RunID
	if runID == "" {
		runID = DefaultRunID
	}

	sim := simulation.New(items,
		simulation.WithRunIDGenerator(simulation.NewFixedGenerator(runID)),
		simulation.WithLogger(logger.With("scenario", scenario.Name)),
		simulation.WithMaxDays(max(scenario.Days, simulation.DefaultMaxDays)),
	)

	result := NewResult()
	trace, err := sim.Run(ctx, scenario.Days)
	result.Trace = trace
	if err != nil {
		if trace == nil {
			return nil, fmt.Errorf("failed to run scenario: %w", err)
		}
		result.AddError(err.Error())
		return result, nil
	}

	for _, msg := range evaluateCheckpoints(trace, scenario.Checkpoints) {
		result.AddError(msg)
	}
	for _, msg := range EvaluateAssertions(trace, scenario.Assertions) {
		result.AddError(msg)
	}

	logger.Info("scenario finished",
		"scenario", scenario.Name,
		"pass", result.Pass,
		"errors", len(result.Errors),
	)
	return result, nil
}

func buildInventory(s *Scenario) ([]*inventory.Item, error) {
	if s.Fixture != "" {
		f, err := fixture.Load(s.Fixture)
		if err != nil {
			return nil, fmt.Errorf("failed to load fixture: %w", err)
		}
		return f.Build()
	}

	f := &fixture.Fixture{Name: s.Name, Items: s.Inventory}
	items, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid inventory: %w", err)
	}
	return items, nil
}

func evaluateCheckpoints(trace *simulation.Trace, checkpoints []Checkpoint) []string {
	var errs []string
	for i, cp := range checkpoints {
		if cp.Day >= int64(len(trace.Days)) {
			errs = append(errs, fmt.Sprintf("checkpoints[%d]: day %d not recorded", i, cp.Day))
			continue
		}
		snap := trace.Days[cp.Day]
		if cp.Item >= len(snap.Items) {
			errs = append(errs, fmt.Sprintf("checkpoints[%d]: item %d out of range (%d items)", i, cp.Item, len(snap.Items)))
			continue
		}
		got := snap.Items[cp.Item]
		if cp.SellIn != nil && *cp.SellIn != got.SellIn {
			errs = append(errs, fmt.Sprintf("checkpoints[%d]: day %d item %d (%s): expected sell_in %d, got %d",
				i, cp.Day, cp.Item, got.Name, *cp.SellIn, got.SellIn))
		}
		if cp.Quality != nil && *cp.Quality != got.Quality {
			errs = append(errs, fmt.Sprintf("checkpoints[%d]: day %d item %d (%s): expected quality %d, got %d",
				i, cp.Day, cp.Item, got.Name, *cp.Quality, got.Quality))
		}
	}
	return errs
}
