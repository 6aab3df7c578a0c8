package simulation

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/inventory"
)

// DefaultMaxDays bounds a single Run.
const DefaultMaxDays = 1000

// Simulator advances an inventory day by day and records snapshots.
type Simulator struct {
	shop    *inventory.GildedRose
	clock   *Clock
	runIDs  RunIDGenerator
	maxDays int
	logger  *slog.Logger
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithMaxDays sets the largest day count accepted by Run.
func WithMaxDays(n int) Option {
	return func(s *Simulator) {
		s.maxDays = n
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = l
	}
}

// WithRunIDGenerator overrides the UUIDv7 run id source.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(s *Simulator) {
		s.runIDs = g
	}
}

// WithClock resumes from a given day, e.g. when continuing a saved fixture.
func WithClock(c *Clock) Option {
	return func(s *Simulator) {
		s.clock = c
	}
}

// New creates a Simulator over items. Items are mutated in place.
func New(items []*inventory.Item, opts ...Option) *Simulator {
	s := &Simulator{
		shop:    inventory.New(items),
		clock:   NewClock(),
		runIDs:  UUIDv7Generator{},
		maxDays: DefaultMaxDays,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Day returns the number of days simulated so far.
func (s *Simulator) Day() int64 {
	return s.clock.Current()
}

// Snapshot captures the inventory as it stands now.
func (s *Simulator) Snapshot() Snapshot {
	return snapshotOf(s.clock.Current(), s.shop.Items())
}

// Step advances the inventory by one day and returns the new snapshot.
func (s *Simulator) Step() (Snapshot, error) {
	day := s.clock.Next()
	if err := s.shop.AdvanceOneDay(); err != nil {
		return Snapshot{}, &RuntimeError{
			Code:    ErrCodeInvariantViolated,
			Message: "item rejected daily update",
			Day:     day,
			Err:     err,
		}
	}
	return s.Snapshot(), nil
}

// Run records the current state, then simulates days consecutive days.
//
// On failure the returned trace holds every snapshot recorded before the
// error, and the error is a *RuntimeError. The context is checked between
// days; a single day always runs to completion.
func (s *Simulator) Run(ctx context.Context, days int) (*Trace, error) {
	if days < 0 {
		return nil, fmt.Errorf("days must be non-negative, got %d", days)
	}

	runID := s.runIDs.Generate()
	if days > s.maxDays {
		return nil, NewQuotaError(runID, days, s.maxDays)
	}

	log := s.logger.With("run_id", runID)
	log.Info("simulation starting", "days", days, "items", len(s.shop.Items()), "start_day", s.clock.Current())

	trace := &Trace{
		RunID: runID,
		Days:  make([]Snapshot, 0, days+1),
	}
	trace.Days = append(trace.Days, s.Snapshot())

	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn("simulation cancelled", "day", s.clock.Current(), "error", err)
			return trace, &RuntimeError{
				Code:    ErrCodeCancelled,
				Message: "context done before all days ran",
				RunID:   runID,
				Day:     s.clock.Current(),
				Err:     err,
			}
		}

		snap, err := s.Step()
		if err != nil {
			if re, ok := err.(*RuntimeError); ok {
				re.RunID = runID
			}
			log.Error("simulation failed", "day", s.clock.Current(), "error", err)
			return trace, err
		}
		trace.Days = append(trace.Days, snap)
		log.Debug("day simulated", "day", snap.Day)
	}

	log.Info("simulation finished", "end_day", s.clock.Current())
	return trace, nil
}
