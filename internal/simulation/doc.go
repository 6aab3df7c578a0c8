// Package simulation drives an inventory through consecutive days and
// records what happened.
//
// A Simulator owns one inventory.GildedRose. Run records the starting state
// as day 0, then advances one day at a time, capturing a Snapshot after each
// day. The resulting Trace is deterministic for a given fixture and day
// count: the only non-deterministic field is the run id, and tests inject a
// FixedGenerator for that.
//
// Days are counted by a logical Clock, never by wall time.
//
// Failure modes are reported as *RuntimeError:
//   - INVARIANT_VIOLATED: an item rejected an update (the trace keeps every
//     day completed before the failure)
//   - DAY_QUOTA_EXCEEDED: the requested day count is above the configured
//     maximum
//   - CANCELLED: the context was done between two days
package simulation
