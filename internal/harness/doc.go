// Package harness runs inventory scenarios as executable contract tests.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: backstage_countdown
//	description: "Passes gain value faster near the concert, then drop to 0"
//	run_id: test-run-backstage
//	inventory:
//	  - name: "Backstage passes to a TAFKAL80ETC concert"
//	    sell_in: 10
//	    quality: 20
//	days: 11
//	checkpoints:
//	  - day: 1
//	    item: 0
//	    sell_in: 9
//	    quality: 22
//	assertions:
//	  - type: quality_bounds
//	  - type: final_state
//	    item: 0
//	    sell_in: -1
//	    quality: 0
//
// Instead of an inline inventory a scenario may name a fixture file
// (`fixture: ../fixtures/classic.yaml`), resolved relative to the scenario.
//
// # Assertion Types
//
//   - quality_bounds: every item stays within [0, 50] on every day
//   - unchanged: the item's sellIn and quality never change
//   - final_state: the item's state after the last day
//   - category: the item classifies as the given category
//   - quality_monotonic: quality never moves against direction (up|down)
//
// # Deterministic Testing
//
// Scenarios run with a fixed run id (run_id, or "test-run-default"), so the
// canonical trace is byte-identical across runs and can be compared against
// golden files in testdata/golden.
package harness
