package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/fixture"
	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/inventory"
)

// DefaultRunID is used when a scenario does not set run_id.
const DefaultRunID = "test-run-default"

// Scenario defines one inventory contract test.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Fixture is a path to a YAML or CUE inventory fixture.
	// Mutually exclusive with Inventory.
	Fixture string `yaml:"fixture,omitempty"`

	// Inventory lists items inline. Mutually exclusive with Fixture.
	Inventory []fixture.ItemSpec `yaml:"inventory,omitempty"`

	// Days is the number of simulated days.
	Days int `yaml:"days"`

	// RunID fixes the trace run id for golden comparison.
	RunID string `yaml:"run_id,omitempty"`

	// Checkpoints pin an item's state on specific days.
	Checkpoints []Checkpoint `yaml:"checkpoints,omitempty"`

	// Assertions validate the whole trace.
	Assertions []Assertion `yaml:"assertions"`
}

// Checkpoint is an expected item state at the end of a day.
// Nil fields are not checked.
type Checkpoint struct {
	Day     int64 `yaml:"day"`
	Item    int   `yaml:"item"`
	SellIn  *int  `yaml:"sell_in,omitempty"`
	Quality *int  `yaml:"quality,omitempty"`
}

// Assertion validates the trace as a whole.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Item is the inventory index (all types except quality_bounds).
	Item *int `yaml:"item,omitempty"`

	// SellIn and Quality are the expected final values (final_state).
	SellIn  *int `yaml:"sell_in,omitempty"`
	Quality *int `yaml:"quality,omitempty"`

	// Category is the expected category tag (category).
	Category string `yaml:"category,omitempty"`

	// Direction is "up" or "down" (quality_monotonic).
	Direction string `yaml:"direction,omitempty"`
}

// Assertion type constants.
const (
	AssertQualityBounds    = "quality_bounds"
	AssertUnchanged        = "unchanged"
	AssertFinalState       = "final_state"
	AssertCategory         = "category"
	AssertQualityMonotonic = "quality_monotonic"
)

// LoadScenario reads and parses a scenario YAML file. A relative fixture
// path is resolved against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.Fixture != "" && !filepath.IsAbs(scenario.Fixture) {
		scenario.Fixture = filepath.Join(filepath.Dir(path), scenario.Fixture)
	}
	if scenario.Fixture != "" {
		if _, err := os.Stat(scenario.Fixture); os.IsNotExist(err) {
			return nil, fmt.Errorf("invalid scenario: fixture file not found: %s", scenario.Fixture)
		}
	}

	return scenario, nil
}

// ParseScenario decodes scenario YAML. Unknown fields are rejected to catch
// typos like "assertion:" for "assertions:".
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.Fixture == "" && len(s.Inventory) == 0:
		return fmt.Errorf("one of fixture or inventory is required")
	case s.Fixture != "" && len(s.Inventory) > 0:
		return fmt.Errorf("fixture and inventory are mutually exclusive")
	}

	if s.Days < 0 {
		return fmt.Errorf("days must be non-negative")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, cp := range s.Checkpoints {
		if cp.Day < 0 || cp.Day > int64(s.Days) {
			return fmt.Errorf("checkpoints[%d]: day %d outside [0, %d]", i, cp.Day, s.Days)
		}
		if cp.Item < 0 {
			return fmt.Errorf("checkpoints[%d]: item index must be non-negative", i)
		}
		if cp.SellIn == nil && cp.Quality == nil {
			return fmt.Errorf("checkpoints[%d]: sell_in or quality is required", i)
		}
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	needsItem := func() error {
		if a.Item == nil {
			return fmt.Errorf("assertions[%d]: item is required for %s", index, a.Type)
		}
		if *a.Item < 0 {
			return fmt.Errorf("assertions[%d]: item index must be non-negative", index)
		}
		return nil
	}

	switch a.Type {
	case AssertQualityBounds:
		return nil
	case AssertUnchanged:
		return needsItem()
	case AssertFinalState:
		if err := needsItem(); err != nil {
			return err
		}
		if a.SellIn == nil && a.Quality == nil {
			return fmt.Errorf("assertions[%d]: sell_in or quality is required for final_state", index)
		}
	case AssertCategory:
		if err := needsItem(); err != nil {
			return err
		}
		if _, err := inventory.ParseCategory(a.Category); err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
	case AssertQualityMonotonic:
		if err := needsItem(); err != nil {
			return err
		}
		if a.Direction != "up" && a.Direction != "down" {
			return fmt.Errorf("assertions[%d]: direction must be up or down, got %q", index, a.Direction)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
