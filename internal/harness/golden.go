package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/canon"
	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/simulation"
)

// GoldenDir is where golden traces live, relative to the test's package.
const GoldenDir = "testdata/golden"

// TraceSnapshot is the golden-file form of a scenario trace.
type TraceSnapshot struct {
	ScenarioName string
	RunID        string
	Trace        *simulation.Trace
}

// MarshalCanonical renders the snapshot as canonical JSON.
func (s *TraceSnapshot) MarshalCanonical() ([]byte, error) {
	m := map[string]any{
		"scenario_name": s.ScenarioName,
		"days":          s.Trace.CanonicalDays(),
	}
	if s.RunID != "" {
		m["run_id"] = s.RunID
	}
	return canon.Marshal(m)
}

// RunWithGolden executes a scenario and compares its canonical trace with
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result's trace against a golden file.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	snapshot := TraceSnapshot{
		ScenarioName: name,
		RunID:        result.Trace.RunID,
		Trace:        result.Trace,
	}
	data, err := snapshot.MarshalCanonical()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
