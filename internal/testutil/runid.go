// Package testutil holds deterministic helpers shared by tests.
package testutil

// ConstantRunIDs returns the same run id on every call.
//
// simulation.FixedGenerator hands out ids in sequence and panics when it
// runs dry; use ConstantRunIDs when a test runs the same simulation more
// than once and compares the traces.
type ConstantRunIDs struct {
	id string
}

// NewConstantRunIDs creates a generator for id. An empty id becomes
// "test-run-default".
func NewConstantRunIDs(id string) *ConstantRunIDs {
	if id == "" {
		id = "test-run-default"
	}
	return &ConstantRunIDs{id: id}
}

// Generate returns the fixed run id.
func (g *ConstantRunIDs) Generate() string {
	return g.id
}
