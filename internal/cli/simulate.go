package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/fixture"
	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/simulation"
)

// DefaultDays matches the day count of the classic TextTest fixture.
const DefaultDays = 2

// SimulateOptions holds flags for the simulate command.
type SimulateOptions struct {
	*RootOptions
	Days    int
	MaxDays int

	// RunIDs overrides the run id source (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs simulation.RunIDGenerator
}

// SimulateResult is the JSON payload of simulate.
type SimulateResult struct {
	Fixture string            `json:"fixture"`
	Digest  string            `json:"digest"`
	Trace   *simulation.Trace `json:"trace"`
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimulateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "simulate [fixture]",
		Short: "Advance an inventory day by day",
		Long: `Advance an inventory and print its state after every day.

The fixture is a YAML or CUE file. Without one, the classic inventory is
used. Text output follows the TextTest layout; JSON output carries the
full trace and its digest.

Exit codes:
  0 - Simulation completed
  1 - An item rejected its daily update
  2 - Command error (bad fixture path, too many days, etc.)

Examples:
  gildedrose simulate
  gildedrose simulate ./testdata/fixtures/classic.yaml --days 30
  gildedrose simulate ./shop.cue --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runSimulate(cmd.Context(), opts, path, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Days, "days", "d", DefaultDays, "number of days to simulate")
	cmd.Flags().IntVar(&opts.MaxDays, "max-days", simulation.DefaultMaxDays, "largest accepted --days")

	return cmd
}

func runSimulate(ctx context.Context, opts *SimulateOptions, path string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Days < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--days must be non-negative, got %d", opts.Days))
	}

	f, err := loadFixture(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load fixture", err)
	}

	trace, err := simulateFixture(ctx, f, opts.Days, opts.MaxDays, opts.runIDs(), opts.RootOptions, cmd)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		digest, err := trace.Digest()
		if err != nil {
			return WrapExitError(ExitFailure, "failed to digest trace", err)
		}
		formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return formatter.Respond(CLIResponse{
			Status: "ok",
			Data:   SimulateResult{Fixture: f.Name, Digest: digest, Trace: trace},
			RunID:  trace.RunID,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "OMGHAI!")
	return trace.WriteText(w)
}

func (o *SimulateOptions) runIDs() simulation.RunIDGenerator {
	if o.RunIDs == nil {
		return simulation.UUIDv7Generator{}
	}
	return o.RunIDs
}

// simulateFixture builds f and runs it for days, mapping simulation errors
// to exit codes.
func simulateFixture(
	ctx context.Context,
	f *fixture.Fixture,
	days, maxDays int,
	runIDs simulation.RunIDGenerator,
	opts *RootOptions,
	cmd *cobra.Command,
) (*simulation.Trace, error) {
	items, err := f.Build()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid inventory", err)
	}

	sim := simulation.New(items,
		simulation.WithMaxDays(maxDays),
		simulation.WithRunIDGenerator(runIDs),
		simulation.WithLogger(newLogger(opts, cmd.ErrOrStderr()).With("fixture", f.Name)),
	)

	trace, err := sim.Run(ctx, days)
	switch {
	case err == nil:
		return trace, nil
	case simulation.IsQuotaError(err):
		return nil, WrapExitError(ExitCommandError, "refusing to simulate", err)
	default:
		return nil, WrapExitError(ExitFailure, "simulation failed", err)
	}
}
