package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/simulation"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Days    int
	MaxDays int
	Digest  string // optional - expected trace digest
}

// ReplayResult is the JSON payload of replay.
type ReplayResult struct {
	Fixture       string `json:"fixture"`
	Days          int    `json:"days"`
	Digest        string `json:"digest"`
	Expected      string `json:"expected,omitempty"`
	Deterministic bool   `json:"deterministic"`
	Match         bool   `json:"match"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay [fixture]",
		Short: "Re-run a fixture and verify its trace digest",
		Long: `Simulate a fixture twice from scratch and compare the trace digests.

The digest is a SHA-256 over the canonical JSON of every recorded day; the
run id is not part of it. With --digest, the digest must also equal the
given value, e.g. one printed by an earlier "simulate --format json".

Exit codes:
  0 - Both runs agree (and match --digest when given)
  1 - Non-deterministic replay or digest mismatch
  2 - Command error (bad fixture, too many days, etc.)

Examples:
  gildedrose replay --days 30
  gildedrose replay ./shop.yaml --days 10 --digest 3f2a...`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runReplay(opts, path, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Days, "days", "d", DefaultDays, "number of days to simulate")
	cmd.Flags().IntVar(&opts.MaxDays, "max-days", simulation.DefaultMaxDays, "largest accepted --days")
	cmd.Flags().StringVar(&opts.Digest, "digest", "", "expected trace digest")

	return cmd
}

func runReplay(opts *ReplayOptions, path string, cmd *cobra.Command) error {
	ctx := cmd.Context()
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

	digests := make([]string, 2)
	for i := range digests {
		trace, err := simulateFixture(ctx, f, opts.Days, opts.MaxDays, simulation.UUIDv7Generator{}, opts.RootOptions, cmd)
		if err != nil {
			return err
		}
		if digests[i], err = trace.Digest(); err != nil {
			return WrapExitError(ExitFailure, "failed to digest trace", err)
		}
	}

	result := ReplayResult{
		Fixture:       f.Name,
		Days:          opts.Days,
		Digest:        digests[0],
		Expected:      opts.Digest,
		Deterministic: digests[0] == digests[1],
	}
	result.Match = result.Deterministic && (opts.Digest == "" || opts.Digest == digests[0])

	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if opts.Format == "json" {
		return outputReplayJSON(formatter, result)
	}
	return outputReplayText(formatter, result)
}

// outputReplayJSON outputs the replay result as JSON.
func outputReplayJSON(formatter *OutputFormatter, result ReplayResult) error {
	response := CLIResponse{Status: "ok", Data: result}
	code, message := replayFailure(result)
	if code != "" {
		response.Status = "error"
		response.Error = &CLIError{Code: code, Message: message}
	}

	if err := formatter.Respond(response); err != nil {
		return err
	}
	if code != "" {
		return NewExitError(ExitFailure, message)
	}
	return nil
}

// outputReplayText outputs the replay result as text.
func outputReplayText(formatter *OutputFormatter, result ReplayResult) error {
	w := formatter.Writer

	fmt.Fprintf(w, "Replay: %s, %d day(s)\n", result.Fixture, result.Days)
	fmt.Fprintf(w, "  Digest: %s\n", result.Digest)
	if result.Expected != "" {
		fmt.Fprintf(w, "  Expected: %s\n", result.Expected)
	}

	code, message := replayFailure(result)
	if code == "" {
		fmt.Fprintln(w, "✓ Replay verified")
		return nil
	}
	fmt.Fprintf(w, "✗ %s\n", message)
	return NewExitError(ExitFailure, message)
}

func replayFailure(result ReplayResult) (code, message string) {
	switch {
	case !result.Deterministic:
		return "E_DETERMINISM", "determinism verification failed"
	case !result.Match:
		return "E_DIGEST_MISMATCH", "trace digest does not match --digest"
	default:
		return "", ""
	}
}
