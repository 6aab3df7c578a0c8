package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/fixture"
)

// ValidationResult is the JSON payload of validate.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Fixture string `json:"fixture,omitempty"`
	Items   int    `json:"items"`
	Line    int    `json:"line,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <fixture>",
		Short: "Check a fixture without simulating it",
		Long: `Load a YAML or CUE fixture and check every item against the
inventory record: non-empty name, sell_in >= 0, quality within [0, 50].

Exit codes:
  0 - Fixture is valid
  1 - Fixture is invalid
  2 - Command error (file not found, unreadable)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	formatter.VerboseLog("Validating %s", path)

	f, err := fixture.Load(path)
	if err != nil {
		return outputValidateError(formatter, err)
	}

	for i, it := range f.Items {
		formatter.VerboseLog("  [%d] %s, %d, %d", i, it.Name, it.SellIn, it.Quality)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Fixture: f.Name, Items: len(f.Items)})
	}
	fmt.Fprintf(formatter.Writer, "✓ %s: %d item(s) valid\n", f.Name, len(f.Items))
	return nil
}

// outputValidateError reports a load failure. Missing or unreadable files
// are command errors; everything else means the fixture is invalid.
func outputValidateError(formatter *OutputFormatter, err error) error {
	var loadErr *fixture.LoadError
	if !errors.As(err, &loadErr) {
		_ = formatter.Error(fixture.ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "validation failed", err)
	}

	var details any
	if loadErr.Pos.IsValid() {
		details = ValidationResult{Valid: false, Line: loadErr.Pos.Line()}
	}
	_ = formatter.Error(loadErr.Code, loadErr.Message, details)

	switch loadErr.Code {
	case fixture.ErrCodeNotFound, fixture.ErrCodeReadFailed, fixture.ErrCodeUnsupported:
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", loadErr.Code, loadErr.Message))
	default:
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", loadErr.Code, loadErr.Message))
	}
}
