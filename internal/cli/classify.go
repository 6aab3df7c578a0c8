package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/inventory"
)

// Classification is one name and the category it maps to.
type Classification struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <name>...",
		Short: "Show the category of item names",
		Long: `Show which update rule applies to each item name.

Matching is exact and case-sensitive. Any name outside the fixed table is
Normal.

Examples:
  gildedrose classify "Aged Brie" "aged brie"
  gildedrose classify "Sulfuras, Hand of Ragnaros" --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runClassify(opts *RootOptions, names []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	fold := cases.Fold()
	results := make([]Classification, len(names))
	for i, name := range names {
		category := inventory.Classify(name)
		results[i] = Classification{Name: name, Category: category.String()}

		if category != inventory.Normal {
			continue
		}
		if known, ok := nearMiss(fold, name); ok {
			formatter.VerboseLog("%q is Normal; did you mean %q (%s)?", name, known, inventory.Classify(known))
		}
	}

	if opts.Format == "json" {
		return formatter.Success(results)
	}
	for _, r := range results {
		fmt.Fprintf(formatter.Writer, "%s: %s\n", r.Name, r.Category)
	}
	return nil
}

// nearMiss reports a special name equal to name under case folding.
func nearMiss(fold cases.Caser, name string) (string, bool) {
	folded := fold.String(name)
	for _, known := range []string{inventory.NameAgedBrie, inventory.NameBackstagePass, inventory.NameSulfuras} {
		if fold.String(known) == folded {
			return known, true
		}
	}
	return "", false
}
