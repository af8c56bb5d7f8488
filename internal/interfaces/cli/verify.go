package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxjanney/libretro-sys/internal/core/catalog"
)

func newVerifyCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the catalog's structural invariants",
		Long: `Check that the catalog holds its structural invariants: unique
names per namespace, value collisions only where a documented
deprecated alias explains them, and environment codes inside the
reserved range with modifier bits disjoint from it.

Intended for CI next to the golden-value tests. Exits non-zero on any
violation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			violations := catalog.Verify()
			c.logger.Debug("catalog verified", "violations", len(violations))

			out := cmd.OutOrStdout()
			if len(violations) == 0 {
				fmt.Fprintf(out, "catalog ok: %d constants in %d namespaces\n",
					len(catalog.All()), len(catalog.Namespaces()))
				return nil
			}

			for _, v := range violations {
				fmt.Fprintln(out, v)
			}
			return fmt.Errorf("catalog has %d invariant violation(s)", len(violations))
		},
	}
}
