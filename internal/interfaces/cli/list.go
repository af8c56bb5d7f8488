package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxjanney/libretro-sys/internal/core/catalog"
	"github.com/maxjanney/libretro-sys/internal/infrastructure/config"
)

func newListCommand(c *container) *cobra.Command {
	var deprecatedOnly bool

	cmd := &cobra.Command{
		Use:   "list [namespace]",
		Short: "List catalog namespaces and their constants",
		Long: `List the constants of one namespace, or the whole catalog.

Examples:
  retroabi list                  # every namespace
  retroabi list joypad           # RetroPad button IDs
  retroabi list environment      # environment command codes
  retroabi list --deprecated     # only deprecated aliases`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cs []catalog.Constant
			if len(args) == 1 {
				ns, err := catalog.ParseNamespace(args[0])
				if err != nil {
					return err
				}
				cs = catalog.ByNamespace(ns)
			} else {
				cs = catalog.All()
			}

			if deprecatedOnly {
				filtered := cs[:0]
				for _, entry := range cs {
					if entry.Deprecated {
						filtered = append(filtered, entry)
					}
				}
				cs = filtered
			}

			c.logger.Debug("listing constants", "count", len(cs))

			switch c.cfg.Output {
			case config.OutputJSON, config.OutputYAML:
				return writeEncoded(cmd.OutOrStdout(), c.cfg.Output, cs)
			default:
				fmt.Fprint(cmd.OutOrStdout(), renderTable(cs, c.cfg.NoColor))
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&deprecatedOnly, "deprecated", false, "Show only deprecated names")

	return cmd
}
