package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxjanney/libretro-sys/internal/core/catalog"
	"github.com/maxjanney/libretro-sys/internal/infrastructure/config"
)

func newLookupCommand(c *container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Resolve a symbolic name to its value",
		Long: `Resolve a constant name to its namespace and exact numeric value.
Lookup is case-insensitive and the RETRO_ prefix is optional.

Examples:
  retroabi lookup RETRO_DEVICE_JOYPAD
  retroabi lookup device_id_joypad_b
  retroabi lookup environment_get_sensor_interface`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := catalog.Find(args[0])
			if err != nil {
				return err
			}

			c.logger.Debug("resolved constant", "name", entry.Name, "value", entry.Value)

			switch c.cfg.Output {
			case config.OutputJSON, config.OutputYAML:
				return writeEncoded(cmd.OutOrStdout(), c.cfg.Output, entry)
			default:
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s = %d (0x%x)\n", entry.Name, entry.Value, entry.Value)
				fmt.Fprintf(out, "namespace: %s\n", entry.Namespace)
				if n := notes(entry); n != "" {
					fmt.Fprintf(out, "notes: %s\n", n)
				}
				return nil
			}
		},
	}

	return cmd
}
