package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	libretro "github.com/maxjanney/libretro-sys"
	"github.com/maxjanney/libretro-sys/internal/core/catalog"
)

func newDecodeCommand(c *container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode composed ABI values into their parts",
	}

	cmd.AddCommand(newDecodeDeviceCommand(c))
	cmd.AddCommand(newDecodeEnvCommand(c))

	return cmd
}

func newDecodeDeviceCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "device <value>",
		Short: "Split a packed device value into base type and subclass index",
		Long: `Split a device value into its base type (low 8 bits) and the index
packed above it. Values may be decimal or 0x-prefixed hex.

Examples:
  retroabi decode device 1        # plain joypad
  retroabi decode device 0x105    # analog, index 1
  retroabi decode device 257      # joypad subclass 0 per the subclass macro`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}

			base, index := libretro.SplitDevice(v)
			c.logger.Debug("decoded device value", "value", v, "base", uint32(base), "index", index)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "value:  %d (0x%x)\n", v, v)
			fmt.Fprintf(out, "device: %s (%d)\n", base, uint32(base))
			fmt.Fprintf(out, "index:  %d\n", index)
			if index > 0 {
				// The subclass macro offsets IDs by one so a packed
				// subclass never equals the plain base type.
				fmt.Fprintf(out, "subclass id: %d\n", index-1)
			}
			return nil
		},
	}
}

func newDecodeEnvCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:     "env <code>",
		Aliases: []string{"environment"},
		Short:   "Strip modifier bits from an environment command code",
		Long: `Strip the experimental/private modifier bits from an environment
command code and name the base command.

Examples:
  retroabi decode env 27
  retroabi decode env 65561    # 25 | 0x10000, GET_SENSOR_INTERFACE`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}

			code := libretro.EnvironmentCommand(v)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "code:         %d (0x%x)\n", v, v)
			fmt.Fprintf(out, "base:         %d\n", code.Base())
			fmt.Fprintf(out, "experimental: %t\n", code.Experimental())
			fmt.Fprintf(out, "private:      %t\n", code.Private())

			names := environmentNames(code.Base())
			if len(names) == 0 {
				fmt.Fprintf(out, "command:      unknown\n")
				return nil
			}
			fmt.Fprintf(out, "command:      %s\n", strings.Join(names, ", "))
			return nil
		},
	}
}

// environmentNames returns every published command name bound to a base
// code, aliases included.
func environmentNames(base uint32) []string {
	var names []string
	for _, entry := range catalog.ByNamespace(catalog.NamespaceEnvironment) {
		if entry.Flag {
			continue
		}
		if libretro.EnvironmentCommand(entry.Value).Base() == base {
			names = append(names, entry.Name)
		}
	}
	return names
}

func parseValue(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return uint32(v), nil
}
