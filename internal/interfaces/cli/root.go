// Package cli implements the retroabi inspector commands.
package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/maxjanney/libretro-sys/internal/infrastructure/config"
)

// container holds the dependencies shared by all commands.
type container struct {
	cfg    config.Config
	logger hclog.Logger
}

// NewRootCommand builds the retroabi command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	c := &container{cfg: config.Default(), logger: hclog.NewNullLogger()}

	var (
		flagOutput  string
		flagNoColor bool
		flagVerbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "retroabi",
		Short: "Inspector for the libretro ABI constant catalog",
		Long: `retroabi inspects the constant surface of the libretro ABI: device
types, input ID namespaces, memory region tags, region codes and
environment command codes.

It resolves symbolic names to the exact values the ABI expects at the
binary boundary, decodes composed values back into their parts, checks
the catalog's structural invariants and exports the whole surface for
cross-language consumers.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = flagOutput
			}
			if flagNoColor {
				cfg.NoColor = true
			}
			if flagVerbose {
				cfg.Verbose = true
			}
			c.cfg = cfg

			level := hclog.Warn
			if cfg.Verbose {
				level = hclog.Debug
			}
			c.logger = hclog.New(&hclog.LoggerOptions{
				Name:   "retroabi",
				Level:  level,
				Output: cmd.ErrOrStderr(),
				Color:  colorOption(cfg.NoColor),
			})
			c.logger.Debug("configuration resolved",
				"output", cfg.Output, "no_color", cfg.NoColor,
				"go", goVersion(), "platform", runtime.GOOS+"/"+runtime.GOARCH)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", config.OutputTable,
		"Output format: table, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false,
		"Disable styled output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Enable diagnostic logging")

	rootCmd.AddCommand(newListCommand(c))
	rootCmd.AddCommand(newLookupCommand(c))
	rootCmd.AddCommand(newDecodeCommand(c))
	rootCmd.AddCommand(newVerifyCommand(c))
	rootCmd.AddCommand(newExportCommand(c))
	rootCmd.AddCommand(newBrowseCommand(c))

	return rootCmd
}

func colorOption(noColor bool) hclog.ColorOption {
	if noColor {
		return hclog.ColorOff
	}
	return hclog.AutoColor
}

// goVersion returns the Go version used to build the binary.
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}
