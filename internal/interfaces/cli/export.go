package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	libretro "github.com/maxjanney/libretro-sys"
	"github.com/maxjanney/libretro-sys/internal/core/catalog"
	"github.com/maxjanney/libretro-sys/internal/infrastructure/config"
)

// exportDocument is the machine-readable form of the whole catalog,
// meant for cross-language consumers and golden-file comparison.
type exportDocument struct {
	APIVersion uint32            `json:"api_version" yaml:"api_version"`
	Namespaces []exportNamespace `json:"namespaces" yaml:"namespaces"`
	Violations []string          `json:"violations,omitempty" yaml:"violations,omitempty"`
}

type exportNamespace struct {
	Name      catalog.Namespace  `json:"name" yaml:"name"`
	Constants []catalog.Constant `json:"constants" yaml:"constants"`
}

func newExportCommand(c *container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full catalog as JSON or YAML",
		Long: `Export every namespace and constant in a machine-readable form.
The document embeds the API version and the result of the invariant
check, so consumers in other languages can diff their own catalogs
against it.

Examples:
  retroabi export > catalog.json
  retroabi export -o yaml > catalog.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := exportDocument{APIVersion: libretro.APIVersion}
			for _, ns := range catalog.Namespaces() {
				doc.Namespaces = append(doc.Namespaces, exportNamespace{
					Name:      ns,
					Constants: catalog.ByNamespace(ns),
				})
			}
			for _, v := range catalog.Verify() {
				doc.Violations = append(doc.Violations, v.String())
			}

			format := c.cfg.Output
			if format == config.OutputTable {
				format = config.OutputJSON
			}
			c.logger.Debug("exporting catalog", "format", format)
			return writeEncoded(cmd.OutOrStdout(), format, doc)
		},
	}

	return cmd
}

// writeEncoded marshals v as JSON or YAML onto w.
func writeEncoded(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
