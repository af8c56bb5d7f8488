package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/maxjanney/libretro-sys/internal/core/catalog"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	namespaceStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	deprecatedStyle = lipgloss.NewStyle().Faint(true)
)

// renderTable renders constants grouped under namespace headings. With
// plain set, no ANSI styling is emitted.
func renderTable(cs []catalog.Constant, plain bool) string {
	var b strings.Builder

	nameWidth := len("NAME")
	for _, c := range cs {
		if len(c.Name) > nameWidth {
			nameWidth = len(c.Name)
		}
	}

	style := func(s lipgloss.Style, text string) string {
		if plain {
			return text
		}
		return s.Render(text)
	}

	var current catalog.Namespace
	for _, c := range cs {
		if c.Namespace != current {
			if current != "" {
				b.WriteString("\n")
			}
			current = c.Namespace
			b.WriteString(style(namespaceStyle, string(current)) + "\n")
			b.WriteString(style(headerStyle,
				fmt.Sprintf("  %-*s  %10s  %-10s  %s", nameWidth, "NAME", "VALUE", "HEX", "NOTES")) + "\n")
		}

		row := fmt.Sprintf("  %-*s  %10d  %-10s  %s",
			nameWidth, c.Name, c.Value, fmt.Sprintf("0x%x", c.Value), notes(c))
		if c.Deprecated {
			row = style(deprecatedStyle, row)
		}
		b.WriteString(row + "\n")
	}

	return b.String()
}

func notes(c catalog.Constant) string {
	var parts []string
	if c.Deprecated {
		parts = append(parts, "deprecated")
	}
	if c.AliasOf != "" {
		parts = append(parts, "alias of "+c.AliasOf)
	}
	if c.Experimental {
		parts = append(parts, "experimental")
	}
	if c.Flag {
		parts = append(parts, "modifier/mask")
	}
	if c.Doc != "" {
		parts = append(parts, c.Doc)
	}
	return strings.Join(parts, "; ")
}
