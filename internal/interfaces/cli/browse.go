package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/maxjanney/libretro-sys/internal/core/catalog"
)

func newBrowseCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse the catalog",
		Long: `Launch an interactive terminal browser over the catalog. Navigate
namespaces with the arrow keys, enter one to see its constants, and
type to filter by name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			program := tea.NewProgram(newBrowseModel(), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("browser failed: %w", err)
			}
			return nil
		},
	}
}

var (
	browseTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	browseSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	browseFaintStyle    = lipgloss.NewStyle().Faint(true)
)

// browseModel is a two-level browser: a namespace list, and the
// constants of the entered namespace with an incremental name filter.
type browseModel struct {
	namespaces []catalog.Namespace
	selected   int

	inNamespace bool
	constants   []catalog.Constant
	row         int
	filter      string

	windowHeight int
}

func newBrowseModel() browseModel {
	return browseModel{namespaces: catalog.Namespaces()}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.inNamespace && msg.String() == "q" && m.filter != "" {
				m.filter += "q"
				return m, nil
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.inNamespace {
				if m.row > 0 {
					m.row--
				}
			} else if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.inNamespace {
				if m.row < len(m.visible())-1 {
					m.row++
				}
			} else if m.selected < len(m.namespaces)-1 {
				m.selected++
			}
			return m, nil

		case "enter", "right":
			if !m.inNamespace {
				m.inNamespace = true
				m.constants = catalog.ByNamespace(m.namespaces[m.selected])
				m.row = 0
				m.filter = ""
			}
			return m, nil

		case "esc", "left":
			if m.inNamespace {
				m.inNamespace = false
			}
			return m, nil

		case "backspace":
			if m.inNamespace && m.filter != "" {
				m.filter = m.filter[:len(m.filter)-1]
				m.row = 0
			}
			return m, nil

		default:
			if m.inNamespace && len(msg.String()) == 1 {
				m.filter += msg.String()
				m.row = 0
			}
			return m, nil
		}
	}

	return m, nil
}

// visible returns the constants of the entered namespace that match the
// current filter.
func (m browseModel) visible() []catalog.Constant {
	if m.filter == "" {
		return m.constants
	}
	needle := strings.ToUpper(m.filter)
	var out []catalog.Constant
	for _, c := range m.constants {
		if strings.Contains(c.Name, needle) {
			out = append(out, c)
		}
	}
	return out
}

func (m browseModel) View() string {
	if m.inNamespace {
		return m.viewConstants()
	}
	return m.viewNamespaces()
}

func (m browseModel) viewNamespaces() string {
	var b strings.Builder
	b.WriteString(browseTitleStyle.Render("libretro ABI catalog") + "\n\n")
	for i, ns := range m.namespaces {
		line := fmt.Sprintf("  %-14s %d constants", ns, len(catalog.ByNamespace(ns)))
		if i == m.selected {
			line = browseSelectedStyle.Render("> " + line[2:])
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + browseFaintStyle.Render("↑/↓ select · enter open · q quit"))
	return b.String()
}

func (m browseModel) viewConstants() string {
	var b strings.Builder
	ns := m.namespaces[m.selected]
	title := fmt.Sprintf("%s constants", ns)
	if m.filter != "" {
		title += fmt.Sprintf(" (filter: %s)", m.filter)
	}
	b.WriteString(browseTitleStyle.Render(title) + "\n\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(browseFaintStyle.Render("  no matches") + "\n")
	}
	for i, c := range visible {
		line := fmt.Sprintf("  %-46s %10d  0x%-8x", c.Name, c.Value, c.Value)
		if n := notes(c); n != "" {
			line += "  " + n
		}
		if i == m.row {
			line = browseSelectedStyle.Render("> " + line[2:])
		} else if c.Deprecated {
			line = browseFaintStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + browseFaintStyle.Render("type to filter · esc back · ctrl+c quit"))
	return b.String()
}
