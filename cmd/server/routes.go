package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JaimeStill/physics-lab/internal/config"
	"github.com/JaimeStill/physics-lab/internal/registry"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type routeTable struct {
	Set    string           `yaml:"set"`
	Routes []registry.Route `yaml:"routes"`
}

func routesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the active route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(false)
			if err != nil {
				return err
			}

			routes, err := cfg.Routes.Select()
			if err != nil {
				return err
			}
			reg, err := registry.New(routes...)
			if err != nil {
				return err
			}

			return writeRoutes(cmd.OutOrStdout(), format, cfg, reg)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table|yaml)")

	return cmd
}

func writeRoutes(w io.Writer, format string, cfg *config.Config, reg *registry.Registry) error {
	switch format {
	case "table":
		_, err := fmt.Fprintln(w, renderTable(reg))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(routeTable{Set: cfg.Routes.Set, Routes: reg.Routes()}); err != nil {
			return fmt.Errorf("encode routes: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q: want table or yaml", format)
	}
}

// renderTable lists routes grouped by catalog section. Routes in sections the
// catalog does not know are listed last, in registration order.
func renderTable(reg *registry.Registry) string {
	routes := reg.Routes()
	sections := registry.Sections()
	rank := func(section string) int {
		if i := slices.Index(sections, section); i >= 0 {
			return i
		}
		return len(sections)
	}
	slices.SortStableFunc(routes, func(a, b registry.Route) int {
		return cmp.Compare(rank(a.Section), rank(b.Section))
	})

	rows := make([][]string, 0, len(routes))
	for _, r := range routes {
		rows = append(rows, []string{r.Path, r.Template(), r.Section, r.Title})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("PATH", "TEMPLATE", "SECTION", "TITLE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2:
				return dimStyle
			default:
				return cellStyle
			}
		}).
		String()
}
