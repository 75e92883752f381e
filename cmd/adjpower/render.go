// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/adjpower/core"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	zeroStyle   = cellStyle.Foreground(lipgloss.Color("241"))
	statsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// powerReport is the yaml shape of the power command.
type powerReport struct {
	Op     string        `yaml:"op"`
	Power  int           `yaml:"power"`
	Base   core.Snapshot `yaml:"base"`
	Result core.Snapshot `yaml:"result"`
}

// demoLevel is one revealed level of a demonstration.
type demoLevel struct {
	Power  int           `yaml:"power"`
	Answer core.Snapshot `yaml:"answer"`
}

// demoReport is the yaml shape of the demo command.
type demoReport struct {
	ID     string        `yaml:"session"`
	Op     string        `yaml:"op"`
	Base   core.Snapshot `yaml:"base"`
	Levels []demoLevel   `yaml:"levels"`
}

// render writes g in the requested format.
func render(w io.Writer, format, title string, g *core.Graph) error {
	if format == formatYAML {
		return renderYAML(w, g)
	}

	return renderTable(w, title, g)
}

// renderYAML encodes v with two-space indentation.
func renderYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

// renderTable prints a title, the matrix as a bordered table with vertex
// indices on both axes and a one-line statistics summary.
func renderTable(w io.Writer, title string, g *core.Graph) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n\n",
		titleStyle.Render(title),
		matrixTable(g.Matrix()),
		statsStyle.Render(statsLine(g.Stats())))

	return err
}

// renderDemo prints every level of a demonstration.
func renderDemo(w io.Writer, format string, r demoReport) error {
	if format == formatYAML {
		return renderYAML(w, r)
	}
	if _, err := fmt.Fprintf(w, "session %s (%s)\n\n", r.ID, r.Op); err != nil {
		return err
	}
	for _, lvl := range r.Levels {
		_, err := fmt.Fprintf(w, "%s\n%s\n\n",
			titleStyle.Render(fmt.Sprintf("power %d", lvl.Power)),
			matrixTable(lvl.Answer.Matrix))
		if err != nil {
			return err
		}
	}

	return nil
}

// matrixTable renders rows as a lipgloss table.
func matrixTable(rows [][]int64) string {
	headers := make([]string, len(rows)+1)
	for j := range rows {
		headers[j+1] = strconv.Itoa(j)
	}
	body := make([][]string, len(rows))
	for i, row := range rows {
		line := make([]string, len(row)+1)
		line[0] = strconv.Itoa(i)
		for j, v := range row {
			line[j+1] = strconv.FormatInt(v, 10)
		}
		body[i] = line
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row < 0 || row >= len(body), col == 0:
				return headerStyle
			case body[row][col] == "0":
				return zeroStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}

// statsLine summarizes derived statistics.
func statsLine(s core.Stats) string {
	line := fmt.Sprintf("type=%s size=%d edges=%d weights=%d components=%d",
		s.GenType, s.Size, s.EdgeNumber, s.SumWeights, s.Components)
	if s.Attempts > 0 {
		line += fmt.Sprintf(" attempts=%d", s.Attempts)
	}

	return line
}
