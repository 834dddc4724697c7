// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/jcmp/jcmp/internal/config"
	"github.com/jcmp/jcmp/internal/filters"
	"github.com/jcmp/jcmp/internal/log"
)

// Spit orchestrates filtering, sorting and rendering of diff rows according
// to command flags. Output is written to w; if w is nil, os.Stdout is used.
func Spit(rows []Row, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	// Filter out the rows we don't want first so the following steps work on
	// a smaller dataset.
	if spec := cmd.String("filter"); spec != "" {
		rows = filters.Apply(rows, spec, rowField)
	}

	SortRows(rows, cmd.String("sort"))

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.Marshal(rows)
		if err != nil {
			log.Errorf("Spit json marshal: %v", err)
		}
		w.Write(jsonOutput)
		fmt.Fprintln(w)
	case "yaml":
		yamlOutput, err := yaml.Marshal(rows)
		if err != nil {
			log.Errorf("Spit yaml marshal: %v", err)
		}
		w.Write(yamlOutput)
	default:
		TableWriter(rows, cmd, w)
	}
}

// rowField resolves a filter key to a row column. The "*" key returns the
// row's full searchable text for free-text terms.
func rowField(r Row, key string) (string, bool) {
	switch key {
	case "path":
		return r.Path, true
	case "left":
		return r.Left, true
	case "right":
		return r.Right, true
	case "status":
		return r.Status, true
	case "count":
		return strconv.Itoa(r.Count), true
	case "*":
		return r.Path + " " + r.Left + " " + r.Right + " " + r.Status, true
	default:
		return "", false
	}
}

// TableWriter renders diff rows in tabular form honoring color, titles and
// padding options. Rows are colored by status when --color is enabled.
// Output is written to w. If w is nil, os.Stdout is used.
func TableWriter(rows []Row, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(rows) == 0 {
		return
	}

	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)

	onlyLeftStyle := cellStyle
	onlyRightStyle := cellStyle
	modifiedStyle := cellStyle

	// Coloring is pointless when piped, so require a terminal as well.
	if cmd.Bool("color") && term.IsTerminal(int(os.Stdout.Fd())) {
		headerColor, leftColor, rightColor, modColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		onlyLeftStyle = onlyLeftStyle.Foreground(leftColor)
		onlyRightStyle = onlyRightStyle.Foreground(rightColor)
		modifiedStyle = modifiedStyle.Foreground(modColor)
	}

	var cells [][]string
	for _, row := range rows {
		cells = append(cells, []string{row.Path, row.Left, row.Right, row.Status})
	}

	// We render the header if present.
	if cmd.Metadata["header"] != nil {
		fmt.Fprintln(w, headerStyle.Render(cmd.Metadata["header"].(string)))
	}

	pad := cmd.Int("padding")
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row >= 0 && row < len(rows) && rows[row].Status == StatusOnlyLeft:
				style = onlyLeftStyle
			case row >= 0 && row < len(rows) && rows[row].Status == StatusOnlyRight:
				style = onlyRightStyle
			default:
				style = modifiedStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(cells...)

	// We add column headers if titles are enabled.
	if cmd.Bool("titles") {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("path", "left", "right", "status").BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	// We render the footer if present.
	if cmd.Metadata["footer"] != nil {
		fmt.Fprintln(w, headerStyle.Render(cmd.Metadata["footer"].(string)))
	}
}

// getColors returns configured color values for table rendering. Each color
// is selected based on terminal background brightness so output stays
// visible across terminal themes; explicit config values win.
func getColors(key string) (header, onlyLeft, onlyRight, modified color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	onlyLeft = resolveColor(key+".onlyleft", "#b91c1c", "#ef4444")
	onlyRight = resolveColor(key+".onlyright", "#15803d", "#22c55e")
	modified = resolveColor(key+".modified", "#a16207", "#eab308")

	return
}
