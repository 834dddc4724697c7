// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/canon"
	"github.com/jcmp/jcmp/internal/differ"
	"github.com/jcmp/jcmp/internal/driller"
	"github.com/jcmp/jcmp/internal/matcher"
	"github.com/jcmp/jcmp/internal/meta"
	"github.com/jcmp/jcmp/internal/output"
	"github.com/jcmp/jcmp/internal/score"
	"github.com/jcmp/jcmp/internal/value"
)

// iqResultCacheSize bounds the per-session query result cache. Results are
// recomputed on eviction, so the bound only trades memory for repeat latency.
const iqResultCacheSize = 128

// iqCommandAction is the action handler for the "iq" subcommand. It loads
// both inputs and launches an interactive console to explore differences,
// common structure, and similarity at arbitrary paths.
func iqCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &CompareActionRunner{
		CommandName: "iq",
		NumInputs:   2,
		RunFn:       iqRun,
	}
	return runner.Run(ctx, cmd)
}

func iqRun(ctx context.Context, cmd *cli.Command, in []Input) error {
	if !in[0].Present || !in[1].Present {
		return fmt.Errorf("both inputs must be non-empty documents")
	}
	p := tea.NewProgram(initialIqModel(in[0], in[1]))
	_, err := p.Run()
	return err
}

// iqModel represents the Bubble Tea model for the iq command.
type iqModel struct {
	input          textinput.Model
	history        []string // Full history for navigation (includes file history)
	sessionHistory []string // Only commands from this session (matches with outputs)
	histIndex      int
	output         []string
	left           Input
	right          Input
	results        *lru.Cache[string, string]
}

func initialIqModel(left, right Input) iqModel {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.Focus()
	ti.CharLimit = 2048
	ti.Width = 999
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorBlink)

	// Load history from file
	history := loadIqHistory(getIqHistoryFile())

	results, _ := lru.New[string, string](iqResultCacheSize)

	output := []string{
		fmt.Sprintf("Interactive comparison console loaded: %s vs %s.", left.Name, right.Name),
		"Type 'help' for syntax, 'exit' or Ctrl+C to quit.",
	}

	return iqModel{
		input:          ti,
		history:        history,
		sessionHistory: []string{},
		histIndex:      -1,
		output:         output,
		left:           left,
		right:          right,
		results:        results,
	}
}

func (m iqModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m iqModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			entry := m.input.Value()
			if strings.TrimSpace(entry) != "" {
				if entry == "exit" || entry == "quit" {
					return m, tea.Quit
				}
				if entry == "help" {
					m.history = append(m.history, entry)
					m.sessionHistory = append(m.sessionHistory, entry)
					m.histIndex = -1
					m.output = append(m.output, getIqHelp())
					saveIqHistory(getIqHistoryFile(), m.history)
					m.input.SetValue("")
					return m, nil
				}

				result := m.processQuery(entry)

				m.history = append(m.history, entry)
				m.sessionHistory = append(m.sessionHistory, entry)
				m.histIndex = -1
				m.output = append(m.output, result)
				saveIqHistory(getIqHistoryFile(), m.history)
			}
			m.input.SetValue("")
			return m, nil

		case "up":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex == -1 {
				m.histIndex = len(m.history) - 1
			} else if m.histIndex > 0 {
				m.histIndex--
			}
			m.input.SetValue(m.history[m.histIndex])
			m.input.CursorEnd()
			return m, nil

		case "down":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex >= 0 && m.histIndex < len(m.history)-1 {
				m.histIndex++
				m.input.SetValue(m.history[m.histIndex])
				m.input.CursorEnd()
			} else {
				m.histIndex = -1
				m.input.SetValue("")
			}
			return m, nil

		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m iqModel) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ADD8"))

	var lines []string

	// Add the initial welcome messages first
	if len(m.output) >= 2 {
		lines = append(lines, m.output[0])
		lines = append(lines, m.output[1])
	}

	// Add each command from THIS SESSION with its corresponding output
	for i := 0; i < len(m.sessionHistory); i++ {
		lines = append(lines, promptStyle.Render("> ")+m.sessionHistory[i])

		// Show the corresponding output (accounting for the 2 initial messages)
		if (i + 2) < len(m.output) {
			lines = append(lines, m.output[i+2])
		}
	}

	// Add current prompt and input
	lines = append(lines, promptStyle.Render("> ")+m.input.View())

	return strings.Join(lines, "\n")
}

// processQuery evaluates one console entry. Repeat queries are served from
// the session's LRU cache since both documents are immutable for the session.
func (m iqModel) processQuery(query string) string {
	query = strings.TrimSpace(query)
	if cached, ok := m.results.Get(query); ok {
		return cached
	}

	verb, rest := query, ""
	if i := strings.IndexByte(query, ' '); i >= 0 {
		verb, rest = query[:i], strings.TrimSpace(query[i+1:])
	}

	var result string
	switch verb {
	case "diff":
		result = m.evalDiff(rest)
	case "common":
		result = m.evalCommon(rest)
	case "score", "stats":
		result = m.evalStats()
	case "left":
		result = evalSide(m.left, rest)
	case "right":
		result = evalSide(m.right, rest)
	default:
		// A bare path shows both sides at that location.
		result = fmt.Sprintf("left:  %s\nright: %s",
			sideAt(m.left, query), sideAt(m.right, query))
	}

	m.results.Add(query, result)
	return result
}

func (m iqModel) subtrees(path string) (value.Value, value.Value, error) {
	av, err := subtreeAt(m.left, path)
	if err != nil {
		return value.Value{}, value.Value{}, err
	}
	bv, err := subtreeAt(m.right, path)
	if err != nil {
		return value.Value{}, value.Value{}, err
	}
	return av, bv, nil
}

func (m iqModel) evalDiff(path string) string {
	av, bv, err := m.subtrees(path)
	if err != nil {
		return err.Error()
	}

	res, err := differ.Diff(av, bv)
	if err != nil {
		return err.Error()
	}
	res.SortByPath()
	if res.Empty() {
		return "No differences."
	}

	var lines []string
	for _, row := range output.Rows(res, output.DefaultMaxValueLen) {
		lines = append(lines, fmt.Sprintf("%-10s %s  %s | %s", row.Status, row.Path, row.Left, row.Right))
	}
	return strings.Join(lines, "\n")
}

func (m iqModel) evalCommon(path string) string {
	av, bv, err := m.subtrees(path)
	if err != nil {
		return err.Error()
	}

	common, ok, err := matcher.Intersect(av, bv)
	if err != nil {
		return err.Error()
	}
	if !ok {
		return "No common structure."
	}
	return common.String()
}

func (m iqModel) evalStats() string {
	stats, _, _, _, err := score.Collect(canon.NewMemo(), m.left.Value, m.right.Value)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("only left: %d  only right: %d  modified: %d  common: %d  similarity: %.4f",
		stats.OnlyInA, stats.OnlyInB, stats.Modified, stats.Common, stats.Similarity)
}

// subtreeAt drills one document down to path and parses the fragment.
func subtreeAt(in Input, path string) (value.Value, error) {
	raw, ok := driller.Select(in.Raw, path)
	if !ok {
		return value.Value{}, fmt.Errorf("path %q not found in %s", path, in.Name)
	}
	v, present, err := value.Parse(string(raw))
	if err != nil {
		return value.Value{}, err
	}
	if !present {
		return value.Value{}, fmt.Errorf("path %q empty in %s", path, in.Name)
	}
	return v, nil
}

func evalSide(in Input, path string) string {
	v, err := subtreeAt(in, path)
	if err != nil {
		return err.Error()
	}
	return v.String()
}

func sideAt(in Input, path string) string {
	raw, ok := driller.Select(in.Raw, path)
	if !ok {
		return "(not found)"
	}
	return string(raw)
}

// getIqHelp returns the help text as a string
func getIqHelp() string {
	return `Query syntax:
  diff [path]                      - Order-insensitive diff (optionally of a subtree)
  common [path]                    - Multiset intersection document
  score                            - Summary stats and similarity score
  left <path>                      - Left-side value at a dot path
  right <path>                     - Right-side value at a dot path
  <path>                           - Both sides at a dot path

  Paths use dot syntax with optional array indexes:
     items[2].id                   - Third element's id
     meta.labels                   - Nested object

  Navigation:
     up/down arrows                - Navigate command history
     Ctrl+C                        - Exit

  Examples:
     diff items
     common meta
     left items[0]`
}

// getIqHistoryFile returns the path to the iq history file
func getIqHistoryFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".jcmp_iq_history"
	}
	return filepath.Join(homeDir, ".jcmp_iq_history")
}

func loadIqHistory(filename string) []string {
	var history []string

	file, err := os.Open(filename)
	if err != nil {
		return history // Return empty history if file doesn't exist
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			history = append(history, line)
		}
	}

	return history
}

func saveIqHistory(filename string, history []string) {
	// Keep only the last 1000 commands
	maxHistory := 1000
	start := 0
	if len(history) > maxHistory {
		start = len(history) - maxHistory
	}

	file, err := os.Create(filename)
	if err != nil {
		return // Silently fail if we can't save history
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for i := start; i < len(history); i++ {
		fmt.Fprintln(writer, history[i])
	}
	writer.Flush()
}

// iqCommandBuilder constructs the cli.Command for "iq" and wires up metadata,
// flags, and the action handler.
func iqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CompareCommandBuilder{
		Name:      "iq",
		Usage:     "interactive query console",
		UsageText: "jcmp iq LEFT RIGHT [options]",
		Flags:     []cli.Flag{},
		Action:    iqCommandAction,
		Meta:      meta,
	}).Build()
}
