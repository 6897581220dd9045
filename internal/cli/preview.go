package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/intensity"
	"github.com/textmorph/textmorph/pkg/augment/transforms"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the preview command for interactive exploration.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		text string
		seed uint64
	)

	cmd := &cobra.Command{
		Use:   "preview [text]",
		Short: "Interactively try transforms on a sample text",
		Long: `Interactively try transforms on a sample text.

Opens a terminal UI listing every transform family. Moving the cursor
applies the highlighted family to the sample text and shows the result
with its intensity score. Press r to redraw with a new seed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				text = args[0]
			}
			model := NewPreviewModel(text, seed)
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "The quick brown fox jumps over the lazy dog.", "sample text to augment")
	cmd.Flags().Uint64Var(&seed, "seed", 42, "random seed for the previews")

	return cmd
}

// =============================================================================
// PreviewModel - Interactive transform browser
// =============================================================================

// previewEntry caches the outcome of one family applied to the sample.
type previewEntry struct {
	output string
	score  float64
	config string
	err    error
}

// PreviewModel is the bubbletea model for the transform browser.
type PreviewModel struct {
	Text     string
	Seed     uint64
	Families []string
	Cursor   int

	results map[string]previewEntry
}

// NewPreviewModel creates a preview model over every configurable family.
func NewPreviewModel(text string, seed uint64) PreviewModel {
	families := make([]string, 0, len(transforms.Families()))
	for _, f := range transforms.Families() {
		if f == transforms.FamilyApplyLambda {
			continue
		}
		families = append(families, f)
	}
	return PreviewModel{
		Text:     text,
		Seed:     seed,
		Families: families,
		results:  make(map[string]previewEntry),
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Families)-1 {
				m.Cursor++
			}
		case "r":
			m.Seed++
			m.results = make(map[string]previewEntry)
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Transform Preview"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  r reseed  q quit"))
	b.WriteString("\n\n")

	for i, family := range m.Families {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + family
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 48)))
	b.WriteString("\n")

	entry := m.Preview(m.Families[m.Cursor])
	b.WriteString("  " + listDimStyle.Render(m.Text) + "\n")
	if entry.err != nil {
		b.WriteString("  " + StyleWarning.Render(entry.err.Error()) + "\n")
	} else {
		b.WriteString("  " + StyleValue.Render(entry.output))
		b.WriteString("  " + StyleNumber.Render(fmt.Sprintf("[%.1f]", entry.score)))
		b.WriteString("\n")
		if entry.config != "" {
			b.WriteString("  " + listDimStyle.Render(entry.config) + "\n")
		}
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  seed %d · [%d/%d]", m.Seed, m.Cursor+1, len(m.Families))))

	return b.String()
}

// Preview applies one family to the sample text, memoizing per family
// until the seed changes.
func (m PreviewModel) Preview(family string) previewEntry {
	if entry, ok := m.results[family]; ok {
		return entry
	}

	entry := m.compute(family)
	m.results[family] = entry
	return entry
}

func (m PreviewModel) compute(family string) previewEntry {
	config := map[string]any{
		augment.KeyAugP: 1.0,
		"seed":          m.Seed,
	}
	switch family {
	case transforms.FamilyInsertText:
		config["pool"] = []string{"lol", "omg"}
	case transforms.FamilyReplaceText:
		config["replacement"] = "redacted"
	case transforms.FamilyReplaceWords:
		config["mapping"] = map[string]string{"quick": "slow", "dog": "cat"}
	}

	tr, err := transforms.FromConfig(family, config)
	if err != nil {
		return previewEntry{err: err}
	}
	desc := describeConfig(tr)

	outputs, records, err := tr.Apply([]string{m.Text})
	if err != nil {
		return previewEntry{err: err}
	}

	score, err := intensity.For(records[0])
	if err != nil {
		return previewEntry{output: outputs[0], config: desc, err: err}
	}
	return previewEntry{output: outputs[0], score: score, config: desc}
}

// describeConfig renders a transformer's effective configuration as sorted
// key=value pairs, or "" when the transformer doesn't expose one.
func describeConfig(tr augment.Transformer) string {
	d, ok := tr.(augment.Describer)
	if !ok {
		return ""
	}
	cfg := d.DescribeConfig()
	parts := make([]string, 0, len(cfg))
	for _, k := range slices.Sorted(maps.Keys(cfg)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, cfg[k]))
	}
	return strings.Join(parts, " ")
}
