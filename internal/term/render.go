// Package term draws the page tree as bordered terminal cards.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/louisbranch/aeterna-porta/internal/content"
	"github.com/louisbranch/aeterna-porta/internal/platform/icons"
	"github.com/louisbranch/aeterna-porta/internal/view"
)

// DefaultWidth is the column budget when none is given.
const DefaultWidth = 80

const minWidth = 40

// Options tune terminal rendering.
type Options struct {
	// Width is the total column budget. Values below 40 are raised to 40.
	Width int
	Theme *Theme
}

// Render writes page to w.
func Render(w io.Writer, page view.Page, opts Options) error {
	if w == nil {
		return fmt.Errorf("writer is required")
	}
	theme := DefaultTheme(lipgloss.NewRenderer(w))
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	r := renderer{theme: theme, width: width}

	blocks := []string{r.hero(page.Hero)}
	for _, section := range page.Sections {
		blocks = append(blocks, r.section(section))
	}
	if _, err := io.WriteString(w, strings.Join(blocks, "\n\n")+"\n"); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

type renderer struct {
	theme Theme
	width int
}

func (r renderer) wrap(s string) string {
	return lipgloss.NewStyle().Width(r.width).Render(s)
}

func (r renderer) hero(h view.Hero) string {
	lines := []string{
		r.theme.Badge.Render(icons.Glyph(h.Badge.Icon) + " " + h.Badge.Label),
		r.theme.Title.Render(h.Title) + " " + r.theme.Version.Render(h.Version),
		r.theme.Tone(content.ToneAccent).Render(h.Tagline),
		r.wrap(r.theme.Muted.Render(h.Summary)),
	}

	buttons := make([]string, 0, len(h.Actions))
	for _, a := range h.Actions {
		style := r.theme.Button
		if a.Primary {
			style = r.theme.Primary
		}
		buttons = append(buttons, style.Render(icons.Glyph(a.Icon)+" "+a.Label))
	}
	if len(buttons) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}

	if len(h.Stats) > 0 {
		colWidth := r.width / len(h.Stats)
		stats := make([]string, 0, len(h.Stats))
		for _, s := range h.Stats {
			cell := r.theme.Tone(s.Tone).Bold(true).Render(s.Value) + "\n" + r.theme.Muted.Render(s.Label)
			stats = append(stats, r.theme.Metric.Width(colWidth).Render(cell))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, stats...))
	}
	return strings.Join(lines, "\n")
}

func (r renderer) section(s view.Section) string {
	var lines []string
	if s.Badge != nil {
		lines = append(lines, r.theme.Badge.Render(icons.Glyph(s.Badge.Icon)+" "+s.Badge.Label))
	}
	lines = append(lines, r.theme.Heading.Render(s.Heading))
	if s.Subtitle != "" {
		lines = append(lines, r.wrap(r.theme.Subtitle.Render(s.Subtitle)))
	}
	for _, c := range s.Cards {
		lines = append(lines, r.card(c))
	}
	for _, p := range s.Panels {
		lines = append(lines, r.panel(p))
	}
	if s.Note != "" {
		lines = append(lines, r.wrap(r.theme.Muted.Render(s.Note)))
	}
	return strings.Join(lines, "\n")
}

// inner is the text width available inside a bordered, padded box.
func (r renderer) inner() int {
	return r.width - 4
}

func (r renderer) card(c view.Card) string {
	if c.Layout == view.LayoutInline {
		return r.inline(c)
	}
	tone := r.theme.Tone(c.Tone)
	header := tone.Render(icons.Glyph(c.Icon)) + " " + r.theme.Title.Render(c.Title)
	if c.Kind == view.KindStage {
		header = tone.Render(c.Badge+" "+icons.Glyph(c.Icon)) + " " + r.theme.Title.Render(c.Title)
	}
	lines := []string{header}
	if c.Subtitle != "" {
		lines = append(lines, r.theme.Subtitle.Render(c.Subtitle))
	}
	if c.Formula != "" {
		lines = append(lines, r.theme.Code.Render(c.Formula))
	}
	if c.Kind == view.KindDiscovery && c.Badge != "" {
		lines = append(lines, r.theme.Badge.Render("["+c.Badge+"]"))
	}
	if c.Description != "" {
		lines = append(lines, lipgloss.NewStyle().Width(r.inner()).Render(c.Description))
	}
	switch c.Layout {
	case view.LayoutMetrics:
		if grid := r.metrics(c.Rows); grid != "" {
			lines = append(lines, grid)
		}
	default:
		lines = append(lines, r.rows(c.Rows)...)
	}
	return r.theme.Card.Width(r.width - 2).Render(strings.Join(lines, "\n"))
}

func (r renderer) rows(rows []view.Row) []string {
	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.Label))
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		label := r.theme.Muted.Width(labelWidth).Render(row.Label)
		out = append(out, label+"  "+r.theme.Code.Render(row.Value))
	}
	return out
}

func (r renderer) metrics(rows []view.Row) string {
	if len(rows) == 0 {
		return ""
	}
	colWidth := r.inner() / view.MetricColumns
	var gridRows []string
	for start := 0; start < len(rows); start += view.MetricColumns {
		end := min(start+view.MetricColumns, len(rows))
		cells := make([]string, 0, end-start)
		for _, row := range rows[start:end] {
			cell := r.theme.Title.Render(row.Value) + "\n" + r.theme.Muted.Render(row.Label)
			cells = append(cells, r.theme.Metric.Width(colWidth).Render(cell))
		}
		gridRows = append(gridRows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(gridRows, "\n")
}

func (r renderer) inline(c view.Card) string {
	line := r.theme.Tone(c.Tone).Render(icons.Glyph(c.Icon)) + " "
	if c.Kind == view.KindFile {
		line += r.theme.Code.Render(c.Title)
	} else {
		line += c.Title
	}
	if c.Description != "" {
		line += "  " + r.theme.Muted.Render(c.Description)
	}
	return line
}

func (r renderer) panel(p view.Panel) string {
	lines := []string{r.theme.Tone(p.Tone).Render(icons.Glyph(p.Icon)) + " " + r.theme.Title.Render(p.Title)}
	for _, c := range p.Cards {
		lines = append(lines, r.inline(c))
	}
	if p.Callout != nil {
		lines = append(lines, "", r.theme.Muted.Render(p.Callout.Label), r.theme.Code.Render("$ "+p.Callout.Code))
	}
	return r.theme.Panel.Width(r.width - 2).Render(strings.Join(lines, "\n"))
}
