package term

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/louisbranch/aeterna-porta/internal/content"
)

// Theme holds the styles used to draw the page.
type Theme struct {
	Title    lipgloss.Style
	Version  lipgloss.Style
	Heading  lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Badge    lipgloss.Style
	Code     lipgloss.Style
	Card     lipgloss.Style
	Panel    lipgloss.Style
	Metric   lipgloss.Style
	Button   lipgloss.Style
	Primary  lipgloss.Style
	Tones    map[content.Tone]lipgloss.Style
}

// DefaultTheme builds the page theme against r so color output follows the
// destination's capabilities.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	primary := lipgloss.Color("45")
	accent := lipgloss.Color("141")
	secondary := lipgloss.Color("78")
	muted := lipgloss.Color("245")
	return Theme{
		Title:    r.NewStyle().Bold(true),
		Version:  r.NewStyle().Bold(true).Foreground(primary),
		Heading:  r.NewStyle().Bold(true).Underline(true),
		Subtitle: r.NewStyle().Faint(true),
		Muted:    r.NewStyle().Foreground(muted),
		Badge:    r.NewStyle().Foreground(secondary),
		Code:     r.NewStyle().Foreground(primary),
		Card: r.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Panel: r.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		Metric: r.NewStyle().Align(lipgloss.Center),
		Button: r.NewStyle().Padding(0, 1).BorderStyle(lipgloss.RoundedBorder()),
		Primary: r.NewStyle().Padding(0, 1).BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primary).Bold(true),
		Tones: map[content.Tone]lipgloss.Style{
			content.TonePrimary:   r.NewStyle().Foreground(primary),
			content.ToneAccent:    r.NewStyle().Foreground(accent),
			content.ToneSecondary: r.NewStyle().Foreground(secondary),
			content.ToneMuted:     r.NewStyle().Foreground(muted),
		},
	}
}

// Tone returns the style for tone, or an unstyled one when unknown.
func (t Theme) Tone(tone content.Tone) lipgloss.Style {
	if s, ok := t.Tones[tone]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
