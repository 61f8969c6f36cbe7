package view

import (
	"strconv"

	"github.com/louisbranch/aeterna-porta/internal/content"
	"github.com/louisbranch/aeterna-porta/internal/platform/icons"
)

// StageCard renders a protocol stage: number badge, icon, title, subtitle,
// description, then one row per detail.
func StageCard(entry content.StageEntry) Card {
	return Card{
		Kind:        KindStage,
		Key:         entry.Key(),
		Badge:       strconv.Itoa(entry.Number),
		Icon:        entry.Icon,
		Tone:        content.TonePrimary,
		Title:       entry.Title,
		Subtitle:    entry.Subtitle,
		Description: entry.Description,
		Layout:      LayoutRows,
		Rows:        rows(entry.Details),
	}
}

// DiscoveryCard renders an expected discovery: icon, title, formula,
// significance badge, description, then the metric grid.
func DiscoveryCard(entry content.DiscoveryEntry) Card {
	return Card{
		Kind:        KindDiscovery,
		Key:         entry.Key(),
		Badge:       entry.Significance,
		Icon:        entry.Icon,
		Tone:        entry.Tone,
		Title:       entry.Title,
		Formula:     entry.Formula,
		Description: entry.Description,
		Layout:      LayoutMetrics,
		Rows:        rows(entry.Metrics),
	}
}

// FileCard renders a project file as icon, monospace name and purpose.
func FileCard(entry content.FileEntry) Card {
	return Card{
		Kind:        KindFile,
		Key:         entry.Key(),
		Icon:        entry.Icon,
		Tone:        content.ToneMuted,
		Title:       entry.Name,
		Description: entry.Purpose,
		Layout:      LayoutInline,
		Rows:        []Row{},
	}
}

// RequirementCard renders a prerequisite as a checkmark and its text.
func RequirementCard(entry content.RequirementEntry) Card {
	return Card{
		Kind:   KindRequirement,
		Key:    entry.Key(),
		Icon:   icons.Check,
		Tone:   content.ToneAccent,
		Title:  entry.Text,
		Layout: LayoutInline,
		Rows:   []Row{},
	}
}

func rows(pairs []content.Pair) []Row {
	out := make([]Row, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Row{Label: p.Label, Value: p.Value})
	}
	return out
}
