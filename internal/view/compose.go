package view

import (
	"cmp"
	"slices"

	"github.com/louisbranch/aeterna-porta/internal/content"
	"github.com/louisbranch/aeterna-porta/internal/platform/branding"
	_ "github.com/louisbranch/aeterna-porta/internal/platform/i18n/catalog"
	"github.com/louisbranch/aeterna-porta/internal/platform/icons"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer formats translated page copy.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// SectionSpec carries the chrome for a card section.
type SectionSpec struct {
	ID       string
	Heading  string
	Subtitle string
	Columns  int
}

// ComposeSection renders items in order and places them under the heading.
func ComposeSection[T any](spec SectionSpec, items []T, render func(T) Card) Section {
	return Section{
		ID:       spec.ID,
		Heading:  spec.Heading,
		Subtitle: spec.Subtitle,
		Columns:  spec.Columns,
		Cards:    renderAll(items, render),
	}
}

// ComposePanel renders items in order under a panel title.
func ComposePanel[T any](title string, icon icons.ID, tone content.Tone, items []T, render func(T) Card) Panel {
	return Panel{
		Title: title,
		Icon:  icon,
		Tone:  tone,
		Cards: renderAll(items, render),
	}
}

func renderAll[T any](items []T, render func(T) Card) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, render(item))
	}
	return cards
}

// ComposeStages builds the protocol section. Stages are shown in ascending
// stage number whatever order they arrive in.
func ComposeStages(loc Localizer, entries []content.StageEntry) Section {
	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b content.StageEntry) int {
		return cmp.Compare(a.Number, b.Number)
	})
	return ComposeSection(SectionSpec{
		ID:       SectionStages,
		Heading:  loc.Sprintf("stages.heading"),
		Subtitle: loc.Sprintf("stages.subtitle"),
		Columns:  3,
	}, ordered, StageCard)
}

// ComposeDiscoveries builds the expected discoveries section.
func ComposeDiscoveries(loc Localizer, entries []content.DiscoveryEntry) Section {
	return ComposeSection(SectionSpec{
		ID:       SectionDiscoveries,
		Heading:  loc.Sprintf("discoveries.heading"),
		Subtitle: loc.Sprintf("discoveries.subtitle"),
		Columns:  2,
	}, entries, DiscoveryCard)
}

// ComposeStatus builds the deployment status section: a files panel, a
// prerequisites panel with the quick-start callout, and the partition note.
func ComposeStatus(loc Localizer, files []content.FileEntry, reqs []content.RequirementEntry, m content.DeploymentManifest) Section {
	filesPanel := ComposePanel(loc.Sprintf("status.files"), icons.FileCode, content.TonePrimary, files, FileCard)
	reqPanel := ComposePanel(loc.Sprintf("status.requirements"), icons.Check, content.ToneAccent, reqs, RequirementCard)
	reqPanel.Callout = &Callout{
		Label: loc.Sprintf("status.quickstart"),
		Code:  m.QuickStartCommand,
	}
	return Section{
		ID:       SectionStatus,
		Heading:  loc.Sprintf("status.heading"),
		Subtitle: loc.Sprintf("status.subtitle", m.Framework),
		Badge:    &Badge{Label: loc.Sprintf("status.badge"), Icon: icons.Check},
		Columns:  2,
		Cards:    []Card{},
		Panels:   []Panel{filesPanel, reqPanel},
		Note: loc.Sprintf("status.footer",
			m.Partition.L, m.Partition.R, m.Partition.Anc, m.Partition.Total(), m.TargetBackend),
	}
}

// ComposeHero builds the hero banner from its hand-authored content.
func ComposeHero(loc Localizer, hero content.HeroContent) Hero {
	out := Hero{
		Badge:   Badge{Label: loc.Sprintf("hero.badge"), Icon: hero.BadgeIcon},
		Title:   branding.AppName,
		Version: branding.Version,
		Tagline: loc.Sprintf("hero.tagline"),
		Summary: loc.Sprintf("hero.summary"),
		Actions: make([]Action, 0, len(hero.Actions)),
		Stats:   make([]Stat, 0, len(hero.Stats)),
	}
	for _, a := range hero.Actions {
		out.Actions = append(out.Actions, Action{Label: loc.Sprintf(a.Label), Icon: a.Icon, Primary: a.Primary})
	}
	for _, s := range hero.Stats {
		out.Stats = append(out.Stats, Stat{Value: s.Value, Label: loc.Sprintf(s.Label), Tone: s.Tone})
	}
	return out
}

// ComposePage stacks the hero and the three card sections in page order.
func ComposePage(title, lang string, hero Hero, stages, discoveries, status Section) Page {
	return Page{
		Title:    title,
		Lang:     lang,
		Hero:     hero,
		Sections: []Section{stages, discoveries, status},
	}
}

// BuildPage composes the landing page from the content catalogs. A nil
// localizer uses the base locale.
func BuildPage(loc Localizer, lang string) Page {
	if loc == nil {
		loc = message.NewPrinter(language.AmericanEnglish)
	}
	if lang == "" {
		lang = language.AmericanEnglish.String()
	}
	return ComposePage(
		branding.PageTitle(),
		lang,
		ComposeHero(loc, content.Hero()),
		ComposeStages(loc, content.Stages()),
		ComposeDiscoveries(loc, content.Discoveries()),
		ComposeStatus(loc, content.Files(), content.Requirements(), content.Manifest()),
	)
}
