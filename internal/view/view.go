// Package view projects content catalogs into a surface-neutral page tree.
//
// Card renderers, section composers and the page composer are pure: they
// read only their arguments, never fail, and return freshly allocated
// values. The HTML templates and the terminal renderer both draw from the
// same tree.
package view

import (
	"github.com/louisbranch/aeterna-porta/internal/content"
	"github.com/louisbranch/aeterna-porta/internal/platform/icons"
)

// CardKind names the catalog a card was rendered from.
type CardKind string

// Card kinds.
const (
	KindStage       CardKind = "stage"
	KindDiscovery   CardKind = "discovery"
	KindFile        CardKind = "file"
	KindRequirement CardKind = "requirement"
)

// Layout names how a card arranges its rows.
type Layout string

// Card layouts.
const (
	// LayoutRows lists rows vertically, label left and value right.
	LayoutRows Layout = "rows"
	// LayoutMetrics places rows in a three-column grid, value above label.
	LayoutMetrics Layout = "metrics"
	// LayoutInline is a single horizontal row with no detail region.
	LayoutInline Layout = "inline"
)

// MetricColumns is the column count of the metrics grid.
const MetricColumns = 3

// Section identifiers in page order.
const (
	SectionHero        = "hero"
	SectionStages      = "stages"
	SectionDiscoveries = "discoveries"
	SectionStatus      = "status"
)

// Row is one labeled value inside a card.
type Row struct {
	Label string
	Value string
}

// Card is the visual unit for one catalog entry.
type Card struct {
	Kind        CardKind
	Key         string
	Badge       string
	Icon        icons.ID
	Tone        content.Tone
	Title       string
	Subtitle    string
	Formula     string
	Description string
	Layout      Layout
	// Rows is never nil; an entry without pairs yields an empty region.
	Rows []Row
}

// Badge is a small labeled marker with an optional icon.
type Badge struct {
	Label string
	Icon  icons.ID
}

// Callout is a highlighted command snippet.
type Callout struct {
	Label string
	Code  string
}

// Panel groups cards under a title inside a section.
type Panel struct {
	Title   string
	Icon    icons.ID
	Tone    content.Tone
	Cards   []Card
	Callout *Callout
}

// Section is a heading, subtitle and grid of cards or panels.
type Section struct {
	ID       string
	Heading  string
	Subtitle string
	Badge    *Badge
	// Columns is the widest grid column count for the section.
	Columns int
	Cards   []Card
	Panels  []Panel
	Note    string
}

// Stat is a hero call-out.
type Stat struct {
	Value string
	Label string
	Tone  content.Tone
}

// Action is a decorative hero button.
type Action struct {
	Label   string
	Icon    icons.ID
	Primary bool
}

// Hero is the introductory banner.
type Hero struct {
	Badge   Badge
	Title   string
	Version string
	Tagline string
	Summary string
	Actions []Action
	Stats   []Stat
}

// Page is the complete landing page.
type Page struct {
	Title    string
	Lang     string
	Hero     Hero
	Sections []Section
}

// Section returns the section with id.
func (p Page) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
