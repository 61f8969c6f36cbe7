package icons

import (
	"fmt"
	"strings"
)

// ID names an icon independent of any rendering surface.
type ID string

// Icon identifiers referenced by page content.
const (
	Link     ID = "link"
	Eye      ID = "eye"
	Radio    ID = "radio"
	CPU      ID = "cpu"
	BarChart ID = "bar-chart"
	Clock    ID = "clock"
	Grid     ID = "grid"
	TwoWay   ID = "two-way"
	Sparkles ID = "sparkles"
	Check    ID = "check"
	FileCode ID = "file-code"
	Terminal ID = "terminal"
	Book     ID = "book"
	Atom     ID = "atom"
	Zap      ID = "zap"
	Activity ID = "activity"
	Generic  ID = "generic"
)

// Definition describes a catalog icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
	Glyph       string
}

var catalog = []Definition{
	{ID: Link, Name: "Link", Description: "Bridges and entangled pairs.", Glyph: "⛓"},
	{ID: Eye, Name: "Eye", Description: "Monitoring and observation.", Glyph: "◉"},
	{ID: Radio, Name: "Radio", Description: "Periodic drives and signals.", Glyph: "≋"},
	{ID: CPU, Name: "CPU", Description: "Classical control and feedback.", Glyph: "▣"},
	{ID: BarChart, Name: "Bar chart", Description: "Readout and measurement.", Glyph: "▥"},
	{ID: Clock, Name: "Clock", Description: "Timing and delay results.", Glyph: "◷"},
	{ID: Grid, Name: "Grid", Description: "Spatial and area results.", Glyph: "▦"},
	{ID: TwoWay, Name: "Two-way arrow", Description: "Flow and reciprocity results.", Glyph: "⇄"},
	{ID: Sparkles, Name: "Sparkles", Description: "Efficiency and highlight results.", Glyph: "✦"},
	{ID: Check, Name: "Check", Description: "Satisfied prerequisites and ready states.", Glyph: "✔"},
	{ID: FileCode, Name: "Source file", Description: "Scripts and source artifacts.", Glyph: "❮❯"},
	{ID: Terminal, Name: "Terminal", Description: "Shell wrappers and commands.", Glyph: "❯_"},
	{ID: Book, Name: "Book", Description: "Documentation artifacts.", Glyph: "❐"},
	{ID: Atom, Name: "Atom", Description: "Circuit views.", Glyph: "⚛"},
	{ID: Zap, Name: "Zap", Description: "Deployment actions.", Glyph: "⚡"},
	{ID: Activity, Name: "Activity", Description: "Readiness status.", Glyph: "∿"},
	{ID: Generic, Name: "Generic", Description: "Default icon for uncategorized entries.", Glyph: "•"},
}

var byID = indexCatalog(catalog)

func indexCatalog(defs []Definition) map[ID]Definition {
	out := make(map[ID]Definition, len(defs))
	for _, def := range defs {
		out[def.ID] = def
	}
	return out
}

// Catalog returns a copy of the icon catalog in declaration order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	def, ok := byID[id]
	return def, ok
}

// Glyph returns the terminal glyph for id, falling back to the generic glyph.
func Glyph(id ID) string {
	if def, ok := byID[id]; ok {
		return def.Glyph
	}
	return byID[Generic].Glyph
}

// CatalogMarkdown renders the catalog as a Markdown table.
func CatalogMarkdown() string {
	var b strings.Builder
	b.WriteString("| ID | Name | Glyph | Description |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, def := range catalog {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n", def.ID, def.Name, def.Glyph, def.Description)
	}
	return b.String()
}
