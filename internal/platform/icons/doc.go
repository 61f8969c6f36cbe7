// Package icons defines the icon identifiers used by page content.
//
// Content refers to icons by stable identifier only. Each surface picks its
// own presentation: the HTML surface uses Lucide sprite symbols and the
// terminal surface uses a single glyph.
package icons
