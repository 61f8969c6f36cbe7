package content

import (
	"strconv"

	"github.com/louisbranch/aeterna-porta/internal/platform/icons"
)

// Tone is a display-color tag resolved by the rendering surface.
type Tone string

// Tones used by page content.
const (
	TonePrimary   Tone = "primary"
	ToneAccent    Tone = "accent"
	ToneSecondary Tone = "secondary"
	ToneMuted     Tone = "muted"
)

// Pair is one labeled display value.
type Pair struct {
	Label string
	Value string
}

// StageEntry is one step of the five-stage protocol.
type StageEntry struct {
	Number      int
	Title       string
	Subtitle    string
	Description string
	Icon        icons.ID
	Details     []Pair
}

// Key identifies the stage within its catalog.
func (e StageEntry) Key() string { return strconv.Itoa(e.Number) }

// DiscoveryEntry is one claimed experimental outcome.
type DiscoveryEntry struct {
	Title        string
	Formula      string
	Description  string
	Icon         icons.ID
	Metrics      []Pair
	Significance string
	Tone         Tone
}

// Key identifies the discovery within its catalog.
func (e DiscoveryEntry) Key() string { return e.Title }

// FileEntry references one project artifact.
type FileEntry struct {
	Name    string
	Purpose string
	Icon    icons.ID
}

// Key identifies the file within its catalog.
func (e FileEntry) Key() string { return e.Name }

// RequirementEntry is one deployment prerequisite.
type RequirementEntry struct {
	Text string
}

// Key identifies the requirement within its catalog.
func (e RequirementEntry) Key() string { return e.Text }

func clonePairs(pairs []Pair) []Pair {
	out := make([]Pair, len(pairs))
	copy(out, pairs)
	return out
}
