package content

import "github.com/louisbranch/aeterna-porta/internal/platform/icons"

// HeroStat is one summary call-out under the hero banner. Label is a
// message key in the page catalog.
type HeroStat struct {
	Value string
	Label string
	Tone  Tone
}

// HeroAction is a decorative call-to-action. Label is a message key.
type HeroAction struct {
	Label   string
	Icon    icons.ID
	Primary bool
}

// HeroContent is the hand-authored copy of the hero banner that is not
// translated.
type HeroContent struct {
	BadgeIcon icons.ID
	Actions   []HeroAction
	Stats     []HeroStat
}

// Hero returns the hero banner content.
func Hero() HeroContent {
	return HeroContent{
		BadgeIcon: icons.Activity,
		Actions: []HeroAction{
			{Label: "hero.action.deploy", Icon: icons.Zap, Primary: true},
			{Label: "hero.action.circuit", Icon: icons.Atom},
		},
		Stats: []HeroStat{
			{Value: "120", Label: "hero.stat.qubits", Tone: TonePrimary},
			{Value: "100K", Label: "hero.stat.shots", Tone: ToneAccent},
			{Value: "51.843°", Label: "hero.stat.angle", Tone: ToneSecondary},
		},
	}
}
