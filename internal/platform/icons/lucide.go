package icons

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[ID]string{
	Link:     "link-2",
	Eye:      "eye",
	Radio:    "radio",
	CPU:      "cpu",
	BarChart: "chart-column",
	Clock:    "clock",
	Grid:     "grid-3x3",
	TwoWay:   "arrow-left-right",
	Sparkles: "sparkles",
	Check:    "circle-check",
	FileCode: "file-code",
	Terminal: "terminal",
	Book:     "book-open",
	Atom:     "atom",
	Zap:      "zap",
	Activity: "activity",
	Generic:  "sparkle",
}

// LucideName returns the Lucide icon name for an icon identifier.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the icon ID is unknown.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return "sparkle"
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup for every cataloged icon.
func LucideSprite() string {
	return lucideSprite
}
