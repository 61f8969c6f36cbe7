// Package branding holds product naming shared by every rendering surface.
package branding

// AppName is the product name used in titles and terminal headers.
const AppName = "AETERNA-PORTA"

// Version is the experiment revision shown next to the product name.
const Version = "v2.0"

// Experiment is the long-form experiment name.
const Experiment = "Quantum Zeno Stabilized Wormhole Experiment"

// PageTitle formats the document title for the landing page.
func PageTitle() string {
	return AppName + " " + Version
}
