package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/louisbranch/aeterna-porta/internal/content"
	"github.com/louisbranch/aeterna-porta/internal/view"
)

func renderPlain(t *testing.T, page view.Page, width int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, page, Options{Width: width}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return ansi.Strip(buf.String())
}

func TestRenderIncludesEverySectionInOrder(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, view.BuildPage(nil, ""), 200)
	markers := []string{
		"AETERNA-PORTA v2.0",
		"TFD Preparation",
		"Quantum Zeno Monitoring",
		"Full Readout",
		"Negative Shapiro Delay",
		"Negentropic Efficiency",
		"deploy_aeterna_porta_v2_ibm_nighthawk.py",
		"~/.osiris/quantum/QUICK_DEPLOY.sh",
		"Total: 120 qubits",
	}
	last := -1
	for _, marker := range markers {
		idx := strings.Index(out, marker)
		if idx < 0 {
			t.Fatalf("output missing %q:\n%s", marker, out)
		}
		if idx < last {
			t.Fatalf("%q rendered out of order", marker)
		}
		last = idx
	}
}

func TestRenderStageRows(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, view.BuildPage(nil, ""), 200)
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Gates") && strings.Contains(line, "H → RY(θ_lock) → CX") {
			return
		}
	}
	t.Fatalf("no line pairs Gates with its value:\n%s", out)
}

func TestRenderDiscoveryMetrics(t *testing.T) {
	t.Parallel()

	entry := content.Discoveries()[0]
	page := view.Page{Sections: []view.Section{{
		ID:      view.SectionDiscoveries,
		Heading: "Discoveries",
		Cards:   []view.Card{view.DiscoveryCard(entry)},
	}}}
	out := renderPlain(t, page, 120)
	for _, metric := range entry.Metrics {
		if !strings.Contains(out, metric.Value) || !strings.Contains(out, metric.Label) {
			t.Fatalf("metric %q/%q missing:\n%s", metric.Label, metric.Value, out)
		}
	}
	if !strings.Contains(out, entry.Formula) {
		t.Fatalf("formula missing")
	}
}

func TestRenderEmptyCardRows(t *testing.T) {
	t.Parallel()

	page := view.Page{Sections: []view.Section{{
		Heading: "Empty",
		Cards:   []view.Card{view.StageCard(content.StageEntry{Number: 1, Title: "Lonely"})},
	}}}
	out := renderPlain(t, page, 60)
	if !strings.Contains(out, "Lonely") {
		t.Fatalf("card title missing:\n%s", out)
	}
}

func TestRenderClampsNarrowWidth(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, view.BuildPage(nil, ""), 5)
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 120 {
			t.Fatalf("line width %d exceeds clamp: %q", w, line)
		}
	}
}

func TestRenderRequiresWriter(t *testing.T) {
	t.Parallel()

	if err := Render(nil, view.Page{}, Options{}); err == nil {
		t.Fatal("expected writer error")
	}
}
