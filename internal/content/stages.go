package content

import "github.com/louisbranch/aeterna-porta/internal/platform/icons"

var stages = []StageEntry{
	{
		Number:      1,
		Title:       "TFD Preparation",
		Subtitle:    "ER Bridge",
		Icon:        icons.Link,
		Description: "Creates Einstein-Rosen bridge using Thermofield Double state",
		Details: []Pair{
			{Label: "Gates", Value: "H → RY(θ_lock) → CX"},
			{Label: "Qubits", Value: "50 entangled pairs (L ↔ R)"},
			{Label: "Constant", Value: "θ_lock = 51.843°"},
		},
	},
	{
		Number:      2,
		Title:       "Quantum Zeno Monitoring",
		Subtitle:    "State Freeze",
		Icon:        icons.Eye,
		Description: "Stroboscopic weak measurements freeze the wormhole state",
		Details: []Pair{
			{Label: "Rate", Value: "κ = 1 MHz"},
			{Label: "Cycles", Value: "100 measurement cycles"},
			{Label: "Gates", Value: "CRY + MEASURE + RESET"},
		},
	},
	{
		Number:      3,
		Title:       "Floquet Drive",
		Subtitle:    "Pilot-Wave Injection",
		Icon:        icons.Radio,
		Description: "Periodic modulation keeps the wormhole traversable",
		Details: []Pair{
			{Label: "Frequency", Value: "1 GHz microwave"},
			{Label: "Amplitude", Value: "0.5 rad"},
			{Label: "Throat", Value: "10 qubits at L-R boundary"},
		},
	},
	{
		Number:      4,
		Title:       "Dynamic Feed-Forward",
		Subtitle:    "Real-Time Correction",
		Icon:        icons.CPU,
		Description: "Classical corrections based on mid-circuit measurements",
		Details: []Pair{
			{Label: "Latency", Value: "<300ns"},
			{Label: "Gates", Value: "X (bit flip) + RZ(θ_lock)"},
			{Label: "Mode", Value: "Real-time feedback"},
		},
	},
	{
		Number:      5,
		Title:       "Full Readout",
		Subtitle:    "Measurement",
		Icon:        icons.BarChart,
		Description: "Final measurement on all 120 qubits",
		Details: []Pair{
			{Label: "Shots", Value: "100,000"},
			{Label: "Precision", Value: "High statistics"},
			{Label: "Output", Value: "All 120 qubits"},
		},
	},
}

// Stages returns the protocol stages in ascending stage order.
func Stages() []StageEntry {
	out := make([]StageEntry, len(stages))
	for i, stage := range stages {
		stage.Details = clonePairs(stage.Details)
		out[i] = stage
	}
	return out
}
