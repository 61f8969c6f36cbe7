package content

// Partition sizes the left, right and ancilla qubit registers.
type Partition struct {
	L   int `json:"L" yaml:"L"`
	R   int `json:"R" yaml:"R"`
	Anc int `json:"Anc" yaml:"Anc"`
}

// Total is the number of qubits across all registers.
func (p Partition) Total() int {
	return p.L + p.R + p.Anc
}

// Physics holds the experiment constants as published in the manifest.
type Physics struct {
	LambdaPhi    float64 `json:"LAMBDA_PHI" yaml:"LAMBDA_PHI"`
	ThetaLock    float64 `json:"THETA_LOCK" yaml:"THETA_LOCK"`
	PhiThreshold float64 `json:"PHI_THRESHOLD" yaml:"PHI_THRESHOLD"`
	ChiPC        float64 `json:"CHI_PC" yaml:"CHI_PC"`
}

// DeploymentManifest is the static ignition configuration behind the
// deployment status section.
type DeploymentManifest struct {
	ManifestVersion   string    `json:"manifest_version" yaml:"manifest_version"`
	TargetBackend     string    `json:"target_backend" yaml:"target_backend"`
	Shots             int       `json:"shots" yaml:"shots"`
	Partition         Partition `json:"partition" yaml:"partition"`
	Physics           Physics   `json:"physics" yaml:"physics"`
	Framework         string    `json:"framework" yaml:"framework"`
	QuickStartCommand string    `json:"quick_start_command" yaml:"quick_start_command"`
}

var manifest = DeploymentManifest{
	ManifestVersion: "aeterna-porta-ignition/v2.1.0",
	TargetBackend:   "ibm_fez",
	Shots:           100000,
	Partition:       Partition{L: 50, R: 50, Anc: 20},
	Physics: Physics{
		LambdaPhi:    2.176435e-08,
		ThetaLock:    51.843,
		PhiThreshold: 0.7734,
		ChiPC:        0.946,
	},
	Framework:         "dna::}{::lang v51.843",
	QuickStartCommand: "~/.osiris/quantum/QUICK_DEPLOY.sh",
}

// Manifest returns the deployment manifest.
func Manifest() DeploymentManifest {
	return manifest
}
