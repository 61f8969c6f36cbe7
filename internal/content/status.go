package content

import "github.com/louisbranch/aeterna-porta/internal/platform/icons"

var files = []FileEntry{
	{Name: "deploy_aeterna_porta_v2_ibm_nighthawk.py", Purpose: "Main deployment script", Icon: icons.FileCode},
	{Name: "QUICK_DEPLOY.sh", Purpose: "Interactive deployment wrapper", Icon: icons.Terminal},
	{Name: "deploy_aeterna_porta_v2_SWEEP.py", Purpose: "Parameter sweep deployment", Icon: icons.FileCode},
	{Name: "DEPLOYMENT_STATUS.md", Purpose: "System verification summary", Icon: icons.Book},
}

var requirements = []RequirementEntry{
	{Text: "IBM Quantum Account with valid token"},
	{Text: "ibm_fez backend access (156 qubits)"},
	{Text: "Python 3.10+ with qiskit-ibm-runtime"},
	{Text: "Network connectivity for job submission"},
}

// Files returns the project artifacts listed in the status section.
func Files() []FileEntry {
	out := make([]FileEntry, len(files))
	copy(out, files)
	return out
}

// Requirements returns the deployment prerequisites.
func Requirements() []RequirementEntry {
	out := make([]RequirementEntry, len(requirements))
	copy(out, requirements)
	return out
}
