// Package deployment describes which build and branch this process is serving.
package deployment

// AppVersion is the application version reported by /version and the status page.
const AppVersion = "1.0.0"

// ProductionBranch is the only branch that is served as production.
const ProductionBranch = "main"

// DefaultBranch is reported when BRANCH_NAME is not set.
const DefaultBranch = "unknown"

// Environment is the deployment environment derived from the branch name.
type Environment string

const (
	Production Environment = "production"
	Staging    Environment = "staging"
)

// String returns the lower-case form used in JSON payloads.
func (e Environment) String() string { return string(e) }

// Label returns the capitalised form shown to humans.
func (e Environment) Label() string {
	if e == Production {
		return "Production"
	}
	return "Staging"
}

// EnvironmentFor maps a branch to its environment. Everything that is not
// the production branch, including the default, is staging.
func EnvironmentFor(branch string) Environment {
	if branch == ProductionBranch {
		return Production
	}
	return Staging
}

// Identity is the immutable deployment identity of the running process.
type Identity struct {
	Branch string
}

// NewIdentity returns an Identity for branch, falling back to DefaultBranch.
func NewIdentity(branch string) Identity {
	if branch == "" {
		branch = DefaultBranch
	}
	return Identity{Branch: branch}
}

// Environment is recomputed on every call.
func (i Identity) Environment() Environment { return EnvironmentFor(i.Branch) }

func (i Identity) IsProduction() bool { return i.Environment() == Production }

func (i Identity) Version() string { return AppVersion }
