package env

import (
	"os"

	"github.com/ekisa-team/voxkit/internal/envvar"
)

// Environment represents the runtime environment.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// FromEnv resolves the environment from VOXKIT_ENV.
// Anything other than "production" is treated as development.
func FromEnv() Environment {
	if os.Getenv(envvar.VoxkitEnv) == string(Production) {
		return Production
	}

	return Development
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}
