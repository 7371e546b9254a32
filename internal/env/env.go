package env

import (
	"os"
	"strings"

	"github.com/ekisa-team/campus/internal/envvar"
)

// Environment is the deployment environment the binary runs in.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// FromEnv reads the environment from CAMPUS_ENV, defaulting to Development.
func FromEnv() Environment {
	return Parse(os.Getenv(envvar.CampusEnv))
}

// Parse maps a raw value to an Environment. Unknown values fall back to
// Development.
func Parse(raw string) Environment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "prod", "production":
		return Production
	default:
		return Development
	}
}

// IsProduction reports whether e is Production.
func (e Environment) IsProduction() bool {
	return e == Production
}
