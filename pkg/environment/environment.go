package environment

import (
	"strings"

	"github.com/dmitrymomot/enumkit/pkg/enum"
)

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Staging for staging environment.
	Staging Environment = "staging"
	// Production for production environment.
	Production Environment = "production"
)

// Metadata fields attached to every environment.
const (
	FieldLogFormat = "log_format"
	FieldLogLevel  = "log_level"
)

// Environments is the declared set of supported environments. It is
// registered in enum.Default, so stores can sync overrides of the logging
// defaults like any other enumeration.
var Environments = enum.MustNew("environment",
	[]enum.Member[Environment]{
		{Name: "DEVELOPMENT", Value: Development},
		{Name: "STAGING", Value: Staging},
		{Name: "PRODUCTION", Value: Production},
	},
	enum.WithLabels(map[Environment]string{
		Development: "Development",
		Staging:     "Staging",
		Production:  "Production",
	}),
	enum.WithData(map[Environment]enum.Data{
		Development: {FieldLogFormat: "text", FieldLogLevel: "debug"},
		Staging:     {FieldLogFormat: "json", FieldLogLevel: "info"},
		Production:  {FieldLogFormat: "json", FieldLogLevel: "info"},
	}),
	enum.WithStrictData[Environment](),
	enum.WithRegistry[Environment](enum.Default),
)

var aliases = map[string]Environment{
	"dev":   Development,
	"stage": Staging,
	"prod":  Production,
}

// Parse resolves s (case-insensitive, aliases allowed) to an Environment.
func Parse(s string) (Environment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if env, ok := aliases[s]; ok {
		return env, nil
	}
	v, err := Environments.New(Environment(s))
	if err != nil {
		return "", err
	}
	return v.Value(), nil
}

// String implements fmt.Stringer.
func (e Environment) String() string { return string(e) }

// Valid reports whether e is a declared environment.
func (e Environment) Valid() bool {
	return Environments.IsValid(e)
}

// Data returns the metadata record of e, nil for undeclared values.
func (e Environment) Data() enum.Data {
	v, err := Environments.New(e)
	if err != nil {
		return nil
	}
	return v.Data()
}
