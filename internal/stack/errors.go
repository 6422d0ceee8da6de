package stack

import (
	"fmt"

	"github.com/UpstateNate/AstroMediaServer/internal/model"
)

// ConfigError reports a configuration value outside the catalog's
// known set. It is raised before any service is built.
type ConfigError struct {
	Field string
	Value string
	Hint  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// CompositionError reports a graph invariant violation found by the
// validator. It always indicates a bug in rule logic, never bad user
// input, and aborts the run.
type CompositionError struct {
	Service model.ServiceID
	Reason  string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("service %s: %s", e.Service, e.Reason)
}

// ValidationError reports a config problem with a suggested fix, for
// the validate command's per-field output.
type ValidationError struct {
	Field      string
	Value      string
	Message    string
	Suggestion string
}
