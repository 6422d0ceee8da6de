// Package stack expands a configuration into the service graph that
// gets deployed: which containers exist, how they are parameterized,
// and how they are wired together. Rules run in a fixed order where
// every rule that creates a service precedes any rule that mutates it
// by name; the two overlays therefore always run last.
package stack

import (
	"fmt"

	"github.com/UpstateNate/AstroMediaServer/internal/config"
	"github.com/UpstateNate/AstroMediaServer/internal/model"
)

// rule is one stage of the composition pipeline. Stages run strictly
// in sequence against the same graph; the first error aborts the run.
type rule struct {
	name  string
	apply func(*model.Graph, *config.Config) error
}

func pipeline() []rule {
	return []rule{
		{"media-server", addMediaServer},
		{"arr-suite", addArrSuite},
		{"downloaders", addDownloaders},
		{"request-manager", addRequestManager},
		{"gateway", addGateway},
		{"dashboard", addDashboard},
		{"watchtower", addWatchtower},
		{"extras", addExtras},
		{"vpn-tunnel", applyTunnelOverlay},
		{"hardware-acceleration", applyHardwareOverlay},
	}
}

// Build expands cfg into a validated service graph. Configuration
// errors are detected before any service is created; a validation
// failure afterwards means a rule is buggy and is fatal.
func Build(cfg *config.Config) (*model.Graph, error) {
	if errs := CheckConfig(cfg); len(errs) > 0 {
		first := errs[0]
		return nil, &ConfigError{Field: first.Field, Value: first.Value, Hint: first.Suggestion}
	}

	graph := model.NewGraph()
	for _, r := range pipeline() {
		if err := r.apply(graph, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", r.name, err)
		}
	}

	if err := Validate(graph); err != nil {
		return nil, err
	}

	return graph, nil
}
