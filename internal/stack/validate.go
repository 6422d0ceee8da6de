package stack

import (
	"fmt"

	"github.com/UpstateNate/AstroMediaServer/internal/model"
)

// Validate checks the structural invariants of a composed graph, in
// order: every reference resolves, no two services publish the same
// host port, and no service both publishes ports and joins another
// service's network namespace. The first violation aborts; any hit is
// a defect in rule logic, not user input.
func Validate(g *model.Graph) error {
	if err := checkReferences(g); err != nil {
		return err
	}
	if err := checkPortCollisions(g); err != nil {
		return err
	}
	return checkNetworkModeExclusivity(g)
}

func checkReferences(g *model.Graph) error {
	for _, spec := range g.Services() {
		if ref, ok := spec.NetworkModeRef(); ok && !g.Has(ref) {
			return &CompositionError{
				Service: spec.Name,
				Reason:  fmt.Sprintf("network_mode references %s, which is not in the graph", ref),
			}
		}
		for _, dep := range spec.DependsOn {
			if !g.Has(dep) {
				return &CompositionError{
					Service: spec.Name,
					Reason:  fmt.Sprintf("depends_on references %s, which is not in the graph", dep),
				}
			}
		}
	}
	return nil
}

func checkPortCollisions(g *model.Graph) error {
	claimed := make(map[string]model.ServiceID)
	for _, spec := range g.Services() {
		for _, port := range spec.Ports {
			key := port.Key()
			if owner, taken := claimed[key]; taken {
				return &CompositionError{
					Service: spec.Name,
					Reason:  fmt.Sprintf("host port %s already published by %s", key, owner),
				}
			}
			claimed[key] = spec.Name
		}
	}
	return nil
}

func checkNetworkModeExclusivity(g *model.Graph) error {
	for _, spec := range g.Services() {
		if spec.NetworkMode != "" && len(spec.Ports) > 0 {
			return &CompositionError{
				Service: spec.Name,
				Reason:  fmt.Sprintf("publishes ports while using network_mode %q", spec.NetworkMode),
			}
		}
	}
	return nil
}
