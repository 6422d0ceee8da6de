package model

import "sort"

// Graph is the complete set of services produced by one composition
// run. It is an explicit value threaded through the rule pipeline,
// never package-global state, and is discarded after projection.
type Graph struct {
	services map[ServiceID]*ServiceSpec
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{services: make(map[ServiceID]*ServiceSpec)}
}

// Add inserts a service. The name on the spec is the graph key.
func (g *Graph) Add(spec *ServiceSpec) {
	g.services[spec.Name] = spec
}

// Lookup returns the service with the given ID, if present.
func (g *Graph) Lookup(id ServiceID) (*ServiceSpec, bool) {
	spec, ok := g.services[id]
	return spec, ok
}

// Has reports whether a service is present.
func (g *Graph) Has(id ServiceID) bool {
	_, ok := g.services[id]
	return ok
}

// Len returns the number of services.
func (g *Graph) Len() int {
	return len(g.services)
}

// Names returns all service IDs in lexical order, so every projection
// of the same graph walks it identically.
func (g *Graph) Names() []ServiceID {
	names := make([]ServiceID, 0, len(g.services))
	for id := range g.services {
		names = append(names, id)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Services returns all specs in lexical name order.
func (g *Graph) Services() []*ServiceSpec {
	names := g.Names()
	specs := make([]*ServiceSpec, 0, len(names))
	for _, id := range names {
		specs = append(specs, g.services[id])
	}
	return specs
}
