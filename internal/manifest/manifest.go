// Package manifest projects a composed service graph into the
// docker-compose document that the deployment step applies. The
// projection is a pure function of the graph: the same graph always
// produces byte-identical YAML.
package manifest

import (
	"gopkg.in/yaml.v3"

	"github.com/UpstateNate/AstroMediaServer/internal/model"
)

// NetworkName is the fixed name of the stack's default network.
const NetworkName = "astro-network"

// Document is the full compose file.
type Document struct {
	Services map[string]Service `yaml:"services"`
	Networks map[string]Network `yaml:"networks"`
}

// Service is one compose service entry.
type Service struct {
	Image         string            `yaml:"image"`
	ContainerName string            `yaml:"container_name"`
	Restart       string            `yaml:"restart"`
	Command       []string          `yaml:"command,omitempty"`
	Environment   map[string]string `yaml:"environment,omitempty"`
	Ports         []string          `yaml:"ports,omitempty"`
	Volumes       []string          `yaml:"volumes,omitempty"`
	Devices       []string          `yaml:"devices,omitempty"`
	CapAdd        []string          `yaml:"cap_add,omitempty"`
	NetworkMode   string            `yaml:"network_mode,omitempty"`
	Runtime       string            `yaml:"runtime,omitempty"`
	DependsOn     []string          `yaml:"depends_on,omitempty"`
}

// Network declares a compose network.
type Network struct {
	Name string `yaml:"name"`
}

// Project converts a validated graph into a compose document.
func Project(g *model.Graph) Document {
	doc := Document{
		Services: make(map[string]Service, g.Len()),
		Networks: map[string]Network{"default": {Name: NetworkName}},
	}

	for _, spec := range g.Services() {
		svc := Service{
			Image:         spec.Image,
			ContainerName: string(spec.Name),
			Restart:       "unless-stopped",
			Command:       spec.Command,
			Environment:   spec.Env,
			Volumes:       spec.Volumes,
			Devices:       spec.Devices,
			CapAdd:        spec.CapAdd,
			NetworkMode:   spec.NetworkMode,
			Runtime:       spec.Runtime,
		}
		for _, p := range spec.Ports {
			svc.Ports = append(svc.Ports, p.String())
		}
		for _, dep := range spec.DependsOn {
			svc.DependsOn = append(svc.DependsOn, string(dep))
		}
		doc.Services[string(spec.Name)] = svc
	}

	return doc
}

// Encode projects the graph and serializes it. yaml.v3 emits map keys
// in sorted order, which keeps the output stable across runs.
func Encode(g *model.Graph) ([]byte, error) {
	return yaml.Marshal(Project(g))
}
