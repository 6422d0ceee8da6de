package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PortMapping represents a published port binding.
type PortMapping struct {
	HostPort      int
	ContainerPort int
	Protocol      string // tcp or udp
}

// String renders the mapping in compose syntax: "8080:8080" or
// "6881:6881/udp". TCP is the implied default and is never printed.
func (p PortMapping) String() string {
	s := fmt.Sprintf("%d:%d", p.HostPort, p.ContainerPort)
	if p.Protocol != "" && p.Protocol != "tcp" {
		s += "/" + p.Protocol
	}
	return s
}

// Key identifies the host side of the binding. Two mappings collide
// exactly when their keys are equal; "8080:8080" and "8080:8080/udp"
// are distinct.
func (p PortMapping) Key() string {
	proto := p.Protocol
	if proto == "" {
		proto = "tcp"
	}
	return strconv.Itoa(p.HostPort) + "/" + proto
}

// ParsePortMapping parses a compose port string like "8080:80" or
// "6881:6881/udp". A bare "8080" publishes the same port on both sides.
func ParsePortMapping(s string) PortMapping {
	pm := PortMapping{Protocol: "tcp"}

	if idx := strings.Index(s, "/"); idx != -1 {
		pm.Protocol = s[idx+1:]
		s = s[:idx]
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		port, _ := strconv.Atoi(parts[0])
		pm.HostPort = port
		pm.ContainerPort = port
	case 2:
		pm.HostPort, _ = strconv.Atoi(parts[0])
		pm.ContainerPort, _ = strconv.Atoi(parts[1])
	}
	return pm
}

// ParsePortMappings parses a list of compose port strings.
func ParsePortMappings(specs ...string) []PortMapping {
	out := make([]PortMapping, 0, len(specs))
	for _, s := range specs {
		out = append(out, ParsePortMapping(s))
	}
	return out
}
