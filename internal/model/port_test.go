package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePortMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected PortMapping
	}{
		{
			"8080",
			PortMapping{HostPort: 8080, ContainerPort: 8080, Protocol: "tcp"},
		},
		{
			"8082:8080",
			PortMapping{HostPort: 8082, ContainerPort: 8080, Protocol: "tcp"},
		},
		{
			"6881:6881/udp",
			PortMapping{HostPort: 6881, ContainerPort: 6881, Protocol: "udp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParsePortMapping(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPortMappingString(t *testing.T) {
	tests := []struct {
		pm       PortMapping
		expected string
	}{
		{PortMapping{HostPort: 8080, ContainerPort: 8080, Protocol: "tcp"}, "8080:8080"},
		{PortMapping{HostPort: 8082, ContainerPort: 8080, Protocol: "tcp"}, "8082:8080"},
		{PortMapping{HostPort: 6881, ContainerPort: 6881, Protocol: "udp"}, "6881:6881/udp"},
		{PortMapping{HostPort: 80, ContainerPort: 80}, "80:80"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pm.String())
		})
	}
}

func TestPortMappingKey(t *testing.T) {
	// The same host port on different protocols does not collide.
	tcp := PortMapping{HostPort: 6881, ContainerPort: 6881, Protocol: "tcp"}
	udp := PortMapping{HostPort: 6881, ContainerPort: 6881, Protocol: "udp"}
	assert.NotEqual(t, tcp.Key(), udp.Key())

	// Protocol defaults to tcp for collision purposes.
	bare := PortMapping{HostPort: 6881, ContainerPort: 6881}
	assert.Equal(t, tcp.Key(), bare.Key())
}

func TestParsePortMappings(t *testing.T) {
	got := ParsePortMappings("8080:8080", "6881:6881/udp")
	assert.Len(t, got, 2)
	assert.Equal(t, "udp", got[1].Protocol)
}
