package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphAddLookup(t *testing.T) {
	g := NewGraph()
	g.Add(&ServiceSpec{Name: Jellyfin, Image: "jellyfin:latest"})

	spec, ok := g.Lookup(Jellyfin)
	require.True(t, ok)
	assert.Equal(t, "jellyfin:latest", spec.Image)

	_, ok = g.Lookup(Plex)
	assert.False(t, ok)
	assert.True(t, g.Has(Jellyfin))
	assert.Equal(t, 1, g.Len())
}

func TestGraphNamesSorted(t *testing.T) {
	g := NewGraph()
	g.Add(&ServiceSpec{Name: Sonarr})
	g.Add(&ServiceSpec{Name: Jellyfin})
	g.Add(&ServiceSpec{Name: Radarr})

	assert.Equal(t, []ServiceID{Jellyfin, Radarr, Sonarr}, g.Names())

	specs := g.Services()
	require.Len(t, specs, 3)
	assert.Equal(t, Jellyfin, specs[0].Name)
}

func TestNetworkModeRef(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		wantRef  ServiceID
		wantBool bool
	}{
		{"service reference", ServiceNetworkMode(Gluetun), Gluetun, true},
		{"host mode", NetworkModeHost, "", false},
		{"unset", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &ServiceSpec{NetworkMode: tt.mode}
			ref, ok := spec.NetworkModeRef()
			assert.Equal(t, tt.wantBool, ok)
			assert.Equal(t, tt.wantRef, ref)
		})
	}
}

func TestAddDeviceIdempotent(t *testing.T) {
	spec := &ServiceSpec{}
	spec.AddDevice("/dev/dri:/dev/dri")
	spec.AddDevice("/dev/dri:/dev/dri")
	assert.Equal(t, []string{"/dev/dri:/dev/dri"}, spec.Devices)

	spec.AddDevice("/dev/net/tun:/dev/net/tun")
	assert.Len(t, spec.Devices, 2)
}

func TestAddDependencyIdempotent(t *testing.T) {
	spec := &ServiceSpec{}
	spec.AddDependency(Gluetun)
	spec.AddDependency(Gluetun)
	assert.Equal(t, []ServiceID{Gluetun}, spec.DependsOn)
}

func TestSetEnvAllocates(t *testing.T) {
	spec := &ServiceSpec{}
	spec.SetEnv("TZ", "Europe/Paris")
	assert.Equal(t, "Europe/Paris", spec.Env["TZ"])
}
