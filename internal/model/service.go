package model

import "strings"

// ServiceID identifies a service known to the catalog. Rules and
// overlays reference services exclusively through these constants, so
// a dangling reference requires minting an ID the catalog has never
// heard of.
type ServiceID string

const (
	// Media servers
	Plex     ServiceID = "plex"
	Jellyfin ServiceID = "jellyfin"
	Emby     ServiceID = "emby"

	// Content managers
	Radarr   ServiceID = "radarr"
	Sonarr   ServiceID = "sonarr"
	Lidarr   ServiceID = "lidarr"
	Readarr  ServiceID = "readarr"
	Prowlarr ServiceID = "prowlarr"
	Bazarr   ServiceID = "bazarr"

	// Downloaders
	QBittorrent ServiceID = "qbittorrent"
	SABnzbd     ServiceID = "sabnzbd"
	NZBGet      ServiceID = "nzbget"

	// Request managers
	Overseerr  ServiceID = "overseerr"
	Jellyseerr ServiceID = "jellyseerr"

	// Gateways
	Traefik           ServiceID = "traefik"
	NginxProxyManager ServiceID = "nginx-proxy-manager"

	// Dashboards
	Homepage ServiceID = "homepage"
	Heimdall ServiceID = "heimdall"

	// Utilities
	Watchtower ServiceID = "watchtower"
	Portainer  ServiceID = "portainer"
	Tautulli   ServiceID = "tautulli"

	// VPN tunnel
	Gluetun ServiceID = "gluetun"
)

// NetworkModeHost is the literal host-networking mode (Plex). Every
// other non-empty NetworkMode value is a "service:<name>" reference.
const NetworkModeHost = "host"

// ServiceNetworkMode builds a network_mode value that shares the
// network namespace of another service.
func ServiceNetworkMode(id ServiceID) string {
	return "service:" + string(id)
}

// ServiceSpec is one container's declarative definition within a Graph.
type ServiceSpec struct {
	Name        ServiceID
	Image       string
	Command     []string
	Env         map[string]string
	Volumes     []string
	Ports       []PortMapping
	NetworkMode string // empty, "host", or "service:<name>"
	DependsOn   []ServiceID
	Devices     []string
	CapAdd      []string
	Runtime     string
}

// NetworkModeRef returns the service referenced by a "service:<name>"
// network mode, or false for empty/host modes.
func (s *ServiceSpec) NetworkModeRef() (ServiceID, bool) {
	if rest, ok := strings.CutPrefix(s.NetworkMode, "service:"); ok {
		return ServiceID(rest), true
	}
	return "", false
}

// SetEnv sets an environment variable, allocating the map on first use.
func (s *ServiceSpec) SetEnv(key, value string) {
	if s.Env == nil {
		s.Env = make(map[string]string)
	}
	s.Env[key] = value
}

// AddDevice appends a device passthrough entry unless already present.
func (s *ServiceSpec) AddDevice(device string) {
	for _, d := range s.Devices {
		if d == device {
			return
		}
	}
	s.Devices = append(s.Devices, device)
}

// AddDependency records a depends_on entry unless already present.
func (s *ServiceSpec) AddDependency(id ServiceID) {
	for _, d := range s.DependsOn {
		if d == id {
			return
		}
	}
	s.DependsOn = append(s.DependsOn, id)
}
