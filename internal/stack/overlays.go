package stack

import (
	"github.com/UpstateNate/AstroMediaServer/internal/config"
	"github.com/UpstateNate/AstroMediaServer/internal/model"
)

// applyTunnelOverlay routes torrent traffic through a gluetun VPN
// container. Gluetun takes over the torrent client's published ports;
// the client then joins gluetun's network namespace and publishes
// nothing itself. Applying the overlay twice is a no-op: once gluetun
// exists the mutation has already happened.
func applyTunnelOverlay(g *model.Graph, cfg *config.Config) error {
	if !cfg.VPN.Enabled {
		return nil
	}

	torrent, ok := g.Lookup(model.QBittorrent)
	if !ok {
		return nil
	}
	if g.Has(model.Gluetun) {
		return nil
	}

	tunnel, err := newSpec(model.Gluetun)
	if err != nil {
		return err
	}

	// The tunnel owns the ports the torrent client would have
	// published.
	tunnel.Ports = append(tunnel.Ports, torrent.Ports...)
	tunnel.CapAdd = []string{"NET_ADMIN"}
	tunnel.AddDevice("/dev/net/tun:/dev/net/tun")
	tunnel.Env = map[string]string{
		"VPN_SERVICE_PROVIDER": cfg.VPN.Provider,
		"VPN_TYPE":             "openvpn",
		"OPENVPN_USER":         cfg.VPN.Username,
		"OPENVPN_PASSWORD":     cfg.VPN.Password,
		"TZ":                   cfg.Timezone,
	}
	tunnel.Volumes = []string{newPaths(cfg).configDir(model.Gluetun) + ":/gluetun"}
	g.Add(tunnel)

	torrent.Ports = nil
	torrent.NetworkMode = model.ServiceNetworkMode(model.Gluetun)
	torrent.AddDependency(model.Gluetun)

	return nil
}

// applyHardwareOverlay attaches hardware transcoding to the media
// server. The nvidia family marks the container runtime and exposes
// the GPU through environment; the intel family passes the VAAPI
// render device through. No-op when the media server is absent.
func applyHardwareOverlay(g *model.Graph, cfg *config.Config) error {
	server, ok := g.Lookup(model.ServiceID(cfg.MediaServer))
	if !ok {
		return nil
	}

	switch cfg.Transcoding {
	case config.TranscodingNvidia:
		server.Runtime = "nvidia"
		server.SetEnv("NVIDIA_VISIBLE_DEVICES", "all")
		if server.Name == model.Jellyfin {
			server.SetEnv("NVIDIA_DRIVER_CAPABILITIES", "all")
		}
	case config.TranscodingIntel:
		server.AddDevice("/dev/dri:/dev/dri")
	}

	return nil
}
