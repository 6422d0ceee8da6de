package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UpstateNate/AstroMediaServer/internal/config"
	"github.com/UpstateNate/AstroMediaServer/internal/model"
)

// testConfig is the baseline: jellyfin, torrents only, no VPN, no
// request manager, no extras.
func testConfig() *config.Config {
	cfg := &config.Config{
		MediaServer:    "jellyfin",
		RequestManager: config.RequestManagerNone,
		Gateway:        "traefik",
		Dashboard:      "homepage",
		Transcoding:    config.TranscodingNone,
		Timezone:       "America/New_York",
		PUID:           1000,
		PGID:           1000,
		BaseDir:        "/opt/astro",
		HostAddress:    "localhost",
	}
	cfg.Downloads.Torrents = true
	cfg.Downloads.UsenetClient = "sabnzbd"
	return cfg
}

func TestBuildBaseline(t *testing.T) {
	graph, err := Build(testConfig())
	require.NoError(t, err)

	expected := []model.ServiceID{
		model.Homepage,
		model.Jellyfin,
		model.Lidarr,
		model.Prowlarr,
		model.QBittorrent,
		model.Radarr,
		model.Readarr,
		model.Sonarr,
		model.Traefik,
		model.Watchtower,
	}
	assert.Equal(t, expected, graph.Names())

	// No usenet, no tunnel.
	assert.False(t, graph.Has(model.SABnzbd))
	assert.False(t, graph.Has(model.NZBGet))
	assert.False(t, graph.Has(model.Gluetun))

	// The torrent client keeps its own ports.
	torrent, ok := graph.Lookup(model.QBittorrent)
	require.True(t, ok)
	assert.Len(t, torrent.Ports, 3)
	assert.Empty(t, torrent.NetworkMode)
	assert.Empty(t, torrent.DependsOn)
}

func TestBuildWithTunnel(t *testing.T) {
	cfg := testConfig()
	cfg.VPN = config.VPN{Enabled: true, Provider: "mullvad", Username: "u", Password: "p"}

	graph, err := Build(cfg)
	require.NoError(t, err)

	tunnel, ok := graph.Lookup(model.Gluetun)
	require.True(t, ok)

	// The tunnel owns the torrent client's former ports.
	assert.Len(t, tunnel.Ports, 3)
	assert.Contains(t, tunnel.CapAdd, "NET_ADMIN")
	assert.Contains(t, tunnel.Devices, "/dev/net/tun:/dev/net/tun")
	assert.Equal(t, "mullvad", tunnel.Env["VPN_SERVICE_PROVIDER"])

	torrent, ok := graph.Lookup(model.QBittorrent)
	require.True(t, ok)
	assert.Empty(t, torrent.Ports)
	assert.Equal(t, model.ServiceNetworkMode(model.Gluetun), torrent.NetworkMode)
	assert.Equal(t, []model.ServiceID{model.Gluetun}, torrent.DependsOn)
}

func TestBuildBothTransports(t *testing.T) {
	cfg := testConfig()
	cfg.Downloads.Usenet = true

	graph, err := Build(cfg)
	require.NoError(t, err)

	assert.True(t, graph.Has(model.QBittorrent))
	assert.True(t, graph.Has(model.SABnzbd))

	// Each transport gets its own downloads volume.
	sab, _ := graph.Lookup(model.SABnzbd)
	assert.Contains(t, sab.Volumes, "/opt/astro/usenet:/downloads")
	qbt, _ := graph.Lookup(model.QBittorrent)
	assert.Contains(t, qbt.Volumes, "/opt/astro/torrents:/downloads")
}

func TestTransportVolumesPropagateToContentManagers(t *testing.T) {
	cfg := testConfig()
	cfg.Downloads.Usenet = true

	graph, err := Build(cfg)
	require.NoError(t, err)

	radarr, ok := graph.Lookup(model.Radarr)
	require.True(t, ok)
	assert.Contains(t, radarr.Volumes, "/opt/astro/torrents:/downloads/torrents")
	assert.Contains(t, radarr.Volumes, "/opt/astro/usenet:/downloads/usenet")

	// Prowlarr manages indexers, not content: config volume only.
	prowlarr, ok := graph.Lookup(model.Prowlarr)
	require.True(t, ok)
	assert.Equal(t, []string{"/opt/astro/config/prowlarr:/config"}, prowlarr.Volumes)
}

func TestDisablingTransportRemovesItsContribution(t *testing.T) {
	cfg := testConfig()
	cfg.Downloads.Torrents = false
	cfg.Downloads.Usenet = true

	graph, err := Build(cfg)
	require.NoError(t, err)

	assert.False(t, graph.Has(model.QBittorrent))
	radarr, _ := graph.Lookup(model.Radarr)
	assert.NotContains(t, radarr.Volumes, "/opt/astro/torrents:/downloads/torrents")
	assert.Contains(t, radarr.Volumes, "/opt/astro/usenet:/downloads/usenet")
}

func TestRequestManagerNoneAddsNothing(t *testing.T) {
	withNone, err := Build(testConfig())
	require.NoError(t, err)

	assert.False(t, withNone.Has(model.Overseerr))
	assert.False(t, withNone.Has(model.Jellyseerr))

	cfg := testConfig()
	cfg.RequestManager = string(model.Overseerr)
	withManager, err := Build(cfg)
	require.NoError(t, err)

	assert.True(t, withManager.Has(model.Overseerr))
	assert.Equal(t, withNone.Len()+1, withManager.Len())
}

func TestBuildExtras(t *testing.T) {
	cfg := testConfig()
	cfg.Extras = []string{"bazarr", "tautulli", "portainer"}

	graph, err := Build(cfg)
	require.NoError(t, err)

	assert.True(t, graph.Has(model.Bazarr))
	assert.True(t, graph.Has(model.Tautulli))
	assert.True(t, graph.Has(model.Portainer))

	bazarr, _ := graph.Lookup(model.Bazarr)
	assert.Contains(t, bazarr.Volumes, "/opt/astro/media/movies:/movies")
}

func TestBuildPlexUsesHostNetworking(t *testing.T) {
	cfg := testConfig()
	cfg.MediaServer = "plex"

	graph, err := Build(cfg)
	require.NoError(t, err)

	plex, ok := graph.Lookup(model.Plex)
	require.True(t, ok)
	assert.Equal(t, model.NetworkModeHost, plex.NetworkMode)
	assert.Empty(t, plex.Ports)
	assert.Equal(t, "docker", plex.Env["VERSION"])
}

func TestBuildRejectsUnknownMediaServer(t *testing.T) {
	cfg := testConfig()
	cfg.MediaServer = "winamp"

	graph, err := Build(cfg)
	assert.Nil(t, graph)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "media_server", cfgErr.Field)
	assert.Equal(t, "winamp", cfgErr.Value)
}

func TestBuildRejectsUnknownUsenetClient(t *testing.T) {
	cfg := testConfig()
	cfg.Downloads.Usenet = true
	cfg.Downloads.UsenetClient = "getright"

	_, err := Build(cfg)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "downloads.usenet_client", cfgErr.Field)
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := testConfig()
	cfg.Downloads.Usenet = true
	cfg.VPN = config.VPN{Enabled: true, Provider: "protonvpn", Username: "u", Password: "p"}
	cfg.Extras = []string{"bazarr"}

	first, err := Build(cfg)
	require.NoError(t, err)
	second, err := Build(cfg)
	require.NoError(t, err)

	require.Equal(t, first.Names(), second.Names())
	for _, id := range first.Names() {
		a, _ := first.Lookup(id)
		b, _ := second.Lookup(id)
		assert.Equal(t, a, b, "service %s differs between runs", id)
	}
}

func TestBuiltGraphAlwaysValidates(t *testing.T) {
	configs := map[string]func(*config.Config){
		"baseline":        func(cfg *config.Config) {},
		"usenet only":     func(cfg *config.Config) { cfg.Downloads.Torrents = false; cfg.Downloads.Usenet = true },
		"both transports": func(cfg *config.Config) { cfg.Downloads.Usenet = true },
		"tunnelled": func(cfg *config.Config) {
			cfg.VPN = config.VPN{Enabled: true, Provider: "mullvad", Username: "u", Password: "p"}
		},
		"plex with npm": func(cfg *config.Config) { cfg.MediaServer = "plex"; cfg.Gateway = "nginx-proxy-manager" },
		"full house": func(cfg *config.Config) {
			cfg.Downloads.Usenet = true
			cfg.VPN = config.VPN{Enabled: true, Provider: "mullvad", Username: "u", Password: "p"}
			cfg.RequestManager = "jellyseerr"
			cfg.Extras = []string{"bazarr", "tautulli", "portainer"}
			cfg.Transcoding = config.TranscodingIntel
		},
	}

	for name, mutate := range configs {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig()
			mutate(cfg)
			graph, err := Build(cfg)
			require.NoError(t, err)
			assert.NoError(t, Validate(graph))
		})
	}
}
