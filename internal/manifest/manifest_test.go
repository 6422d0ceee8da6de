package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UpstateNate/AstroMediaServer/internal/model"
)

func testGraph() *model.Graph {
	g := model.NewGraph()
	g.Add(&model.ServiceSpec{
		Name:  model.Jellyfin,
		Image: "lscr.io/linuxserver/jellyfin:latest",
		Env:   map[string]string{"PUID": "1000", "PGID": "1000", "TZ": "America/New_York"},
		Ports: model.ParsePortMappings("8096:8096"),
		Volumes: []string{
			"/opt/astro/config/jellyfin:/config",
			"/opt/astro/media/movies:/movies",
		},
	})
	g.Add(&model.ServiceSpec{
		Name:  model.Gluetun,
		Image: "qmcgaw/gluetun:latest",
		Ports: model.ParsePortMappings("8080:8080", "6881:6881", "6881:6881/udp"),
		CapAdd: []string{
			"NET_ADMIN",
		},
		Devices: []string{"/dev/net/tun:/dev/net/tun"},
		Env:     map[string]string{"VPN_SERVICE_PROVIDER": "mullvad"},
	})
	g.Add(&model.ServiceSpec{
		Name:        model.QBittorrent,
		Image:       "lscr.io/linuxserver/qbittorrent:latest",
		NetworkMode: model.ServiceNetworkMode(model.Gluetun),
		DependsOn:   []model.ServiceID{model.Gluetun},
	})
	return g
}

func TestProject(t *testing.T) {
	doc := Project(testGraph())

	require.Len(t, doc.Services, 3)
	assert.Equal(t, NetworkName, doc.Networks["default"].Name)

	jellyfin := doc.Services["jellyfin"]
	assert.Equal(t, "lscr.io/linuxserver/jellyfin:latest", jellyfin.Image)
	assert.Equal(t, "jellyfin", jellyfin.ContainerName)
	assert.Equal(t, "unless-stopped", jellyfin.Restart)
	assert.Equal(t, []string{"8096:8096"}, jellyfin.Ports)

	tunnel := doc.Services["gluetun"]
	assert.Equal(t, []string{"8080:8080", "6881:6881", "6881:6881/udp"}, tunnel.Ports)

	torrent := doc.Services["qbittorrent"]
	assert.Equal(t, "service:gluetun", torrent.NetworkMode)
	assert.Equal(t, []string{"gluetun"}, torrent.DependsOn)
	assert.Empty(t, torrent.Ports)
}

func TestEncodeDeterministic(t *testing.T) {
	first, err := Encode(testGraph())
	require.NoError(t, err)
	second, err := Encode(testGraph())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEncodeOmitsEmptyFields(t *testing.T) {
	g := model.NewGraph()
	g.Add(&model.ServiceSpec{
		Name:  model.Watchtower,
		Image: "containrrr/watchtower:latest",
	})

	out, err := Encode(g)
	require.NoError(t, err)

	text := string(out)
	assert.NotContains(t, text, "ports:")
	assert.NotContains(t, text, "cap_add:")
	assert.NotContains(t, text, "network_mode:")
	assert.NotContains(t, text, "runtime:")
	assert.Contains(t, text, "restart: unless-stopped")
}

func TestEncodePassesVerify(t *testing.T) {
	out, err := Encode(testGraph())
	require.NoError(t, err)

	assert.NoError(t, Verify(out))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	assert.Error(t, Verify([]byte("{not yaml")))
	assert.Error(t, Verify([]byte("services:\n  broken:\n    image: [not, a, string]\n")))
}

func TestEncodeServiceOrderStable(t *testing.T) {
	out, err := Encode(testGraph())
	require.NoError(t, err)

	text := string(out)
	gluetun := strings.Index(text, "gluetun:")
	jellyfin := strings.Index(text, "jellyfin:")
	qbt := strings.Index(text, "qbittorrent:")
	assert.True(t, gluetun < jellyfin && jellyfin < qbt, "services not emitted in sorted order:\n%s", text)
}
