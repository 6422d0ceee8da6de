package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UpstateNate/AstroMediaServer/internal/config"
)

func TestCheckConfigPasses(t *testing.T) {
	assert.Empty(t, CheckConfig(testConfig()))
}

func TestCheckConfigFindsEveryBadField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"media server", func(cfg *config.Config) { cfg.MediaServer = "kodi" }, "media_server"},
		{"gateway", func(cfg *config.Config) { cfg.Gateway = "caddy" }, "gateway"},
		{"dashboard", func(cfg *config.Config) { cfg.Dashboard = "organizr" }, "dashboard"},
		{"request manager", func(cfg *config.Config) { cfg.RequestManager = "ombi" }, "request_manager"},
		{"usenet client", func(cfg *config.Config) {
			cfg.Downloads.Usenet = true
			cfg.Downloads.UsenetClient = "pan"
		}, "downloads.usenet_client"},
		{"extra", func(cfg *config.Config) { cfg.Extras = []string{"flaresolverr"} }, "extras[0]"},
		{"transcoding", func(cfg *config.Config) { cfg.Transcoding = "amd" }, "transcoding"},
		{"timezone", func(cfg *config.Config) { cfg.Timezone = "" }, "timezone"},
		{"vpn provider", func(cfg *config.Config) { cfg.VPN.Enabled = true }, "vpn.provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			errs := CheckConfig(cfg)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.NotEmpty(t, errs[0].Suggestion)
		})
	}
}

func TestCheckConfigIgnoresUsenetClientWhenDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Downloads.Usenet = false
	cfg.Downloads.UsenetClient = "pan"

	assert.Empty(t, CheckConfig(cfg))
}

func TestCheckConfigReportsAllErrors(t *testing.T) {
	cfg := testConfig()
	cfg.MediaServer = "kodi"
	cfg.Gateway = "caddy"
	cfg.Timezone = ""

	assert.Len(t, CheckConfig(cfg), 3)
}

func TestCheckConfigSuggestionListsOptions(t *testing.T) {
	cfg := testConfig()
	cfg.MediaServer = "kodi"

	errs := CheckConfig(cfg)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Suggestion, "jellyfin")
	assert.Contains(t, errs[0].Suggestion, "plex")
	assert.Contains(t, errs[0].Suggestion, "emby")
}
