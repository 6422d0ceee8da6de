// Package config loads the astro.yml configuration written by the
// wizard. The resulting Config is the complete record of user choices
// and is treated as read-only by everything downstream.
package config

import (
	"github.com/spf13/viper"

	"github.com/UpstateNate/AstroMediaServer/internal/util"
)

type Config struct {
	MediaServer    string    `mapstructure:"media_server"`
	RequestManager string    `mapstructure:"request_manager"` // overseerr, jellyseerr, or none
	Gateway        string    `mapstructure:"gateway"`
	Dashboard      string    `mapstructure:"dashboard"`
	Downloads      Downloads `mapstructure:"downloads"`
	VPN            VPN       `mapstructure:"vpn"`
	Transcoding    string    `mapstructure:"transcoding"` // none, nvidia, or intel
	Extras         []string  `mapstructure:"extras"`
	Timezone       string    `mapstructure:"timezone"`
	PUID           int       `mapstructure:"puid"`
	PGID           int       `mapstructure:"pgid"`
	BaseDir        string    `mapstructure:"base_dir"`
	HostAddress    string    `mapstructure:"host_address"`
}

type Downloads struct {
	Torrents     bool   `mapstructure:"torrents"`
	Usenet       bool   `mapstructure:"usenet"`
	UsenetClient string `mapstructure:"usenet_client"`
}

type VPN struct {
	Enabled  bool   `mapstructure:"enabled"`
	Provider string `mapstructure:"provider"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// RequestManagerNone disables the request manager category entirely.
const RequestManagerNone = "none"

// Transcoding families.
const (
	TranscodingNone   = "none"
	TranscodingNvidia = "nvidia"
	TranscodingIntel  = "intel"
)

// Defaults mirrored from the wizard.
const (
	DefaultTimezone = "America/New_York"
	DefaultPUID     = 1000
	DefaultPGID     = 1000
	DefaultBaseDir  = "/opt/astro"
	DefaultHost     = "localhost"
)

func Load() (*Config, error) {
	cfg := &Config{
		MediaServer:    "jellyfin",
		RequestManager: RequestManagerNone,
		Gateway:        "traefik",
		Dashboard:      "homepage",
		Transcoding:    TranscodingNone,
		Timezone:       DefaultTimezone,
		PUID:           DefaultPUID,
		PGID:           DefaultPGID,
		BaseDir:        DefaultBaseDir,
		HostAddress:    DefaultHost,
	}
	cfg.Downloads.Torrents = true
	cfg.Downloads.UsenetClient = "sabnzbd"

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	cfg.BaseDir = util.ExpandPath(cfg.BaseDir)

	return cfg, nil
}
