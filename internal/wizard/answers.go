package wizard

// Answers holds all user responses from the wizard. It is the raw
// material for the generated astro.yml.
type Answers struct {
	MediaServer    string
	RequestManager string
	Gateway        string
	Dashboard      string

	Torrents     bool
	Usenet       bool
	UsenetClient string

	VPNEnabled  bool
	VPNProvider string
	VPNUsername string
	VPNPassword string

	Transcoding string
	Extras      []string

	Timezone string
	PUID     string
	PGID     string
}

// DefaultAnswers mirrors the defaults the config loader applies.
func DefaultAnswers() Answers {
	return Answers{
		MediaServer:    "jellyfin",
		RequestManager: "none",
		Gateway:        "traefik",
		Dashboard:      "homepage",
		Torrents:       true,
		UsenetClient:   "sabnzbd",
		Transcoding:    "none",
		Timezone:       "America/New_York",
		PUID:           "1000",
		PGID:           "1000",
	}
}
