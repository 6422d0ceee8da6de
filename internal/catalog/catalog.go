// Package catalog is the static registry of every service this tool
// knows how to deploy: image references, published ports, and the
// display metadata the dashboard projection needs. The maps here are
// the closed sets that configuration values are validated against.
package catalog

import "github.com/UpstateNate/AstroMediaServer/internal/model"

// Category groups services on the companion dashboard.
type Category string

const (
	CategoryMedia      Category = "Media"
	CategoryManagement Category = "Management"
	CategoryDownloads  Category = "Downloads"
	CategoryRequests   Category = "Requests"
	CategorySystem     Category = "System"
)

// Entry is the default shape of one catalog service.
type Entry struct {
	Image       string
	Ports       []string // compose port strings, first one is the web UI
	WebUI       int      // overrides the web UI port for services that publish nothing (plex on host networking)
	Title       string
	Icon        string
	Description string
	Category    Category
}

// WebPort returns the host port of the service's primary web UI, or 0
// when the service has none (watchtower, gluetun).
func (e Entry) WebPort() int {
	if e.WebUI != 0 {
		return e.WebUI
	}
	if len(e.Ports) == 0 {
		return 0
	}
	return model.ParsePortMapping(e.Ports[0]).HostPort
}

var entries = map[model.ServiceID]Entry{
	model.Plex: {
		Image:       "lscr.io/linuxserver/plex:latest",
		WebUI:       32400,
		Title:       "Plex",
		Icon:        "plex.png",
		Description: "Media Server",
		Category:    CategoryMedia,
	},
	model.Jellyfin: {
		Image:       "lscr.io/linuxserver/jellyfin:latest",
		Ports:       []string{"8096:8096"},
		Title:       "Jellyfin",
		Icon:        "jellyfin.png",
		Description: "Media Server",
		Category:    CategoryMedia,
	},
	model.Emby: {
		Image:       "lscr.io/linuxserver/emby:latest",
		Ports:       []string{"8096:8096"},
		Title:       "Emby",
		Icon:        "emby.png",
		Description: "Media Server",
		Category:    CategoryMedia,
	},

	model.Radarr: {
		Image:       "lscr.io/linuxserver/radarr:latest",
		Ports:       []string{"7878:7878"},
		Title:       "Radarr",
		Icon:        "radarr.png",
		Description: "Movies",
		Category:    CategoryManagement,
	},
	model.Sonarr: {
		Image:       "lscr.io/linuxserver/sonarr:latest",
		Ports:       []string{"8989:8989"},
		Title:       "Sonarr",
		Icon:        "sonarr.png",
		Description: "TV Shows",
		Category:    CategoryManagement,
	},
	model.Lidarr: {
		Image:       "lscr.io/linuxserver/lidarr:latest",
		Ports:       []string{"8686:8686"},
		Title:       "Lidarr",
		Icon:        "lidarr.png",
		Description: "Music",
		Category:    CategoryManagement,
	},
	model.Readarr: {
		Image:       "lscr.io/linuxserver/readarr:latest",
		Ports:       []string{"8787:8787"},
		Title:       "Readarr",
		Icon:        "readarr.png",
		Description: "Books",
		Category:    CategoryManagement,
	},
	model.Prowlarr: {
		Image:       "lscr.io/linuxserver/prowlarr:latest",
		Ports:       []string{"9696:9696"},
		Title:       "Prowlarr",
		Icon:        "prowlarr.png",
		Description: "Indexers",
		Category:    CategoryManagement,
	},
	model.Bazarr: {
		Image:       "lscr.io/linuxserver/bazarr:latest",
		Ports:       []string{"6767:6767"},
		Title:       "Bazarr",
		Icon:        "bazarr.png",
		Description: "Subtitles",
		Category:    CategoryManagement,
	},

	model.QBittorrent: {
		Image:       "lscr.io/linuxserver/qbittorrent:latest",
		Ports:       []string{"8080:8080", "6881:6881", "6881:6881/udp"},
		Title:       "qBittorrent",
		Icon:        "qbittorrent.png",
		Description: "Torrent Client",
		Category:    CategoryDownloads,
	},
	// Host port 8082: the sabnzbd web UI listens on 8080 in the
	// container, which would collide with the qBittorrent web UI when
	// both transports are enabled.
	model.SABnzbd: {
		Image:       "lscr.io/linuxserver/sabnzbd:latest",
		Ports:       []string{"8082:8080"},
		Title:       "SABnzbd",
		Icon:        "sabnzbd.png",
		Description: "Usenet Client",
		Category:    CategoryDownloads,
	},
	model.NZBGet: {
		Image:       "lscr.io/linuxserver/nzbget:latest",
		Ports:       []string{"6789:6789"},
		Title:       "NZBGet",
		Icon:        "nzbget.png",
		Description: "Usenet Client",
		Category:    CategoryDownloads,
	},

	model.Overseerr: {
		Image:       "lscr.io/linuxserver/overseerr:latest",
		Ports:       []string{"5055:5055"},
		Title:       "Overseerr",
		Icon:        "overseerr.png",
		Description: "Media Requests",
		Category:    CategoryRequests,
	},
	model.Jellyseerr: {
		Image:       "fallenbagel/jellyseerr:latest",
		Ports:       []string{"5055:5055"},
		Title:       "Jellyseerr",
		Icon:        "jellyseerr.png",
		Description: "Media Requests",
		Category:    CategoryRequests,
	},

	model.Traefik: {
		Image:       "traefik:latest",
		Ports:       []string{"8081:8080", "80:80"},
		Title:       "Traefik",
		Icon:        "traefik.png",
		Description: "Reverse Proxy",
		Category:    CategorySystem,
	},
	model.NginxProxyManager: {
		Image:       "jc21/nginx-proxy-manager:latest",
		Ports:       []string{"81:81", "80:80", "443:443"},
		Title:       "NPM",
		Icon:        "nginx-proxy-manager.png",
		Description: "Reverse Proxy",
		Category:    CategorySystem,
	},

	model.Homepage: {
		Image:       "ghcr.io/gethomepage/homepage:latest",
		Ports:       []string{"3000:3000"},
		Title:       "Homepage",
		Icon:        "homepage.png",
		Description: "Dashboard",
		Category:    CategorySystem,
	},
	model.Heimdall: {
		Image:       "lscr.io/linuxserver/heimdall:latest",
		Ports:       []string{"3000:80"},
		Title:       "Heimdall",
		Icon:        "heimdall.png",
		Description: "Dashboard",
		Category:    CategorySystem,
	},

	model.Watchtower: {
		Image:       "containrrr/watchtower:latest",
		Title:       "Watchtower",
		Icon:        "watchtower.png",
		Description: "Automatic Updates",
		Category:    CategorySystem,
	},
	model.Portainer: {
		Image:       "portainer/portainer-ce:latest",
		Ports:       []string{"9000:9000"},
		Title:       "Portainer",
		Icon:        "portainer.png",
		Description: "Container Management",
		Category:    CategorySystem,
	},
	model.Tautulli: {
		Image:       "lscr.io/linuxserver/tautulli:latest",
		Ports:       []string{"8181:8181"},
		Title:       "Tautulli",
		Icon:        "tautulli.png",
		Description: "Media Statistics",
		Category:    CategoryMedia,
	},

	model.Gluetun: {
		Image:       "qmcgaw/gluetun:latest",
		Title:       "Gluetun",
		Icon:        "gluetun.png",
		Description: "VPN Tunnel",
		Category:    CategoryDownloads,
	},
}

// Get returns the catalog entry for a known service ID.
func Get(id model.ServiceID) (Entry, bool) {
	e, ok := entries[id]
	return e, ok
}

// Closed option sets. Wizard menus and config validation both read
// from these, so a value that passes validation always resolves.

// MediaServers lists the selectable media servers.
func MediaServers() []model.ServiceID {
	return []model.ServiceID{model.Jellyfin, model.Plex, model.Emby}
}

// RequestManagers lists the selectable request managers.
func RequestManagers() []model.ServiceID {
	return []model.ServiceID{model.Overseerr, model.Jellyseerr}
}

// UsenetClients lists the selectable usenet downloader family.
func UsenetClients() []model.ServiceID {
	return []model.ServiceID{model.SABnzbd, model.NZBGet}
}

// Gateways lists the selectable reverse proxies.
func Gateways() []model.ServiceID {
	return []model.ServiceID{model.Traefik, model.NginxProxyManager}
}

// Dashboards lists the selectable dashboards.
func Dashboards() []model.ServiceID {
	return []model.ServiceID{model.Homepage, model.Heimdall}
}

// Extras lists the optional add-on services.
func Extras() []model.ServiceID {
	return []model.ServiceID{model.Bazarr, model.Tautulli, model.Portainer}
}

// ArrSuite lists the fixed content-management cluster, created on
// every run regardless of user choice.
func ArrSuite() []model.ServiceID {
	return []model.ServiceID{model.Radarr, model.Sonarr, model.Lidarr, model.Readarr, model.Prowlarr}
}

// ContentManagers lists the arr services that manage library content
// and therefore mount the shared media and download volumes.
func ContentManagers() []model.ServiceID {
	return []model.ServiceID{model.Radarr, model.Sonarr, model.Lidarr, model.Readarr}
}

// Contains reports whether id is a member of set.
func Contains(set []model.ServiceID, id model.ServiceID) bool {
	for _, s := range set {
		if s == id {
			return true
		}
	}
	return false
}
