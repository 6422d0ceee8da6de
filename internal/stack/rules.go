package stack

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/UpstateNate/AstroMediaServer/internal/catalog"
	"github.com/UpstateNate/AstroMediaServer/internal/config"
	"github.com/UpstateNate/AstroMediaServer/internal/model"
)

// paths centralizes the host-side directory layout under base_dir.
type paths struct {
	base string
}

func newPaths(cfg *config.Config) paths {
	return paths{base: cfg.BaseDir}
}

func (p paths) configDir(id model.ServiceID) string {
	return filepath.Join(p.base, "config", string(id))
}

func (p paths) media(sub string) string {
	return filepath.Join(p.base, "media", sub)
}

func (p paths) torrents() string { return filepath.Join(p.base, "torrents") }
func (p paths) usenet() string   { return filepath.Join(p.base, "usenet") }

const dockerSocket = "/var/run/docker.sock"

// baseEnv returns the PUID/PGID/TZ environment shared by the
// linuxserver.io images.
func baseEnv(cfg *config.Config) map[string]string {
	return map[string]string{
		"PUID": strconv.Itoa(cfg.PUID),
		"PGID": strconv.Itoa(cfg.PGID),
		"TZ":   cfg.Timezone,
	}
}

// newSpec instantiates a catalog service with its image and default
// published ports.
func newSpec(id model.ServiceID) (*model.ServiceSpec, error) {
	entry, ok := catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("service %s not in catalog", id)
	}
	return &model.ServiceSpec{
		Name:  id,
		Image: entry.Image,
		Ports: model.ParsePortMappings(entry.Ports...),
	}, nil
}

func addMediaServer(g *model.Graph, cfg *config.Config) error {
	id := model.ServiceID(cfg.MediaServer)
	spec, err := newSpec(id)
	if err != nil {
		return err
	}

	p := newPaths(cfg)
	spec.Env = baseEnv(cfg)
	spec.Volumes = []string{
		p.configDir(id) + ":/config",
		p.media("movies") + ":/movies",
		p.media("tv") + ":/tv",
		p.media("music") + ":/music",
	}

	// Plex claims the host network namespace instead of publishing
	// ports.
	if id == model.Plex {
		spec.NetworkMode = model.NetworkModeHost
		spec.SetEnv("VERSION", "docker")
	}

	g.Add(spec)
	return nil
}

func addArrSuite(g *model.Graph, cfg *config.Config) error {
	p := newPaths(cfg)
	managers := catalog.ContentManagers()

	for _, id := range catalog.ArrSuite() {
		spec, err := newSpec(id)
		if err != nil {
			return err
		}

		spec.Env = baseEnv(cfg)
		spec.Volumes = []string{p.configDir(id) + ":/config"}

		if catalog.Contains(managers, id) {
			spec.Volumes = append(spec.Volumes,
				p.media("movies")+":/movies",
				p.media("tv")+":/tv",
				p.media("music")+":/music",
				p.media("books")+":/books",
			)
			if cfg.Downloads.Torrents {
				spec.Volumes = append(spec.Volumes, p.torrents()+":/downloads/torrents")
			}
			if cfg.Downloads.Usenet {
				spec.Volumes = append(spec.Volumes, p.usenet()+":/downloads/usenet")
			}
		}

		g.Add(spec)
	}
	return nil
}

func addDownloaders(g *model.Graph, cfg *config.Config) error {
	p := newPaths(cfg)

	if cfg.Downloads.Torrents {
		spec, err := newSpec(model.QBittorrent)
		if err != nil {
			return err
		}
		spec.Env = baseEnv(cfg)
		spec.SetEnv("WEBUI_PORT", "8080")
		spec.Volumes = []string{
			p.configDir(model.QBittorrent) + ":/config",
			p.torrents() + ":/downloads",
		}
		g.Add(spec)
	}

	if cfg.Downloads.Usenet {
		id := model.ServiceID(cfg.Downloads.UsenetClient)
		spec, err := newSpec(id)
		if err != nil {
			return err
		}
		spec.Env = baseEnv(cfg)
		spec.Volumes = []string{
			p.configDir(id) + ":/config",
			p.usenet() + ":/downloads",
		}
		g.Add(spec)
	}

	return nil
}

func addRequestManager(g *model.Graph, cfg *config.Config) error {
	// "none" adds nothing and mutates nothing.
	if cfg.RequestManager == config.RequestManagerNone {
		return nil
	}

	id := model.ServiceID(cfg.RequestManager)
	spec, err := newSpec(id)
	if err != nil {
		return err
	}
	spec.Env = baseEnv(cfg)
	spec.Volumes = []string{newPaths(cfg).configDir(id) + ":/config"}
	g.Add(spec)
	return nil
}

func addGateway(g *model.Graph, cfg *config.Config) error {
	id := model.ServiceID(cfg.Gateway)
	spec, err := newSpec(id)
	if err != nil {
		return err
	}

	p := newPaths(cfg)
	switch id {
	case model.Traefik:
		spec.Command = []string{
			"--api.dashboard=true",
			"--api.insecure=true",
			"--providers.docker=true",
			"--providers.docker.exposedbydefault=false",
			"--entrypoints.web.address=:80",
		}
		spec.Volumes = []string{
			dockerSocket + ":" + dockerSocket + ":ro",
			p.configDir(id) + ":/etc/traefik",
		}
	case model.NginxProxyManager:
		spec.Volumes = []string{
			filepath.Join(p.base, "config", "npm", "data") + ":/data",
			filepath.Join(p.base, "config", "npm", "letsencrypt") + ":/etc/letsencrypt",
		}
	}

	g.Add(spec)
	return nil
}

func addDashboard(g *model.Graph, cfg *config.Config) error {
	id := model.ServiceID(cfg.Dashboard)
	spec, err := newSpec(id)
	if err != nil {
		return err
	}

	p := newPaths(cfg)
	spec.Env = baseEnv(cfg)
	switch id {
	case model.Homepage:
		spec.Volumes = []string{
			p.configDir(id) + ":/app/config",
			dockerSocket + ":" + dockerSocket + ":ro",
		}
	case model.Heimdall:
		spec.Volumes = []string{p.configDir(id) + ":/config"}
	}

	g.Add(spec)
	return nil
}

func addWatchtower(g *model.Graph, cfg *config.Config) error {
	spec, err := newSpec(model.Watchtower)
	if err != nil {
		return err
	}
	spec.Volumes = []string{dockerSocket + ":" + dockerSocket}
	spec.Env = map[string]string{
		"WATCHTOWER_CLEANUP":  "true",
		"WATCHTOWER_SCHEDULE": "0 0 4 * * *",
	}
	g.Add(spec)
	return nil
}

func addExtras(g *model.Graph, cfg *config.Config) error {
	p := newPaths(cfg)

	for _, name := range cfg.Extras {
		id := model.ServiceID(name)
		spec, err := newSpec(id)
		if err != nil {
			return err
		}

		switch id {
		case model.Bazarr:
			spec.Env = baseEnv(cfg)
			spec.Volumes = []string{
				p.configDir(id) + ":/config",
				p.media("movies") + ":/movies",
				p.media("tv") + ":/tv",
			}
		case model.Tautulli:
			spec.Env = baseEnv(cfg)
			spec.Volumes = []string{p.configDir(id) + ":/config"}
		case model.Portainer:
			spec.Volumes = []string{
				dockerSocket + ":" + dockerSocket,
				p.configDir(id) + ":/data",
			}
		}

		g.Add(spec)
	}
	return nil
}
