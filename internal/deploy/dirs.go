// Package deploy owns the two external side effects of a run: the
// directory tree the containers bind-mount, and the docker compose
// invocation that applies the manifest. Neither retries; failures are
// reported with their cause and the run stops.
package deploy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/UpstateNate/AstroMediaServer/internal/config"
	"github.com/UpstateNate/AstroMediaServer/internal/model"
)

// chown is swapped out by tests; directory ownership otherwise goes
// through the real syscall.
var chown = os.Chown

// stagingAreas are created under each transport's download directory
// so clients can separate finished, in-flight, and watched items.
var stagingAreas = []string{"complete", "incomplete", "watch"}

// EnsureDirectories creates the full directory tree a composed graph
// needs and sets its ownership. The per-service directories are derived
// from the specs' bind mounts, so a service with an unusual layout
// (nginx-proxy-manager's data/letsencrypt split) gets exactly the
// directories it binds. Safe to re-run: existing directories are left
// in place and re-chowned.
func EnsureDirectories(logger *log.Logger, graph *model.Graph, cfg *config.Config) error {
	dirs := []string{
		filepath.Join(cfg.BaseDir, "config"),
		filepath.Join(cfg.BaseDir, "media", "movies"),
		filepath.Join(cfg.BaseDir, "media", "tv"),
		filepath.Join(cfg.BaseDir, "media", "music"),
		filepath.Join(cfg.BaseDir, "media", "books"),
	}

	// Every bind-mount source under the base directory. Sources outside
	// it (the docker socket) are not ours to create.
	for _, spec := range graph.Services() {
		for _, vol := range spec.Volumes {
			host, _, ok := strings.Cut(vol, ":")
			if !ok || !strings.HasPrefix(host, cfg.BaseDir+string(filepath.Separator)) {
				continue
			}
			dirs = append(dirs, host)
		}
	}

	if cfg.Downloads.Torrents {
		for _, area := range stagingAreas {
			dirs = append(dirs, filepath.Join(cfg.BaseDir, "torrents", area))
		}
	}
	if cfg.Downloads.Usenet {
		for _, area := range stagingAreas {
			dirs = append(dirs, filepath.Join(cfg.BaseDir, "usenet", area))
		}
	}

	for _, dir := range dirs {
		logger.Debug("ensuring directory", "path", dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		if err := chown(dir, cfg.PUID, cfg.PGID); err != nil {
			return fmt.Errorf("chown %s: %w", dir, err)
		}
	}

	return nil
}
