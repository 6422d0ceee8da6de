package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/UpstateNate/AstroMediaServer/internal/config"
	"github.com/UpstateNate/AstroMediaServer/internal/dashboard"
	"github.com/UpstateNate/AstroMediaServer/internal/manifest"
	"github.com/UpstateNate/AstroMediaServer/internal/model"
	"github.com/UpstateNate/AstroMediaServer/internal/stack"
	"github.com/UpstateNate/AstroMediaServer/internal/ui"
)

var outputFile string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the docker-compose manifest and dashboard config",
	Long: `Expand astro.yml into the full service topology, validate it, and
write docker-compose.yml plus the dashboard configuration files.
Nothing is deployed; use 'astro up' for that.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "manifest path (default: <base_dir>/docker-compose.yml)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'astro init' to create a config file"))
		return err
	}

	graph, manifestPath, err := composeStack(logger, cfg)
	if err != nil {
		return err
	}

	if err := writeArtifacts(logger, graph, cfg, manifestPath); err != nil {
		return err
	}

	ui.Success(fmt.Sprintf("Generated %s (%d services)", manifestPath, graph.Len()))
	return nil
}

// composeStack runs the rules engine and resolves the manifest path.
// Configuration and composition errors are rendered before returning.
func composeStack(logger *log.Logger, cfg *config.Config) (*model.Graph, string, error) {
	logger.Debug("composing service graph",
		"media_server", cfg.MediaServer,
		"torrents", cfg.Downloads.Torrents,
		"usenet", cfg.Downloads.Usenet,
		"vpn", cfg.VPN.Enabled)

	graph, err := stack.Build(cfg)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Composition failed", err.Error(), "run 'astro validate' to check your configuration"))
		return nil, "", err
	}

	path := outputFile
	if path == "" {
		path = filepath.Join(cfg.BaseDir, "docker-compose.yml")
	}
	return graph, path, nil
}

// writeArtifacts serializes the validated graph: the compose manifest
// (verified against the compose spec first) and, when homepage is the
// dashboard, its companion config files.
func writeArtifacts(logger *log.Logger, graph *model.Graph, cfg *config.Config, manifestPath string) error {
	data, err := manifest.Encode(graph)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := manifest.Verify(data); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(manifestPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	logger.Debug("writing manifest", "path", manifestPath)
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	if !graph.Has(model.Homepage) {
		return nil
	}

	homepageDir := filepath.Join(cfg.BaseDir, "config", "homepage")
	if err := os.MkdirAll(homepageDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", homepageDir, err)
	}

	files, err := dashboard.Render(graph, cfg.HostAddress)
	if err != nil {
		return err
	}
	for name, content := range files {
		path := filepath.Join(homepageDir, name)
		logger.Debug("writing dashboard config", "path", path)
		if err := os.WriteFile(path, content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return nil
}
