package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/UpstateNate/AstroMediaServer/internal/catalog"
	"github.com/UpstateNate/AstroMediaServer/internal/config"
	"github.com/UpstateNate/AstroMediaServer/internal/deploy"
	"github.com/UpstateNate/AstroMediaServer/internal/model"
	"github.com/UpstateNate/AstroMediaServer/internal/ui"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Generate the stack and deploy it with docker compose",
	Long: `Expand astro.yml into the full service topology, create the directory
tree the containers need, write the manifest and dashboard config, and
apply everything with a single 'docker compose up -d'.`,
	RunE: runUp,
}

func init() {
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
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

	// The directory tree must exist (with the right ownership) before
	// the manifest lands and before compose binds anything into it.
	fmt.Println(ui.Bold("Preparing directories..."))
	if os.Geteuid() != 0 {
		ui.Warn(fmt.Sprintf("not running as root; creating %s may fail", cfg.BaseDir))
	}
	if err := deploy.EnsureDirectories(logger, graph, cfg); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Directory setup failed", err.Error(), "astro up usually needs to run as root"))
		return err
	}

	if err := writeArtifacts(logger, graph, cfg, manifestPath); err != nil {
		return err
	}

	fmt.Println(ui.Bold("Deploying services..."))
	fmt.Println(ui.Hint("this may take several minutes while images download"))
	if err := deploy.ComposeUp(logger, manifestPath, cfg.BaseDir); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Deployment failed", err.Error(), "check 'docker compose logs' for details"))
		return err
	}

	printCompletion(graph, cfg)
	return nil
}

// printCompletion lists where the main services can be reached.
func printCompletion(graph *model.Graph, cfg *config.Config) {
	fmt.Println()
	ui.Success("Setup complete! Your services are running.")
	fmt.Println()

	highlights := []model.ServiceID{
		model.ServiceID(cfg.Dashboard),
		model.ServiceID(cfg.MediaServer),
		model.Radarr,
		model.Sonarr,
		model.Prowlarr,
	}

	for _, id := range highlights {
		entry, ok := catalog.Get(id)
		if !ok || entry.WebPort() == 0 || !graph.Has(id) {
			continue
		}
		label := entry.Title + ":"
		fmt.Printf("  %-12s http://%s:%d\n", label, cfg.HostAddress, entry.WebPort())
	}

	fmt.Println()
	fmt.Printf("Manage the stack from %s:\n", ui.Bold(cfg.BaseDir))
	fmt.Println(ui.Hint("  docker compose " + strings.Join([]string{"up", "down", "restart"}, "|")))
}
