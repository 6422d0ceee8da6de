package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UpstateNate/AstroMediaServer/internal/config"
	"github.com/UpstateNate/AstroMediaServer/internal/stack"
	"github.com/UpstateNate/AstroMediaServer/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate your astro.yml configuration",
	Long: `Check that every configured value belongs to the set of services and
options this tool knows how to deploy.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'astro init' to create a config file"))
		return err
	}

	fmt.Println(ui.Bold("Validating astro.yml..."))

	errs := stack.CheckConfig(cfg)
	checks := []struct {
		field string
		value string
	}{
		{"media_server", cfg.MediaServer},
		{"request_manager", cfg.RequestManager},
		{"gateway", cfg.Gateway},
		{"dashboard", cfg.Dashboard},
		{"transcoding", cfg.Transcoding},
		{"timezone", cfg.Timezone},
	}

	failed := make(map[string]bool, len(errs))
	for _, ve := range errs {
		failed[ve.Field] = true
		ui.ValidationErr(ve.Field, ve.Message, ve.Suggestion)
	}
	passed := 0
	for _, c := range checks {
		if !failed[c.field] {
			ui.ValidationOK(c.field, c.value)
			passed++
		}
	}

	fmt.Println()
	if len(errs) == 0 {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
		return nil
	}

	fmt.Printf("%d checks passed, %d errors\n", passed, len(errs))
	return fmt.Errorf("%d validation errors", len(errs))
}
