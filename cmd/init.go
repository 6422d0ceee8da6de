package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UpstateNate/AstroMediaServer/internal/ui"
	"github.com/UpstateNate/AstroMediaServer/internal/wizard"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an astro.yml config file interactively",
	Long: `Walk through the setup wizard (media server, download methods, VPN,
hardware transcoding, and more) and write the resulting configuration
to astro.yml.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "astro.yml"

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("%s already exists.\n", configPath)
		fmt.Print("Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	fmt.Println(ui.Bold("Scanning for transcoding hardware..."))
	detection := wizard.Detect(nil)

	session := wizard.NewSession(detection)
	answers, err := wizard.Run(session, wizard.Steps())
	if err != nil {
		// Cancellation is a first-class outcome, not a failure:
		// nothing was written and nothing runs afterwards.
		if errors.Is(err, wizard.ErrCancelled) {
			fmt.Println("Setup cancelled.")
			return nil
		}
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ui.Success(fmt.Sprintf("Created %s", configPath))
	fmt.Println()
	fmt.Printf("Next step: %s\n", ui.Bold("astro up"))
	fmt.Printf("           %s\n", ui.Hint("or edit astro.yml and run 'astro generate' to preview"))

	return nil
}
